package usecases

import (
	"fitness-server/apperrors"
	"fitness-server/entities"
	"fitness-server/repositories"
)

// Update inputs distinguish "absent" from a zero value: nil means leave the
// field alone, a pointer to zero writes the zero.
type UpdateWorkoutInput struct {
	Title          *string  `json:"title"`
	Type           *string  `json:"type"`
	DurationMin    *int     `json:"duration_min"`
	CaloriesBurned *float64 `json:"calories_burned"`
	Date           *string  `json:"date"`
}

type UpdateMealInput struct {
	Name     *string  `json:"name"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	Date     *string  `json:"date"`
}

type UpdateWeightInput struct {
	Weight *float64 `json:"weight"`
}

type UpdateFeedbackInput struct {
	Subject *string `json:"subject"`
	Message *string `json:"message"`
	Rating  *int    `json:"rating"`
}

// TrackerUseCase handles workout, meal, weight and feedback records.
// Every operation is scoped to the authenticated user: records are created
// with the caller's id and mutations require the caller to own the record.
type TrackerUseCase struct {
	WorkoutRepo  repositories.WorkoutRepository
	MealRepo     repositories.MealRepository
	WeightRepo   repositories.WeightRepository
	FeedbackRepo repositories.FeedbackRepository
}

func NewTrackerUseCase(workoutRepo repositories.WorkoutRepository, mealRepo repositories.MealRepository,
	weightRepo repositories.WeightRepository, feedbackRepo repositories.FeedbackRepository) *TrackerUseCase {
	return &TrackerUseCase{
		WorkoutRepo:  workoutRepo,
		MealRepo:     mealRepo,
		WeightRepo:   weightRepo,
		FeedbackRepo: feedbackRepo,
	}
}

// ============= Workout =============

func (uc *TrackerUseCase) CreateWorkout(callerID string, workout *entities.Workout) error {
	if workout.Title == "" {
		return apperrors.E(apperrors.KindValidation, "workout title is required")
	}
	if workout.DurationMin <= 0 {
		return apperrors.E(apperrors.KindValidation, "workout duration is required")
	}
	workout.UserID = callerID
	return uc.WorkoutRepo.Create(workout)
}

func (uc *TrackerUseCase) GetWorkout(callerID, id string) (*entities.Workout, error) {
	workout, err := uc.WorkoutRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if workout.UserID != callerID {
		return nil, apperrors.E(apperrors.KindUnauthorized, "workout belongs to another user")
	}
	return workout, nil
}

func (uc *TrackerUseCase) ListWorkouts(callerID string) ([]entities.Workout, error) {
	return uc.WorkoutRepo.GetByUserID(callerID)
}

func (uc *TrackerUseCase) UpdateWorkout(callerID, id string, in UpdateWorkoutInput) (*entities.Workout, error) {
	existing, err := uc.GetWorkout(callerID, id)
	if err != nil {
		return nil, err
	}

	// Merge only provided fields; user_id is never updatable
	if in.Title != nil {
		if *in.Title == "" {
			return nil, apperrors.E(apperrors.KindValidation, "workout title cannot be empty")
		}
		existing.Title = *in.Title
	}
	if in.Type != nil {
		existing.Type = *in.Type
	}
	if in.DurationMin != nil {
		if *in.DurationMin <= 0 {
			return nil, apperrors.E(apperrors.KindValidation, "workout duration must be positive")
		}
		existing.DurationMin = *in.DurationMin
	}
	if in.CaloriesBurned != nil {
		if *in.CaloriesBurned < 0 {
			return nil, apperrors.E(apperrors.KindValidation, "calories burned cannot be negative")
		}
		existing.CaloriesBurned = *in.CaloriesBurned
	}
	if in.Date != nil {
		existing.Date = *in.Date
	}

	if err := uc.WorkoutRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *TrackerUseCase) DeleteWorkout(callerID, id string) error {
	if _, err := uc.GetWorkout(callerID, id); err != nil {
		return err
	}
	return uc.WorkoutRepo.Delete(id)
}

// ============= Meal =============

func (uc *TrackerUseCase) CreateMeal(callerID string, meal *entities.Meal) error {
	if meal.Name == "" {
		return apperrors.E(apperrors.KindValidation, "meal name is required")
	}
	if meal.Calories < 0 {
		return apperrors.E(apperrors.KindValidation, "calories cannot be negative")
	}
	meal.UserID = callerID
	return uc.MealRepo.Create(meal)
}

func (uc *TrackerUseCase) GetMeal(callerID, id string) (*entities.Meal, error) {
	meal, err := uc.MealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if meal.UserID != callerID {
		return nil, apperrors.E(apperrors.KindUnauthorized, "meal belongs to another user")
	}
	return meal, nil
}

func (uc *TrackerUseCase) ListMeals(callerID string) ([]entities.Meal, error) {
	return uc.MealRepo.GetByUserID(callerID)
}

func (uc *TrackerUseCase) UpdateMeal(callerID, id string, in UpdateMealInput) (*entities.Meal, error) {
	existing, err := uc.GetMeal(callerID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperrors.E(apperrors.KindValidation, "meal name cannot be empty")
		}
		existing.Name = *in.Name
	}
	if in.Calories != nil {
		if *in.Calories < 0 {
			return nil, apperrors.E(apperrors.KindValidation, "calories cannot be negative")
		}
		existing.Calories = *in.Calories
	}
	if in.Protein != nil {
		existing.Protein = *in.Protein
	}
	if in.Carbs != nil {
		existing.Carbs = *in.Carbs
	}
	if in.Fats != nil {
		existing.Fats = *in.Fats
	}
	if in.Date != nil {
		existing.Date = *in.Date
	}

	if err := uc.MealRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *TrackerUseCase) DeleteMeal(callerID, id string) error {
	if _, err := uc.GetMeal(callerID, id); err != nil {
		return err
	}
	return uc.MealRepo.Delete(id)
}

// ============= Weight =============

func (uc *TrackerUseCase) CreateWeight(callerID string, weight *entities.Weight) error {
	if weight.Weight <= 0 {
		return apperrors.E(apperrors.KindValidation, "weight value is required")
	}
	weight.UserID = callerID
	return uc.WeightRepo.Create(weight)
}

func (uc *TrackerUseCase) GetWeight(callerID, id string) (*entities.Weight, error) {
	weight, err := uc.WeightRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if weight.UserID != callerID {
		return nil, apperrors.E(apperrors.KindUnauthorized, "weight entry belongs to another user")
	}
	return weight, nil
}

func (uc *TrackerUseCase) ListWeights(callerID string) ([]entities.Weight, error) {
	return uc.WeightRepo.GetByUserID(callerID)
}

func (uc *TrackerUseCase) UpdateWeight(callerID, id string, in UpdateWeightInput) (*entities.Weight, error) {
	existing, err := uc.GetWeight(callerID, id)
	if err != nil {
		return nil, err
	}

	if in.Weight != nil {
		if *in.Weight <= 0 {
			return nil, apperrors.E(apperrors.KindValidation, "weight value must be positive")
		}
		existing.Weight = *in.Weight
	}

	if err := uc.WeightRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *TrackerUseCase) DeleteWeight(callerID, id string) error {
	if _, err := uc.GetWeight(callerID, id); err != nil {
		return err
	}
	return uc.WeightRepo.Delete(id)
}

// ============= Feedback =============

func (uc *TrackerUseCase) CreateFeedback(callerID string, feedback *entities.Feedback) error {
	if feedback.Message == "" {
		return apperrors.E(apperrors.KindValidation, "feedback message is required")
	}
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return apperrors.E(apperrors.KindValidation, "rating must be between 1 and 5")
	}
	feedback.UserID = callerID
	return uc.FeedbackRepo.Create(feedback)
}

func (uc *TrackerUseCase) GetFeedback(callerID, id string) (*entities.Feedback, error) {
	feedback, err := uc.FeedbackRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if feedback.UserID != callerID {
		return nil, apperrors.E(apperrors.KindUnauthorized, "feedback belongs to another user")
	}
	return feedback, nil
}

func (uc *TrackerUseCase) ListFeedback(callerID string) ([]entities.Feedback, error) {
	return uc.FeedbackRepo.GetByUserID(callerID)
}

func (uc *TrackerUseCase) UpdateFeedback(callerID, id string, in UpdateFeedbackInput) (*entities.Feedback, error) {
	existing, err := uc.GetFeedback(callerID, id)
	if err != nil {
		return nil, err
	}

	if in.Subject != nil {
		existing.Subject = *in.Subject
	}
	if in.Message != nil {
		if *in.Message == "" {
			return nil, apperrors.E(apperrors.KindValidation, "feedback message cannot be empty")
		}
		existing.Message = *in.Message
	}
	if in.Rating != nil {
		if *in.Rating < 1 || *in.Rating > 5 {
			return nil, apperrors.E(apperrors.KindValidation, "rating must be between 1 and 5")
		}
		existing.Rating = *in.Rating
	}

	if err := uc.FeedbackRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *TrackerUseCase) DeleteFeedback(callerID, id string) error {
	if _, err := uc.GetFeedback(callerID, id); err != nil {
		return err
	}
	return uc.FeedbackRepo.Delete(id)
}
