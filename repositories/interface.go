package repositories

import "fitness-server/entities"

type UserRepository interface {
	// CreateWithWeight persists a new user and their initial weight entry
	// in a single transaction.
	CreateWithWeight(user *entities.User, weight float64) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	Update(user *entities.User) error
	// Delete removes the user and soft-deletes their tracker records.
	Delete(id string) error
}

type WorkoutRepository interface {
	Create(workout *entities.Workout) error
	GetByID(id string) (*entities.Workout, error)
	GetByUserID(userID string) ([]entities.Workout, error)
	Update(workout *entities.Workout) error
	Delete(id string) error
}

type MealRepository interface {
	Create(meal *entities.Meal) error
	GetByID(id string) (*entities.Meal, error)
	GetByUserID(userID string) ([]entities.Meal, error)
	Update(meal *entities.Meal) error
	Delete(id string) error
}

type WeightRepository interface {
	Create(weight *entities.Weight) error
	GetByID(id string) (*entities.Weight, error)
	GetByUserID(userID string) ([]entities.Weight, error)
	Update(weight *entities.Weight) error
	Delete(id string) error
}

type FeedbackRepository interface {
	Create(feedback *entities.Feedback) error
	GetByID(id string) (*entities.Feedback, error)
	GetByUserID(userID string) ([]entities.Feedback, error)
	Update(feedback *entities.Feedback) error
	Delete(id string) error
}
