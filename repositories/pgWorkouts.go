package repositories

import (
	"errors"
	"time"

	"fitness-server/apperrors"
	"fitness-server/db"
	"fitness-server/entities"

	"gorm.io/gorm"
)

type workoutPgRepository struct {
	db db.Database
}

func NewWorkoutPgRepository(database db.Database) WorkoutRepository {
	return &workoutPgRepository{db: database}
}

func (r *workoutPgRepository) Create(workout *entities.Workout) error {
	return r.db.GetDB().Create(workout).Error
}

func (r *workoutPgRepository) GetByID(id string) (*entities.Workout, error) {
	var workout entities.Workout
	err := r.db.GetDB().Where("id = ?", id).First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "workout not found")
	}
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutPgRepository) GetByUserID(userID string) ([]entities.Workout, error) {
	var workouts []entities.Workout
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&workouts).Error
	return workouts, err
}

func (r *workoutPgRepository) Update(workout *entities.Workout) error {
	workout.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Save(workout).Error
}

func (r *workoutPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Workout{}).Error
}
