package repositories

import (
	"errors"
	"time"

	"fitness-server/apperrors"
	"fitness-server/db"
	"fitness-server/entities"

	"gorm.io/gorm"
)

type mealPgRepository struct {
	db db.Database
}

func NewMealPgRepository(database db.Database) MealRepository {
	return &mealPgRepository{db: database}
}

func (r *mealPgRepository) Create(meal *entities.Meal) error {
	return r.db.GetDB().Create(meal).Error
}

func (r *mealPgRepository) GetByID(id string) (*entities.Meal, error) {
	var meal entities.Meal
	err := r.db.GetDB().Where("id = ?", id).First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "meal not found")
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *mealPgRepository) GetByUserID(userID string) ([]entities.Meal, error) {
	var meals []entities.Meal
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&meals).Error
	return meals, err
}

func (r *mealPgRepository) Update(meal *entities.Meal) error {
	meal.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Save(meal).Error
}

func (r *mealPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Meal{}).Error
}
