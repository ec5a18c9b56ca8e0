package repositories

import (
	"errors"
	"time"

	"fitness-server/apperrors"
	"fitness-server/db"
	"fitness-server/entities"

	"gorm.io/gorm"
)

type weightPgRepository struct {
	db db.Database
}

func NewWeightPgRepository(database db.Database) WeightRepository {
	return &weightPgRepository{db: database}
}

func (r *weightPgRepository) Create(weight *entities.Weight) error {
	return r.db.GetDB().Create(weight).Error
}

func (r *weightPgRepository) GetByID(id string) (*entities.Weight, error) {
	var weight entities.Weight
	err := r.db.GetDB().Where("id = ?", id).First(&weight).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "weight entry not found")
	}
	if err != nil {
		return nil, err
	}
	return &weight, nil
}

func (r *weightPgRepository) GetByUserID(userID string) ([]entities.Weight, error) {
	var weights []entities.Weight
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&weights).Error
	return weights, err
}

func (r *weightPgRepository) Update(weight *entities.Weight) error {
	weight.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Save(weight).Error
}

func (r *weightPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Weight{}).Error
}
