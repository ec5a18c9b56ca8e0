package repositories

import (
	"errors"
	"time"

	"fitness-server/apperrors"
	"fitness-server/db"
	"fitness-server/entities"

	"gorm.io/gorm"
)

type feedbackPgRepository struct {
	db db.Database
}

func NewFeedbackPgRepository(database db.Database) FeedbackRepository {
	return &feedbackPgRepository{db: database}
}

func (r *feedbackPgRepository) Create(feedback *entities.Feedback) error {
	return r.db.GetDB().Create(feedback).Error
}

func (r *feedbackPgRepository) GetByID(id string) (*entities.Feedback, error) {
	var feedback entities.Feedback
	err := r.db.GetDB().Where("id = ?", id).First(&feedback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.E(apperrors.KindNotFound, "feedback not found")
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackPgRepository) GetByUserID(userID string) ([]entities.Feedback, error) {
	var feedbacks []entities.Feedback
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *feedbackPgRepository) Update(feedback *entities.Feedback) error {
	feedback.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Save(feedback).Error
}

func (r *feedbackPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Feedback{}).Error
}
