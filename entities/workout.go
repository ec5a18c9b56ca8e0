package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workout struct {
	ID             string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID         string         `gorm:"index;type:varchar(36)" json:"user_id"`
	Title          string         `json:"title"`
	Type           string         `json:"type"` // cardio, strength, flexibility, ...
	DurationMin    int            `json:"duration_min"`
	CaloriesBurned float64        `json:"calories_burned"`
	Date           string         `json:"date"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	w.CreatedAt = now
	w.UpdatedAt = now
	if w.Date == "" {
		w.Date = now
	}
	return
}
