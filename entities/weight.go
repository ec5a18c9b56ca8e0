package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weight is a single body-weight measurement. The first entry for a user
// is created during registration; the rest are logged manually.
type Weight struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string         `gorm:"index;type:varchar(36)" json:"user_id"`
	Weight    float64        `json:"weight"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (w *Weight) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	w.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	w.UpdatedAt = w.CreatedAt
	return
}
