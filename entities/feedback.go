package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string         `gorm:"index;type:varchar(36)" json:"user_id"`
	Subject   string         `json:"subject"`
	Message   string         `gorm:"type:text" json:"message"`
	Rating    int            `json:"rating"` // 1..5
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	f.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	f.UpdatedAt = f.CreatedAt
	return
}
