package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a unit of work filed under a category. Only CategoryID is read by
// the category layer.
type Task struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	CategoryID  uuid.UUID `gorm:"type:char(36);index"`
	Title       string
	Description string
	Deadline    *time.Time
	IsCompleted bool `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BeforeCreate fills in an identifier for rows created without one.
func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
