package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups tasks by area (work, health, study, etc.).
// Timestamps are owned by the service layer, not by gorm.
type Category struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Weight      int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
	Tasks       []Task    `gorm:"foreignKey:CategoryID"`
}

// BeforeCreate fills in an identifier for rows created without one.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
