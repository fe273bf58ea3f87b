package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tasks-webapi/internal/model"
)

// ListCategories returns every category in the table's natural order.
func (c *DBContext) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// FindCategory looks a category up by primary key. It returns nil, nil when
// no row matches.
func (c *DBContext) FindCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

func (c *DBContext) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&model.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return count > 0, nil
}
