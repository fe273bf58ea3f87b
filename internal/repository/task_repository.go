package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tasks-webapi/internal/model"
)

func (c *DBContext) CountTasksByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := c.db.WithContext(ctx).Model(&model.Task{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// ListTasksByCategory returns the tasks of a category, open ones first.
func (c *DBContext) ListTasksByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.db.WithContext(ctx).Where("category_id = ?", categoryID).
		Order("is_completed ASC, deadline NULLS LAST, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}
