package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tasks-webapi/internal/dto"
	"tasks-webapi/internal/model"
)

// CategoryStore is the persistence collaborator CategoryService works
// against. Add, Update and Remove stage changes; SaveChanges commits them.
type CategoryStore interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	FindCategory(ctx context.Context, id uuid.UUID) (*model.Category, error)
	CategoryExists(ctx context.Context, id uuid.UUID) (bool, error)
	CountTasksByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
	Add(entity any)
	Update(entity any)
	Remove(entity any)
	SaveChanges(ctx context.Context) error
}

// CategoryService provides CRUD and query helpers around categories.
type CategoryService struct {
	store CategoryStore
	log   logrus.FieldLogger
	now   func() time.Time
}

func NewCategoryService(store CategoryStore, log logrus.FieldLogger) *CategoryService {
	return &CategoryService{
		store: store,
		log:   log.WithField("service", "category"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// ListCategories returns every category in the store's natural order.
func (s *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		s.log.WithError(err).Error("list categories failed")
		return nil, err
	}
	s.log.Debugf("listed %d categories", len(categories))
	return categories, nil
}

// GetCategory returns the category with the given id, or nil if there is none.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.store.FindCategory(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("category_id", id).Error("get category failed")
		return nil, err
	}
	if category == nil {
		s.log.WithField("category_id", id).Debug("category not found")
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, input dto.CategoryDTO) (*model.Category, error) {
	if err := input.Validate(); err != nil {
		s.log.WithError(err).Warn("rejected category input")
		return nil, err
	}

	now := s.now()
	category := &model.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.DescriptionOrEmpty(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.store.Add(category)
	if err := s.store.SaveChanges(ctx); err != nil {
		s.log.WithError(err).WithField("category_id", category.ID).Error("create category failed")
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.WithField("category_id", category.ID).Infof("created category %q", category.Name)
	return category, nil
}

// UpdateCategory overwrites the name and description of category in place
// and moves UpdatedAt strictly past both previous timestamps.
func (s *CategoryService) UpdateCategory(ctx context.Context, category *model.Category, input dto.CategoryDTO) error {
	if err := input.Validate(); err != nil {
		s.log.WithError(err).WithField("category_id", category.ID).Warn("rejected category input")
		return err
	}

	category.Name = input.Name
	category.Description = input.DescriptionOrEmpty()
	category.UpdatedAt = s.nextUpdatedAt(category)

	s.store.Update(category)
	if err := s.store.SaveChanges(ctx); err != nil {
		s.log.WithError(err).WithField("category_id", category.ID).Error("update category failed")
		return fmt.Errorf("update category: %w", err)
	}

	s.log.WithField("category_id", category.ID).Info("updated category")
	return nil
}

// DeleteCategory removes category. Deleting an already removed category is
// a caller error; whatever the store reports is returned.
func (s *CategoryService) DeleteCategory(ctx context.Context, category *model.Category) error {
	s.store.Remove(category)
	if err := s.store.SaveChanges(ctx); err != nil {
		s.log.WithError(err).WithField("category_id", category.ID).Error("delete category failed")
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.WithField("category_id", category.ID).Info("deleted category")
	return nil
}

// CountRelatedTasks returns how many tasks reference categoryID.
func (s *CategoryService) CountRelatedTasks(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	count, err := s.store.CountTasksByCategory(ctx, categoryID)
	if err != nil {
		s.log.WithError(err).WithField("category_id", categoryID).Error("count related tasks failed")
		return 0, err
	}
	return count, nil
}

func (s *CategoryService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.store.CategoryExists(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("category_id", id).Error("category exists check failed")
		return false, err
	}
	return ok, nil
}

func (s *CategoryService) nextUpdatedAt(category *model.Category) time.Time {
	floor := category.UpdatedAt
	if category.CreatedAt.After(floor) {
		floor = category.CreatedAt
	}
	now := s.now()
	if !now.After(floor) {
		now = floor.Add(time.Nanosecond)
	}
	return now
}
