package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tasks-webapi/internal/model"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockStore) FindCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *mockStore) CategoryExists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) CountTasksByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStore) ListTasksByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *mockStore) Add(entity any) {
	m.Called(entity)
}

func (m *mockStore) Update(entity any) {
	m.Called(entity)
}

func (m *mockStore) Remove(entity any) {
	m.Called(entity)
}

func (m *mockStore) SaveChanges(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// generateCategories returns n categories named "Category 1".."Category n".
func generateCategories(n int) []model.Category {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	categories := make([]model.Category, n)
	for i := range categories {
		ts := base.Add(time.Duration(i) * time.Hour)
		categories[i] = model.Category{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("Category %d", i+1),
			Description: fmt.Sprintf("Description %d", i+1),
			Weight:      (i + 1) * 10,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		}
	}
	return categories
}

func strPtr(s string) *string { return &s }
