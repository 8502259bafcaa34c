package catalog

import (
	"context"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFoodCategoryRepository is a mock implementation of FoodCategoryRepository
type MockFoodCategoryRepository struct {
	mock.Mock
}

func (m *MockFoodCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FoodCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodCategory), args.Error(1)
}

func (m *MockFoodCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.FoodCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.FoodCategory), args.Error(1)
}

func (m *MockFoodCategoryRepository) FindAll(ctx context.Context) ([]catalog.FoodCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.FoodCategory), args.Error(1)
}

func (m *MockFoodCategoryRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodCategoryRepository) Save(ctx context.Context, category *catalog.FoodCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockFoodRepository is a mock implementation of FoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Food), args.Error(1)
}

func (m *MockFoodRepository) FindAll(ctx context.Context) ([]catalog.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Food, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Food), args.Error(1)
}

func (m *MockFoodRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodRepository) Save(ctx context.Context, food *catalog.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}
