package charity

import (
	"context"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockNeedRepository is a mock implementation of NeedRepository
type MockNeedRepository struct {
	mock.Mock
}

func (m *MockNeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*charity.Need, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*charity.Need), args.Error(1)
}

func (m *MockNeedRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]charity.Need, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]charity.Need), args.Error(1)
}

func (m *MockNeedRepository) FindActiveByOrganization(ctx context.Context, organizationID uuid.UUID) ([]charity.Need, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]charity.Need), args.Error(1)
}

func (m *MockNeedRepository) FindBrowsable(ctx context.Context, categoryID *uuid.UUID, search string) ([]charity.Need, error) {
	args := m.Called(ctx, categoryID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]charity.Need), args.Error(1)
}

func (m *MockNeedRepository) ExistsActiveForFood(ctx context.Context, organizationID, foodID uuid.UUID) (bool, error) {
	args := m.Called(ctx, organizationID, foodID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNeedRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNeedRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNeedRepository) Save(ctx context.Context, need *charity.Need) error {
	args := m.Called(ctx, need)
	return args.Error(0)
}

func (m *MockNeedRepository) SaveWithLock(ctx context.Context, need *charity.Need) error {
	args := m.Called(ctx, need)
	return args.Error(0)
}

// MockOrganizationRepository is a mock implementation of OrganizationRepository
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*charity.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*charity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*charity.Organization, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*charity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindActive(ctx context.Context, filter shared.Filter) ([]charity.Organization, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]charity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	args := m.Called(ctx, registrationNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrganizationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrganizationRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrganizationRepository) Save(ctx context.Context, org *charity.Organization) error {
	args := m.Called(ctx, org)
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
