package donation

import (
	"context"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDonationRepository is a mock implementation of DonationRepository
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) FindByID(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]donation.Donation, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]donation.Donation, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) FindByOrganizationAndStatus(ctx context.Context, organizationID uuid.UUID, status donation.DonationStatus) ([]donation.Donation, error) {
	args := m.Called(ctx, organizationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]donation.Donation), args.Error(1)
}

func (m *MockDonationRepository) CountByStatus(ctx context.Context) ([]donation.StatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]donation.StatusCount), args.Error(1)
}

func (m *MockDonationRepository) CountByDonorAndStatus(ctx context.Context, donorID uuid.UUID) ([]donation.StatusCount, error) {
	args := m.Called(ctx, donorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]donation.StatusCount), args.Error(1)
}

func (m *MockDonationRepository) CountByOrganizationAndStatus(ctx context.Context, organizationID uuid.UUID) ([]donation.StatusCount, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]donation.StatusCount), args.Error(1)
}

func (m *MockDonationRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonationRepository) Save(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDonationRepository) SaveWithLock(ctx context.Context, d *donation.Donation) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

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

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindRecent(ctx context.Context, limit int) ([]identity.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role identity.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
