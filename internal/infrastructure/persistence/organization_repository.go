package persistence

import (
	"context"
	"errors"

	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrganizationRepository implements OrganizationRepository using GORM
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewGormOrganizationRepository creates a new GormOrganizationRepository
func NewGormOrganizationRepository(db *gorm.DB) *GormOrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*charity.Organization, error) {
	var org charity.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// FindByUserID finds the organization owned by a user
func (r *GormOrganizationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*charity.Organization, error) {
	var org charity.Organization
	if err := r.db.WithContext(ctx).First(&org, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// FindActive returns active organizations, optionally filtered by a search
// term on the name
func (r *GormOrganizationRepository) FindActive(ctx context.Context, filter shared.Filter) ([]charity.Organization, error) {
	query := r.db.WithContext(ctx).Where("active = ?", true)
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.OrderBy != "" {
		dir := "ASC"
		if filter.OrderDir == "desc" {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	}
	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize).Offset((filter.Page - 1) * filter.PageSize)
	}

	var orgs []charity.Organization
	if err := query.Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// ExistsByRegistrationNumber checks whether a registration number is taken
func (r *GormOrganizationRepository) ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&charity.Organization{}).
		Where("registration_number = ?", registrationNumber).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts all organizations
func (r *GormOrganizationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&charity.Organization{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive counts active organizations
func (r *GormOrganizationRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&charity.Organization{}).
		Where("active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an organization
func (r *GormOrganizationRepository) Save(ctx context.Context, org *charity.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

var _ charity.OrganizationRepository = (*GormOrganizationRepository)(nil)
