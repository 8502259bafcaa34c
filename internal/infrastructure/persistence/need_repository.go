package persistence

import (
	"context"
	"errors"

	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNeedRepository implements NeedRepository using GORM
type GormNeedRepository struct {
	db *gorm.DB
}

// NewGormNeedRepository creates a new GormNeedRepository
func NewGormNeedRepository(db *gorm.DB) *GormNeedRepository {
	return &GormNeedRepository{db: db}
}

// FindByID finds a need by ID
func (r *GormNeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*charity.Need, error) {
	var need charity.Need
	if err := r.db.WithContext(ctx).First(&need, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &need, nil
}

// FindByOrganization returns all needs of an organization, newest first
func (r *GormNeedRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]charity.Need, error) {
	var needs []charity.Need
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&needs).Error; err != nil {
		return nil, err
	}
	return needs, nil
}

// FindActiveByOrganization returns the open needs of an organization
func (r *GormNeedRepository) FindActiveByOrganization(ctx context.Context, organizationID uuid.UUID) ([]charity.Need, error) {
	var needs []charity.Need
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND active = ?", organizationID, true).
		Order("created_at DESC").
		Find(&needs).Error; err != nil {
		return nil, err
	}
	return needs, nil
}

// FindBrowsable returns active needs of active organizations. An optional
// category narrows by the food's category; a search term matches the food or
// organization name.
func (r *GormNeedRepository) FindBrowsable(ctx context.Context, categoryID *uuid.UUID, search string) ([]charity.Need, error) {
	query := r.db.WithContext(ctx).
		Model(&charity.Need{}).
		Joins("JOIN organizations ON organizations.id = needs.organization_id").
		Joins("JOIN foods ON foods.id = needs.food_id").
		Where("needs.active = ? AND organizations.active = ?", true, true)

	if categoryID != nil {
		query = query.Where("foods.category_id = ?", *categoryID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(foods.name) LIKE LOWER(?) OR LOWER(organizations.name) LIKE LOWER(?)", pattern, pattern)
	}

	var needs []charity.Need
	if err := query.Order("needs.created_at DESC").Find(&needs).Error; err != nil {
		return nil, err
	}
	return needs, nil
}

// ExistsActiveForFood checks whether the organization already has an open
// need for the food
func (r *GormNeedRepository) ExistsActiveForFood(ctx context.Context, organizationID, foodID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&charity.Need{}).
		Where("organization_id = ? AND food_id = ? AND active = ?", organizationID, foodID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts all needs
func (r *GormNeedRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&charity.Need{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActive counts open needs
func (r *GormNeedRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&charity.Need{}).
		Where("active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a need
func (r *GormNeedRepository) Save(ctx context.Context, need *charity.Need) error {
	return r.db.WithContext(ctx).Save(need).Error
}

// SaveWithLock updates the need only if nobody else bumped its version since
// it was loaded. Domain mutations already incremented the in-memory version,
// so the row must still hold the previous one.
func (r *GormNeedRepository) SaveWithLock(ctx context.Context, need *charity.Need) error {
	result := r.db.WithContext(ctx).Model(&charity.Need{}).
		Where("id = ? AND version = ?", need.ID, need.Version-1).
		Updates(map[string]interface{}{
			"target_quantity":   need.TargetQuantity,
			"received_quantity": need.ReceivedQuantity,
			"priority":          need.Priority,
			"notes":             need.Notes,
			"active":            need.Active,
			"version":           need.Version,
			"updated_at":        need.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

var _ charity.NeedRepository = (*GormNeedRepository)(nil)
