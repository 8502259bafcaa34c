package persistence

import (
	"context"
	"errors"

	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDonationRepository implements DonationRepository using GORM
type GormDonationRepository struct {
	db *gorm.DB
}

// NewGormDonationRepository creates a new GormDonationRepository
func NewGormDonationRepository(db *gorm.DB) *GormDonationRepository {
	return &GormDonationRepository{db: db}
}

// FindByID finds a donation by ID
func (r *GormDonationRepository) FindByID(ctx context.Context, id uuid.UUID) (*donation.Donation, error) {
	var d donation.Donation
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// FindByDonor returns a donor's donations, newest first
func (r *GormDonationRepository) FindByDonor(ctx context.Context, donorID uuid.UUID) ([]donation.Donation, error) {
	var donations []donation.Donation
	if err := r.db.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// FindByOrganization returns donations pledged to an organization, newest first
func (r *GormDonationRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]donation.Donation, error) {
	var donations []donation.Donation
	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// FindByOrganizationAndStatus returns an organization's donations in a status
func (r *GormDonationRepository) FindByOrganizationAndStatus(ctx context.Context, organizationID uuid.UUID, status donation.DonationStatus) ([]donation.Donation, error) {
	var donations []donation.Donation
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND status = ?", organizationID, status).
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// CountByStatus counts all donations grouped by status
func (r *GormDonationRepository) CountByStatus(ctx context.Context) ([]donation.StatusCount, error) {
	var counts []donation.StatusCount
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountByDonorAndStatus counts a donor's donations grouped by status
func (r *GormDonationRepository) CountByDonorAndStatus(ctx context.Context, donorID uuid.UUID) ([]donation.StatusCount, error) {
	var counts []donation.StatusCount
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Select("status, COUNT(*) AS count").
		Where("donor_id = ?", donorID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// CountByOrganizationAndStatus counts an organization's donations grouped by status
func (r *GormDonationRepository) CountByOrganizationAndStatus(ctx context.Context, organizationID uuid.UUID) ([]donation.StatusCount, error) {
	var counts []donation.StatusCount
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Select("status, COUNT(*) AS count").
		Where("organization_id = ?", organizationID).
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// Count counts all donations
func (r *GormDonationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a donation
func (r *GormDonationRepository) Save(ctx context.Context, d *donation.Donation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// SaveWithLock updates the donation only if nobody else bumped its version
// since it was loaded. Domain mutations already incremented the in-memory
// version, so the row must still hold the previous one.
func (r *GormDonationRepository) SaveWithLock(ctx context.Context, d *donation.Donation) error {
	result := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Where("id = ? AND version = ?", d.ID, d.Version-1).
		Updates(map[string]interface{}{
			"status":       d.Status,
			"credited":     d.Credited,
			"confirmed_at": d.ConfirmedAt,
			"delivered_at": d.DeliveredAt,
			"cancelled_at": d.CancelledAt,
			"version":      d.Version,
			"updated_at":   d.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

var _ donation.DonationRepository = (*GormDonationRepository)(nil)
