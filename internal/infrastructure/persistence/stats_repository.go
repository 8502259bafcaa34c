package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStatsRepository implements StatsRepository with aggregation queries
// over the live tables. The dashboard tolerates slightly stale numbers, so
// nothing here takes locks.
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GormStatsRepository
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// EntityCounts returns the headline totals for the dashboard
func (r *GormStatsRepository) EntityCounts(ctx context.Context) (*report.EntityCounts, error) {
	var counts report.EntityCounts
	db := r.db.WithContext(ctx)

	if err := db.Model(&identity.User{}).Count(&counts.Users).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&identity.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Order("role").
		Scan(&counts.UsersByRole).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&charity.Organization{}).Count(&counts.Organizations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&charity.Organization{}).Where("active = ?", true).Count(&counts.ActiveOrganizations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&catalog.FoodCategory{}).Count(&counts.Categories).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&catalog.Food{}).Count(&counts.Foods).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&charity.Need{}).Count(&counts.Needs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&charity.Need{}).Where("active = ?", true).Count(&counts.ActiveNeeds).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&charity.Need{}).Where("received_quantity >= target_quantity").Count(&counts.CompletedNeeds).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&donation.Donation{}).Count(&counts.Donations).Error; err != nil {
		return nil, err
	}
	return &counts, nil
}

// TopOrganizations ranks organizations by delivered donations
func (r *GormStatsRepository) TopOrganizations(ctx context.Context, limit int) ([]report.TopOrganization, error) {
	var rows []report.TopOrganization
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Select("organizations.id AS organization_id, organizations.name AS name, COUNT(*) AS delivered_count").
		Joins("JOIN organizations ON organizations.id = donations.organization_id").
		Where("donations.status = ?", donation.StatusDelivered).
		Group("organizations.id, organizations.name").
		Order("delivered_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type topDonorRow struct {
	UserID         uuid.UUID
	Username       string
	FirstName      string
	LastName       string
	DeliveredCount int64
}

// TopDonors ranks donors by delivered donations
func (r *GormStatsRepository) TopDonors(ctx context.Context, limit int) ([]report.TopDonor, error) {
	var rows []topDonorRow
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Select("users.id AS user_id, users.username AS username, users.first_name AS first_name, users.last_name AS last_name, COUNT(*) AS delivered_count").
		Joins("JOIN users ON users.id = donations.donor_id").
		Where("donations.status = ?", donation.StatusDelivered).
		Group("users.id, users.username, users.first_name, users.last_name").
		Order("delivered_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	donors := make([]report.TopDonor, len(rows))
	for i, row := range rows {
		display := row.Username
		if row.FirstName != "" {
			display = strings.TrimSpace(row.FirstName + " " + row.LastName)
		}
		donors[i] = report.TopDonor{
			UserID:         row.UserID,
			Username:       row.Username,
			DisplayName:    display,
			DeliveredCount: row.DeliveredCount,
		}
	}
	return donors, nil
}

// TopFoods ranks foods by how often they appear in delivered donations
func (r *GormStatsRepository) TopFoods(ctx context.Context, limit int) ([]report.TopFood, error) {
	var rows []report.TopFood
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Select("foods.id AS food_id, foods.name AS name, COUNT(*) AS delivered_count").
		Joins("JOIN foods ON foods.id = donations.food_id").
		Where("donations.status = ?", donation.StatusDelivered).
		Group("foods.id, foods.name").
		Order("delivered_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type recentDonationRow struct {
	DonationID       uuid.UUID
	Username         string
	FirstName        string
	LastName         string
	OrganizationName string
	FoodName         string
	Quantity         decimal.Decimal
	Status           string
	CreatedAt        time.Time
}

// RecentDonations returns the latest donations with display names joined in
func (r *GormStatsRepository) RecentDonations(ctx context.Context, limit int) ([]report.RecentDonation, error) {
	var rows []recentDonationRow
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Select("donations.id AS donation_id, users.username AS username, users.first_name AS first_name, users.last_name AS last_name, organizations.name AS organization_name, foods.name AS food_name, donations.quantity AS quantity, donations.status AS status, donations.created_at AS created_at").
		Joins("JOIN users ON users.id = donations.donor_id").
		Joins("JOIN organizations ON organizations.id = donations.organization_id").
		Joins("JOIN foods ON foods.id = donations.food_id").
		Order("donations.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	recent := make([]report.RecentDonation, len(rows))
	for i, row := range rows {
		donor := row.Username
		if row.FirstName != "" {
			donor = strings.TrimSpace(row.FirstName + " " + row.LastName)
		}
		recent[i] = report.RecentDonation{
			DonationID:       row.DonationID,
			DonorName:        donor,
			OrganizationName: row.OrganizationName,
			FoodName:         row.FoodName,
			Quantity:         row.Quantity,
			Status:           row.Status,
			CreatedAt:        row.CreatedAt,
		}
	}
	return recent, nil
}

// DonationsSince counts donations created at or after the given time
func (r *GormStatsRepository) DonationsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&donation.Donation{}).
		Where("created_at >= ?", since).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ report.StatsRepository = (*GormStatsRepository)(nil)
