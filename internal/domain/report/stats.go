// Package report holds read-side types for the admin dashboard and the
// public status probe. Nothing here is an aggregate; rows are produced by
// aggregation queries and never written back.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoleCount pairs a user role with how many accounts hold it
type RoleCount struct {
	Role  string
	Count int64
}

// EntityCounts are the headline totals shown on the admin dashboard
type EntityCounts struct {
	Users               int64
	UsersByRole         []RoleCount
	Organizations       int64
	ActiveOrganizations int64
	Categories          int64
	Foods               int64
	Needs               int64
	ActiveNeeds         int64
	CompletedNeeds      int64
	Donations           int64
}

// TopOrganization is an organization ranked by delivered donations
type TopOrganization struct {
	OrganizationID uuid.UUID
	Name           string
	DeliveredCount int64
}

// TopDonor is a donor ranked by delivered donations
type TopDonor struct {
	UserID         uuid.UUID
	Username       string
	DisplayName    string
	DeliveredCount int64
}

// TopFood is a food ranked by how often it appears in delivered donations
type TopFood struct {
	FoodID         uuid.UUID
	Name           string
	DeliveredCount int64
}

// RecentDonation is a latest-activity row with display names joined in
type RecentDonation struct {
	DonationID       uuid.UUID
	DonorName        string
	OrganizationName string
	FoodName         string
	Quantity         decimal.Decimal
	Status           string
	CreatedAt        time.Time
}

// StatsRepository answers the aggregation queries behind the dashboard.
// Limit caps the ranking and recent-activity sizes; the dashboard asks for 5.
type StatsRepository interface {
	EntityCounts(ctx context.Context) (*EntityCounts, error)
	TopOrganizations(ctx context.Context, limit int) ([]TopOrganization, error)
	TopDonors(ctx context.Context, limit int) ([]TopDonor, error)
	TopFoods(ctx context.Context, limit int) ([]TopFood, error)
	RecentDonations(ctx context.Context, limit int) ([]RecentDonation, error)
	DonationsSince(ctx context.Context, since time.Time) (int64, error)
}
