package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RoleCountResponse pairs a user role with how many accounts hold it
type RoleCountResponse struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

// EntityCountsResponse are the headline totals on the admin dashboard
type EntityCountsResponse struct {
	Users               int64               `json:"users"`
	UsersByRole         []RoleCountResponse `json:"users_by_role"`
	Organizations       int64               `json:"organizations"`
	ActiveOrganizations int64               `json:"active_organizations"`
	Categories          int64               `json:"categories"`
	Foods               int64               `json:"foods"`
	Needs               int64               `json:"needs"`
	ActiveNeeds         int64               `json:"active_needs"`
	CompletedNeeds      int64               `json:"completed_needs"`
	Donations           int64               `json:"donations"`
}

// StatusCountResponse pairs a donation status with a count
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TopOrganizationResponse ranks an organization by delivered donations
type TopOrganizationResponse struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	DeliveredCount int64     `json:"delivered_count"`
}

// TopDonorResponse ranks a donor by delivered donations
type TopDonorResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Username       string    `json:"username"`
	DisplayName    string    `json:"display_name"`
	DeliveredCount int64     `json:"delivered_count"`
}

// TopFoodResponse ranks a food by delivered donations
type TopFoodResponse struct {
	FoodID         uuid.UUID `json:"food_id"`
	Name           string    `json:"name"`
	DeliveredCount int64     `json:"delivered_count"`
}

// RecentUserResponse is a newly registered account on the admin dashboard
type RecentUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentDonationResponse is a latest-activity row on the admin dashboard
type RecentDonationResponse struct {
	DonationID       uuid.UUID       `json:"donation_id"`
	DonorName        string          `json:"donor_name"`
	OrganizationName string          `json:"organization_name"`
	FoodName         string          `json:"food_name"`
	Quantity         decimal.Decimal `json:"quantity"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// DashboardResponse is the full admin dashboard payload
type DashboardResponse struct {
	Counts            EntityCountsResponse      `json:"counts"`
	DonationsByStatus []StatusCountResponse     `json:"donations_by_status"`
	DonationsLastWeek int64                     `json:"donations_last_week"`
	TopOrganizations  []TopOrganizationResponse `json:"top_organizations"`
	TopDonors         []TopDonorResponse        `json:"top_donors"`
	TopFoods          []TopFoodResponse         `json:"top_foods"`
	RecentDonations   []RecentDonationResponse  `json:"recent_donations"`
	RecentUsers       []RecentUserResponse      `json:"recent_users"`
	GeneratedAt       time.Time                 `json:"generated_at"`
}

// StatusResponse is the public API status probe payload
type StatusResponse struct {
	Status                   string `json:"status"`
	Message                  string `json:"message"`
	TotalActiveOrganizations int64  `json:"total_active_organizations"`
	TotalActiveNeeds         int64  `json:"total_active_needs"`
	TotalDonations           int64  `json:"total_donations"`
}
