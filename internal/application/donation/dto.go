package donation

import (
	"time"

	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceDonationRequest is the input for pledging a donation against a need
type PlaceDonationRequest struct {
	NeedID   uuid.UUID       `json:"need_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Message  string          `json:"message" binding:"max=500"`
}

// ChangeStatusRequest is the input for moving a donation along its lifecycle
type ChangeStatusRequest struct {
	Status donation.DonationStatus `json:"status" binding:"required"`
}

// DonationResponse is the donation representation returned to clients
type DonationResponse struct {
	ID               uuid.UUID       `json:"id"`
	DonorID          uuid.UUID       `json:"donor_id"`
	DonorName        string          `json:"donor_name,omitempty"`
	OrganizationID   uuid.UUID       `json:"organization_id"`
	OrganizationName string          `json:"organization_name,omitempty"`
	FoodID           uuid.UUID       `json:"food_id"`
	FoodName         string          `json:"food_name,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	NeedID           uuid.UUID       `json:"need_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	Status           string          `json:"status"`
	Message          string          `json:"message,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	ConfirmedAt      *time.Time      `json:"confirmed_at,omitempty"`
	DeliveredAt      *time.Time      `json:"delivered_at,omitempty"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty"`
}

// StatusChangeResponse reports the outcome of a status change, including
// what it did to the underlying need
type StatusChangeResponse struct {
	Donation        DonationResponse `json:"donation"`
	NeedCredited    bool             `json:"need_credited"`
	GoalReached     bool             `json:"goal_reached"`
	PercentReceived decimal.Decimal  `json:"percent_received"`
	NeedActive      bool             `json:"need_active"`
	Notice          string           `json:"notice,omitempty"`
}

// StatusCountResponse pairs a donation status with a count
type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ToDonationResponse converts a domain donation to its response form
func ToDonationResponse(d *donation.Donation) DonationResponse {
	return DonationResponse{
		ID:             d.ID,
		DonorID:        d.DonorID,
		OrganizationID: d.OrganizationID,
		FoodID:         d.FoodID,
		NeedID:         d.NeedID,
		Quantity:       d.Quantity,
		Status:         d.Status.String(),
		Message:        d.Message,
		CreatedAt:      d.CreatedAt,
		ConfirmedAt:    d.ConfirmedAt,
		DeliveredAt:    d.DeliveredAt,
		CancelledAt:    d.CancelledAt,
	}
}
