package charity

import (
	"time"

	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateNeedRequest is the input for opening a need
type CreateNeedRequest struct {
	FoodID         uuid.UUID       `json:"food_id" binding:"required"`
	TargetQuantity decimal.Decimal `json:"target_quantity" binding:"required"`
	Priority       string          `json:"priority" binding:"required"`
	Notes          string          `json:"notes" binding:"max=500"`
}

// UpdateNeedRequest is the input for editing a need
type UpdateNeedRequest struct {
	TargetQuantity decimal.Decimal `json:"target_quantity" binding:"required"`
	Priority       string          `json:"priority" binding:"required"`
	Notes          string          `json:"notes" binding:"max=500"`
	Active         bool            `json:"active"`
}

// UpdateOrganizationRequest is the input for editing an organization profile
type UpdateOrganizationRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Description  string `json:"description" binding:"max=2000"`
	Address      string `json:"address" binding:"max=500"`
	ContactPhone string `json:"contact_phone" binding:"max=50"`
	ContactEmail string `json:"contact_email" binding:"omitempty,email"`
	Responsible  string `json:"responsible" binding:"max=200"`
}

// NeedResponse is the need representation returned to clients
type NeedResponse struct {
	ID               uuid.UUID       `json:"id"`
	OrganizationID   uuid.UUID       `json:"organization_id"`
	OrganizationName string          `json:"organization_name,omitempty"`
	FoodID           uuid.UUID       `json:"food_id"`
	FoodName         string          `json:"food_name,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	TargetQuantity   decimal.Decimal `json:"target_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	Missing          decimal.Decimal `json:"missing"`
	PercentReceived  decimal.Decimal `json:"percent_received"`
	Priority         string          `json:"priority"`
	Notes            string          `json:"notes,omitempty"`
	Active           bool            `json:"active"`
	CreatedAt        time.Time       `json:"created_at"`
}

// OrganizationResponse is the organization representation returned to clients
type OrganizationResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	RegistrationNumber string    `json:"registration_number"`
	Description        string    `json:"description,omitempty"`
	Address            string    `json:"address,omitempty"`
	ContactPhone       string    `json:"contact_phone,omitempty"`
	ContactEmail       string    `json:"contact_email,omitempty"`
	Responsible        string    `json:"responsible,omitempty"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}

// OrganizationProfileResponse is the public organization page: the profile
// plus its open needs
type OrganizationProfileResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Needs        []NeedResponse       `json:"needs"`
}

// ToNeedResponse converts a domain need to its response form
func ToNeedResponse(n *charity.Need) NeedResponse {
	return NeedResponse{
		ID:               n.ID,
		OrganizationID:   n.OrganizationID,
		FoodID:           n.FoodID,
		TargetQuantity:   n.TargetQuantity,
		ReceivedQuantity: n.ReceivedQuantity,
		Missing:          n.Missing(),
		PercentReceived:  n.PercentReceived().Round(1),
		Priority:         n.Priority.String(),
		Notes:            n.Notes,
		Active:           n.Active,
		CreatedAt:        n.CreatedAt,
	}
}

// ToOrganizationResponse converts a domain organization to its response form
func ToOrganizationResponse(o *charity.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:                 o.ID,
		Name:               o.Name,
		RegistrationNumber: o.RegistrationNumber,
		Description:        o.Description,
		Address:            o.Address,
		ContactPhone:       o.ContactPhone,
		ContactEmail:       o.ContactEmail,
		Responsible:        o.Responsible,
		Active:             o.Active,
		CreatedAt:          o.CreatedAt,
	}
}
