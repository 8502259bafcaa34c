package charity

import (
	"strings"
	"time"

	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Organization is a charitable entity registered to receive food donations.
// It is owned by exactly one user with the ORGANIZATION role.
type Organization struct {
	shared.BaseAggregateRoot
	UserID             uuid.UUID
	Name               string
	RegistrationNumber string
	Description        string
	Address            string
	ContactPhone       string
	ContactEmail       string
	Responsible        string
	Active             bool
}

// NewOrganization creates a new active organization profile
func NewOrganization(userID uuid.UUID, name, registrationNumber string) (*Organization, error) {
	name = strings.TrimSpace(name)
	registrationNumber = strings.TrimSpace(registrationNumber)

	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Organization must belong to a user")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Organization name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Organization name cannot exceed 200 characters")
	}
	if registrationNumber == "" {
		return nil, shared.NewDomainError("INVALID_REGISTRATION", "Registration number cannot be empty")
	}

	return &Organization{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		UserID:             userID,
		Name:               name,
		RegistrationNumber: registrationNumber,
		Active:             true,
	}, nil
}

// SetContact updates the organization's public contact information
func (o *Organization) SetContact(description, address, phone, email, responsible string) {
	o.Description = strings.TrimSpace(description)
	o.Address = strings.TrimSpace(address)
	o.ContactPhone = strings.TrimSpace(phone)
	o.ContactEmail = strings.TrimSpace(email)
	o.Responsible = strings.TrimSpace(responsible)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Deactivate hides the organization from donor browsing. Idempotent.
func (o *Organization) Deactivate() {
	if !o.Active {
		return
	}
	o.Active = false
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Activate makes the organization visible to donors again. Idempotent.
func (o *Organization) Activate() {
	if o.Active {
		return
	}
	o.Active = true
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
