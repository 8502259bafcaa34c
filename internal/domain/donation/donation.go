package donation

import (
	"strings"
	"time"

	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationStatus represents the lifecycle state of a donation
type DonationStatus string

const (
	StatusPending   DonationStatus = "PENDING"
	StatusConfirmed DonationStatus = "CONFIRMED"
	StatusInTransit DonationStatus = "IN_TRANSIT"
	StatusDelivered DonationStatus = "DELIVERED"
	StatusCancelled DonationStatus = "CANCELLED"
)

// IsValid checks if the status is a known DonationStatus
func (s DonationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of DonationStatus
func (s DonationStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the new status is allowed
func (s DonationStatus) CanTransitionTo(newStatus DonationStatus) bool {
	switch s {
	case StatusPending:
		return newStatus == StatusConfirmed || newStatus == StatusDelivered || newStatus == StatusCancelled
	case StatusConfirmed:
		return newStatus == StatusInTransit || newStatus == StatusDelivered || newStatus == StatusCancelled
	case StatusInTransit:
		return newStatus == StatusDelivered || newStatus == StatusCancelled
	case StatusDelivered, StatusCancelled:
		return false
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s DonationStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CountsAsReceived reports whether the status represents food the
// organization can count on. Used when crediting needs.
func (s DonationStatus) CountsAsReceived() bool {
	return s == StatusConfirmed || s == StatusDelivered
}

// Donation is a donor's pledge of a quantity of food against an
// organization's need. NeedID pins the need the pledge was made for, so a
// later need for the same food never absorbs this donation's credit.
type Donation struct {
	shared.BaseAggregateRoot
	DonorID        uuid.UUID
	OrganizationID uuid.UUID
	FoodID         uuid.UUID
	NeedID         uuid.UUID
	Quantity       decimal.Decimal
	Status         DonationStatus
	Message        string
	// Credited marks that this donation's quantity was added to its need's
	// received total. Set at most once.
	Credited    bool
	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// NewDonation creates a pending donation against a need
func NewDonation(donorID, organizationID, foodID, needID uuid.UUID, quantity decimal.Decimal, message string) (*Donation, error) {
	if donorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DONOR", "Donation must have a donor")
	}
	if organizationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORGANIZATION", "Donation must target an organization")
	}
	if foodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FOOD", "Donation must reference a food")
	}
	if needID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_NEED", "Donation must be pledged against a need")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Donation quantity must be greater than zero")
	}

	return &Donation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		DonorID:           donorID,
		OrganizationID:    organizationID,
		FoodID:            foodID,
		NeedID:            needID,
		Quantity:          quantity,
		Status:            StatusPending,
		Message:           strings.TrimSpace(message),
	}, nil
}

// ChangeStatus moves the donation along its lifecycle. Returns true when
// this transition is the one that makes the donation count as received
// (leaving PENDING for CONFIRMED or DELIVERED) and the donation has not been
// credited before; the caller must then credit the need in the same
// transaction and call MarkCredited.
func (d *Donation) ChangeStatus(newStatus DonationStatus) (bool, error) {
	if !newStatus.IsValid() {
		return false, shared.NewDomainError("INVALID_STATUS", "Unknown donation status")
	}
	if !d.Status.CanTransitionTo(newStatus) {
		return false, shared.ErrInvalidTransition
	}

	creditable := d.Status == StatusPending && newStatus.CountsAsReceived() && !d.Credited

	now := time.Now()
	switch newStatus {
	case StatusConfirmed:
		d.ConfirmedAt = &now
	case StatusDelivered:
		d.DeliveredAt = &now
	case StatusCancelled:
		d.CancelledAt = &now
	}

	d.Status = newStatus
	d.UpdatedAt = now
	d.IncrementVersion()
	return creditable, nil
}

// MarkCredited records that the need was credited for this donation
func (d *Donation) MarkCredited() {
	d.Credited = true
}

// Cancel is a convenience for the donor-side cancel action
func (d *Donation) Cancel() error {
	_, err := d.ChangeStatus(StatusCancelled)
	return err
}
