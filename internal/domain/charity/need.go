package charity

import (
	"strings"
	"time"

	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Priority represents the urgency of a need
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// IsValid checks if the priority is a known Priority
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// String returns the string representation of Priority
func (p Priority) String() string {
	return string(p)
}

// rank orders priorities for display sorting (urgent first)
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Need is an organization's open request for a quantity of a specific food.
// At most one active need may exist per (organization, food) pair.
//
// ReceivedQuantity only grows: donation credits are never reversed, even when
// a credited donation is later cancelled. Overflow past the target is not
// rejected; the need is deactivated instead.
type Need struct {
	shared.BaseAggregateRoot
	OrganizationID   uuid.UUID
	FoodID           uuid.UUID
	TargetQuantity   decimal.Decimal
	ReceivedQuantity decimal.Decimal
	Priority         Priority
	Notes            string
	Active           bool
}

// NewNeed creates a new active need with a zero received quantity
func NewNeed(organizationID, foodID uuid.UUID, target decimal.Decimal, priority Priority, notes string) (*Need, error) {
	if organizationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORGANIZATION", "Need must belong to an organization")
	}
	if foodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FOOD", "Need must reference a food")
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Target quantity must be greater than zero")
	}
	if !priority.IsValid() {
		return nil, shared.NewDomainError("INVALID_PRIORITY", "Unknown priority")
	}

	return &Need{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrganizationID:    organizationID,
		FoodID:            foodID,
		TargetQuantity:    target,
		ReceivedQuantity:  decimal.Zero,
		Priority:          priority,
		Notes:             strings.TrimSpace(notes),
		Active:            true,
	}, nil
}

// Missing returns how much is still needed, never negative
func (n *Need) Missing() decimal.Decimal {
	missing := n.TargetQuantity.Sub(n.ReceivedQuantity)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

// PercentReceived returns received/target as a percentage, 0 if target <= 0
func (n *Need) PercentReceived() decimal.Decimal {
	if n.TargetQuantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return n.ReceivedQuantity.Div(n.TargetQuantity).Mul(decimal.NewFromInt(100))
}

// Completed reports whether the target has been met
func (n *Need) Completed() bool {
	return n.ReceivedQuantity.GreaterThanOrEqual(n.TargetQuantity)
}

// Credit adds a confirmed donation quantity to the received total and
// deactivates the need once the target is met. Returns true when the target
// was crossed by this credit (the "goal reached" moment); later credits on an
// already-completed need return false.
func (n *Need) Credit(quantity decimal.Decimal) (bool, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return false, shared.NewDomainError("INVALID_QUANTITY", "Credit quantity must be greater than zero")
	}

	wasCompleted := n.Completed()
	n.ReceivedQuantity = n.ReceivedQuantity.Add(quantity)
	n.UpdatedAt = time.Now()
	n.IncrementVersion()

	if n.Completed() {
		n.Active = false
		return !wasCompleted, nil
	}
	return false, nil
}

// UpdateDetails changes target, priority, notes and active flag. The target
// may not drop below the quantity already received.
func (n *Need) UpdateDetails(target decimal.Decimal, priority Priority, notes string, active bool) error {
	if target.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Target quantity must be greater than zero")
	}
	if target.LessThan(n.ReceivedQuantity) {
		return shared.NewDomainError("TARGET_BELOW_RECEIVED", "Target quantity cannot be less than the quantity already received")
	}
	if !priority.IsValid() {
		return shared.NewDomainError("INVALID_PRIORITY", "Unknown priority")
	}

	n.TargetQuantity = target
	n.Priority = priority
	n.Notes = strings.TrimSpace(notes)
	n.Active = active
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
	return nil
}

// Deactivate closes the need. Idempotent.
func (n *Need) Deactivate() {
	if !n.Active {
		return
	}
	n.Active = false
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
}
