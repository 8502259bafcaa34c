package catalog

import (
	"strings"
	"time"

	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UnitOfMeasure is the closed set of units a food can be donated in
type UnitOfMeasure string

const (
	UnitKilogram   UnitOfMeasure = "kg"
	UnitGram       UnitOfMeasure = "g"
	UnitLiter      UnitOfMeasure = "l"
	UnitMilliliter UnitOfMeasure = "ml"
	UnitPiece      UnitOfMeasure = "unit"
	UnitBox        UnitOfMeasure = "box"
	UnitPack       UnitOfMeasure = "pack"
)

// IsValid checks if the unit is a known UnitOfMeasure
func (u UnitOfMeasure) IsValid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPiece, UnitBox, UnitPack:
		return true
	}
	return false
}

// String returns the string representation of UnitOfMeasure
func (u UnitOfMeasure) String() string {
	return string(u)
}

// Label returns the human-readable unit name used in messages
func (u UnitOfMeasure) Label() string {
	switch u {
	case UnitKilogram:
		return "kilograms"
	case UnitGram:
		return "grams"
	case UnitLiter:
		return "liters"
	case UnitMilliliter:
		return "milliliters"
	case UnitPiece:
		return "units"
	case UnitBox:
		return "boxes"
	case UnitPack:
		return "packs"
	}
	return string(u)
}

// Food is an item organizations can declare needs for and donors can pledge
type Food struct {
	shared.BaseEntity
	Name        string
	CategoryID  *uuid.UUID
	Description string
	Unit        UnitOfMeasure
}

// NewFood creates a new food item
func NewFood(name string, categoryID *uuid.UUID, description string, unit UnitOfMeasure) (*Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Food name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Food name cannot exceed 200 characters")
	}
	if !unit.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unknown unit of measure")
	}
	return &Food{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		CategoryID:  categoryID,
		Description: strings.TrimSpace(description),
		Unit:        unit,
	}, nil
}

// Update changes the food's mutable attributes
func (f *Food) Update(name, description string, categoryID *uuid.UUID, unit UnitOfMeasure) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Food name cannot be empty")
	}
	if !unit.IsValid() {
		return shared.NewDomainError("INVALID_UNIT", "Unknown unit of measure")
	}
	f.Name = name
	f.Description = strings.TrimSpace(description)
	f.CategoryID = categoryID
	f.Unit = unit
	f.UpdatedAt = time.Now()
	return nil
}
