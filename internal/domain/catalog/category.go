package catalog

import (
	"strings"
	"time"

	"github.com/alimenta/backend/internal/domain/shared"
)

// FoodCategory groups foods for browsing and filtering
type FoodCategory struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewFoodCategory creates a new food category
func NewFoodCategory(name, description string) (*FoodCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 100 characters")
	}
	return &FoodCategory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}, nil
}

// Rename changes the category name
func (c *FoodCategory) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	return nil
}
