package catalog

import (
	"time"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateCategoryRequest is the input for creating a food category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// CreateFoodRequest is the input for creating a food
type CreateFoodRequest struct {
	Name        string     `json:"name" binding:"required,max=200"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Description string     `json:"description" binding:"max=500"`
	Unit        string     `json:"unit" binding:"required"`
}

// UpdateFoodRequest is the input for editing a food
type UpdateFoodRequest struct {
	Name        string     `json:"name" binding:"required,max=200"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Description string     `json:"description" binding:"max=500"`
	Unit        string     `json:"unit" binding:"required"`
}

// CategoryResponse is the category representation returned to clients
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FoodResponse is the food representation returned to clients
type FoodResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName string     `json:"category_name,omitempty"`
	Description  string     `json:"description,omitempty"`
	Unit         string     `json:"unit"`
	UnitLabel    string     `json:"unit_label"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToCategoryResponse converts a domain category to its response form
func ToCategoryResponse(c *catalog.FoodCategory) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

// ToFoodResponse converts a domain food to its response form
func ToFoodResponse(f *catalog.Food) FoodResponse {
	return FoodResponse{
		ID:          f.ID,
		Name:        f.Name,
		CategoryID:  f.CategoryID,
		Description: f.Description,
		Unit:        f.Unit.String(),
		UnitLabel:   f.Unit.Label(),
		CreatedAt:   f.CreatedAt,
	}
}
