package catalog

import (
	"context"

	"github.com/google/uuid"
)

// FoodCategoryRepository defines persistence operations for food categories
type FoodCategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FoodCategory, error)
	FindByName(ctx context.Context, name string) (*FoodCategory, error)
	FindAll(ctx context.Context) ([]FoodCategory, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, category *FoodCategory) error
}

// FoodRepository defines persistence operations for foods
type FoodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Food, error)
	FindAll(ctx context.Context) ([]Food, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Food, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, food *Food) error
}
