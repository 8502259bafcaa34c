package persistence

import (
	"context"
	"errors"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFoodCategoryRepository implements FoodCategoryRepository using GORM
type GormFoodCategoryRepository struct {
	db *gorm.DB
}

// NewGormFoodCategoryRepository creates a new GormFoodCategoryRepository
func NewGormFoodCategoryRepository(db *gorm.DB) *GormFoodCategoryRepository {
	return &GormFoodCategoryRepository{db: db}
}

// FindByID finds a category by ID
func (r *GormFoodCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FoodCategory, error) {
	var category catalog.FoodCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByName finds a category by exact name
func (r *GormFoodCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.FoodCategory, error) {
	var category catalog.FoodCategory
	if err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns all categories ordered by name
func (r *GormFoodCategoryRepository) FindAll(ctx context.Context) ([]catalog.FoodCategory, error) {
	var categories []catalog.FoodCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Count counts all categories
func (r *GormFoodCategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.FoodCategory{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a category
func (r *GormFoodCategoryRepository) Save(ctx context.Context, category *catalog.FoodCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// GormFoodRepository implements FoodRepository using GORM
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GormFoodRepository
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// FindByID finds a food by ID
func (r *GormFoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Food, error) {
	var food catalog.Food
	if err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

// FindAll returns all foods ordered by name
func (r *GormFoodRepository) FindAll(ctx context.Context) ([]catalog.Food, error) {
	var foods []catalog.Food
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// FindByCategory returns foods of a category ordered by name
func (r *GormFoodRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Food, error) {
	var foods []catalog.Food
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

// Count counts all foods
func (r *GormFoodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Food{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a food
func (r *GormFoodRepository) Save(ctx context.Context, food *catalog.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

var (
	_ catalog.FoodCategoryRepository = (*GormFoodCategoryRepository)(nil)
	_ catalog.FoodRepository         = (*GormFoodRepository)(nil)
)
