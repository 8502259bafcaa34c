package catalog

import (
	"context"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CatalogService handles food and category management. Writes are
// admin-only; reads back the food pickers on donor and organization pages.
type CatalogService struct {
	categoryRepo catalog.FoodCategoryRepository
	foodRepo     catalog.FoodRepository
	logger       *zap.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(categoryRepo catalog.FoodCategoryRepository, foodRepo catalog.FoodRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		foodRepo:     foodRepo,
		logger:       logger,
	}
}

// CreateCategory creates a food category with a unique name
func (s *CatalogService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if existing, err := s.categoryRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("CATEGORY_EXISTS", "A category with this name already exists")
	}

	category, err := catalog.NewFoodCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("Category created", zap.String("category_id", category.ID.String()), zap.String("name", category.Name))

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// ListCategories returns all food categories
func (s *CatalogService) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, ToCategoryResponse(&categories[i]))
	}
	return responses, nil
}

// CreateFood creates a food item, optionally attached to a category
func (s *CatalogService) CreateFood(ctx context.Context, req CreateFoodRequest) (*FoodResponse, error) {
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	food, err := catalog.NewFood(req.Name, req.CategoryID, req.Description, catalog.UnitOfMeasure(req.Unit))
	if err != nil {
		return nil, err
	}
	if err := s.foodRepo.Save(ctx, food); err != nil {
		return nil, err
	}

	s.logger.Info("Food created", zap.String("food_id", food.ID.String()), zap.String("name", food.Name))

	resp := ToFoodResponse(food)
	s.fillCategoryName(ctx, &resp)
	return &resp, nil
}

// UpdateFood edits a food item
func (s *CatalogService) UpdateFood(ctx context.Context, foodID uuid.UUID, req UpdateFoodRequest) (*FoodResponse, error) {
	food, err := s.foodRepo.FindByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := food.Update(req.Name, req.Description, req.CategoryID, catalog.UnitOfMeasure(req.Unit)); err != nil {
		return nil, err
	}
	if err := s.foodRepo.Save(ctx, food); err != nil {
		return nil, err
	}

	resp := ToFoodResponse(food)
	s.fillCategoryName(ctx, &resp)
	return &resp, nil
}

// ListFoods returns foods, optionally narrowed to a category
func (s *CatalogService) ListFoods(ctx context.Context, categoryID *uuid.UUID) ([]FoodResponse, error) {
	var (
		foods []catalog.Food
		err   error
	)
	if categoryID != nil {
		foods, err = s.foodRepo.FindByCategory(ctx, *categoryID)
	} else {
		foods, err = s.foodRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	categoryNames := make(map[uuid.UUID]string)
	responses := make([]FoodResponse, 0, len(foods))
	for i := range foods {
		resp := ToFoodResponse(&foods[i])
		if resp.CategoryID != nil {
			name, ok := categoryNames[*resp.CategoryID]
			if !ok {
				if category, err := s.categoryRepo.FindByID(ctx, *resp.CategoryID); err == nil {
					name = category.Name
				}
				categoryNames[*resp.CategoryID] = name
			}
			resp.CategoryName = name
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *CatalogService) fillCategoryName(ctx context.Context, resp *FoodResponse) {
	if resp.CategoryID == nil {
		return
	}
	if category, err := s.categoryRepo.FindByID(ctx, *resp.CategoryID); err == nil {
		resp.CategoryName = category.Name
	}
}
