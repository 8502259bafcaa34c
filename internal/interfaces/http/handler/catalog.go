package handler

import (
	appcatalog "github.com/alimenta/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the food catalog. Reads back the pickers on donor
// and organization pages; writes are admin-only and routed accordingly.
type CatalogHandler struct {
	BaseHandler
	catalogService *appcatalog.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *appcatalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListCategories handles GET /catalog/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// CreateCategory handles POST /admin/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req appcatalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListFoods handles GET /catalog/foods, optionally narrowed by the category
// query parameter
func (h *CatalogHandler) ListFoods(c *gin.Context) {
	var categoryID *uuid.UUID
	if raw := c.Query("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid category ID")
			return
		}
		categoryID = &id
	}

	foods, err := h.catalogService.ListFoods(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, foods)
}

// CreateFood handles POST /admin/foods
func (h *CatalogHandler) CreateFood(c *gin.Context) {
	var req appcatalog.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.catalogService.CreateFood(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// UpdateFood handles POST /admin/foods/:id
func (h *CatalogHandler) UpdateFood(c *gin.Context) {
	foodID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid food ID")
		return
	}

	var req appcatalog.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.catalogService.UpdateFood(c.Request.Context(), foodID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
