package handler

import (
	catalogapp "github.com/blendworks/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles categories, raw materials and SKU registry endpoints
type CatalogHandler struct {
	BaseHandler
	catalogService *catalogapp.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogService *catalogapp.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// bindListFilter binds and defaults the shared catalog list filter
func (h *CatalogHandler) bindListFilter(c *gin.Context) (catalogapp.ListFilter, bool) {
	var filter catalogapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return filter, false
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	return filter, true
}

// CreateCategory godoc
// @ID           createCategory
// @Summary      Create a product category
// @Description  Create a category for grouping inventory and final products
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateCategoryRequest true "Category details"
// @Success      201 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, category)
}

// UpdateCategory godoc
// @ID           updateCategory
// @Summary      Update a product category
// @Description  Rename a category or change its sort order
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body catalogapp.UpdateCategoryRequest true "Category details"
// @Success      200 {object} APIResponse[catalogapp.CategoryResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req catalogapp.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// ListCategories godoc
// @ID           listCategories
// @Summary      List product categories
// @Description  Retrieve product categories with pagination
// @Tags         catalog
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]catalogapp.CategoryResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	page, err := h.catalogService.ListCategories(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// DeactivateCategory godoc
// @ID           deactivateCategory
// @Summary      Deactivate a product category
// @Description  Mark a category inactive so new items can no longer use it
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/categories/{id} [delete]
func (h *CatalogHandler) DeactivateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	if err := h.catalogService.DeactivateCategory(c.Request.Context(), categoryID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateRawMaterial godoc
// @ID           createRawMaterial
// @Summary      Register a raw material
// @Description  Register an ingredient with its unit cost and allergen flag
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateRawMaterialRequest true "Raw material details"
// @Success      201 {object} APIResponse[catalogapp.RawMaterialResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/raw-materials [post]
func (h *CatalogHandler) CreateRawMaterial(c *gin.Context) {
	var req catalogapp.CreateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	material, err := h.catalogService.CreateRawMaterial(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, material)
}

// UpdateRawMaterial godoc
// @ID           updateRawMaterial
// @Summary      Update a raw material
// @Description  Update a raw material's name, unit cost, supplier or allergen flag
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Raw material ID" format(uuid)
// @Param        request body catalogapp.UpdateRawMaterialRequest true "Fields to update"
// @Success      200 {object} APIResponse[catalogapp.RawMaterialResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/raw-materials/{id} [put]
func (h *CatalogHandler) UpdateRawMaterial(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	var req catalogapp.UpdateRawMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	material, err := h.catalogService.UpdateRawMaterial(c.Request.Context(), materialID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, material)
}

// GetRawMaterial godoc
// @ID           getRawMaterial
// @Summary      Get a raw material
// @Description  Retrieve a raw material by ID
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Raw material ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.RawMaterialResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/raw-materials/{id} [get]
func (h *CatalogHandler) GetRawMaterial(c *gin.Context) {
	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid raw material ID format")
		return
	}

	material, err := h.catalogService.GetRawMaterial(c.Request.Context(), materialID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, material)
}

// ListRawMaterials godoc
// @ID           listRawMaterials
// @Summary      List raw materials
// @Description  Retrieve raw materials with pagination
// @Tags         catalog
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]catalogapp.RawMaterialResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/raw-materials [get]
func (h *CatalogHandler) ListRawMaterials(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	page, err := h.catalogService.ListRawMaterials(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// RegisterSKU godoc
// @ID           registerSKU
// @Summary      Register a custom SKU
// @Description  Register a manually chosen SKU for a product
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.RegisterSKURequest true "SKU details"
// @Success      201 {object} APIResponse[catalogapp.SKUResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/skus [post]
func (h *CatalogHandler) RegisterSKU(c *gin.Context) {
	var req catalogapp.RegisterSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sku, err := h.catalogService.RegisterSKU(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sku)
}

// GenerateSKU godoc
// @ID           generateSKU
// @Summary      Generate a SKU
// @Description  Generate and register a unique SKU from a product name and category
// @Tags         catalog
// @Produce      json
// @Param        product_name query string true "Product name"
// @Param        category query string false "Category"
// @Success      201 {object} APIResponse[catalogapp.SKUResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/skus/generate [post]
func (h *CatalogHandler) GenerateSKU(c *gin.Context) {
	productName := c.Query("product_name")
	if productName == "" {
		h.BadRequest(c, "Product name is required")
		return
	}

	sku, err := h.catalogService.GenerateSKU(c.Request.Context(), productName, c.Query("category"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sku)
}

// ListSKUs godoc
// @ID           listSKUs
// @Summary      List registered SKUs
// @Description  Retrieve registered SKUs with pagination
// @Tags         catalog
// @Produce      json
// @Param        search query string false "Search by SKU or product name"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]catalogapp.SKUResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /catalog/skus [get]
func (h *CatalogHandler) ListSKUs(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	page, err := h.catalogService.ListSKUs(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}
