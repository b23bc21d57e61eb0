package handler

import (
	recipeapp "github.com/blendworks/backend/internal/application/recipe"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecipeHandler handles recipe and final product API endpoints
type RecipeHandler struct {
	BaseHandler
	recipeService *recipeapp.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *recipeapp.RecipeService) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// CreateRecipe godoc
// @ID           createRecipe
// @Summary      Create a recipe
// @Description  Create a blend recipe with its ingredient lines
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        request body recipeapp.CreateRecipeRequest true "Recipe details"
// @Success      201 {object} APIResponse[recipeapp.RecipeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req recipeapp.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.recipeService.CreateRecipe(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, r)
}

// UpdateRecipe godoc
// @ID           updateRecipe
// @Summary      Update a recipe
// @Description  Replace a recipe's name and ingredient lines
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id path string true "Recipe ID" format(uuid)
// @Param        request body recipeapp.UpdateRecipeRequest true "Recipe details"
// @Success      200 {object} APIResponse[recipeapp.RecipeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	var req recipeapp.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	r, err := h.recipeService.UpdateRecipe(c.Request.Context(), recipeID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, r)
}

// GetRecipe godoc
// @ID           getRecipe
// @Summary      Get a recipe
// @Description  Retrieve a recipe with its ingredient lines
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID" format(uuid)
// @Success      200 {object} APIResponse[recipeapp.RecipeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	r, err := h.recipeService.GetRecipe(c.Request.Context(), recipeID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, r)
}

// ListRecipes godoc
// @ID           listRecipes
// @Summary      List recipes
// @Description  Retrieve recipes with filtering and pagination
// @Tags         recipes
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        active_only query boolean false "Only active recipes"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]recipeapp.RecipeResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var filter recipeapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	page, err := h.recipeService.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// DeactivateRecipe godoc
// @ID           deactivateRecipe
// @Summary      Deactivate a recipe
// @Description  Mark a recipe inactive so it can no longer back new products
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) DeactivateRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	if err := h.recipeService.DeactivateRecipe(c.Request.Context(), recipeID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CostRecipe godoc
// @ID           costRecipe
// @Summary      Cost a recipe
// @Description  Compute the recipe cost from current ingredient prices, with markup and margin for an optional selling price
// @Tags         recipes
// @Produce      json
// @Param        id path string true "Recipe ID" format(uuid)
// @Param        selling_price query number false "Selling price for markup/margin calculation"
// @Success      200 {object} APIResponse[recipe.Costing]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /recipes/{id}/costing [get]
func (h *RecipeHandler) CostRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	sellingPrice := decimal.Zero
	if raw := c.Query("selling_price"); raw != "" {
		sellingPrice, err = decimal.NewFromString(raw)
		if err != nil {
			h.BadRequest(c, "Invalid selling price")
			return
		}
	}

	costing, err := h.recipeService.CostRecipe(c.Request.Context(), recipeID, sellingPrice)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, costing)
}

// CreateFinalProduct godoc
// @ID           createFinalProduct
// @Summary      Register a final product
// @Description  Register a sellable product built from a recipe
// @Tags         final-products
// @Accept       json
// @Produce      json
// @Param        request body recipeapp.CreateFinalProductRequest true "Product details"
// @Success      201 {object} APIResponse[recipeapp.FinalProductResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /final-products [post]
func (h *RecipeHandler) CreateFinalProduct(c *gin.Context) {
	var req recipeapp.CreateFinalProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.recipeService.CreateFinalProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// UpdateFinalProduct godoc
// @ID           updateFinalProduct
// @Summary      Update a final product
// @Description  Update a final product's pricing or recipe link
// @Tags         final-products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body recipeapp.UpdateFinalProductRequest true "Fields to update"
// @Success      200 {object} APIResponse[recipeapp.FinalProductResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /final-products/{id} [put]
func (h *RecipeHandler) UpdateFinalProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req recipeapp.UpdateFinalProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	product, err := h.recipeService.UpdateFinalProduct(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// GetFinalProduct godoc
// @ID           getFinalProduct
// @Summary      Get a final product
// @Description  Retrieve a final product with costing computed from current ingredient prices
// @Tags         final-products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[recipeapp.FinalProductResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /final-products/{id} [get]
func (h *RecipeHandler) GetFinalProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	product, err := h.recipeService.GetFinalProduct(c.Request.Context(), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// ListFinalProducts godoc
// @ID           listFinalProducts
// @Summary      List final products
// @Description  Retrieve final products with costing, filtering and pagination
// @Tags         final-products
// @Produce      json
// @Param        search query string false "Search by name"
// @Param        active_only query boolean false "Only active products"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]recipeapp.FinalProductResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /final-products [get]
func (h *RecipeHandler) ListFinalProducts(c *gin.Context) {
	var filter recipeapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	page, err := h.recipeService.ListFinalProducts(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// DeactivateFinalProduct godoc
// @ID           deactivateFinalProduct
// @Summary      Deactivate a final product
// @Description  Mark a final product inactive so it can no longer be sold
// @Tags         final-products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /final-products/{id} [delete]
func (h *RecipeHandler) DeactivateFinalProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.recipeService.DeactivateFinalProduct(c.Request.Context(), productID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
