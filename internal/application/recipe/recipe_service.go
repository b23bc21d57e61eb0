package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/catalog"
	"github.com/blendworks/backend/internal/domain/recipe"
	"github.com/blendworks/backend/internal/domain/shared"
)

// RecipeService manages recipes, final products, and their derived costing.
// Costing is computed on every read from current raw-material costs; nothing
// derived is ever written back to storage.
type RecipeService struct {
	recipeRepo   recipe.RecipeRepository
	productRepo  recipe.FinalProductRepository
	materialRepo catalog.RawMaterialRepository
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(
	recipeRepo recipe.RecipeRepository,
	productRepo recipe.FinalProductRepository,
	materialRepo catalog.RawMaterialRepository,
) *RecipeService {
	return &RecipeService{
		recipeRepo:   recipeRepo,
		productRepo:  productRepo,
		materialRepo: materialRepo,
	}
}

// CreateRecipe creates a recipe. Each line snapshots the raw material's
// current unit cost; the snapshot is a fallback for costing, not the truth.
func (s *RecipeService) CreateRecipe(ctx context.Context, req CreateRecipeRequest) (*RecipeResponse, error) {
	if _, err := s.recipeRepo.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_RECIPE_NAME", "A recipe with this name already exists")
	} else if !shared.IsNotFound(err) {
		return nil, err
	}

	r, err := recipe.NewRecipe(req.Name)
	if err != nil {
		return nil, err
	}
	r.Notes = req.Notes

	if err := s.addItems(ctx, r, req.Items); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	response := ToRecipeResponse(r)
	return &response, nil
}

// UpdateRecipe replaces a recipe's name, notes, and lines
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipeID uuid.UUID, req UpdateRecipeRequest) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := r.Rename(req.Name); err != nil {
		return nil, err
	}
	r.Notes = req.Notes

	items, err := s.buildItems(ctx, r.ID, req.Items)
	if err != nil {
		return nil, err
	}
	if err := r.ReplaceItems(items); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.SaveWithLock(ctx, r); err != nil {
		return nil, err
	}

	response := ToRecipeResponse(r)
	return &response, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	response := ToRecipeResponse(r)
	return &response, nil
}

// ListRecipes retrieves recipes with filtering and pagination
func (s *RecipeService) ListRecipes(ctx context.Context, filter ListFilter) (*shared.Paginated[RecipeResponse], error) {
	domainFilter := toDomainFilter(filter)

	var recipes []recipe.Recipe
	var err error
	if filter.ActiveOnly != nil && *filter.ActiveOnly {
		recipes, err = s.recipeRepo.FindActive(ctx, domainFilter)
	} else {
		recipes, err = s.recipeRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.recipeRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToRecipeResponses(recipes), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// DeactivateRecipe retires a recipe from production use
func (s *RecipeService) DeactivateRecipe(ctx context.Context, recipeID uuid.UUID) error {
	r, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return err
	}
	r.Deactivate()
	return s.recipeRepo.SaveWithLock(ctx, r)
}

// CostRecipe prices a recipe at current raw-material costs
func (s *RecipeService) CostRecipe(ctx context.Context, recipeID uuid.UUID, sellingPrice decimal.Decimal) (*recipe.Costing, error) {
	r, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	return s.costRecipe(ctx, r, sellingPrice)
}

// CreateFinalProduct registers a sellable product built from a recipe
func (s *RecipeService) CreateFinalProduct(ctx context.Context, req CreateFinalProductRequest) (*FinalProductResponse, error) {
	if _, err := s.productRepo.FindByName(ctx, req.Name); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_PRODUCT_NAME", "A final product with this name already exists")
	} else if !shared.IsNotFound(err) {
		return nil, err
	}

	r, err := s.recipeRepo.FindByID(ctx, req.RecipeID)
	if err != nil {
		return nil, fmt.Errorf("resolving recipe: %w", err)
	}

	product, err := recipe.NewFinalProduct(req.Name, r.ID, req.SellingPrice)
	if err != nil {
		return nil, err
	}
	if req.BagSizeGrams.IsPositive() {
		if err := product.SetBagSize(req.BagSizeGrams); err != nil {
			return nil, err
		}
	}
	product.Category = req.Category

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	costing, err := s.costRecipe(ctx, r, product.UnitSellingPrice)
	if err != nil {
		return nil, err
	}
	response := ToFinalProductResponse(product, costing)
	return &response, nil
}

// UpdateFinalProduct updates pricing or the recipe link
func (s *RecipeService) UpdateFinalProduct(ctx context.Context, productID uuid.UUID, req UpdateFinalProductRequest) (*FinalProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.SellingPrice != nil {
		if err := product.SetSellingPrice(*req.SellingPrice); err != nil {
			return nil, err
		}
	}
	if req.BagSizeGrams != nil {
		if err := product.SetBagSize(*req.BagSizeGrams); err != nil {
			return nil, err
		}
	}
	if req.RecipeID != nil {
		if _, err := s.recipeRepo.FindByID(ctx, *req.RecipeID); err != nil {
			return nil, fmt.Errorf("resolving recipe: %w", err)
		}
		if err := product.SwitchRecipe(*req.RecipeID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	return s.respondWithCosting(ctx, product)
}

// GetFinalProduct retrieves a final product with its derived costing
func (s *RecipeService) GetFinalProduct(ctx context.Context, productID uuid.UUID) (*FinalProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.respondWithCosting(ctx, product)
}

// ListFinalProducts retrieves final products with derived costing per row
func (s *RecipeService) ListFinalProducts(ctx context.Context, filter ListFilter) (*shared.Paginated[FinalProductResponse], error) {
	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]FinalProductResponse, 0, len(products))
	for i := range products {
		resp, err := s.respondWithCosting(ctx, &products[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// DeactivateFinalProduct retires a final product
func (s *RecipeService) DeactivateFinalProduct(ctx context.Context, productID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	product.Deactivate()
	return s.productRepo.Save(ctx, product)
}

func (s *RecipeService) respondWithCosting(ctx context.Context, product *recipe.FinalProduct) (*FinalProductResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, product.RecipeID)
	if err != nil {
		if shared.IsNotFound(err) {
			// A product whose recipe was deleted still reads, just unpriced
			response := ToFinalProductResponse(product, nil)
			return &response, nil
		}
		return nil, err
	}

	costing, err := s.costRecipe(ctx, r, product.UnitSellingPrice)
	if err != nil {
		return nil, err
	}
	response := ToFinalProductResponse(product, costing)
	return &response, nil
}

func (s *RecipeService) costRecipe(ctx context.Context, r *recipe.Recipe, sellingPrice decimal.Decimal) (*recipe.Costing, error) {
	currentCosts, err := s.currentCosts(ctx, r.Items)
	if err != nil {
		return nil, err
	}
	lines := recipe.PriceLines(r.Items, currentCosts)
	costing := recipe.Cost(lines, sellingPrice)
	return &costing, nil
}

// currentCosts loads the current unit cost per raw material referenced by
// the recipe lines, keyed by material ID
func (s *RecipeService) currentCosts(ctx context.Context, items []recipe.RecipeItem) (map[string]decimal.Decimal, error) {
	if len(items) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for i := range items {
		if !seen[items[i].RawMaterialID] {
			seen[items[i].RawMaterialID] = true
			ids = append(ids, items[i].RawMaterialID)
		}
	}

	materials, err := s.materialRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	costs := make(map[string]decimal.Decimal, len(materials))
	for i := range materials {
		costs[materials[i].ID.String()] = materials[i].UnitCost
	}
	return costs, nil
}

func (s *RecipeService) addItems(ctx context.Context, r *recipe.Recipe, reqs []RecipeItemRequest) error {
	for _, item := range reqs {
		material, err := s.materialRepo.FindByID(ctx, item.RawMaterialID)
		if err != nil {
			return fmt.Errorf("resolving raw material: %w", err)
		}
		unit := item.Unit
		if unit == "" {
			unit = material.Unit
		}
		if err := r.AddItem(material.ID, material.Name, item.Quantity, material.UnitCost, unit); err != nil {
			return err
		}
	}
	return nil
}

func (s *RecipeService) buildItems(ctx context.Context, recipeID uuid.UUID, reqs []RecipeItemRequest) ([]recipe.RecipeItem, error) {
	items := make([]recipe.RecipeItem, 0, len(reqs))
	for _, req := range reqs {
		material, err := s.materialRepo.FindByID(ctx, req.RawMaterialID)
		if err != nil {
			return nil, fmt.Errorf("resolving raw material: %w", err)
		}
		unit := req.Unit
		if unit == "" {
			unit = material.Unit
		}
		items = append(items, recipe.RecipeItem{
			RecipeID:         recipeID,
			RawMaterialID:    material.ID,
			RawMaterialName:  material.Name,
			Quantity:         req.Quantity,
			Unit:             unit,
			UnitCostSnapshot: material.UnitCost,
		})
	}
	return items, nil
}

func toDomainFilter(filter ListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	return domainFilter
}
