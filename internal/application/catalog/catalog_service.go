package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/catalog"
	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/shared"
)

// maxSKUGenerationAttempts bounds the retry loop when a generated SKU
// collides with a registered one
const maxSKUGenerationAttempts = 5

// CatalogService manages product categories, raw materials, and the SKU
// registry
type CatalogService struct {
	categoryRepo catalog.ProductCategoryRepository
	materialRepo catalog.RawMaterialRepository
	skuRepo      catalog.CustomSKURepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	categoryRepo catalog.ProductCategoryRepository,
	materialRepo catalog.RawMaterialRepository,
	skuRepo catalog.CustomSKURepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		materialRepo: materialRepo,
		skuRepo:      skuRepo,
	}
}

// CreateCategory creates a product category
func (s *CatalogService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("checking category name: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_CATEGORY_NAME", "A category with this name already exists")
	}

	category, err := catalog.NewProductCategory(req.Name)
	if err != nil {
		return nil, err
	}
	category.Description = req.Description
	if req.SortOrder != 0 {
		category.SetSortOrder(req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// UpdateCategory updates a product category
func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if err := category.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if req.SortOrder != nil {
		category.SetSortOrder(*req.SortOrder)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// ListCategories retrieves categories with filtering and pagination
func (s *CatalogService) ListCategories(ctx context.Context, filter ListFilter) (*shared.Paginated[CategoryResponse], error) {
	domainFilter := toDomainFilter(filter)

	categories, err := s.categoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.categoryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToCategoryResponses(categories), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// DeactivateCategory retires a category from selection lists
func (s *CatalogService) DeactivateCategory(ctx context.Context, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}
	if err := category.Deactivate(); err != nil {
		return err
	}
	return s.categoryRepo.Save(ctx, category)
}

// CreateRawMaterial registers a raw material
func (s *CatalogService) CreateRawMaterial(ctx context.Context, req CreateRawMaterialRequest) (*RawMaterialResponse, error) {
	exists, err := s.materialRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("checking material name: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_MATERIAL_NAME", "A raw material with this name already exists")
	}

	material, err := catalog.NewRawMaterial(req.Name, req.Unit, req.UnitCost)
	if err != nil {
		return nil, err
	}
	if req.SupplierID != nil {
		material.AssignSupplier(*req.SupplierID)
	}
	if req.IsAllergen {
		material.MarkAllergen(true)
	}
	material.CountryCode = req.CountryCode

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// UpdateRawMaterial updates a raw material. A cost change affects derived
// product costing immediately since costing reads current costs.
func (s *CatalogService) UpdateRawMaterial(ctx context.Context, materialID uuid.UUID, req UpdateRawMaterialRequest) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := material.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.UnitCost != nil {
		if err := material.SetUnitCost(*req.UnitCost); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != nil {
		material.AssignSupplier(*req.SupplierID)
	}
	if req.IsAllergen != nil {
		material.MarkAllergen(*req.IsAllergen)
	}

	if err := s.materialRepo.Save(ctx, material); err != nil {
		return nil, err
	}

	response := ToRawMaterialResponse(material)
	return &response, nil
}

// GetRawMaterial retrieves a raw material by ID
func (s *CatalogService) GetRawMaterial(ctx context.Context, materialID uuid.UUID) (*RawMaterialResponse, error) {
	material, err := s.materialRepo.FindByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	response := ToRawMaterialResponse(material)
	return &response, nil
}

// ListRawMaterials retrieves raw materials with filtering and pagination
func (s *CatalogService) ListRawMaterials(ctx context.Context, filter ListFilter) (*shared.Paginated[RawMaterialResponse], error) {
	domainFilter := toDomainFilter(filter)

	materials, err := s.materialRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.materialRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToRawMaterialResponses(materials), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// RegisterSKU registers a manually chosen SKU, enforcing uniqueness
func (s *CatalogService) RegisterSKU(ctx context.Context, req RegisterSKURequest) (*SKUResponse, error) {
	sku, err := catalog.NewCustomSKU(req.SKU, req.ProductName)
	if err != nil {
		return nil, err
	}

	exists, err := s.skuRepo.ExistsBySKU(ctx, sku.SKU)
	if err != nil {
		return nil, fmt.Errorf("checking sku: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_SKU", "This SKU is already registered")
	}

	if err := s.skuRepo.Save(ctx, sku); err != nil {
		return nil, err
	}

	response := ToSKUResponse(sku)
	return &response, nil
}

// GenerateSKU generates and registers a SKU for a product, retrying on the
// rare clash with an existing registration
func (s *CatalogService) GenerateSKU(ctx context.Context, productName, category string) (*SKUResponse, error) {
	for attempt := 0; attempt < maxSKUGenerationAttempts; attempt++ {
		candidate := inventory.GenerateSKU(category)

		exists, err := s.skuRepo.ExistsBySKU(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("checking sku: %w", err)
		}
		if exists {
			continue
		}

		sku, err := catalog.NewGeneratedSKU(candidate, productName)
		if err != nil {
			return nil, err
		}
		if err := s.skuRepo.Save(ctx, sku); err != nil {
			return nil, err
		}

		response := ToSKUResponse(sku)
		return &response, nil
	}
	return nil, shared.NewDomainError("SKU_GENERATION_FAILED", "Could not generate a unique SKU")
}

// ListSKUs retrieves registered SKUs with pagination
func (s *CatalogService) ListSKUs(ctx context.Context, filter ListFilter) (*shared.Paginated[SKUResponse], error) {
	domainFilter := toDomainFilter(filter)

	skus, err := s.skuRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.skuRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]SKUResponse, len(skus))
	for i := range skus {
		responses[i] = ToSKUResponse(&skus[i])
	}
	page := shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
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
