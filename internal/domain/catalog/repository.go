package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
)

// ProductCategoryRepository defines the interface for category persistence
type ProductCategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductCategory, error)
	FindByName(ctx context.Context, name string) (*ProductCategory, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductCategory, error)
	FindActive(ctx context.Context) ([]ProductCategory, error)
	Save(ctx context.Context, category *ProductCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// RawMaterialRepository defines the interface for raw material persistence
type RawMaterialRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RawMaterial, error)
	FindByName(ctx context.Context, name string) (*RawMaterial, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]RawMaterial, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]RawMaterial, error)
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, filter shared.Filter) ([]RawMaterial, error)
	Save(ctx context.Context, material *RawMaterial) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// CustomSKURepository defines the interface for the SKU registry
type CustomSKURepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomSKU, error)
	FindBySKU(ctx context.Context, sku string) (*CustomSKU, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]CustomSKU, error)
	Save(ctx context.Context, sku *CustomSKU) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
