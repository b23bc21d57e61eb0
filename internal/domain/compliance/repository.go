package compliance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
)

// EquipmentRepository defines the interface for equipment persistence
type EquipmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Equipment, error)
	FindByName(ctx context.Context, name string) (*Equipment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Equipment, error)
	FindServiceDueBefore(ctx context.Context, cutoff time.Time) ([]Equipment, error)
	Save(ctx context.Context, equipment *Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ComplianceDocumentRepository defines the interface for document persistence
type ComplianceDocumentRepository interface {
	// FindByID finds a document by its ID, including its versions
	FindByID(ctx context.Context, id uuid.UUID) (*ComplianceDocument, error)

	// FindByTitle finds a document by its (unique) title
	FindByTitle(ctx context.Context, title string) (*ComplianceDocument, error)

	// FindAll finds documents matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]ComplianceDocument, error)

	// FindByCategory finds documents in a category
	FindByCategory(ctx context.Context, category DocumentCategory, filter shared.Filter) ([]ComplianceDocument, error)

	// FindReviewDueBefore finds active documents whose review date has passed
	FindReviewDueBefore(ctx context.Context, cutoff time.Time) ([]ComplianceDocument, error)

	// Save creates or updates a document together with its version rows
	Save(ctx context.Context, doc *ComplianceDocument) error

	// Delete deletes a document and its version rows
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts documents matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
