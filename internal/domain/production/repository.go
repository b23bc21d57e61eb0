package production

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
)

// BatchRecordRepository defines the interface for batch record persistence
type BatchRecordRepository interface {
	// FindByID finds a batch record by its ID, including its ingredients
	FindByID(ctx context.Context, id uuid.UUID) (*BatchRecord, error)

	// FindByBatchNumber finds a batch record by its (unique) batch number
	FindByBatchNumber(ctx context.Context, batchNumber string) (*BatchRecord, error)

	// FindAll finds batch records matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]BatchRecord, error)

	// FindByProductName finds batch records for a product
	FindByProductName(ctx context.Context, productName string, filter shared.Filter) ([]BatchRecord, error)

	// FindByDateRange finds batch records within a date range
	FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]BatchRecord, error)

	// FindOpen finds batch records that have not been finished yet
	FindOpen(ctx context.Context, filter shared.Filter) ([]BatchRecord, error)

	// Save creates or updates a batch record together with its ingredient rows
	Save(ctx context.Context, batch *BatchRecord) error

	// SaveWithLock saves with optimistic locking (checks version)
	SaveWithLock(ctx context.Context, batch *BatchRecord) error

	// ReplaceIngredients swaps the stored ingredient rows for the batch
	ReplaceIngredients(ctx context.Context, batchID uuid.UUID, ingredients []BatchIngredient) error

	// Delete deletes a batch record and its ingredient rows
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts batch records matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByBatchNumber checks whether a batch number is already used
	ExistsByBatchNumber(ctx context.Context, batchNumber string) (bool, error)
}
