package production

import (
	"context"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/production"
)

// TransactionScope provides transactional access to the repositories a batch
// save touches. A batch write spans the record itself, its ingredient rows,
// the affected inventory items, and their ledger movements; all of it commits
// or rolls back as one unit.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// BatchRepo returns the batch record repository scoped to the current transaction
	BatchRepo() production.BatchRecordRepository
	// ItemRepo returns the inventory item repository scoped to the current transaction
	ItemRepo() inventory.InventoryItemRepository
	// MovementRepo returns the movement ledger repository scoped to the current transaction
	MovementRepo() inventory.InventoryMovementRepository
}

// NoOpTransactionScope is a transaction scope without real transactions.
// Useful for tests.
type NoOpTransactionScope struct {
	batchRepo    production.BatchRecordRepository
	itemRepo     inventory.InventoryItemRepository
	movementRepo inventory.InventoryMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	batchRepo production.BatchRecordRepository,
	itemRepo inventory.InventoryItemRepository,
	movementRepo inventory.InventoryMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		batchRepo:    batchRepo,
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// BatchRepo returns the batch record repository.
func (s *NoOpTransactionScope) BatchRepo() production.BatchRecordRepository {
	return s.batchRepo
}

// ItemRepo returns the inventory item repository.
func (s *NoOpTransactionScope) ItemRepo() inventory.InventoryItemRepository {
	return s.itemRepo
}

// MovementRepo returns the movement ledger repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.InventoryMovementRepository {
	return s.movementRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
