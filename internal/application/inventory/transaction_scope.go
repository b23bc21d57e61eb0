package inventory

import (
	"context"

	"github.com/blendworks/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and are committed or
// rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
//
// InventoryMovement rows are append-only and always written in the same
// transaction as the stock level change they record, so the ledger stays
// reconcilable with the mutable level.
type TransactionalRepositories interface {
	// ItemRepo returns the inventory item repository scoped to the current transaction
	ItemRepo() inventory.InventoryItemRepository
	// MovementRepo returns the movement ledger repository scoped to the current transaction
	MovementRepo() inventory.InventoryMovementRepository
	// ReceiptRepo returns the stock receiving repository scoped to the current transaction
	ReceiptRepo() inventory.StockReceiptRepository
	// WastageRepo returns the wastage repository scoped to the current transaction
	WastageRepo() inventory.WastageRecordRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	itemRepo     inventory.InventoryItemRepository
	movementRepo inventory.InventoryMovementRepository
	receiptRepo  inventory.StockReceiptRepository
	wastageRepo  inventory.WastageRecordRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	itemRepo inventory.InventoryItemRepository,
	movementRepo inventory.InventoryMovementRepository,
	receiptRepo inventory.StockReceiptRepository,
	wastageRepo inventory.WastageRecordRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		receiptRepo:  receiptRepo,
		wastageRepo:  wastageRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ItemRepo returns the inventory item repository.
func (s *NoOpTransactionScope) ItemRepo() inventory.InventoryItemRepository {
	return s.itemRepo
}

// MovementRepo returns the movement ledger repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.InventoryMovementRepository {
	return s.movementRepo
}

// ReceiptRepo returns the stock receiving repository.
func (s *NoOpTransactionScope) ReceiptRepo() inventory.StockReceiptRepository {
	return s.receiptRepo
}

// WastageRepo returns the wastage repository.
func (s *NoOpTransactionScope) WastageRepo() inventory.WastageRecordRepository {
	return s.wastageRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
