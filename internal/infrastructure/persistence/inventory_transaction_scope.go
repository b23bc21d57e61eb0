package persistence

import (
	"context"

	"gorm.io/gorm"

	appinventory "github.com/blendworks/backend/internal/application/inventory"
	domaininventory "github.com/blendworks/backend/internal/domain/inventory"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions.
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the function within a database transaction. Repositories
// handed to the function all write through the same transaction handle.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinventory.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormInventoryTxRepos{tx: tx})
	})
}

type gormInventoryTxRepos struct {
	tx *gorm.DB
}

func (r *gormInventoryTxRepos) ItemRepo() domaininventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

func (r *gormInventoryTxRepos) MovementRepo() domaininventory.InventoryMovementRepository {
	return NewGormInventoryMovementRepository(r.tx)
}

func (r *gormInventoryTxRepos) ReceiptRepo() domaininventory.StockReceiptRepository {
	return NewGormStockReceiptRepository(r.tx)
}

func (r *gormInventoryTxRepos) WastageRepo() domaininventory.WastageRecordRepository {
	return NewGormWastageRecordRepository(r.tx)
}

// Ensure interface compliance
var _ appinventory.TransactionScope = (*GormInventoryTransactionScope)(nil)
var _ appinventory.TransactionalRepositories = (*gormInventoryTxRepos)(nil)
