package persistence

import (
	"context"

	"gorm.io/gorm"

	appproduction "github.com/blendworks/backend/internal/application/production"
	domaininventory "github.com/blendworks/backend/internal/domain/inventory"
	domainproduction "github.com/blendworks/backend/internal/domain/production"
)

// GormProductionTransactionScope implements the production TransactionScope
// using GORM transactions. A batch save and its inventory effects commit as
// one unit.
type GormProductionTransactionScope struct {
	db *gorm.DB
}

// NewGormProductionTransactionScope creates a new GormProductionTransactionScope
func NewGormProductionTransactionScope(db *gorm.DB) *GormProductionTransactionScope {
	return &GormProductionTransactionScope{db: db}
}

// Execute runs the function within a database transaction
func (s *GormProductionTransactionScope) Execute(ctx context.Context, fn func(repos appproduction.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormProductionTxRepos{tx: tx})
	})
}

type gormProductionTxRepos struct {
	tx *gorm.DB
}

func (r *gormProductionTxRepos) BatchRepo() domainproduction.BatchRecordRepository {
	return NewGormBatchRecordRepository(r.tx)
}

func (r *gormProductionTxRepos) ItemRepo() domaininventory.InventoryItemRepository {
	return NewGormInventoryItemRepository(r.tx)
}

func (r *gormProductionTxRepos) MovementRepo() domaininventory.InventoryMovementRepository {
	return NewGormInventoryMovementRepository(r.tx)
}

// Ensure interface compliance
var _ appproduction.TransactionScope = (*GormProductionTransactionScope)(nil)
var _ appproduction.TransactionalRepositories = (*gormProductionTxRepos)(nil)
