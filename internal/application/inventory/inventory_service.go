package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/shared"
)

// InventoryService handles stock levels and the movement ledger
type InventoryService struct {
	itemRepo         inventory.InventoryItemRepository
	movementRepo     inventory.InventoryMovementRepository
	receiptRepo      inventory.StockReceiptRepository
	wastageRepo      inventory.WastageRecordRepository
	blendRepo        inventory.TeaCoffeeStockRepository
	txScope          TransactionScope
	eventPublisher   shared.EventPublisher
	idempotencyStore shared.IdempotencyStore
	idempotencyCfg   shared.IdempotencyConfig
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	itemRepo inventory.InventoryItemRepository,
	movementRepo inventory.InventoryMovementRepository,
	receiptRepo inventory.StockReceiptRepository,
	wastageRepo inventory.WastageRecordRepository,
	blendRepo inventory.TeaCoffeeStockRepository,
	txScope TransactionScope,
) *InventoryService {
	return &InventoryService{
		itemRepo:       itemRepo,
		movementRepo:   movementRepo,
		receiptRepo:    receiptRepo,
		wastageRepo:    wastageRepo,
		blendRepo:      blendRepo,
		txScope:        txScope,
		idempotencyCfg: shared.DefaultIdempotencyConfig(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *InventoryService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetIdempotencyStore enables duplicate-request protection for adjustments
func (s *InventoryService) SetIdempotencyStore(store shared.IdempotencyStore, cfg shared.IdempotencyConfig) {
	s.idempotencyStore = store
	s.idempotencyCfg = cfg
}

// CreateItem registers a new inventory item. A SKU is generated when none is
// supplied. Optional initial stock is recorded as a receive movement.
func (s *InventoryService) CreateItem(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	exists, err := s.itemRepo.ExistsByProductName(ctx, req.ProductName)
	if err != nil {
		return nil, fmt.Errorf("checking product name: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_PRODUCT_NAME", "An item with this product name already exists")
	}

	sku := strings.TrimSpace(req.SKU)
	if sku == "" {
		sku, err = inventory.AllocateSKU(ctx, s.itemRepo, req.Category)
		if err != nil {
			return nil, err
		}
	}

	item, err := inventory.NewInventoryItem(req.ProductName, sku, req.Category, req.Unit)
	if err != nil {
		return nil, err
	}
	if req.UnitPrice.IsPositive() {
		if err := item.SetUnitPrice(req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.ReorderPoint.IsPositive() {
		if err := item.SetReorderPoint(req.ReorderPoint); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != nil {
		item.AssignSupplier(*req.SupplierID)
	}
	if req.IsFinalProduct {
		item.MarkFinalProduct()
	}

	var initialMovement *inventory.InventoryMovement
	if req.InitialStock.IsPositive() {
		initialMovement, err = item.Receive(req.InitialStock, inventory.ManualRef("initial stock", ""))
		if err != nil {
			return nil, err
		}
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ItemRepo().Save(ctx, item); err != nil {
			return err
		}
		if initialMovement != nil {
			return repos.MovementRepo().Create(ctx, initialMovement)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, item)
	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an inventory item by ID
func (s *InventoryService) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// GetByProductName retrieves an inventory item by product name
func (s *InventoryService) GetByProductName(ctx context.Context, productName string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByProductName(ctx, productName)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves inventory items with filtering and pagination
func (s *InventoryService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[ItemResponse], error) {
	domainFilter := toDomainFilter(filter)

	var items []inventory.InventoryItem
	var err error
	switch {
	case filter.BelowReorder != nil && *filter.BelowReorder:
		items, err = s.itemRepo.FindBelowReorderPoint(ctx, domainFilter)
	case filter.FinalProducts != nil && *filter.FinalProducts:
		items, err = s.itemRepo.FindFinalProducts(ctx, domainFilter)
	default:
		items, err = s.itemRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToItemResponses(items), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// UpdateItem updates editable item attributes
func (s *InventoryService) UpdateItem(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.UnitPrice != nil {
		if err := item.SetUnitPrice(*req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.ReorderPoint != nil {
		if err := item.SetReorderPoint(*req.ReorderPoint); err != nil {
			return nil, err
		}
	}
	if req.SupplierID != nil {
		item.AssignSupplier(*req.SupplierID)
	}

	if err := s.itemRepo.SaveWithLock(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// ReceiveStock books in a delivery. The item is created on first receipt of
// a new product name. Stock level, ledger movement, and the receiving log
// entry are written in one transaction.
func (s *InventoryService) ReceiveStock(ctx context.Context, req ReceiveStockRequest) (*MovementResponse, error) {
	if replay, replayed, err := s.replayedMovement(ctx, "receive", req.IdempotencyKey); err != nil {
		return nil, err
	} else if replayed {
		return replay, nil
	}

	item, err := s.getOrCreateItem(ctx, req.ProductName, req.Category, req.Unit)
	if err != nil {
		return nil, err
	}
	if req.SupplierID != nil {
		item.AssignSupplier(*req.SupplierID)
	}

	receivedDate := req.ReceivedDate
	if receivedDate.IsZero() {
		receivedDate = time.Now()
	}

	receipt, err := inventory.NewStockReceipt(item.ProductName, req.Quantity, receivedDate)
	if err != nil {
		return nil, err
	}
	if req.SupplierID != nil {
		receipt.SetSupplier(*req.SupplierID)
	}
	if req.LotNumber != "" {
		receipt.SetLot(req.LotNumber, nil)
	}
	if req.UnitCost.IsPositive() {
		if err := receipt.SetUnitCost(req.UnitCost); err != nil {
			return nil, err
		}
	}

	ref := inventory.MovementRef{
		Type:      inventory.ReferenceTypeStockReceipt,
		ID:        &receipt.ID,
		Note:      req.Note,
		CreatedBy: req.ReceivedBy,
	}
	movement, err := item.Receive(req.Quantity, ref)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ItemRepo().SaveWithLock(ctx, item); err != nil {
			return err
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}
		return repos.ReceiptRepo().Save(ctx, receipt)
	})
	if err != nil {
		return nil, err
	}

	s.markProcessed(ctx, "receive", req.IdempotencyKey, movement)
	s.publishDomainEvents(ctx, item)

	response := ToMovementResponse(movement)
	return &response, nil
}

// RecordWastage writes off spoiled or damaged stock. The deduction floors at
// zero; the ledger records the applied delta, not the requested quantity.
func (s *InventoryService) RecordWastage(ctx context.Context, req RecordWastageRequest) (*MovementResponse, error) {
	if replay, replayed, err := s.replayedMovement(ctx, "wastage", req.IdempotencyKey); err != nil {
		return nil, err
	} else if replayed {
		return replay, nil
	}

	item, err := s.itemRepo.FindByProductName(ctx, req.ProductName)
	if err != nil {
		return nil, err
	}

	wastageDate := req.WastageDate
	if wastageDate.IsZero() {
		wastageDate = time.Now()
	}

	record, err := inventory.NewWastageRecord(item.ProductName, req.Quantity, req.Reason, wastageDate)
	if err != nil {
		return nil, err
	}

	ref := inventory.MovementRef{
		Type:      inventory.ReferenceTypeWastage,
		ID:        &record.ID,
		Note:      req.Reason,
		CreatedBy: req.RecordedBy,
	}
	movement, err := item.RecordWastage(req.Quantity, ref)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ItemRepo().SaveWithLock(ctx, item); err != nil {
			return err
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}
		return repos.WastageRepo().Save(ctx, record)
	})
	if err != nil {
		return nil, err
	}

	s.markProcessed(ctx, "wastage", req.IdempotencyKey, movement)
	s.publishDomainEvents(ctx, item)

	response := ToMovementResponse(movement)
	return &response, nil
}

// AdjustStock corrects the level to a counted value after a stock take
func (s *InventoryService) AdjustStock(ctx context.Context, itemID uuid.UUID, req AdjustStockRequest) (*MovementResponse, error) {
	if replay, replayed, err := s.replayedMovement(ctx, "adjust", req.IdempotencyKey); err != nil {
		return nil, err
	} else if replayed {
		return replay, nil
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	movement, err := item.AdjustTo(req.ActualLevel, req.Reason, inventory.ManualRef(req.Reason, req.AdjustedBy))
	if err != nil {
		return nil, err
	}
	if movement == nil {
		// Counted level matches the recorded level, nothing to write
		return nil, nil
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ItemRepo().SaveWithLock(ctx, item); err != nil {
			return err
		}
		return repos.MovementRepo().Create(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	s.markProcessed(ctx, "adjust", req.IdempotencyKey, movement)
	s.publishDomainEvents(ctx, item)

	response := ToMovementResponse(movement)
	return &response, nil
}

// ListMovements retrieves ledger entries with filtering and pagination
func (s *InventoryService) ListMovements(ctx context.Context, filter MovementListFilter) (*shared.Paginated[MovementResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	var movements []inventory.InventoryMovement
	var err error
	switch {
	case filter.InventoryItemID != nil:
		movements, err = s.movementRepo.FindByInventoryItem(ctx, *filter.InventoryItemID, domainFilter)
	case filter.StartDate != nil && filter.EndDate != nil:
		movements, err = s.movementRepo.FindByDateRange(ctx, *filter.StartDate, *filter.EndDate, domainFilter)
	default:
		movements, err = s.movementRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.movementRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToMovementResponses(movements), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// RecordBlendWeight records a weight check for loose tea or coffee stock,
// creating the blend row on first weigh-in.
func (s *InventoryService) RecordBlendWeight(ctx context.Context, req RecordBlendWeightRequest) error {
	kind := inventory.BlendKind(req.Kind)
	if !kind.IsValid() {
		return shared.NewDomainError("INVALID_BLEND_KIND", "Blend kind must be tea or coffee")
	}

	stock, err := s.blendRepo.FindByBlend(ctx, req.BlendName, kind)
	if err != nil {
		if !shared.IsNotFound(err) {
			return err
		}
		stock, err = inventory.NewTeaCoffeeStock(req.BlendName, kind)
		if err != nil {
			return err
		}
	}

	if err := stock.RecordWeight(req.WeightGrams, req.WeighedBy); err != nil {
		return err
	}
	return s.blendRepo.Save(ctx, stock)
}

// getOrCreateItem looks an item up by product name, registering it when absent
func (s *InventoryService) getOrCreateItem(ctx context.Context, productName, category, unit string) (*inventory.InventoryItem, error) {
	item, err := s.itemRepo.FindByProductName(ctx, productName)
	if err == nil {
		return item, nil
	}
	if !shared.IsNotFound(err) {
		return nil, err
	}

	sku, err := inventory.AllocateSKU(ctx, s.itemRepo, category)
	if err != nil {
		return nil, err
	}
	item, err = inventory.NewInventoryItem(productName, sku, category, unit)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// replayedMovement answers a repeated idempotency key with the movement the
// first request produced. A processed key whose stored movement can no longer
// be resolved yields ErrDuplicateMovement instead of re-applying.
func (s *InventoryService) replayedMovement(ctx context.Context, operation, key string) (*MovementResponse, bool, error) {
	if s.idempotencyStore == nil || !s.idempotencyCfg.Enabled || key == "" {
		return nil, false, nil
	}

	storeKey := operation + ":" + key
	processed, err := s.idempotencyStore.IsProcessed(ctx, storeKey)
	if err != nil {
		return nil, false, err
	}
	if !processed {
		return nil, false, nil
	}

	stored, ok, err := s.idempotencyStore.Result(ctx, storeKey)
	if err != nil {
		return nil, true, err
	}
	if !ok {
		return nil, true, shared.ErrDuplicateMovement
	}
	movementID, err := uuid.Parse(stored)
	if err != nil {
		return nil, true, shared.ErrDuplicateMovement
	}
	movement, err := s.movementRepo.FindByID(ctx, movementID)
	if err != nil {
		return nil, true, shared.ErrDuplicateMovement
	}

	response := ToMovementResponse(movement)
	return &response, true, nil
}

func (s *InventoryService) markProcessed(ctx context.Context, operation, key string, movement *inventory.InventoryMovement) {
	if s.idempotencyStore == nil || !s.idempotencyCfg.Enabled || key == "" {
		return
	}
	storeKey := operation + ":" + key
	if _, err := s.idempotencyStore.MarkProcessed(ctx, storeKey, s.idempotencyCfg.TTL); err != nil {
		return
	}
	if movement != nil {
		_ = s.idempotencyStore.SaveResult(ctx, storeKey, movement.ID.String(), s.idempotencyCfg.TTL)
	}
}

func (s *InventoryService) publishDomainEvents(ctx context.Context, item *inventory.InventoryItem) {
	if s.eventPublisher == nil {
		return
	}
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	item.ClearDomainEvents()
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
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
		domainFilter.OrderDir = filter.OrderDir
	}
	return domainFilter
}
