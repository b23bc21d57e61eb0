package production

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/inventory"
	"github.com/blendworks/backend/internal/domain/production"
	"github.com/blendworks/backend/internal/domain/shared"
)

// BatchService manages batch manufacturing records and the inventory effects
// of a batch: ingredient consumption and finished-goods output. Inventory is
// only ever moved by the diff between what a batch previously recorded and
// what it records now, so saving a batch twice never consumes twice.
type BatchService struct {
	batchRepo      production.BatchRecordRepository
	itemRepo       inventory.InventoryItemRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
}

// NewBatchService creates a new BatchService
func NewBatchService(
	batchRepo production.BatchRecordRepository,
	itemRepo inventory.InventoryItemRepository,
	txScope TransactionScope,
) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
		itemRepo:  itemRepo,
		txScope:   txScope,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *BatchService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateBatch opens a new batch record. The full ingredient quantities are
// consumed from inventory in the same transaction as the record itself.
// Finished goods are not stocked here; that happens when the run is finished.
func (s *BatchService) CreateBatch(ctx context.Context, req CreateBatchRequest) (*BatchResponse, error) {
	exists, err := s.batchRepo.ExistsByBatchNumber(ctx, req.BatchNumber)
	if err != nil {
		return nil, fmt.Errorf("checking batch number: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_BATCH_NUMBER", "A batch with this number already exists")
	}

	ingredients, err := toIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}

	batch, err := production.NewBatchRecord(
		req.BatchNumber, req.ProductName, req.BatchDate, req.BestBefore, req.StartedAt,
		req.BagCount, req.BagSizeGrams, req.ScaleTargetGrams, req.ScaleReadingGrams,
		ingredients,
	)
	if err != nil {
		return nil, err
	}
	if req.Checklist != nil {
		batch.SetChecklist(toChecklist(req.Checklist))
	}
	if req.ManagerName != "" {
		batch.SignOff(req.ManagerName, req.ManagerNotes)
	}

	deltas := production.ConsumptionForIngredients(batch.Ingredients)

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.BatchRepo().Save(ctx, batch); err != nil {
			return err
		}
		return s.applyIngredientDeltas(ctx, repos, batch, deltas)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, batch)
	response := ToBatchResponse(batch)
	return &response, nil
}

// UpdateBatch edits a batch record. The request carries the version the
// client loaded; a mismatch means someone else saved in between and the edit
// is rejected. Inventory moves by the difference only: ingredient quantities
// are diffed against the stored set and the bag count against the stored
// count, so an unchanged re-save moves nothing.
func (s *BatchService) UpdateBatch(ctx context.Context, batchID uuid.UUID, req UpdateBatchRequest) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.Version != req.Version {
		return nil, shared.ErrConcurrencyConflict
	}

	oldProductName := batch.ProductName
	oldBagCount := batch.BagCount
	wasCompleted := batch.IsCompleted()

	newIngredients, err := toIngredients(req.Ingredients)
	if err != nil {
		return nil, err
	}
	deltas := production.DiffIngredients(batch.Ingredients, newIngredients)

	if err := batch.Rename(req.ProductName); err != nil {
		return nil, err
	}
	if err := batch.UpdateSchedule(req.BatchDate, req.BestBefore, req.StartedAt); err != nil {
		return nil, err
	}
	if err := batch.SetBagCount(req.BagCount); err != nil {
		return nil, err
	}
	if err := batch.SetBagSize(req.BagSizeGrams); err != nil {
		return nil, err
	}
	if err := batch.SetScaleReadings(req.ScaleTargetGrams, req.ScaleReadingGrams); err != nil {
		return nil, err
	}
	if err := batch.ReplaceIngredients(newIngredients); err != nil {
		return nil, err
	}
	if req.Checklist != nil {
		batch.SetChecklist(toChecklist(req.Checklist))
	}
	if req.ManagerName != "" {
		batch.SignOff(req.ManagerName, req.ManagerNotes)
	}

	switch {
	case req.FinishedAt != nil && !batch.IsCompleted():
		if err := batch.Finish(*req.FinishedAt); err != nil {
			return nil, err
		}
	case req.FinishedAt == nil && batch.IsCompleted():
		batch.Reopen()
	}

	productRenamed := !strings.EqualFold(oldProductName, batch.ProductName)
	nowCompleted := batch.IsCompleted()

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.BatchRepo().SaveWithLock(ctx, batch); err != nil {
			return err
		}
		if err := repos.BatchRepo().ReplaceIngredients(ctx, batch.ID, batch.Ingredients); err != nil {
			return err
		}
		if err := s.applyIngredientDeltas(ctx, repos, batch, deltas); err != nil {
			return err
		}
		// Finished-goods stock follows the finished state: the full count
		// goes in when the run finishes and comes back out when it reopens.
		// While finished, edits move stock by the difference only.
		switch {
		case !wasCompleted && nowCompleted:
			if batch.BagCount > 0 {
				return s.applyFinishedGoods(ctx, repos, batch, batch.ProductName, batch.BagCount)
			}
		case wasCompleted && !nowCompleted:
			if oldBagCount > 0 {
				return s.applyFinishedGoods(ctx, repos, batch, oldProductName, -oldBagCount)
			}
		case wasCompleted && nowCompleted:
			if productRenamed {
				// The run now belongs to a different product: back the old
				// bags out of the old item and stock the new item.
				if oldBagCount > 0 {
					if err := s.applyFinishedGoods(ctx, repos, batch, oldProductName, -oldBagCount); err != nil {
						return err
					}
				}
				if batch.BagCount > 0 {
					return s.applyFinishedGoods(ctx, repos, batch, batch.ProductName, batch.BagCount)
				}
				return nil
			}
			if diff := batch.BagCount - oldBagCount; diff != 0 {
				return s.applyFinishedGoods(ctx, repos, batch, batch.ProductName, diff)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, batch)
	response := ToBatchResponse(batch)
	return &response, nil
}

// FinishBatch closes a batch run and stocks the finished product by the
// batch's bag count in the same transaction.
func (s *BatchService) FinishBatch(ctx context.Context, batchID uuid.UUID, req FinishBatchRequest) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if err := batch.Finish(req.FinishedAt); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.BatchRepo().SaveWithLock(ctx, batch); err != nil {
			return err
		}
		if batch.BagCount > 0 {
			return s.applyFinishedGoods(ctx, repos, batch, batch.ProductName, batch.BagCount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, batch)
	response := ToBatchResponse(batch)
	return &response, nil
}

// ReopenBatch clears the finish time of a completed batch and backs the
// finished-goods output out again.
func (s *BatchService) ReopenBatch(ctx context.Context, batchID uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	wasCompleted := batch.IsCompleted()
	batch.Reopen()

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.BatchRepo().SaveWithLock(ctx, batch); err != nil {
			return err
		}
		if wasCompleted && batch.BagCount > 0 {
			return s.applyFinishedGoods(ctx, repos, batch, batch.ProductName, -batch.BagCount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToBatchResponse(batch)
	return &response, nil
}

// GetByID retrieves a batch record by ID
func (s *BatchService) GetByID(ctx context.Context, batchID uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	response := ToBatchResponse(batch)
	return &response, nil
}

// GetByBatchNumber retrieves a batch record by its batch number
func (s *BatchService) GetByBatchNumber(ctx context.Context, batchNumber string) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByBatchNumber(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	response := ToBatchResponse(batch)
	return &response, nil
}

// List retrieves batch records with filtering and pagination
func (s *BatchService) List(ctx context.Context, filter BatchListFilter) (*shared.Paginated[BatchResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	var batches []production.BatchRecord
	var err error
	switch {
	case filter.OpenOnly != nil && *filter.OpenOnly:
		batches, err = s.batchRepo.FindOpen(ctx, domainFilter)
	case filter.ProductName != "":
		batches, err = s.batchRepo.FindByProductName(ctx, filter.ProductName, domainFilter)
	case filter.StartDate != nil && filter.EndDate != nil:
		batches, err = s.batchRepo.FindByDateRange(ctx, *filter.StartDate, *filter.EndDate, domainFilter)
	default:
		batches, err = s.batchRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.batchRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToBatchResponses(batches), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// applyIngredientDeltas moves ingredient stock by the given per-material
// deltas. A positive delta is consumed, a negative one returned. Material
// rows missing from inventory are registered on first use so a batch can
// reference ingredients booked in under a new name.
func (s *BatchService) applyIngredientDeltas(ctx context.Context, repos TransactionalRepositories, batch *production.BatchRecord, deltas []production.IngredientDelta) error {
	for _, delta := range deltas {
		item, err := s.getOrCreateItem(ctx, repos, delta.RawMaterialName, "ingredients", "g")
		if err != nil {
			return err
		}

		ref := inventory.BatchRef(batch.ID, "batch "+batch.BatchNumber)
		var movement *inventory.InventoryMovement
		if delta.Delta.IsPositive() {
			movement, err = item.Consume(delta.Delta, ref)
		} else {
			movement, err = item.ReturnConsumption(delta.Delta.Neg(), ref)
		}
		if err != nil {
			return err
		}

		if err := repos.ItemRepo().SaveWithLock(ctx, item); err != nil {
			return err
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}
	}
	return nil
}

// applyFinishedGoods records finished-product output against the named item.
// The bag delta is signed; a reduced bag count on an edited batch backs the
// difference out again.
func (s *BatchService) applyFinishedGoods(ctx context.Context, repos TransactionalRepositories, batch *production.BatchRecord, productName string, bagDelta int) error {
	item, err := s.getOrCreateItem(ctx, repos, productName, "final products", "bag")
	if err != nil {
		return err
	}
	if !item.IsFinalProduct {
		item.MarkFinalProduct()
	}

	ref := inventory.BatchRef(batch.ID, "batch "+batch.BatchNumber)
	movement, err := item.Produce(decimal.NewFromInt(int64(bagDelta)), ref)
	if err != nil {
		return err
	}

	if err := repos.ItemRepo().SaveWithLock(ctx, item); err != nil {
		return err
	}
	return repos.MovementRepo().Create(ctx, movement)
}

func (s *BatchService) getOrCreateItem(ctx context.Context, repos TransactionalRepositories, productName, category, unit string) (*inventory.InventoryItem, error) {
	item, err := repos.ItemRepo().FindByProductName(ctx, productName)
	if err == nil {
		return item, nil
	}
	if !shared.IsNotFound(err) {
		return nil, err
	}

	sku, err := inventory.AllocateSKU(ctx, repos.ItemRepo(), category)
	if err != nil {
		return nil, err
	}
	item, err = inventory.NewInventoryItem(productName, sku, category, unit)
	if err != nil {
		return nil, err
	}
	if err := repos.ItemRepo().Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *BatchService) publishDomainEvents(ctx context.Context, batch *production.BatchRecord) {
	if s.eventPublisher == nil {
		return
	}
	events := batch.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	batch.ClearDomainEvents()
}
