package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendworks/backend/internal/domain/production"
	"github.com/blendworks/backend/internal/domain/shared"
)

// GormBatchRecordRepository implements BatchRecordRepository using GORM
type GormBatchRecordRepository struct {
	db *gorm.DB
}

// NewGormBatchRecordRepository creates a new GormBatchRecordRepository
func NewGormBatchRecordRepository(db *gorm.DB) *GormBatchRecordRepository {
	return &GormBatchRecordRepository{db: db}
}

// FindByID finds a batch record with its ingredient rows
func (r *GormBatchRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.BatchRecord, error) {
	var batch production.BatchRecord
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	batch.MarkLoaded()
	return &batch, nil
}

// FindByBatchNumber finds a batch record by its batch number
func (r *GormBatchRecordRepository) FindByBatchNumber(ctx context.Context, batchNumber string) (*production.BatchRecord, error) {
	var batch production.BatchRecord
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&batch, "batch_number = ?", batchNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	batch.MarkLoaded()
	return &batch, nil
}

// FindAll finds batch records matching the filter
func (r *GormBatchRecordRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.BatchRecord, error) {
	return r.findWhere(ctx, filter, nil)
}

// FindByProductName finds batch records for a product
func (r *GormBatchRecordRepository) FindByProductName(ctx context.Context, productName string, filter shared.Filter) ([]production.BatchRecord, error) {
	return r.findWhere(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER(product_name) = LOWER(?)", productName)
	})
}

// FindByDateRange finds batch records within a date range
func (r *GormBatchRecordRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]production.BatchRecord, error) {
	return r.findWhere(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("batch_date >= ? AND batch_date <= ?", start, end)
	})
}

// FindOpen finds batch records that have not been finished yet
func (r *GormBatchRecordRepository) FindOpen(ctx context.Context, filter shared.Filter) ([]production.BatchRecord, error) {
	return r.findWhere(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("finished_at IS NULL")
	})
}

func (r *GormBatchRecordRepository) findWhere(ctx context.Context, filter shared.Filter, scope func(*gorm.DB) *gorm.DB) ([]production.BatchRecord, error) {
	var batches []production.BatchRecord
	query := r.db.WithContext(ctx).Model(&production.BatchRecord{}).Preload("Ingredients")
	if scope != nil {
		query = scope(query)
	}
	query = r.applyFilters(query, filter)
	query = applyPaginationAndOrder(query, filter, BatchRecordSortFields)
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	for i := range batches {
		batches[i].MarkLoaded()
	}
	return batches, nil
}

// Save persists the batch record together with its ingredient rows
func (r *GormBatchRecordRepository) Save(ctx context.Context, batch *production.BatchRecord) error {
	if err := r.db.WithContext(ctx).Save(batch).Error; err != nil {
		return err
	}
	batch.MarkLoaded()
	return nil
}

// SaveWithLock saves with optimistic locking. The version check uses the
// version the row was read with, since one edit may step the in-memory
// version more than once before it is persisted. Ingredient rows are
// replaced in the same call so the record and its lines stay consistent.
func (r *GormBatchRecordRepository) SaveWithLock(ctx context.Context, batch *production.BatchRecord) error {
	result := r.db.WithContext(ctx).
		Model(batch).
		Where("id = ? AND version = ?", batch.ID, batch.LoadedVersion()).
		Updates(map[string]interface{}{
			"batch_number":        batch.BatchNumber,
			"product_name":        batch.ProductName,
			"batch_date":          batch.BatchDate,
			"bag_count":           batch.BagCount,
			"bag_size_grams":      batch.BagSizeGrams,
			"best_before":         batch.BestBefore,
			"started_at":          batch.StartedAt,
			"finished_at":         batch.FinishedAt,
			"scale_target_grams":  batch.ScaleTargetGrams,
			"scale_reading_grams": batch.ScaleReadingGrams,

			"check_hands_washed":             batch.Checklist.HandsWashed,
			"check_hands_washed_initials":    batch.Checklist.HandsWashedInitials,
			"check_surfaces_sanitised":       batch.Checklist.SurfacesSanitised,
			"check_surfaces_initials":        batch.Checklist.SurfacesInitials,
			"check_equipment_clean":          batch.Checklist.EquipmentClean,
			"check_equipment_initials":       batch.Checklist.EquipmentInitials,
			"check_allergen_segregation":     batch.Checklist.AllergenSegregation,
			"check_allergen_initials":        batch.Checklist.AllergenInitials,
			"check_scale_calibrated":         batch.Checklist.ScaleCalibrated,
			"check_scale_initials":           batch.Checklist.ScaleInitials,
			"check_ingredients_in_date":      batch.Checklist.IngredientsInDate,
			"check_ingredients_initials":     batch.Checklist.IngredientsInitials,
			"check_labels_correct":           batch.Checklist.LabelsCorrect,
			"check_labels_initials":          batch.Checklist.LabelsInitials,
			"check_best_before_printed":      batch.Checklist.BestBeforePrinted,
			"check_best_before_initials":     batch.Checklist.BestBeforeInitials,
			"check_packaging_intact":         batch.Checklist.PackagingIntact,
			"check_packaging_initials":       batch.Checklist.PackagingInitials,
			"check_metal_detection_done":     batch.Checklist.MetalDetectionDone,
			"check_metal_detection_initials": batch.Checklist.MetalDetectionInitials,
			"check_work_area_cleared_after":  batch.Checklist.WorkAreaClearedAfter,
			"check_work_area_initials":       batch.Checklist.WorkAreaInitials,
			"check_notes":                    batch.Checklist.Notes,

			"manager_name":  batch.ManagerName,
			"manager_notes": batch.ManagerNotes,
			"version":       batch.Version,
			"updated_at":    batch.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("OPTIMISTIC_LOCK_FAILED", "Batch record was modified by another transaction")
	}
	if err := r.ReplaceIngredients(ctx, batch.ID, batch.Ingredients); err != nil {
		return err
	}
	batch.MarkLoaded()
	return nil
}

// ReplaceIngredients swaps the stored ingredient rows for the batch
func (r *GormBatchRecordRepository) ReplaceIngredients(ctx context.Context, batchID uuid.UUID, ingredients []production.BatchIngredient) error {
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Delete(&production.BatchIngredient{}).Error; err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return nil
	}
	for i := range ingredients {
		ingredients[i].BatchID = batchID
	}
	return r.db.WithContext(ctx).Create(&ingredients).Error
}

// Delete deletes a batch record and its ingredient rows
func (r *GormBatchRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", id).
		Delete(&production.BatchIngredient{}).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&production.BatchRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts batch records matching the filter
func (r *GormBatchRecordRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&production.BatchRecord{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByBatchNumber checks whether a batch number is already used
func (r *GormBatchRecordRepository) ExistsByBatchNumber(ctx context.Context, batchNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&production.BatchRecord{}).
		Where("batch_number = ?", batchNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormBatchRecordRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("batch_number ILIKE ? OR product_name ILIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "product_name":
			query = query.Where("LOWER(product_name) = LOWER(?)", value)
		case "open":
			if open, ok := value.(bool); ok && open {
				query = query.Where("finished_at IS NULL")
			}
		}
	}
	return query
}

// Ensure GormBatchRecordRepository implements BatchRecordRepository
var _ production.BatchRecordRepository = (*GormBatchRecordRepository)(nil)
