package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/blendworks/backend/internal/domain/compliance"
	"github.com/blendworks/backend/internal/domain/shared"
)

// GormEquipmentRepository implements EquipmentRepository using GORM
type GormEquipmentRepository struct {
	db *gorm.DB
}

// NewGormEquipmentRepository creates a new GormEquipmentRepository
func NewGormEquipmentRepository(db *gorm.DB) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db}
}

// FindByID finds an equipment entry by its ID
func (r *GormEquipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*compliance.Equipment, error) {
	var equipment compliance.Equipment
	if err := r.db.WithContext(ctx).First(&equipment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	equipment.MarkLoaded()
	return &equipment, nil
}

// FindByName finds an equipment entry by name
func (r *GormEquipmentRepository) FindByName(ctx context.Context, name string) (*compliance.Equipment, error) {
	var equipment compliance.Equipment
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&equipment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	equipment.MarkLoaded()
	return &equipment, nil
}

// FindAll finds equipment entries matching the filter
func (r *GormEquipmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]compliance.Equipment, error) {
	var equipments []compliance.Equipment
	query := r.applyFilters(r.db.WithContext(ctx).Model(&compliance.Equipment{}), filter)
	query = applyPaginationAndOrder(query, filter, EquipmentSortFields)
	if err := query.Find(&equipments).Error; err != nil {
		return nil, err
	}
	for i := range equipments {
		equipments[i].MarkLoaded()
	}
	return equipments, nil
}

// FindServiceDueBefore finds equipment whose next service date has passed
// the cutoff. Out-of-service equipment is excluded.
func (r *GormEquipmentRepository) FindServiceDueBefore(ctx context.Context, cutoff time.Time) ([]compliance.Equipment, error) {
	var equipments []compliance.Equipment
	if err := r.db.WithContext(ctx).
		Where("next_service_due IS NOT NULL AND next_service_due <= ?", cutoff).
		Where("status <> ?", compliance.EquipmentStatusOutOfService).
		Order("next_service_due ASC").
		Find(&equipments).Error; err != nil {
		return nil, err
	}
	for i := range equipments {
		equipments[i].MarkLoaded()
	}
	return equipments, nil
}

// Save creates or updates an equipment entry
func (r *GormEquipmentRepository) Save(ctx context.Context, equipment *compliance.Equipment) error {
	if err := r.db.WithContext(ctx).Save(equipment).Error; err != nil {
		return err
	}
	equipment.MarkLoaded()
	return nil
}

// Delete deletes an equipment entry
func (r *GormEquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&compliance.Equipment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts equipment entries matching the filter
func (r *GormEquipmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&compliance.Equipment{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormEquipmentRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR serial_number ILIKE ? OR location ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	return query
}

// Ensure GormEquipmentRepository implements EquipmentRepository
var _ compliance.EquipmentRepository = (*GormEquipmentRepository)(nil)

// GormComplianceDocumentRepository implements ComplianceDocumentRepository using GORM
type GormComplianceDocumentRepository struct {
	db *gorm.DB
}

// NewGormComplianceDocumentRepository creates a new GormComplianceDocumentRepository
func NewGormComplianceDocumentRepository(db *gorm.DB) *GormComplianceDocumentRepository {
	return &GormComplianceDocumentRepository{db: db}
}

// FindByID finds a document with its version rows
func (r *GormComplianceDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*compliance.ComplianceDocument, error) {
	var doc compliance.ComplianceDocument
	if err := r.db.WithContext(ctx).
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version_no ASC")
		}).
		First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	doc.MarkLoaded()
	return &doc, nil
}

// FindByTitle finds a document by its title
func (r *GormComplianceDocumentRepository) FindByTitle(ctx context.Context, title string) (*compliance.ComplianceDocument, error) {
	var doc compliance.ComplianceDocument
	if err := r.db.WithContext(ctx).
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version_no ASC")
		}).
		Where("LOWER(title) = LOWER(?)", title).
		First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	doc.MarkLoaded()
	return &doc, nil
}

// FindAll finds documents matching the filter
func (r *GormComplianceDocumentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]compliance.ComplianceDocument, error) {
	return r.findWhere(ctx, filter, nil)
}

// FindByCategory finds documents in a category
func (r *GormComplianceDocumentRepository) FindByCategory(ctx context.Context, category compliance.DocumentCategory, filter shared.Filter) ([]compliance.ComplianceDocument, error) {
	return r.findWhere(ctx, filter, func(q *gorm.DB) *gorm.DB {
		return q.Where("category = ?", category)
	})
}

// FindReviewDueBefore finds active documents whose review date has passed
func (r *GormComplianceDocumentRepository) FindReviewDueBefore(ctx context.Context, cutoff time.Time) ([]compliance.ComplianceDocument, error) {
	var docs []compliance.ComplianceDocument
	if err := r.db.WithContext(ctx).
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version_no ASC")
		}).
		Where("review_due IS NOT NULL AND review_due <= ?", cutoff).
		Where("is_archived = false").
		Order("review_due ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].MarkLoaded()
	}
	return docs, nil
}

func (r *GormComplianceDocumentRepository) findWhere(ctx context.Context, filter shared.Filter, scope func(*gorm.DB) *gorm.DB) ([]compliance.ComplianceDocument, error) {
	var docs []compliance.ComplianceDocument
	query := r.db.WithContext(ctx).Model(&compliance.ComplianceDocument{}).
		Preload("Versions", func(db *gorm.DB) *gorm.DB {
			return db.Order("version_no ASC")
		})
	if scope != nil {
		query = scope(query)
	}
	query = r.applyFilters(query, filter)
	query = applyPaginationAndOrder(query, filter, ComplianceDocumentSortFields)
	if err := query.Find(&docs).Error; err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].MarkLoaded()
	}
	return docs, nil
}

// Save persists the document together with its version rows
func (r *GormComplianceDocumentRepository) Save(ctx context.Context, doc *compliance.ComplianceDocument) error {
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return err
	}
	doc.MarkLoaded()
	return nil
}

// Delete deletes a document and its version rows
func (r *GormComplianceDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("document_id = ?", id).
		Delete(&compliance.DocumentVersion{}).Error; err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&compliance.ComplianceDocument{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts documents matching the filter
func (r *GormComplianceDocumentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilters(r.db.WithContext(ctx).Model(&compliance.ComplianceDocument{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormComplianceDocumentRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "is_archived":
			query = query.Where("is_archived = ?", value)
		}
	}
	return query
}

// Ensure GormComplianceDocumentRepository implements ComplianceDocumentRepository
var _ compliance.ComplianceDocumentRepository = (*GormComplianceDocumentRepository)(nil)
