package production

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/production"
)

// IngredientRequest is one ingredient line in a batch request
type IngredientRequest struct {
	RawMaterialName string          `json:"raw_material_name" binding:"required"`
	LotNumber       string          `json:"lot_number"`
	BestBefore      *time.Time      `json:"best_before" time_format:"2006-01-02"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Unit            string          `json:"unit"`
}

// ChecklistRequest mirrors the compliance checklist fields
type ChecklistRequest struct {
	HandsWashed            bool   `json:"hands_washed"`
	HandsWashedInitials    string `json:"hands_washed_initials"`
	SurfacesSanitised      bool   `json:"surfaces_sanitised"`
	SurfacesInitials       string `json:"surfaces_initials"`
	EquipmentClean         bool   `json:"equipment_clean"`
	EquipmentInitials      string `json:"equipment_initials"`
	AllergenSegregation    bool   `json:"allergen_segregation"`
	AllergenInitials       string `json:"allergen_initials"`
	ScaleCalibrated        bool   `json:"scale_calibrated"`
	ScaleInitials          string `json:"scale_initials"`
	IngredientsInDate      bool   `json:"ingredients_in_date"`
	IngredientsInitials    string `json:"ingredients_initials"`
	LabelsCorrect          bool   `json:"labels_correct"`
	LabelsInitials         string `json:"labels_initials"`
	BestBeforePrinted      bool   `json:"best_before_printed"`
	BestBeforeInitials     string `json:"best_before_initials"`
	PackagingIntact        bool   `json:"packaging_intact"`
	PackagingInitials      string `json:"packaging_initials"`
	MetalDetectionDone     bool   `json:"metal_detection_done"`
	MetalDetectionInitials string `json:"metal_detection_initials"`
	WorkAreaClearedAfter   bool   `json:"work_area_cleared_after"`
	WorkAreaInitials       string `json:"work_area_initials"`
	Notes                  string `json:"notes"`
}

// CreateBatchRequest opens a new batch manufacturing record
type CreateBatchRequest struct {
	BatchNumber       string              `json:"batch_number" binding:"required"`
	ProductName       string              `json:"product_name" binding:"required"`
	BatchDate         time.Time           `json:"batch_date" time_format:"2006-01-02"`
	BestBefore        time.Time           `json:"best_before" binding:"required" time_format:"2006-01-02"`
	StartedAt         time.Time           `json:"started_at" binding:"required"`
	BagCount          int                 `json:"bag_count"`
	BagSizeGrams      decimal.Decimal     `json:"bag_size_grams"`
	ScaleTargetGrams  decimal.Decimal     `json:"scale_target_grams" binding:"required"`
	ScaleReadingGrams decimal.Decimal     `json:"scale_reading_grams" binding:"required"`
	Ingredients       []IngredientRequest `json:"ingredients" binding:"required"`
	Checklist         *ChecklistRequest   `json:"checklist"`
	ManagerName       string              `json:"manager_name"`
	ManagerNotes      string              `json:"manager_notes"`
}

// UpdateBatchRequest edits an existing batch record. Version must match the
// stored record or the edit is rejected as a concurrent modification.
type UpdateBatchRequest struct {
	Version           int                 `json:"version" binding:"required"`
	ProductName       string              `json:"product_name" binding:"required"`
	BatchDate         time.Time           `json:"batch_date" time_format:"2006-01-02"`
	BestBefore        time.Time           `json:"best_before" binding:"required" time_format:"2006-01-02"`
	StartedAt         time.Time           `json:"started_at" binding:"required"`
	FinishedAt        *time.Time          `json:"finished_at"`
	BagCount          int                 `json:"bag_count"`
	BagSizeGrams      decimal.Decimal     `json:"bag_size_grams"`
	ScaleTargetGrams  decimal.Decimal     `json:"scale_target_grams" binding:"required"`
	ScaleReadingGrams decimal.Decimal     `json:"scale_reading_grams" binding:"required"`
	Ingredients       []IngredientRequest `json:"ingredients" binding:"required"`
	Checklist         *ChecklistRequest   `json:"checklist"`
	ManagerName       string              `json:"manager_name"`
	ManagerNotes      string              `json:"manager_notes"`
}

// FinishBatchRequest closes a batch run
type FinishBatchRequest struct {
	FinishedAt time.Time `json:"finished_at"`
}

// BatchListFilter represents filter options for batch lists
type BatchListFilter struct {
	ProductName string     `form:"product_name"`
	OpenOnly    *bool      `form:"open_only"`
	StartDate   *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate     *time.Time `form:"end_date" time_format:"2006-01-02"`
	Page        int        `form:"page" binding:"omitempty,min=1"`
	PageSize    int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// IngredientResponse is one ingredient line in API responses
type IngredientResponse struct {
	ID              uuid.UUID       `json:"id"`
	RawMaterialName string          `json:"raw_material_name"`
	LotNumber       string          `json:"lot_number,omitempty"`
	BestBefore      *time.Time      `json:"best_before,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
}

// BatchResponse represents a batch record in API responses
type BatchResponse struct {
	ID                uuid.UUID            `json:"id"`
	BatchNumber       string               `json:"batch_number"`
	ProductName       string               `json:"product_name"`
	BatchDate         time.Time            `json:"batch_date"`
	BagCount          int                  `json:"bag_count"`
	BagSizeGrams      decimal.Decimal      `json:"bag_size_grams"`
	BatchSizeGrams    decimal.Decimal      `json:"batch_size_grams"`
	BestBefore        time.Time            `json:"best_before"`
	StartedAt         time.Time            `json:"started_at"`
	FinishedAt        *time.Time           `json:"finished_at,omitempty"`
	IsCompleted       bool                 `json:"is_completed"`
	ScaleTargetGrams  decimal.Decimal      `json:"scale_target_grams"`
	ScaleReadingGrams decimal.Decimal      `json:"scale_reading_grams"`
	Checklist         production.Checklist `json:"checklist"`
	ChecklistComplete bool                 `json:"checklist_complete"`
	ManagerName       string               `json:"manager_name,omitempty"`
	ManagerNotes      string               `json:"manager_notes,omitempty"`
	Ingredients       []IngredientResponse `json:"ingredients"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	Version           int                  `json:"version"`
}

// ToBatchResponse converts a domain batch to its API representation
func ToBatchResponse(batch *production.BatchRecord) BatchResponse {
	ingredients := make([]IngredientResponse, len(batch.Ingredients))
	for i, ing := range batch.Ingredients {
		ingredients[i] = IngredientResponse{
			ID:              ing.ID,
			RawMaterialName: ing.RawMaterialName,
			LotNumber:       ing.LotNumber,
			BestBefore:      ing.BestBefore,
			Quantity:        ing.Quantity,
			Unit:            ing.Unit,
		}
	}
	return BatchResponse{
		ID:                batch.ID,
		BatchNumber:       batch.BatchNumber,
		ProductName:       batch.ProductName,
		BatchDate:         batch.BatchDate,
		BagCount:          batch.BagCount,
		BagSizeGrams:      batch.BagSizeGrams,
		BatchSizeGrams:    batch.BatchSizeGrams(),
		BestBefore:        batch.BestBefore,
		StartedAt:         batch.StartedAt,
		FinishedAt:        batch.FinishedAt,
		IsCompleted:       batch.IsCompleted(),
		ScaleTargetGrams:  batch.ScaleTargetGrams,
		ScaleReadingGrams: batch.ScaleReadingGrams,
		Checklist:         batch.Checklist,
		ChecklistComplete: batch.Checklist.IsComplete(),
		ManagerName:       batch.ManagerName,
		ManagerNotes:      batch.ManagerNotes,
		Ingredients:       ingredients,
		CreatedAt:         batch.CreatedAt,
		UpdatedAt:         batch.UpdatedAt,
		Version:           batch.Version,
	}
}

// ToBatchResponses converts a slice of domain batches
func ToBatchResponses(batches []production.BatchRecord) []BatchResponse {
	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToBatchResponse(&batches[i])
	}
	return responses
}

func toChecklist(req *ChecklistRequest) production.Checklist {
	if req == nil {
		return production.Checklist{}
	}
	return production.Checklist{
		HandsWashed:            req.HandsWashed,
		HandsWashedInitials:    req.HandsWashedInitials,
		SurfacesSanitised:      req.SurfacesSanitised,
		SurfacesInitials:       req.SurfacesInitials,
		EquipmentClean:         req.EquipmentClean,
		EquipmentInitials:      req.EquipmentInitials,
		AllergenSegregation:    req.AllergenSegregation,
		AllergenInitials:       req.AllergenInitials,
		ScaleCalibrated:        req.ScaleCalibrated,
		ScaleInitials:          req.ScaleInitials,
		IngredientsInDate:      req.IngredientsInDate,
		IngredientsInitials:    req.IngredientsInitials,
		LabelsCorrect:          req.LabelsCorrect,
		LabelsInitials:         req.LabelsInitials,
		BestBeforePrinted:      req.BestBeforePrinted,
		BestBeforeInitials:     req.BestBeforeInitials,
		PackagingIntact:        req.PackagingIntact,
		PackagingInitials:      req.PackagingInitials,
		MetalDetectionDone:     req.MetalDetectionDone,
		MetalDetectionInitials: req.MetalDetectionInitials,
		WorkAreaClearedAfter:   req.WorkAreaClearedAfter,
		WorkAreaInitials:       req.WorkAreaInitials,
		Notes:                  req.Notes,
	}
}

func toIngredients(reqs []IngredientRequest) ([]production.BatchIngredient, error) {
	ingredients := make([]production.BatchIngredient, 0, len(reqs))
	for _, req := range reqs {
		ing, err := production.NewBatchIngredient(req.RawMaterialName, req.LotNumber, req.Quantity, req.Unit, req.BestBefore)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}
