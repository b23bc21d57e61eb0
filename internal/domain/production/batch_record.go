package production

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/blendworks/backend/internal/domain/shared"
)

// BatchRecord documents one manufacturing run: what was blended, how much
// was packed, the scale verification and the compliance checklist. A batch
// is in progress until a finish time is set and stays editable afterwards.
type BatchRecord struct {
	shared.BaseAggregateRoot
	BatchNumber       string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_batch_number"`
	ProductName       string          `gorm:"type:varchar(200);not null;index"`
	BatchDate         time.Time       `gorm:"type:date;not null"`
	BagCount          int             `gorm:"not null"`
	BagSizeGrams      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	BestBefore        time.Time       `gorm:"type:date;not null"`
	StartedAt         time.Time       `gorm:"type:timestamptz;not null"`
	FinishedAt        *time.Time      `gorm:"type:timestamptz"`
	ScaleTargetGrams  decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ScaleReadingGrams decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Checklist         Checklist       `gorm:"embedded;embeddedPrefix:check_"`
	ManagerName       string          `gorm:"type:varchar(100)"`
	ManagerNotes      string          `gorm:"type:text"`

	Ingredients []BatchIngredient `gorm:"foreignKey:BatchID;references:ID"`
}

// TableName returns the table name for GORM
func (BatchRecord) TableName() string {
	return "batch_manufacturing_records"
}

// BatchIngredient is one ingredient line consumed by a batch
type BatchIngredient struct {
	shared.BaseEntity
	BatchID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_batch_ingredient_batch"`
	RawMaterialName string          `gorm:"type:varchar(200);not null"`
	LotNumber       string          `gorm:"type:varchar(100)"`
	BestBefore      *time.Time      `gorm:"type:date"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit            string          `gorm:"type:varchar(20);not null;default:'g'"`
}

// TableName returns the table name for GORM
func (BatchIngredient) TableName() string {
	return "batch_ingredients"
}

// NewBatchIngredient creates an ingredient line
func NewBatchIngredient(rawMaterialName, lotNumber string, quantity decimal.Decimal, unit string, bestBefore *time.Time) (BatchIngredient, error) {
	rawMaterialName = strings.TrimSpace(rawMaterialName)
	if rawMaterialName == "" {
		return BatchIngredient{}, shared.NewDomainError("INVALID_INGREDIENT", "Ingredient name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return BatchIngredient{}, shared.NewDomainError("INVALID_QUANTITY", "Ingredient quantity must be positive")
	}
	if unit == "" {
		unit = "g"
	}
	return BatchIngredient{
		BaseEntity:      shared.NewBaseEntity(),
		RawMaterialName: rawMaterialName,
		LotNumber:       lotNumber,
		BestBefore:      bestBefore,
		Quantity:        quantity,
		Unit:            unit,
	}, nil
}

// NewBatchRecord creates a batch in progress. A batch must name its product
// and batch number, carry best-before and start times, both scale readings,
// and at least one ingredient.
func NewBatchRecord(
	batchNumber, productName string,
	batchDate, bestBefore, startedAt time.Time,
	bagCount int,
	bagSizeGrams decimal.Decimal,
	scaleTargetGrams, scaleReadingGrams decimal.Decimal,
	ingredients []BatchIngredient,
) (*BatchRecord, error) {
	batchNumber = strings.TrimSpace(batchNumber)
	productName = strings.TrimSpace(productName)

	if batchNumber == "" {
		return nil, shared.NewDomainError("INVALID_BATCH_NUMBER", "Batch number cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if bestBefore.IsZero() {
		return nil, shared.NewDomainError("INVALID_BEST_BEFORE", "Best-before date is required")
	}
	if startedAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_START_TIME", "Start time is required")
	}
	if bagCount < 0 {
		return nil, shared.NewDomainError("INVALID_BAG_COUNT", "Bag count cannot be negative")
	}
	if bagSizeGrams.IsNegative() {
		return nil, shared.NewDomainError("INVALID_BAG_SIZE", "Bag size cannot be negative")
	}
	if scaleTargetGrams.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_SCALE_TARGET", "Scale target weight is required")
	}
	if scaleReadingGrams.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_SCALE_READING", "Scale verification reading is required")
	}
	if err := validateIngredients(ingredients); err != nil {
		return nil, err
	}
	if batchDate.IsZero() {
		batchDate = time.Now()
	}

	batch := &BatchRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BatchNumber:       batchNumber,
		ProductName:       productName,
		BatchDate:         batchDate,
		BagCount:          bagCount,
		BagSizeGrams:      bagSizeGrams,
		BestBefore:        bestBefore,
		StartedAt:         startedAt,
		ScaleTargetGrams:  scaleTargetGrams,
		ScaleReadingGrams: scaleReadingGrams,
	}
	for i := range ingredients {
		ingredients[i].BatchID = batch.ID
	}
	batch.Ingredients = ingredients

	batch.AddDomainEvent(NewBatchCreatedEvent(batch))

	return batch, nil
}

func validateIngredients(ingredients []BatchIngredient) error {
	if len(ingredients) == 0 {
		return shared.NewDomainError("NO_INGREDIENTS", "A batch requires at least one ingredient")
	}
	for i := range ingredients {
		if strings.TrimSpace(ingredients[i].RawMaterialName) == "" {
			return shared.NewDomainError("INVALID_INGREDIENT", "Ingredient name cannot be empty")
		}
		if ingredients[i].Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_QUANTITY", "Ingredient quantity must be positive")
		}
	}
	return nil
}

// IsCompleted reports whether the batch has a finish time
func (b *BatchRecord) IsCompleted() bool {
	return b.FinishedAt != nil
}

// BatchSizeGrams derives the total packed weight (bag count * bag size)
func (b *BatchRecord) BatchSizeGrams() decimal.Decimal {
	return b.BagSizeGrams.Mul(decimal.NewFromInt(int64(b.BagCount)))
}

// Finish stamps the finish time, completing the batch
func (b *BatchRecord) Finish(finishedAt time.Time) error {
	if finishedAt.IsZero() {
		return shared.NewDomainError("INVALID_FINISH_TIME", "Finish time is required")
	}
	if finishedAt.Before(b.StartedAt) {
		return shared.NewDomainError("INVALID_FINISH_TIME", "Finish time cannot precede start time")
	}
	b.FinishedAt = &finishedAt
	b.touch()
	b.AddDomainEvent(NewBatchCompletedEvent(b))
	return nil
}

// Reopen clears the finish time, returning the batch to in-progress
func (b *BatchRecord) Reopen() {
	b.FinishedAt = nil
	b.touch()
}

// Rename changes the product this batch produces
func (b *BatchRecord) Rename(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	b.ProductName = productName
	b.touch()
	return nil
}

// UpdateSchedule updates the batch, best-before, and start dates
func (b *BatchRecord) UpdateSchedule(batchDate, bestBefore, startedAt time.Time) error {
	if bestBefore.IsZero() {
		return shared.NewDomainError("INVALID_BEST_BEFORE", "Best-before date is required")
	}
	if startedAt.IsZero() {
		return shared.NewDomainError("INVALID_START_TIME", "Start time is required")
	}
	if !batchDate.IsZero() {
		b.BatchDate = batchDate
	}
	b.BestBefore = bestBefore
	b.StartedAt = startedAt
	b.touch()
	return nil
}

// SetBagCount updates the packed bag count
func (b *BatchRecord) SetBagCount(count int) error {
	if count < 0 {
		return shared.NewDomainError("INVALID_BAG_COUNT", "Bag count cannot be negative")
	}
	b.BagCount = count
	b.touch()
	return nil
}

// SetBagSize updates the per-bag weight
func (b *BatchRecord) SetBagSize(grams decimal.Decimal) error {
	if grams.IsNegative() {
		return shared.NewDomainError("INVALID_BAG_SIZE", "Bag size cannot be negative")
	}
	b.BagSizeGrams = grams
	b.touch()
	return nil
}

// SetScaleReadings updates the scale target and verification reading
func (b *BatchRecord) SetScaleReadings(target, reading decimal.Decimal) error {
	if target.LessThanOrEqual(decimal.Zero) || reading.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_SCALE_READING", "Scale readings must be positive")
	}
	b.ScaleTargetGrams = target
	b.ScaleReadingGrams = reading
	b.touch()
	return nil
}

// ReplaceIngredients swaps the ingredient set after validating the new one
func (b *BatchRecord) ReplaceIngredients(ingredients []BatchIngredient) error {
	if err := validateIngredients(ingredients); err != nil {
		return err
	}
	for i := range ingredients {
		ingredients[i].BatchID = b.ID
		if ingredients[i].ID == uuid.Nil {
			ingredients[i].BaseEntity = shared.NewBaseEntity()
		}
	}
	b.Ingredients = ingredients
	b.touch()
	return nil
}

// SignOff records the manager who reviewed the batch
func (b *BatchRecord) SignOff(managerName, notes string) {
	b.ManagerName = managerName
	b.ManagerNotes = notes
	b.touch()
}

// SetChecklist replaces the compliance checklist
func (b *BatchRecord) SetChecklist(checklist Checklist) {
	b.Checklist = checklist
	b.touch()
}

func (b *BatchRecord) touch() {
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}
