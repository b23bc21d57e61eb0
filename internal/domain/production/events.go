package production

import (
	"time"

	"github.com/blendworks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeBatchRecord = "BatchRecord"

// Event type constants
const (
	EventTypeBatchCreated   = "BatchCreated"
	EventTypeBatchCompleted = "BatchCompleted"
)

// BatchCreatedEvent is raised when a manufacturing record is opened
type BatchCreatedEvent struct {
	shared.BaseDomainEvent
	BatchNumber     string    `json:"batch_number"`
	ProductName     string    `json:"product_name"`
	BatchDate       time.Time `json:"batch_date"`
	BagCount        int       `json:"bag_count"`
	IngredientCount int       `json:"ingredient_count"`
}

// NewBatchCreatedEvent creates a new BatchCreatedEvent
func NewBatchCreatedEvent(b *BatchRecord) *BatchCreatedEvent {
	return &BatchCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBatchCreated, AggregateTypeBatchRecord, b.ID),
		BatchNumber:     b.BatchNumber,
		ProductName:     b.ProductName,
		BatchDate:       b.BatchDate,
		BagCount:        b.BagCount,
		IngredientCount: len(b.Ingredients),
	}
}

// EventType returns the event type name
func (e *BatchCreatedEvent) EventType() string {
	return EventTypeBatchCreated
}

// BatchCompletedEvent is raised when a batch run is signed off as finished
type BatchCompletedEvent struct {
	shared.BaseDomainEvent
	BatchNumber string    `json:"batch_number"`
	ProductName string    `json:"product_name"`
	BagCount    int       `json:"bag_count"`
	FinishedAt  time.Time `json:"finished_at"`
}

// NewBatchCompletedEvent creates a new BatchCompletedEvent
func NewBatchCompletedEvent(b *BatchRecord) *BatchCompletedEvent {
	finished := time.Time{}
	if b.FinishedAt != nil {
		finished = *b.FinishedAt
	}
	return &BatchCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBatchCompleted, AggregateTypeBatchRecord, b.ID),
		BatchNumber:     b.BatchNumber,
		ProductName:     b.ProductName,
		BagCount:        b.BagCount,
		FinishedAt:      finished,
	}
}

// EventType returns the event type name
func (e *BatchCompletedEvent) EventType() string {
	return EventTypeBatchCompleted
}
