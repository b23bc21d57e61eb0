package partner

import (
	"github.com/blendworks/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeSupplier = "Supplier"

// Event type constants
const (
	EventTypeSupplierCreated = "SupplierCreated"
)

// SupplierCreatedEvent is raised when a supplier is registered
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(supplier *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, AggregateTypeSupplier, supplier.ID),
		Name:            supplier.Name,
	}
}

// EventType returns the event type name
func (e *SupplierCreatedEvent) EventType() string {
	return EventTypeSupplierCreated
}
