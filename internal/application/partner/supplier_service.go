package partner

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/partner"
	"github.com/blendworks/backend/internal/domain/shared"
)

// SupplierService manages supplier records
type SupplierService struct {
	supplierRepo   partner.SupplierRepository
	eventPublisher shared.EventPublisher
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *SupplierService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateSupplier registers a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("checking supplier name: %w", err)
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_SUPPLIER_NAME", "A supplier with this name already exists")
	}

	supplier, err := partner.NewSupplier(req.Name)
	if err != nil {
		return nil, err
	}
	supplier.SetContact(req.ContactName, req.Phone, req.Email)
	supplier.SetAddress(req.AddressLine, req.City, req.Postcode, req.Country)
	supplier.AccountNumber = req.AccountNumber
	supplier.Notes = req.Notes
	if req.LeadTimeDays > 0 {
		if err := supplier.SetLeadTime(req.LeadTimeDays); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, supplier)
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// UpdateSupplier updates a supplier record
func (s *SupplierService) UpdateSupplier(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if err := supplier.Update(req.Name, req.Notes); err != nil {
		return nil, err
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		supplier.SetContact(
			valueOr(req.ContactName, supplier.ContactName),
			valueOr(req.Phone, supplier.Phone),
			valueOr(req.Email, supplier.Email),
		)
	}
	if req.AddressLine != nil || req.City != nil || req.Postcode != nil || req.Country != nil {
		supplier.SetAddress(
			valueOr(req.AddressLine, supplier.AddressLine),
			valueOr(req.City, supplier.City),
			valueOr(req.Postcode, supplier.Postcode),
			valueOr(req.Country, supplier.Country),
		)
	}
	if req.LeadTimeDays != nil {
		if err := supplier.SetLeadTime(*req.LeadTimeDays); err != nil {
			return nil, err
		}
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter ListFilter) (*shared.Paginated[SupplierResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	var suppliers []partner.Supplier
	var err error
	if filter.ActiveOnly != nil && *filter.ActiveOnly {
		suppliers, err = s.supplierRepo.FindActive(ctx, domainFilter)
	} else {
		suppliers, err = s.supplierRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToSupplierResponses(suppliers), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// DeactivateSupplier marks a supplier inactive
func (s *SupplierService) DeactivateSupplier(ctx context.Context, supplierID uuid.UUID) error {
	return s.transition(ctx, supplierID, func(supplier *partner.Supplier) error {
		return supplier.Deactivate()
	})
}

// ActivateSupplier reactivates a supplier
func (s *SupplierService) ActivateSupplier(ctx context.Context, supplierID uuid.UUID) error {
	return s.transition(ctx, supplierID, func(supplier *partner.Supplier) error {
		return supplier.Activate()
	})
}

// BlockSupplier blocks a supplier, recording the reason
func (s *SupplierService) BlockSupplier(ctx context.Context, supplierID uuid.UUID, reason string) error {
	return s.transition(ctx, supplierID, func(supplier *partner.Supplier) error {
		return supplier.Block(reason)
	})
}

func (s *SupplierService) transition(ctx context.Context, supplierID uuid.UUID, fn func(*partner.Supplier) error) error {
	supplier, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if err := fn(supplier); err != nil {
		return err
	}
	return s.supplierRepo.Save(ctx, supplier)
}

func (s *SupplierService) publishDomainEvents(ctx context.Context, supplier *partner.Supplier) {
	if s.eventPublisher == nil {
		return
	}
	events := supplier.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	supplier.ClearDomainEvents()
}

func valueOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}
