package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/compliance"
	"github.com/blendworks/backend/internal/domain/shared"
)

// EquipmentService manages the equipment register and its service history
type EquipmentService struct {
	equipmentRepo compliance.EquipmentRepository
}

// NewEquipmentService creates a new EquipmentService
func NewEquipmentService(equipmentRepo compliance.EquipmentRepository) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo}
}

// CreateEquipment registers a piece of equipment
func (s *EquipmentService) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*EquipmentResponse, error) {
	existing, err := s.equipmentRepo.FindByName(ctx, req.Name)
	if err != nil && !shared.IsNotFound(err) {
		return nil, fmt.Errorf("checking equipment name: %w", err)
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_EQUIPMENT_NAME", "Equipment with this name already exists")
	}

	equipment, err := compliance.NewEquipment(req.Name, req.SerialNumber, req.Location)
	if err != nil {
		return nil, err
	}
	equipment.PurchasedOn = req.PurchasedOn
	equipment.Notes = req.Notes

	if err := s.equipmentRepo.Save(ctx, equipment); err != nil {
		return nil, err
	}

	response := ToEquipmentResponse(equipment)
	return &response, nil
}

// UpdateEquipment changes equipment details. Omitted fields keep their values.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uuid.UUID, req UpdateEquipmentRequest) (*EquipmentResponse, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != equipment.Name {
		other, err := s.equipmentRepo.FindByName(ctx, *req.Name)
		if err != nil && !shared.IsNotFound(err) {
			return nil, err
		}
		if other != nil {
			return nil, shared.NewDomainError("DUPLICATE_EQUIPMENT_NAME", "Equipment with this name already exists")
		}
		equipment.Name = *req.Name
	}
	if req.Location != nil {
		equipment.Location = *req.Location
	}
	if req.Notes != nil {
		equipment.Notes = *req.Notes
	}
	if req.Status != nil {
		if err := equipment.SetStatus(compliance.EquipmentStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.equipmentRepo.Save(ctx, equipment); err != nil {
		return nil, err
	}

	response := ToEquipmentResponse(equipment)
	return &response, nil
}

// RecordService stamps a completed service visit and its next due date
func (s *EquipmentService) RecordService(ctx context.Context, id uuid.UUID, req RecordServiceRequest) (*EquipmentResponse, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := equipment.RecordService(req.ServicedOn, req.NextDue); err != nil {
		return nil, err
	}

	if err := s.equipmentRepo.Save(ctx, equipment); err != nil {
		return nil, err
	}

	response := ToEquipmentResponse(equipment)
	return &response, nil
}

// RecordCalibration stamps a calibration check
func (s *EquipmentService) RecordCalibration(ctx context.Context, id uuid.UUID, req RecordCalibrationRequest) (*EquipmentResponse, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := equipment.RecordCalibration(req.CalibratedOn); err != nil {
		return nil, err
	}

	if err := s.equipmentRepo.Save(ctx, equipment); err != nil {
		return nil, err
	}

	response := ToEquipmentResponse(equipment)
	return &response, nil
}

// GetByID retrieves a piece of equipment by ID
func (s *EquipmentService) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentResponse, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEquipmentResponse(equipment)
	return &response, nil
}

// List retrieves equipment matching the filter. With ServiceDueOnly set it
// returns only equipment whose next service date has passed.
func (s *EquipmentService) List(ctx context.Context, filter EquipmentListFilter) (*shared.Paginated[EquipmentResponse], error) {
	if filter.ServiceDueOnly {
		due, err := s.equipmentRepo.FindServiceDueBefore(ctx, time.Now())
		if err != nil {
			return nil, err
		}
		page := shared.NewPaginated(ToEquipmentResponses(due), int64(len(due)), 1, len(due))
		return &page, nil
	}

	domainFilter := equipmentDomainFilter(filter)

	items, err := s.equipmentRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.equipmentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToEquipmentResponses(items), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// DeleteEquipment removes a piece of equipment from the register
func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return s.equipmentRepo.Delete(ctx, id)
}

func equipmentDomainFilter(filter EquipmentListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Search != "" {
		domainFilter.Search = filter.Search
	}
	return domainFilter
}
