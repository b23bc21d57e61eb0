package compliance

import (
	"strings"
	"time"

	"github.com/blendworks/backend/internal/domain/shared"
)

// EquipmentStatus represents the working state of a piece of equipment
type EquipmentStatus string

const (
	EquipmentStatusInService    EquipmentStatus = "in_service"
	EquipmentStatusMaintenance  EquipmentStatus = "maintenance"
	EquipmentStatusOutOfService EquipmentStatus = "out_of_service"
)

// Equipment is a registered piece of production equipment with its service
// and calibration history dates.
type Equipment struct {
	shared.BaseAggregateRoot
	Name             string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_equipment_name"`
	SerialNumber     string          `gorm:"type:varchar(100)"`
	Location         string          `gorm:"type:varchar(200)"`
	Status           EquipmentStatus `gorm:"type:varchar(20);not null;default:'in_service'"`
	PurchasedOn      *time.Time      `gorm:"type:date"`
	LastServicedOn   *time.Time      `gorm:"type:date"`
	NextServiceDue   *time.Time      `gorm:"type:date"`
	LastCalibratedOn *time.Time      `gorm:"type:date"`
	Notes            string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Equipment) TableName() string {
	return "equipment"
}

// NewEquipment registers a piece of equipment
func NewEquipment(name, serialNumber, location string) (*Equipment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Equipment name cannot be empty")
	}

	return &Equipment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		SerialNumber:      serialNumber,
		Location:          location,
		Status:            EquipmentStatusInService,
	}, nil
}

// RecordService stamps a completed service and schedules the next one
func (e *Equipment) RecordService(servicedOn time.Time, nextDue *time.Time) error {
	if servicedOn.IsZero() {
		return shared.NewDomainError("INVALID_SERVICE_DATE", "Service date is required")
	}
	if nextDue != nil && nextDue.Before(servicedOn) {
		return shared.NewDomainError("INVALID_SERVICE_DATE", "Next service date cannot precede the service date")
	}
	e.LastServicedOn = &servicedOn
	e.NextServiceDue = nextDue
	e.touch()
	return nil
}

// RecordCalibration stamps a completed calibration check
func (e *Equipment) RecordCalibration(calibratedOn time.Time) error {
	if calibratedOn.IsZero() {
		return shared.NewDomainError("INVALID_CALIBRATION_DATE", "Calibration date is required")
	}
	e.LastCalibratedOn = &calibratedOn
	e.touch()
	return nil
}

// SetStatus moves the equipment between service states
func (e *Equipment) SetStatus(status EquipmentStatus) error {
	switch status {
	case EquipmentStatusInService, EquipmentStatusMaintenance, EquipmentStatusOutOfService:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown equipment status")
	}
	e.Status = status
	e.touch()
	return nil
}

// IsServiceOverdue reports whether the next service date has passed
func (e *Equipment) IsServiceOverdue(now time.Time) bool {
	return e.NextServiceDue != nil && e.NextServiceDue.Before(now)
}

func (e *Equipment) touch() {
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}
