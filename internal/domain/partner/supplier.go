package partner

import (
	"strings"
	"time"

	"github.com/blendworks/backend/internal/domain/shared"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
	SupplierStatusBlocked  SupplierStatus = "blocked" // Blocked due to quality or payment issues
)

// Supplier is a source of raw materials or packaging. It is the aggregate
// root for supplier-related operations.
type Supplier struct {
	shared.BaseAggregateRoot
	Name          string         `gorm:"type:varchar(200);not null;uniqueIndex:idx_supplier_name"`
	Status        SupplierStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName   string         `gorm:"type:varchar(100)"`
	Phone         string         `gorm:"type:varchar(50);index"`
	Email         string         `gorm:"type:varchar(200);index"`
	AddressLine   string         `gorm:"type:text"`
	City          string         `gorm:"type:varchar(100)"`
	Postcode      string         `gorm:"type:varchar(20)"`
	Country       string         `gorm:"type:varchar(100);default:'United Kingdom'"`
	AccountNumber string         `gorm:"type:varchar(100)"` // Our account reference with this supplier
	LeadTimeDays  int            `gorm:"not null;default:0"`
	Notes         string         `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(name string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}

	supplier := &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Status:            SupplierStatusActive,
		Country:           "United Kingdom",
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name, notes string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.Notes = notes
	s.touch()
	return nil
}

// SetContact updates the supplier's contact details
func (s *Supplier) SetContact(contactName, phone, email string) {
	s.ContactName = contactName
	s.Phone = phone
	s.Email = email
	s.touch()
}

// SetAddress updates the supplier's address
func (s *Supplier) SetAddress(addressLine, city, postcode, country string) {
	s.AddressLine = addressLine
	s.City = city
	s.Postcode = postcode
	if country != "" {
		s.Country = country
	}
	s.touch()
}

// SetLeadTime records the usual delivery lead time in days
func (s *Supplier) SetLeadTime(days int) error {
	if days < 0 {
		return shared.NewDomainError("INVALID_LEAD_TIME", "Lead time cannot be negative")
	}
	s.LeadTimeDays = days
	s.touch()
	return nil
}

// Activate activates the supplier
func (s *Supplier) Activate() error {
	if s.Status == SupplierStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Supplier is already active")
	}
	s.Status = SupplierStatusActive
	s.touch()
	return nil
}

// Deactivate deactivates the supplier
func (s *Supplier) Deactivate() error {
	if s.Status == SupplierStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Supplier is already inactive")
	}
	s.Status = SupplierStatusInactive
	s.touch()
	return nil
}

// Block blocks the supplier from new receipts
func (s *Supplier) Block(reason string) error {
	if s.Status == SupplierStatusBlocked {
		return shared.NewDomainError("ALREADY_BLOCKED", "Supplier is already blocked")
	}
	s.Status = SupplierStatusBlocked
	if reason != "" {
		s.Notes = reason
	}
	s.touch()
	return nil
}

// IsActive returns true if the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}

func (s *Supplier) touch() {
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

func validateSupplierName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
