package partner

import (
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/partner"
)

// CreateSupplierRequest registers a supplier
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactName   string `json:"contact_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	AddressLine   string `json:"address_line"`
	City          string `json:"city"`
	Postcode      string `json:"postcode"`
	Country       string `json:"country"`
	AccountNumber string `json:"account_number"`
	LeadTimeDays  int    `json:"lead_time_days"`
	Notes         string `json:"notes"`
}

// UpdateSupplierRequest updates a supplier
type UpdateSupplierRequest struct {
	Name         string  `json:"name" binding:"required"`
	ContactName  *string `json:"contact_name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	AddressLine  *string `json:"address_line"`
	City         *string `json:"city"`
	Postcode     *string `json:"postcode"`
	Country      *string `json:"country"`
	LeadTimeDays *int    `json:"lead_time_days"`
	Notes        string  `json:"notes"`
}

// ListFilter represents filter options for supplier lists
type ListFilter struct {
	Search     string `form:"search"`
	ActiveOnly *bool  `form:"active_only"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Status        string    `json:"status"`
	ContactName   string    `json:"contact_name,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	AddressLine   string    `json:"address_line,omitempty"`
	City          string    `json:"city,omitempty"`
	Postcode      string    `json:"postcode,omitempty"`
	Country       string    `json:"country"`
	AccountNumber string    `json:"account_number,omitempty"`
	LeadTimeDays  int       `json:"lead_time_days"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// ToSupplierResponse converts a domain supplier to its API representation
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		Status:        string(s.Status),
		ContactName:   s.ContactName,
		Phone:         s.Phone,
		Email:         s.Email,
		AddressLine:   s.AddressLine,
		City:          s.City,
		Postcode:      s.Postcode,
		Country:       s.Country,
		AccountNumber: s.AccountNumber,
		LeadTimeDays:  s.LeadTimeDays,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Version:       s.Version,
	}
}

// ToSupplierResponses converts a slice of domain suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}
