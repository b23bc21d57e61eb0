package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// InventorySortFields contains allowed sort fields for inventory items
var InventorySortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"product_name":  true,
	"sku":           true,
	"category":      true,
	"stock_level":   true,
	"unit_price":    true,
	"reorder_point": true,
}

// MovementSortFields contains allowed sort fields for inventory movements
var MovementSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"movement_type":  true,
	"quantity":       true,
	"movement_date":  true,
	"reference_type": true,
}

// BatchRecordSortFields contains allowed sort fields for batch records
var BatchRecordSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"batch_number": true,
	"product_name": true,
	"batch_date":   true,
	"bag_count":    true,
	"started_at":   true,
	"finished_at":  true,
}

// RecipeSortFields contains allowed sort fields for recipes
var RecipeSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"is_active":  true,
}

// FinalProductSortFields contains allowed sort fields for final products
var FinalProductSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"name":               true,
	"category":           true,
	"unit_selling_price": true,
	"is_active":          true,
}

// RawMaterialSortFields contains allowed sort fields for raw materials
var RawMaterialSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"unit":       true,
	"unit_cost":  true,
	"is_active":  true,
}

// CategorySortFields contains allowed sort fields for product categories
var CategorySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"sort_order": true,
	"status":     true,
}

// SupplierSortFields contains allowed sort fields for suppliers
var SupplierSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"status":         true,
	"lead_time_days": true,
}

// SalesOrderSortFields contains allowed sort fields for sales orders
var SalesOrderSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"order_number":  true,
	"customer_name": true,
	"order_date":    true,
	"status":        true,
	"order_total":   true,
	"confirmed_at":  true,
	"delivered_at":  true,
}

// EquipmentSortFields contains allowed sort fields for equipment
var EquipmentSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"name":             true,
	"status":           true,
	"next_service_due": true,
	"last_serviced_on": true,
}

// ComplianceDocumentSortFields contains allowed sort fields for compliance documents
var ComplianceDocumentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"category":   true,
	"review_due": true,
}
