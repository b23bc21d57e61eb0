package compliance

import (
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/compliance"
)

// CreateEquipmentRequest registers a piece of equipment
type CreateEquipmentRequest struct {
	Name         string     `json:"name" binding:"required"`
	SerialNumber string     `json:"serial_number"`
	Location     string     `json:"location"`
	PurchasedOn  *time.Time `json:"purchased_on"`
	Notes        string     `json:"notes"`
}

// UpdateEquipmentRequest changes equipment details
type UpdateEquipmentRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
}

// RecordServiceRequest stamps a completed service visit
type RecordServiceRequest struct {
	ServicedOn time.Time  `json:"serviced_on" binding:"required"`
	NextDue    *time.Time `json:"next_due"`
}

// RecordCalibrationRequest stamps a calibration check
type RecordCalibrationRequest struct {
	CalibratedOn time.Time `json:"calibrated_on" binding:"required"`
}

// EquipmentListFilter represents filter options for equipment lists
type EquipmentListFilter struct {
	ServiceDueOnly bool   `form:"service_due_only"`
	Search         string `form:"search"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// EquipmentResponse represents equipment in API responses
type EquipmentResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	SerialNumber     string     `json:"serial_number,omitempty"`
	Location         string     `json:"location,omitempty"`
	Status           string     `json:"status"`
	PurchasedOn      *time.Time `json:"purchased_on,omitempty"`
	LastServicedOn   *time.Time `json:"last_serviced_on,omitempty"`
	NextServiceDue   *time.Time `json:"next_service_due,omitempty"`
	LastCalibratedOn *time.Time `json:"last_calibrated_on,omitempty"`
	ServiceOverdue   bool       `json:"service_overdue"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	Version          int        `json:"version"`
}

// CreateDocumentRequest registers a compliance document shell
type CreateDocumentRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// InitiateUploadRequest asks for a presigned URL for a new document version
type InitiateUploadRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	FileSize    int64  `json:"file_size" binding:"required,min=1"`
}

// InitiateUploadResponse carries the presigned upload URL and the storage key
// the client must echo back when confirming the version.
type InitiateUploadResponse struct {
	StorageKey string    `json:"storage_key"`
	UploadURL  string    `json:"upload_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ConfirmVersionRequest records an uploaded revision as the current version
type ConfirmVersionRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size" binding:"required,min=1"`
	StorageKey  string `json:"storage_key" binding:"required"`
	UploadedBy  string `json:"uploaded_by"`
	ChangeNote  string `json:"change_note"`
}

// SetReviewDueRequest schedules the next document review
type SetReviewDueRequest struct {
	ReviewDue time.Time `json:"review_due" binding:"required"`
}

// DocumentListFilter represents filter options for document lists
type DocumentListFilter struct {
	Category      string `form:"category"`
	ReviewDueOnly bool   `form:"review_due_only"`
	Search        string `form:"search"`
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// DocumentVersionResponse is one uploaded revision in API responses
type DocumentVersionResponse struct {
	ID          uuid.UUID `json:"id"`
	VersionNo   int       `json:"version_no"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	ChangeNote  string    `json:"change_note,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// DocumentResponse represents a compliance document in API responses
type DocumentResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Title            string                    `json:"title"`
	Category         string                    `json:"category"`
	Description      string                    `json:"description,omitempty"`
	CurrentVersionNo int                       `json:"current_version_no"`
	ReviewDue        *time.Time                `json:"review_due,omitempty"`
	ReviewOverdue    bool                      `json:"review_overdue"`
	IsArchived       bool                      `json:"is_archived"`
	Versions         []DocumentVersionResponse `json:"versions"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
	Version          int                       `json:"version"`
}

// DownloadURLResponse carries a presigned download URL for a stored revision
type DownloadURLResponse struct {
	DownloadURL string    `json:"download_url"`
	FileName    string    `json:"file_name"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ToEquipmentResponse converts domain equipment to its API representation
func ToEquipmentResponse(e *compliance.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:               e.ID,
		Name:             e.Name,
		SerialNumber:     e.SerialNumber,
		Location:         e.Location,
		Status:           string(e.Status),
		PurchasedOn:      e.PurchasedOn,
		LastServicedOn:   e.LastServicedOn,
		NextServiceDue:   e.NextServiceDue,
		LastCalibratedOn: e.LastCalibratedOn,
		ServiceOverdue:   e.IsServiceOverdue(time.Now()),
		Notes:            e.Notes,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		Version:          e.Version,
	}
}

// ToEquipmentResponses converts a slice of domain equipment
func ToEquipmentResponses(items []compliance.Equipment) []EquipmentResponse {
	responses := make([]EquipmentResponse, len(items))
	for i := range items {
		responses[i] = ToEquipmentResponse(&items[i])
	}
	return responses
}

// ToDocumentVersionResponse converts a domain document version
func ToDocumentVersionResponse(v *compliance.DocumentVersion) DocumentVersionResponse {
	return DocumentVersionResponse{
		ID:          v.ID,
		VersionNo:   v.VersionNo,
		FileName:    v.FileName,
		ContentType: v.ContentType,
		FileSize:    v.FileSize,
		UploadedBy:  v.UploadedBy,
		ChangeNote:  v.ChangeNote,
		UploadedAt:  v.CreatedAt,
	}
}

// ToDocumentResponse converts a domain document to its API representation
func ToDocumentResponse(d *compliance.ComplianceDocument) DocumentResponse {
	versions := make([]DocumentVersionResponse, len(d.Versions))
	for i := range d.Versions {
		versions[i] = ToDocumentVersionResponse(&d.Versions[i])
	}
	return DocumentResponse{
		ID:               d.ID,
		Title:            d.Title,
		Category:         string(d.Category),
		Description:      d.Description,
		CurrentVersionNo: d.CurrentVersionNo,
		ReviewDue:        d.ReviewDue,
		ReviewOverdue:    d.IsReviewOverdue(time.Now()),
		IsArchived:       d.IsArchived,
		Versions:         versions,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
		Version:          d.Version,
	}
}

// ToDocumentResponses converts a slice of domain documents
func ToDocumentResponses(docs []compliance.ComplianceDocument) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return responses
}
