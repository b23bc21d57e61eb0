package compliance

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/shared"
)

// MaxDocumentFileSize is the maximum allowed upload size (50MB)
const MaxDocumentFileSize = 50 * 1024 * 1024

// DocumentCategory classifies a compliance document
type DocumentCategory string

const (
	DocumentCategoryHACCP       DocumentCategory = "haccp"
	DocumentCategoryHygiene     DocumentCategory = "hygiene"
	DocumentCategoryAllergen    DocumentCategory = "allergen"
	DocumentCategoryCertificate DocumentCategory = "certificate"
	DocumentCategoryPolicy      DocumentCategory = "policy"
	DocumentCategoryOther       DocumentCategory = "other"
)

// IsValid checks if the category is known
func (c DocumentCategory) IsValid() bool {
	switch c {
	case DocumentCategoryHACCP, DocumentCategoryHygiene, DocumentCategoryAllergen,
		DocumentCategoryCertificate, DocumentCategoryPolicy, DocumentCategoryOther:
		return true
	default:
		return false
	}
}

// ComplianceDocument is a versioned document kept for audits. The aggregate
// tracks which stored version is current; file bytes live in object storage.
type ComplianceDocument struct {
	shared.BaseAggregateRoot
	Title            string           `gorm:"type:varchar(200);not null;uniqueIndex:idx_compliance_doc_title"`
	Category         DocumentCategory `gorm:"type:varchar(30);not null;default:'other'"`
	Description      string           `gorm:"type:text"`
	CurrentVersionNo int              `gorm:"not null;default:0"`
	ReviewDue        *time.Time       `gorm:"type:date"`
	IsArchived       bool             `gorm:"not null;default:false"`

	Versions []DocumentVersion `gorm:"foreignKey:DocumentID;references:ID"`
}

// TableName returns the table name for GORM
func (ComplianceDocument) TableName() string {
	return "compliance_documents"
}

// DocumentVersion is one uploaded revision of a compliance document
type DocumentVersion struct {
	shared.BaseEntity
	DocumentID  uuid.UUID `gorm:"type:uuid;not null;index:idx_document_version_doc"`
	VersionNo   int       `gorm:"not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	FileSize    int64     `gorm:"not null"`
	StorageKey  string    `gorm:"type:varchar(500);not null"`
	UploadedBy  string    `gorm:"type:varchar(100)"`
	ChangeNote  string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DocumentVersion) TableName() string {
	return "document_versions"
}

// NewComplianceDocument creates a document with no versions yet
func NewComplianceDocument(title string, category DocumentCategory) (*ComplianceDocument, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Document title cannot be empty")
	}
	if category == "" {
		category = DocumentCategoryOther
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown document category")
	}

	return &ComplianceDocument{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Category:          category,
		Versions:          make([]DocumentVersion, 0),
	}, nil
}

// AddVersion records a newly uploaded revision and makes it current
func (d *ComplianceDocument) AddVersion(fileName, contentType, storageKey, uploadedBy, changeNote string, fileSize int64) (*DocumentVersion, error) {
	if d.IsArchived {
		return nil, shared.NewDomainError("DOCUMENT_ARCHIVED", "Cannot add versions to an archived document")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if fileSize <= 0 {
		return nil, shared.NewDomainError("INVALID_FILE_SIZE", "File size must be positive")
	}
	if fileSize > MaxDocumentFileSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	version := DocumentVersion{
		BaseEntity:  shared.NewBaseEntity(),
		DocumentID:  d.ID,
		VersionNo:   d.CurrentVersionNo + 1,
		FileName:    fileName,
		ContentType: contentType,
		FileSize:    fileSize,
		StorageKey:  storageKey,
		UploadedBy:  uploadedBy,
		ChangeNote:  changeNote,
	}

	d.Versions = append(d.Versions, version)
	d.CurrentVersionNo = version.VersionNo
	d.touch()

	return &version, nil
}

// CurrentVersion returns the latest revision, or nil when none uploaded
func (d *ComplianceDocument) CurrentVersion() *DocumentVersion {
	for i := range d.Versions {
		if d.Versions[i].VersionNo == d.CurrentVersionNo {
			return &d.Versions[i]
		}
	}
	return nil
}

// SetReviewDue schedules the next review date
func (d *ComplianceDocument) SetReviewDue(due time.Time) error {
	if due.IsZero() {
		return shared.NewDomainError("INVALID_REVIEW_DATE", "Review date is required")
	}
	d.ReviewDue = &due
	d.touch()
	return nil
}

// Archive retires the document from active use
func (d *ComplianceDocument) Archive() error {
	if d.IsArchived {
		return shared.NewDomainError("ALREADY_ARCHIVED", "Document is already archived")
	}
	d.IsArchived = true
	d.touch()
	return nil
}

// Unarchive returns the document to active use
func (d *ComplianceDocument) Unarchive() error {
	if !d.IsArchived {
		return shared.NewDomainError("NOT_ARCHIVED", "Document is not archived")
	}
	d.IsArchived = false
	d.touch()
	return nil
}

// IsReviewOverdue reports whether the review date has passed
func (d *ComplianceDocument) IsReviewOverdue(now time.Time) bool {
	return d.ReviewDue != nil && d.ReviewDue.Before(now)
}

func (d *ComplianceDocument) touch() {
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
}
