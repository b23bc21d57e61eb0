package compliance

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blendworks/backend/internal/domain/compliance"
	"github.com/blendworks/backend/internal/domain/shared"
)

// AllowedContentTypes defines the whitelist of allowed content types for
// document uploads. Executables and scripts are rejected, and SVG is excluded
// because it can carry embedded scripts.
var AllowedContentTypes = map[string]bool{
	// Images
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/tiff": true,
	// Documents
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	// Text
	"text/plain": true,
	"text/csv":   true,
	// Archives
	"application/zip": true,
}

// ObjectStorageService defines the interface for object storage operations.
// Implemented by the infrastructure layer (S3 or compatible).
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file.
	// Returns the upload URL and expiration time.
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a file.
	// Returns the download URL and expiration time.
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// DocumentServiceConfig holds configuration for the document service
type DocumentServiceConfig struct {
	// UploadURLExpiry is the duration for which upload URLs are valid
	UploadURLExpiry time.Duration
	// DownloadURLExpiry is the duration for which download URLs are valid
	DownloadURLExpiry time.Duration
}

// DefaultDocumentServiceConfig returns the default configuration
func DefaultDocumentServiceConfig() DocumentServiceConfig {
	return DocumentServiceConfig{
		UploadURLExpiry:   15 * time.Minute,
		DownloadURLExpiry: 1 * time.Hour,
	}
}

// DocumentService manages the audit document register and its versions
type DocumentService struct {
	documentRepo   compliance.ComplianceDocumentRepository
	storageService ObjectStorageService
	config         DocumentServiceConfig
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo compliance.ComplianceDocumentRepository,
	storageService ObjectStorageService,
) *DocumentService {
	return &DocumentService{
		documentRepo:   documentRepo,
		storageService: storageService,
		config:         DefaultDocumentServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *DocumentService) SetConfig(config DocumentServiceConfig) {
	s.config = config
}

// CreateDocument registers a document shell with no versions yet
func (s *DocumentService) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*DocumentResponse, error) {
	existing, err := s.documentRepo.FindByTitle(ctx, req.Title)
	if err != nil && !shared.IsNotFound(err) {
		return nil, fmt.Errorf("checking document title: %w", err)
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_DOCUMENT_TITLE", "A document with this title already exists")
	}

	doc, err := compliance.NewComplianceDocument(req.Title, compliance.DocumentCategory(req.Category))
	if err != nil {
		return nil, err
	}
	doc.Description = req.Description

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// InitiateUpload validates the upload and returns a presigned upload URL
// with the storage key the client must echo back on confirmation.
func (s *DocumentService) InitiateUpload(ctx context.Context, documentID uuid.UUID, req InitiateUploadRequest) (*InitiateUploadResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.IsArchived {
		return nil, shared.NewDomainError("DOCUMENT_ARCHIVED", "Cannot upload versions to an archived document")
	}

	if !AllowedContentTypes[req.ContentType] {
		return nil, shared.NewDomainError("DISALLOWED_CONTENT_TYPE",
			fmt.Sprintf("Content type '%s' is not allowed. Allowed types: images, PDF, Office documents, and text files.", req.ContentType))
	}
	if req.FileSize <= 0 {
		return nil, shared.NewDomainError("INVALID_FILE_SIZE", "File size must be positive")
	}
	if req.FileSize > compliance.MaxDocumentFileSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	}

	storageKey := generateStorageKey(doc.ID, req.FileName)

	uploadURL, expiresAt, err := s.storageService.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		return nil, shared.NewDomainError("UPLOAD_URL_FAILED", "Failed to generate upload URL")
	}

	return &InitiateUploadResponse{
		StorageKey: storageKey,
		UploadURL:  uploadURL,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmVersion verifies the uploaded object exists and records it as the
// document's current version.
func (s *DocumentService) ConfirmVersion(ctx context.Context, documentID uuid.UUID, req ConfirmVersionRequest) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storageService.ObjectExists(ctx, req.StorageKey)
	if err != nil {
		return nil, shared.NewDomainError("STORAGE_CHECK_FAILED", "Failed to verify upload")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "File not found in storage. Please upload the file first.")
	}

	if _, err := doc.AddVersion(req.FileName, req.ContentType, req.StorageKey, req.UploadedBy, req.ChangeNote, req.FileSize); err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	response := ToDocumentResponse(doc)
	return &response, nil
}

// GetDownloadURL returns a presigned download URL for a stored revision.
// With versionNo 0 the current version is served.
func (s *DocumentService) GetDownloadURL(ctx context.Context, documentID uuid.UUID, versionNo int) (*DownloadURLResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	var version *compliance.DocumentVersion
	if versionNo == 0 {
		version = doc.CurrentVersion()
	} else {
		for i := range doc.Versions {
			if doc.Versions[i].VersionNo == versionNo {
				version = &doc.Versions[i]
				break
			}
		}
	}
	if version == nil {
		return nil, shared.NewDomainError("VERSION_NOT_FOUND", "Document has no such version")
	}

	url, expiresAt, err := s.storageService.GenerateDownloadURL(ctx, version.StorageKey, s.config.DownloadURLExpiry)
	if err != nil {
		return nil, shared.NewDomainError("DOWNLOAD_URL_FAILED", "Failed to generate download URL")
	}

	return &DownloadURLResponse{
		DownloadURL: url,
		FileName:    version.FileName,
		ExpiresAt:   expiresAt,
	}, nil
}

// SetReviewDue schedules the next review date
func (s *DocumentService) SetReviewDue(ctx context.Context, documentID uuid.UUID, req SetReviewDueRequest) (*DocumentResponse, error) {
	return s.mutate(ctx, documentID, func(doc *compliance.ComplianceDocument) error {
		return doc.SetReviewDue(req.ReviewDue)
	})
}

// ArchiveDocument retires a document from active use. Stored objects are
// kept so past audits remain retrievable.
func (s *DocumentService) ArchiveDocument(ctx context.Context, documentID uuid.UUID) (*DocumentResponse, error) {
	return s.mutate(ctx, documentID, func(doc *compliance.ComplianceDocument) error {
		return doc.Archive()
	})
}

// UnarchiveDocument returns a document to active use
func (s *DocumentService) UnarchiveDocument(ctx context.Context, documentID uuid.UUID) (*DocumentResponse, error) {
	return s.mutate(ctx, documentID, func(doc *compliance.ComplianceDocument) error {
		return doc.Unarchive()
	})
}

// GetByID retrieves a document with all its versions
func (s *DocumentService) GetByID(ctx context.Context, documentID uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	response := ToDocumentResponse(doc)
	return &response, nil
}

// List retrieves documents matching the filter
func (s *DocumentService) List(ctx context.Context, filter DocumentListFilter) (*shared.Paginated[DocumentResponse], error) {
	if filter.ReviewDueOnly {
		due, err := s.documentRepo.FindReviewDueBefore(ctx, time.Now())
		if err != nil {
			return nil, err
		}
		page := shared.NewPaginated(ToDocumentResponses(due), int64(len(due)), 1, len(due))
		return &page, nil
	}

	domainFilter := documentDomainFilter(filter)

	var (
		docs []compliance.ComplianceDocument
		err  error
	)
	if filter.Category != "" {
		category := compliance.DocumentCategory(filter.Category)
		if !category.IsValid() {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown document category")
		}
		docs, err = s.documentRepo.FindByCategory(ctx, category, domainFilter)
	} else {
		docs, err = s.documentRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.documentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToDocumentResponses(docs), total, domainFilter.Page, domainFilter.PageSize)
	return &page, nil
}

// DeleteDocument removes a document, its version rows, and its stored objects
func (s *DocumentService) DeleteDocument(ctx context.Context, documentID uuid.UUID) error {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, documentID); err != nil {
		return err
	}

	// Storage cleanup is best effort; orphaned objects are harmless.
	for i := range doc.Versions {
		_ = s.storageService.DeleteObject(ctx, doc.Versions[i].StorageKey)
	}
	return nil
}

func (s *DocumentService) mutate(ctx context.Context, documentID uuid.UUID, fn func(*compliance.ComplianceDocument) error) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}
	response := ToDocumentResponse(doc)
	return &response, nil
}

// generateStorageKey builds a collision-free object key that keeps the
// original extension for content sniffing on download.
func generateStorageKey(documentID uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("compliance/%s/%s%s", documentID, uuid.New(), ext)
}

func documentDomainFilter(filter DocumentListFilter) shared.Filter {
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
