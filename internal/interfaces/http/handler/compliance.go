package handler

import (
	"strconv"

	complianceapp "github.com/blendworks/backend/internal/application/compliance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ComplianceHandler handles compliance document and equipment API endpoints
type ComplianceHandler struct {
	BaseHandler
	documentService  *complianceapp.DocumentService
	equipmentService *complianceapp.EquipmentService
}

// NewComplianceHandler creates a new ComplianceHandler
func NewComplianceHandler(documentService *complianceapp.DocumentService, equipmentService *complianceapp.EquipmentService) *ComplianceHandler {
	return &ComplianceHandler{
		documentService:  documentService,
		equipmentService: equipmentService,
	}
}

// CreateDocument godoc
// @ID           createComplianceDocument
// @Summary      Register a compliance document
// @Description  Register a document shell; file revisions are uploaded separately
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Param        request body complianceapp.CreateDocumentRequest true "Document details"
// @Success      201 {object} APIResponse[complianceapp.DocumentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents [post]
func (h *ComplianceHandler) CreateDocument(c *gin.Context) {
	var req complianceapp.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	document, err := h.documentService.CreateDocument(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, document)
}

// InitiateUpload godoc
// @ID           initiateDocumentUpload
// @Summary      Initiate a document version upload
// @Description  Request a presigned URL for uploading a new document revision to object storage
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Param        request body complianceapp.InitiateUploadRequest true "File details"
// @Success      200 {object} APIResponse[complianceapp.InitiateUploadResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id}/upload [post]
func (h *ComplianceHandler) InitiateUpload(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	var req complianceapp.InitiateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	upload, err := h.documentService.InitiateUpload(c.Request.Context(), documentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, upload)
}

// ConfirmVersion godoc
// @ID           confirmDocumentVersion
// @Summary      Confirm an uploaded document version
// @Description  Record an uploaded revision as the document's current version
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Param        request body complianceapp.ConfirmVersionRequest true "Uploaded file details"
// @Success      200 {object} APIResponse[complianceapp.DocumentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id}/versions [post]
func (h *ComplianceHandler) ConfirmVersion(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	var req complianceapp.ConfirmVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	document, err := h.documentService.ConfirmVersion(c.Request.Context(), documentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, document)
}

// GetDownloadURL godoc
// @ID           getDocumentDownloadURL
// @Summary      Get a document download URL
// @Description  Get a presigned download URL for a document version (latest when version is omitted)
// @Tags         compliance
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Param        version query int false "Version number (defaults to current)"
// @Success      200 {object} APIResponse[complianceapp.DownloadURLResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id}/download [get]
func (h *ComplianceHandler) GetDownloadURL(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	versionNo := 0
	if raw := c.Query("version"); raw != "" {
		versionNo, err = strconv.Atoi(raw)
		if err != nil || versionNo < 1 {
			h.BadRequest(c, "Invalid version number")
			return
		}
	}

	download, err := h.documentService.GetDownloadURL(c.Request.Context(), documentID, versionNo)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, download)
}

// SetReviewDue godoc
// @ID           setDocumentReviewDue
// @Summary      Schedule a document review
// @Description  Set the date when a compliance document is next due for review
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Param        request body complianceapp.SetReviewDueRequest true "Review due date"
// @Success      200 {object} APIResponse[complianceapp.DocumentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id}/review-due [put]
func (h *ComplianceHandler) SetReviewDue(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	var req complianceapp.SetReviewDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	document, err := h.documentService.SetReviewDue(c.Request.Context(), documentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, document)
}

// ArchiveDocument godoc
// @ID           archiveComplianceDocument
// @Summary      Archive a compliance document
// @Description  Move a document to the archive; its versions remain downloadable
// @Tags         compliance
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Success      200 {object} APIResponse[complianceapp.DocumentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id}/archive [post]
func (h *ComplianceHandler) ArchiveDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	document, err := h.documentService.ArchiveDocument(c.Request.Context(), documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, document)
}

// UnarchiveDocument godoc
// @ID           unarchiveComplianceDocument
// @Summary      Restore an archived document
// @Description  Return an archived document to the active set
// @Tags         compliance
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Success      200 {object} APIResponse[complianceapp.DocumentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id}/unarchive [post]
func (h *ComplianceHandler) UnarchiveDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	document, err := h.documentService.UnarchiveDocument(c.Request.Context(), documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, document)
}

// GetDocument godoc
// @ID           getComplianceDocument
// @Summary      Get a compliance document
// @Description  Retrieve a compliance document with its version history
// @Tags         compliance
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Success      200 {object} APIResponse[complianceapp.DocumentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id} [get]
func (h *ComplianceHandler) GetDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	document, err := h.documentService.GetByID(c.Request.Context(), documentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, document)
}

// ListDocuments godoc
// @ID           listComplianceDocuments
// @Summary      List compliance documents
// @Description  Retrieve compliance documents with filtering and pagination
// @Tags         compliance
// @Produce      json
// @Param        category query string false "Filter by category"
// @Param        review_due_only query boolean false "Only documents due for review"
// @Param        search query string false "Search by title"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]complianceapp.DocumentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents [get]
func (h *ComplianceHandler) ListDocuments(c *gin.Context) {
	var filter complianceapp.DocumentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	page, err := h.documentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// DeleteDocument godoc
// @ID           deleteComplianceDocument
// @Summary      Delete a compliance document
// @Description  Permanently delete a document and its stored versions
// @Tags         compliance
// @Produce      json
// @Param        id path string true "Document ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /compliance/documents/{id} [delete]
func (h *ComplianceHandler) DeleteDocument(c *gin.Context) {
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID format")
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), documentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateEquipment godoc
// @ID           createEquipment
// @Summary      Register equipment
// @Description  Register a piece of production equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        request body complianceapp.CreateEquipmentRequest true "Equipment details"
// @Success      201 {object} APIResponse[complianceapp.EquipmentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /equipment [post]
func (h *ComplianceHandler) CreateEquipment(c *gin.Context) {
	var req complianceapp.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	equipment, err := h.equipmentService.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, equipment)
}

// UpdateEquipment godoc
// @ID           updateEquipment
// @Summary      Update equipment
// @Description  Change equipment details or status
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        id path string true "Equipment ID" format(uuid)
// @Param        request body complianceapp.UpdateEquipmentRequest true "Fields to update"
// @Success      200 {object} APIResponse[complianceapp.EquipmentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /equipment/{id} [put]
func (h *ComplianceHandler) UpdateEquipment(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid equipment ID format")
		return
	}

	var req complianceapp.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	equipment, err := h.equipmentService.UpdateEquipment(c.Request.Context(), equipmentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, equipment)
}

// RecordService godoc
// @ID           recordEquipmentService
// @Summary      Record an equipment service
// @Description  Stamp a completed service visit and optionally schedule the next one
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        id path string true "Equipment ID" format(uuid)
// @Param        request body complianceapp.RecordServiceRequest true "Service details"
// @Success      200 {object} APIResponse[complianceapp.EquipmentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /equipment/{id}/service [post]
func (h *ComplianceHandler) RecordService(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid equipment ID format")
		return
	}

	var req complianceapp.RecordServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	equipment, err := h.equipmentService.RecordService(c.Request.Context(), equipmentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, equipment)
}

// RecordCalibration godoc
// @ID           recordEquipmentCalibration
// @Summary      Record an equipment calibration
// @Description  Stamp a calibration check on a piece of equipment
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        id path string true "Equipment ID" format(uuid)
// @Param        request body complianceapp.RecordCalibrationRequest true "Calibration details"
// @Success      200 {object} APIResponse[complianceapp.EquipmentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /equipment/{id}/calibration [post]
func (h *ComplianceHandler) RecordCalibration(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid equipment ID format")
		return
	}

	var req complianceapp.RecordCalibrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	equipment, err := h.equipmentService.RecordCalibration(c.Request.Context(), equipmentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, equipment)
}

// GetEquipment godoc
// @ID           getEquipment
// @Summary      Get equipment
// @Description  Retrieve a piece of equipment by ID
// @Tags         equipment
// @Produce      json
// @Param        id path string true "Equipment ID" format(uuid)
// @Success      200 {object} APIResponse[complianceapp.EquipmentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /equipment/{id} [get]
func (h *ComplianceHandler) GetEquipment(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid equipment ID format")
		return
	}

	equipment, err := h.equipmentService.GetByID(c.Request.Context(), equipmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, equipment)
}

// ListEquipment godoc
// @ID           listEquipment
// @Summary      List equipment
// @Description  Retrieve equipment with filtering and pagination
// @Tags         equipment
// @Produce      json
// @Param        service_due_only query boolean false "Only equipment overdue for service"
// @Param        search query string false "Search by name or serial number"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]complianceapp.EquipmentResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /equipment [get]
func (h *ComplianceHandler) ListEquipment(c *gin.Context) {
	var filter complianceapp.EquipmentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	// Set defaults
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	page, err := h.equipmentService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// DeleteEquipment godoc
// @ID           deleteEquipment
// @Summary      Delete equipment
// @Description  Remove a piece of equipment from the register
// @Tags         equipment
// @Produce      json
// @Param        id path string true "Equipment ID" format(uuid)
// @Success      204
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /equipment/{id} [delete]
func (h *ComplianceHandler) DeleteEquipment(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid equipment ID format")
		return
	}

	if err := h.equipmentService.DeleteEquipment(c.Request.Context(), equipmentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
