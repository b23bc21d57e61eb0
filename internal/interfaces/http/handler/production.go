package handler

import (
	productionapp "github.com/blendworks/backend/internal/application/production"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductionHandler handles batch manufacturing API endpoints
type ProductionHandler struct {
	BaseHandler
	batchService *productionapp.BatchService
}

// NewProductionHandler creates a new ProductionHandler
func NewProductionHandler(batchService *productionapp.BatchService) *ProductionHandler {
	return &ProductionHandler{
		batchService: batchService,
	}
}

// CreateBatch godoc
// @ID           createBatch
// @Summary      Open a batch manufacturing record
// @Description  Open a new batch run, consuming the listed ingredients from stock
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        request body productionapp.CreateBatchRequest true "Batch details"
// @Success      201 {object} APIResponse[productionapp.BatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /production/batches [post]
func (h *ProductionHandler) CreateBatch(c *gin.Context) {
	var req productionapp.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batch, err := h.batchService.CreateBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, batch)
}

// UpdateBatch godoc
// @ID           updateBatch
// @Summary      Update a batch manufacturing record
// @Description  Edit a batch record. Changed ingredient quantities are reconciled against stock as deltas so repeated edits never double-consume
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Param        request body productionapp.UpdateBatchRequest true "Batch details with current version"
// @Success      200 {object} APIResponse[productionapp.BatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /production/batches/{id} [put]
func (h *ProductionHandler) UpdateBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var req productionapp.UpdateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batch, err := h.batchService.UpdateBatch(c.Request.Context(), batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, batch)
}

// FinishBatch godoc
// @ID           finishBatch
// @Summary      Finish a batch run
// @Description  Mark a batch as completed, stamping the finish time
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Param        request body productionapp.FinishBatchRequest false "Optional finish time"
// @Success      200 {object} APIResponse[productionapp.BatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /production/batches/{id}/finish [post]
func (h *ProductionHandler) FinishBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	var req productionapp.FinishBatchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	batch, err := h.batchService.FinishBatch(c.Request.Context(), batchID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, batch)
}

// ReopenBatch godoc
// @ID           reopenBatch
// @Summary      Reopen a finished batch
// @Description  Clear the finish time so a batch can be corrected
// @Tags         production
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[productionapp.BatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      422 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /production/batches/{id}/reopen [post]
func (h *ProductionHandler) ReopenBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	batch, err := h.batchService.ReopenBatch(c.Request.Context(), batchID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, batch)
}

// GetBatch godoc
// @ID           getBatch
// @Summary      Get a batch record
// @Description  Retrieve a batch manufacturing record with its ingredients and checklist
// @Tags         production
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[productionapp.BatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /production/batches/{id} [get]
func (h *ProductionHandler) GetBatch(c *gin.Context) {
	batchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	batch, err := h.batchService.GetByID(c.Request.Context(), batchID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, batch)
}

// GetBatchByNumber godoc
// @ID           getBatchByNumber
// @Summary      Get a batch record by batch number
// @Description  Retrieve a batch manufacturing record by its human-readable batch number
// @Tags         production
// @Produce      json
// @Param        number path string true "Batch number"
// @Success      200 {object} APIResponse[productionapp.BatchResponse]
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /production/batches/by-number/{number} [get]
func (h *ProductionHandler) GetBatchByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Batch number is required")
		return
	}

	batch, err := h.batchService.GetByBatchNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, batch)
}

// ListBatches godoc
// @ID           listBatches
// @Summary      List batch records
// @Description  Retrieve batch manufacturing records with filtering and pagination
// @Tags         production
// @Produce      json
// @Param        product_name query string false "Filter by product name"
// @Param        open_only query boolean false "Only unfinished batches"
// @Param        start_date query string false "Batches on or after this date" format(date)
// @Param        end_date query string false "Batches on or before this date" format(date)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]productionapp.BatchResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /production/batches [get]
func (h *ProductionHandler) ListBatches(c *gin.Context) {
	var filter productionapp.BatchListFilter
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

	page, err := h.batchService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}
