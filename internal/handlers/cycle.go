package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/menstrualmentor/backend/internal/apierror"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/service"
)

type CycleHandler struct {
	cycleService service.CycleService
}

// NewCycleHandler creates a new cycle handler
func NewCycleHandler(cycleService service.CycleService) *CycleHandler {
	return &CycleHandler{
		cycleService: cycleService,
	}
}

// CreateCycle handles POST /api/v1/cycles
func (h *CycleHandler) CreateCycle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.CreateCycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBindingError(apierror.GetRequestID(c), err))
		return
	}

	cycle, err := h.cycleService.CreateCycle(c.Request.Context(), userID, &req)
	if err != nil {
		writeInternal(c, "failed to create cycle", err)
		return
	}

	c.JSON(http.StatusCreated, cycle)
}

// ListCycles handles GET /api/v1/cycles?limit=
func (h *CycleHandler) ListCycles(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "limit", Message: "must be a positive integer", Code: "invalid_type"},
			}))
			return
		}
		limit = n
	}

	cycles, err := h.cycleService.ListCycles(c.Request.Context(), userID, limit)
	if err != nil {
		writeInternal(c, "failed to list cycles", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cycles": cycles, "count": len(cycles)})
}

// DeleteCycle handles DELETE /api/v1/cycles/:id
func (h *CycleHandler) DeleteCycle(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	cycleID := c.Param("id")
	requestID := apierror.GetRequestID(c)

	err := h.cycleService.DeleteCycle(c.Request.Context(), userID, cycleID)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrInvalidID):
		apierror.WriteProblem(c, apierror.NewInvalidIDError(requestID, "id", cycleID))
	case errors.Is(err, service.ErrCycleNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Cycle", cycleID))
	case errors.Is(err, service.ErrForbidden):
		apierror.WriteProblem(c, apierror.NewForbiddenError(requestID))
	default:
		writeInternal(c, "failed to delete cycle", err)
	}
}
