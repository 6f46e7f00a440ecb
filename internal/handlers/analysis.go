package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/menstrualmentor/backend/internal/apierror"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/service"
)

type AnalysisHandler struct {
	cycleService service.CycleService
	imageService service.ImageAnalysisService
	textService  service.TextAnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(cycleService service.CycleService, imageService service.ImageAnalysisService, textService service.TextAnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		cycleService: cycleService,
		imageService: imageService,
		textService:  textService,
	}
}

// GetCycleAnalysis handles GET /api/v1/analysis/cycle.
// Insufficient data is a 200 with data_sufficient=false, not an error.
func (h *AnalysisHandler) GetCycleAnalysis(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.cycleService.AnalyzeCycle(c.Request.Context(), userID)
	if err != nil {
		writeInternal(c, "failed to analyze cycles", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDetailedAnalysis handles GET /api/v1/analysis/detailed
func (h *AnalysisHandler) GetDetailedAnalysis(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.cycleService.AnalyzeDetailed(c.Request.Context(), userID)
	if err != nil {
		writeInternal(c, "failed to analyze cycle patterns", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeImage handles POST /api/v1/analysis/image
func (h *AnalysisHandler) AnalyzeImage(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBindingError(apierror.GetRequestID(c), err))
		return
	}

	resp, err := h.imageService.AnalyzeImage(c.Request.Context(), userID, req.Image)
	if errors.Is(err, service.ErrInvalidImage) {
		apierror.WriteProblem(c, apierror.NewInvalidImageError(apierror.GetRequestID(c), err.Error()))
		return
	}
	if err != nil {
		writeInternal(c, "failed to analyze image", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AnalyzeText handles POST /api/v1/analysis/text
func (h *AnalysisHandler) AnalyzeText(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req models.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierror.WriteProblem(c, apierror.NewBindingError(apierror.GetRequestID(c), err))
		return
	}

	resp, err := h.textService.AnalyzeText(c.Request.Context(), userID, req.Text)
	if errors.Is(err, service.ErrEmptyText) {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "text", Message: "is required", Code: "required"},
		}))
		return
	}
	if err != nil {
		writeInternal(c, "failed to analyze text", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
