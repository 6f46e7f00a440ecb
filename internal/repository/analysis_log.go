package repository

import (
	"context"
	"fmt"

	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/pkg/supabase"
)

type textAnalysisRepository struct {
	client *supabase.Client
}

// NewTextAnalysisRepository creates a repository backed by the text_analyses table
func NewTextAnalysisRepository(client *supabase.Client) TextAnalysisRepository {
	return &textAnalysisRepository{client: client}
}

func (r *textAnalysisRepository) Create(ctx context.Context, record *models.TextAnalysis) error {
	data := map[string]any{
		"user_id":     record.UserID,
		"input_text":  record.InputText,
		"ai_response": record.AIResponse,
	}

	if _, err := r.client.Insert(ctx, "text_analyses", data); err != nil {
		return fmt.Errorf("failed to store text analysis: %w", err)
	}
	return nil
}

type imageAnalysisRepository struct {
	client *supabase.Client
}

// NewImageAnalysisRepository creates a repository backed by the image_analyses table
func NewImageAnalysisRepository(client *supabase.Client) ImageAnalysisRepository {
	return &imageAnalysisRepository{client: client}
}

func (r *imageAnalysisRepository) Create(ctx context.Context, record *models.ImageAnalysis) error {
	data := map[string]any{
		"user_id":         record.UserID,
		"image_url":       record.ImageURL,
		"red_intensity":   record.RedIntensity,
		"risk_level":      record.RiskLevel,
		"analysis_result": record.AnalysisResult,
	}

	if _, err := r.client.Insert(ctx, "image_analyses", data); err != nil {
		return fmt.Errorf("failed to store image analysis: %w", err)
	}
	return nil
}
