package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/menstrualmentor/backend/internal/logger"
	"github.com/menstrualmentor/backend/internal/metrics"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/repository"
)

// Sampling budget for SampleRedIntensity
const (
	SampleByteBudget = 30000
	SampleStride     = 4
)

// SampleRedIntensity averages every SampleStride-th byte within the first
// SampleByteBudget bytes of the payload of a base64 data URL
// ("data:image/png;base64,...."). The bytes are read as encoded, without
// decompressing the image. An empty payload averages to 0.
func SampleRedIntensity(dataURL string) (float64, error) {
	_, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		return 0, fmt.Errorf("%w: expected a data URL", ErrInvalidImage)
	}

	raw, err := decodeBase64Payload(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	limit := min(len(raw), SampleByteBudget)

	var sum, samples int
	for i := 0; i < limit; i += SampleStride {
		sum += int(raw[i])
		samples++
	}

	if samples == 0 {
		return 0, nil
	}
	return float64(sum) / float64(samples), nil
}

// decodeBase64Payload accepts what browsers' atob accepts: ASCII whitespace
// anywhere and missing "=" padding.
func decodeBase64Payload(payload string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, payload)

	if len(compact)%4 == 0 {
		return base64.StdEncoding.DecodeString(compact)
	}
	return base64.RawStdEncoding.DecodeString(compact)
}

type imageAnalysisService struct {
	repo    repository.ImageAnalysisRepository
	metrics *metrics.Metrics
}

// NewImageAnalysisService creates a new image analysis service. m may be nil.
func NewImageAnalysisService(repo repository.ImageAnalysisRepository, m *metrics.Metrics) ImageAnalysisService {
	return &imageAnalysisService{repo: repo, metrics: m}
}

func (s *imageAnalysisService) AnalyzeImage(ctx context.Context, userID, dataURL string) (*models.ImageAnalysisResponse, error) {
	intensity, err := SampleRedIntensity(dataURL)
	if err != nil {
		return nil, err
	}

	assessment := analysis.ClassifyIntensity(intensity)
	s.metrics.RecordImageRisk(string(assessment.Level))

	log := logger.Ctx(ctx)
	log.Info("image classified",
		logger.Float64("red_intensity", intensity),
		logger.String("risk_level", string(assessment.Level)),
	)

	record := &models.ImageAnalysis{
		UserID:         userID,
		ImageURL:       models.ImagePlaceholderURL,
		RedIntensity:   intensity,
		RiskLevel:      assessment.Level,
		AnalysisResult: assessment.Analysis,
	}
	// The classification is still returned when the history write fails
	if err := s.repo.Create(ctx, record); err != nil {
		log.Warn("failed to store image analysis", logger.Err(err))
	}

	return &models.ImageAnalysisResponse{
		RiskLevel:    assessment.Level,
		RedIntensity: intensity,
		Analysis:     assessment.Analysis,
	}, nil
}
