package service

import (
	"context"
	"strings"

	"github.com/menstrualmentor/backend/internal/logger"
	"github.com/menstrualmentor/backend/internal/metrics"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/repository"
)

// AdviceUnavailable is served when no model is configured.
const AdviceUnavailable = "AI analysis is currently unavailable. Here are some general wellness tips:\n\n" +
	"• Stay hydrated by drinking plenty of water\n" +
	"• Get adequate rest (7-9 hours of sleep)\n" +
	"• Eat a balanced diet rich in iron, calcium, and vitamins\n" +
	"• Practice stress-reduction techniques like meditation or yoga\n" +
	"• Light exercise like walking can help with cramps\n" +
	"• Use a heating pad for comfort\n" +
	"• Track your symptoms to identify patterns\n\n" +
	"If symptoms are severe or concerning, please consult a healthcare provider."

// AdviceFallback is served when the model call fails.
const AdviceFallback = "Here are some general wellness tips:\n\n" +
	"• Stay hydrated by drinking plenty of water\n" +
	"• Get adequate rest (7-9 hours of sleep)\n" +
	"• Eat a balanced diet rich in iron, calcium, and vitamins\n" +
	"• Practice stress-reduction techniques\n" +
	"• Light exercise can help with symptoms\n" +
	"• Use heat therapy for cramps\n\n" +
	"Consult a healthcare provider for medical advice."

type textAnalysisService struct {
	advisor Advisor
	repo    repository.TextAnalysisRepository
	metrics *metrics.Metrics
}

// NewTextAnalysisService creates a new text analysis service. A nil advisor
// serves AdviceUnavailable for every request. Only model answers are stored.
func NewTextAnalysisService(advisor Advisor, repo repository.TextAnalysisRepository, m *metrics.Metrics) TextAnalysisService {
	return &textAnalysisService{advisor: advisor, repo: repo, metrics: m}
}

func (s *textAnalysisService) AnalyzeText(ctx context.Context, userID, text string) (*models.TextAnalysisResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	log := logger.Ctx(ctx)
	resp := &models.TextAnalysisResponse{Source: models.AdvisorySourceFallback}

	switch {
	case s.advisor == nil:
		resp.Analysis = AdviceUnavailable
	default:
		advice, err := s.advisor.Advise(ctx, text)
		if err != nil {
			log.Warn("advisor failed, serving fallback advice", logger.Err(err))
			resp.Analysis = AdviceFallback
			break
		}
		resp.Analysis = advice
		resp.Source = models.AdvisorySourceModel
	}

	s.metrics.RecordAdvisory(resp.Source)

	// Canned tips are not history
	if resp.Source != models.AdvisorySourceModel {
		return resp, nil
	}

	record := &models.TextAnalysis{
		UserID:     userID,
		InputText:  text,
		AIResponse: resp.Analysis,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		log.Warn("failed to store text analysis", logger.Err(err))
	}

	return resp, nil
}
