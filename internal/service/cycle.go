package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/menstrualmentor/backend/internal/logger"
	"github.com/menstrualmentor/backend/internal/metrics"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/internal/repository"
)

// MaxListLimit caps GET /cycles page sizes
const MaxListLimit = 100

type cycleService struct {
	cycleRepo    repository.CycleRepository
	validate     *validator.Validate
	metrics      *metrics.Metrics
	historyLimit int
	now          func() time.Time
}

// CycleServiceOption customizes a cycle service
type CycleServiceOption func(*cycleService)

// WithClock overrides the time source used for phase estimation and default dates
func WithClock(now func() time.Time) CycleServiceOption {
	return func(s *cycleService) {
		s.now = now
	}
}

// WithMetrics records analysis outcomes on m
func WithMetrics(m *metrics.Metrics) CycleServiceOption {
	return func(s *cycleService) {
		s.metrics = m
	}
}

// NewCycleService creates a new cycle service. historyLimit is the number of
// most recent records every analysis reads.
func NewCycleService(cycleRepo repository.CycleRepository, historyLimit int, opts ...CycleServiceOption) CycleService {
	v := validator.New()
	// Share the tags gin validates with so non-HTTP callers get the same rules
	v.SetTagName("binding")

	s := &cycleService{
		cycleRepo:    cycleRepo,
		validate:     v,
		historyLimit: historyLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *cycleService) CreateCycle(ctx context.Context, userID string, req *models.CreateCycleRequest) (*models.Cycle, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid cycle: %w", err)
	}

	date := models.NewCalendarDate(s.now())
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	cycle := &models.Cycle{
		UserID:      userID,
		CycleLength: req.CycleLength,
		Mood:        analysis.Mood(req.Mood),
		Energy:      analysis.Energy(req.Energy),
		Date:        date,
	}

	created, err := s.cycleRepo.Create(ctx, cycle)
	if err != nil {
		return nil, err
	}

	logger.Ctx(ctx).Info("cycle logged",
		logger.String("cycle_id", created.ID),
		logger.String("date", created.Date.String()),
	)
	return created, nil
}

func (s *cycleService) ListCycles(ctx context.Context, userID string, limit int) ([]models.CycleHistoryEntry, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	cycles, err := s.cycleRepo.GetRecentByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CycleHistoryEntry, len(cycles))
	for i, c := range cycles {
		entries[i] = models.NewCycleHistoryEntry(c)
	}
	return entries, nil
}

func (s *cycleService) DeleteCycle(ctx context.Context, userID, cycleID string) error {
	if err := ValidateID(cycleID); err != nil {
		return err
	}

	cycle, err := s.cycleRepo.GetByID(ctx, cycleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCycleNotFound
		}
		return err
	}

	if cycle.UserID != userID {
		return ErrForbidden
	}

	if err := s.cycleRepo.Delete(ctx, cycleID); err != nil {
		return err
	}

	logger.Ctx(ctx).Info("cycle deleted", logger.String("cycle_id", cycleID))
	return nil
}

func (s *cycleService) AnalyzeCycle(ctx context.Context, userID string) (*models.CycleAnalysisResponse, error) {
	records, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &models.CycleAnalysisResponse{
		MinRecordsNeeded: analysis.MinRecordsLightweight,
		TotalRecords:     len(records),
	}

	result, err := analysis.Analyze(records, s.now())
	if errors.Is(err, analysis.ErrInsufficientData) {
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("analyzing cycles: %w", err)
	}

	s.metrics.RecordCycleAnalysis(string(result.Phase), result.Alerts)

	resp.DataSufficient = true
	resp.Analysis = &result
	resp.AverageDisplay = analysis.FormatDays(result.AverageCycleLength)
	return resp, nil
}

func (s *cycleService) AnalyzeDetailed(ctx context.Context, userID string) (*models.DetailedAnalysisResponse, error) {
	records, err := s.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &models.DetailedAnalysisResponse{
		MinRecordsNeeded: analysis.MinRecordsDetailed,
		TotalRecords:     len(records),
	}

	result, err := analysis.AnalyzeDetailed(records)
	if errors.Is(err, analysis.ErrInsufficientData) {
		return resp, nil
	}
	if err != nil {
		return nil, fmt.Errorf("analyzing cycle patterns: %w", err)
	}

	s.metrics.RecordAnalysis("detailed")

	resp.DataSufficient = true
	resp.Analysis = &result
	resp.MoodShare = analysis.FormatShare(result.MostCommonMood.Count, result.Total)
	resp.EnergyShare = analysis.FormatShare(result.MostCommonEnergy.Count, result.Total)
	return resp, nil
}

// snapshot reads the records every analysis of one request shares
func (s *cycleService) snapshot(ctx context.Context, userID string) ([]analysis.Record, error) {
	cycles, err := s.cycleRepo.GetRecentByUserID(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching cycle history: %w", err)
	}
	return models.Records(cycles), nil
}
