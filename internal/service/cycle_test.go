package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 20, 9, 30, 0, 0, time.UTC)

func newTestCycleService(repo *mockCycleRepository) CycleService {
	return NewCycleService(repo, 10, WithClock(func() time.Time { return fixedNow }))
}

func TestAnalyzeCycle_NoRecordsIsInsufficient(t *testing.T) {
	svc := newTestCycleService(newMockCycleRepository())

	resp, err := svc.AnalyzeCycle(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, resp.DataSufficient)
	assert.Equal(t, 1, resp.MinRecordsNeeded)
	assert.Equal(t, 0, resp.TotalRecords)
	assert.Nil(t, resp.Analysis)
}

func TestAnalyzeCycle_LutealWithLongCycleAlert(t *testing.T) {
	repo := newMockCycleRepository()
	repo.add("user-1", "2025-03-01", 40, "Happy", "High")
	repo.add("user-2", "2025-03-19", 22, "Sad", "Low")

	svc := newTestCycleService(repo)
	resp, err := svc.AnalyzeCycle(context.Background(), "user-1")
	require.NoError(t, err)

	require.True(t, resp.DataSufficient)
	assert.Equal(t, 1, resp.TotalRecords)
	assert.Equal(t, 19, resp.Analysis.DaysSinceLastRecord)
	assert.Equal(t, analysis.PhaseLuteal, resp.Analysis.Phase)
	assert.Equal(t, []string{analysis.AlertLongCycle}, resp.Analysis.Alerts)
	assert.Equal(t, "40.0 days", resp.AverageDisplay)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestAnalyzeCycle_RepositoryError(t *testing.T) {
	repo := newMockCycleRepository()
	repo.err = errors.New("connection refused")

	_, err := newTestCycleService(repo).AnalyzeCycle(context.Background(), "user-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.err)
}

func TestAnalyzeDetailed_BelowMinimum(t *testing.T) {
	repo := newMockCycleRepository()
	repo.add("user-1", "2025-03-01", 28, "Happy", "High")
	repo.add("user-1", "2025-02-01", 30, "Sad", "Low")

	resp, err := newTestCycleService(repo).AnalyzeDetailed(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, resp.DataSufficient)
	assert.Equal(t, 3, resp.MinRecordsNeeded)
	assert.Equal(t, 2, resp.TotalRecords)
	assert.Nil(t, resp.Analysis)
}

func TestAnalyzeDetailed_Shares(t *testing.T) {
	repo := newMockCycleRepository()
	repo.add("user-1", "2025-03-01", 28, "Happy", "High")
	repo.add("user-1", "2025-02-01", 30, "Happy", "Low")
	repo.add("user-1", "2025-01-01", 29, "Sad", "Low")

	resp, err := newTestCycleService(repo).AnalyzeDetailed(context.Background(), "user-1")
	require.NoError(t, err)
	require.True(t, resp.DataSufficient)

	assert.Equal(t, 3, resp.Analysis.Total)
	assert.Equal(t, "Happy", resp.Analysis.MostCommonMood.Value)
	assert.Equal(t, "2 out of 3 cycles", resp.MoodShare)
	assert.Equal(t, "Low", resp.Analysis.MostCommonEnergy.Value)
	assert.Equal(t, "2 out of 3 cycles", resp.EnergyShare)
	assert.True(t, resp.Analysis.LowEnergyPattern)
	assert.False(t, resp.Analysis.IsIrregular)
}

func TestCreateCycle_DefaultsDateToToday(t *testing.T) {
	repo := newMockCycleRepository()
	svc := newTestCycleService(repo)

	created, err := svc.CreateCycle(context.Background(), "user-1", &models.CreateCycleRequest{
		CycleLength: 28,
		Mood:        "Neutral",
		Energy:      "Medium",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-20", created.Date.String())
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreateCycle_KeepsGivenDate(t *testing.T) {
	date, err := models.ParseCalendarDate("2025-01-15")
	require.NoError(t, err)

	created, err := newTestCycleService(newMockCycleRepository()).CreateCycle(context.Background(), "user-1", &models.CreateCycleRequest{
		CycleLength: 31,
		Mood:        "Anxious",
		Energy:      "Low",
		Date:        &date,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15", created.Date.String())
}

func TestCreateCycle_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreateCycleRequest
	}{
		{"length below range", models.CreateCycleRequest{CycleLength: 14, Mood: "Happy", Energy: "High"}},
		{"length above range", models.CreateCycleRequest{CycleLength: 46, Mood: "Happy", Energy: "High"}},
		{"unknown mood", models.CreateCycleRequest{CycleLength: 28, Mood: "Elated", Energy: "High"}},
		{"lowercase energy", models.CreateCycleRequest{CycleLength: 28, Mood: "Happy", Energy: "low"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockCycleRepository()
			_, err := newTestCycleService(repo).CreateCycle(context.Background(), "user-1", &tt.req)
			require.Error(t, err)

			var verrs validator.ValidationErrors
			assert.True(t, errors.As(err, &verrs))
			assert.Equal(t, 0, repo.createCalls)
		})
	}
}

func TestDeleteCycle(t *testing.T) {
	repo := newMockCycleRepository()
	mine := repo.add("user-1", "2025-03-01", 28, "Happy", "High")
	theirs := repo.add("user-2", "2025-03-01", 28, "Happy", "High")
	svc := newTestCycleService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteCycle(ctx, "user-1", "not-a-uuid"), ErrInvalidID)
	assert.ErrorIs(t, svc.DeleteCycle(ctx, "user-1", "00000000-0000-4000-8000-999999999999"), ErrCycleNotFound)
	assert.ErrorIs(t, svc.DeleteCycle(ctx, "user-1", theirs.ID), ErrForbidden)
	assert.Equal(t, 0, repo.deleteCalls)

	require.NoError(t, svc.DeleteCycle(ctx, "user-1", mine.ID))
	assert.Equal(t, 1, repo.deleteCalls)
	_, stillThere := repo.cycles[mine.ID]
	assert.False(t, stillThere)
}

func TestListCycles_LimitsAndDecorates(t *testing.T) {
	repo := newMockCycleRepository()
	repo.add("user-1", "2025-02-01", 28, "Sad", "Low")
	repo.add("user-1", "2025-03-01", 30, "Happy", "High")
	svc := newTestCycleService(repo)

	entries, err := svc.ListCycles(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-03-01", entries[0].Date.String())
	assert.Equal(t, "😊", entries[0].MoodIcon)
	assert.Equal(t, "red", entries[1].EnergyTone)

	_, err = svc.ListCycles(context.Background(), "user-1", 500)
	require.NoError(t, err)
	assert.Equal(t, MaxListLimit, repo.lastLimit)
}
