package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/menstrualmentor/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURL(raw []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
}

func TestSampleRedIntensity_StrideAndBudget(t *testing.T) {
	// Every 4th byte is 200, the rest 0: the sampled average is 200.
	raw := make([]byte, 40000)
	for i := 0; i < len(raw); i += 4 {
		raw[i] = 200
	}
	// Bytes beyond the budget must not count.
	for i := SampleByteBudget; i < len(raw); i++ {
		raw[i] = 0
	}

	got, err := SampleRedIntensity(dataURL(raw))
	require.NoError(t, err)
	assert.InDelta(t, 200, got, 1e-9)
}

func TestSampleRedIntensity_ShortPayload(t *testing.T) {
	// Samples at 0 and 4: (10 + 30) / 2
	got, err := SampleRedIntensity(dataURL([]byte{10, 99, 99, 99, 30, 99}))
	require.NoError(t, err)
	assert.InDelta(t, 20, got, 1e-9)
}

func TestSampleRedIntensity_EmptyPayloadIsZero(t *testing.T) {
	got, err := SampleRedIntensity("data:image/png;base64,")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestSampleRedIntensity_UnpaddedAndSpacedPayloads(t *testing.T) {
	tests := map[string]float64{
		// "AAA" is two zero bytes without padding
		"data:image/png;base64,AAA": 0,
		"data:image/png;base64,AA AA": 0,
		// 0x64 0x00 0x00 0x00 0xC8 → samples 100 and 200
		"data:image/png;base64,ZAAA\nAMg": 150,
		"data:image/png;base64, ZAAAAMg= ": 150,
	}

	for in, want := range tests {
		got, err := SampleRedIntensity(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, got, 1e-9, in)
	}
}

func TestSampleRedIntensity_Invalid(t *testing.T) {
	for _, in := range []string{"no comma here", "data:image/png;base64,!!!not base64!!!", "data:image/png;base64,A", "data:image/png;base64,AA="} {
		_, err := SampleRedIntensity(in)
		assert.ErrorIs(t, err, ErrInvalidImage, in)
	}
}

func TestAnalyzeImage_ClassifiesAndPersists(t *testing.T) {
	repo := &mockImageAnalysisRepository{}
	svc := NewImageAnalysisService(repo, nil)

	raw := []byte(strings.Repeat("\x4b\x00\x00\x00", 10)) // 75 → Moderate
	resp, err := svc.AnalyzeImage(context.Background(), "user-1", dataURL(raw))
	require.NoError(t, err)

	assert.Equal(t, analysis.RiskModerate, resp.RiskLevel)
	assert.InDelta(t, 75, resp.RedIntensity, 1e-9)
	assert.NotEmpty(t, resp.Analysis)

	require.Len(t, repo.records, 1)
	assert.Equal(t, models.ImagePlaceholderURL, repo.records[0].ImageURL)
	assert.Equal(t, analysis.RiskModerate, repo.records[0].RiskLevel)
	assert.Equal(t, resp.Analysis, repo.records[0].AnalysisResult)
}

func TestAnalyzeImage_PersistFailureStillAnswers(t *testing.T) {
	repo := &mockImageAnalysisRepository{err: errors.New("insert failed")}
	svc := NewImageAnalysisService(repo, nil)

	resp, err := svc.AnalyzeImage(context.Background(), "user-1", dataURL([]byte{10}))
	require.NoError(t, err)
	assert.Equal(t, analysis.RiskHigh, resp.RiskLevel)
}

func TestAnalyzeImage_InvalidImage(t *testing.T) {
	repo := &mockImageAnalysisRepository{}
	_, err := NewImageAnalysisService(repo, nil).AnalyzeImage(context.Background(), "user-1", "garbage")
	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.Empty(t, repo.records)
}
