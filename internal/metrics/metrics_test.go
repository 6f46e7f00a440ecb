package metrics

import (
	"testing"

	"github.com/menstrualmentor/backend/internal/analysis"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNewIsSingleton(t *testing.T) {
	assert.Same(t, New(), New())
}

func TestRecordCycleAnalysis(t *testing.T) {
	m := New()
	before := testutil.ToFloat64(m.AlertsTotal.WithLabelValues("long_cycle"))
	beforeFatigue := testutil.ToFloat64(m.AlertsTotal.WithLabelValues("fatigue"))
	beforePhase := testutil.ToFloat64(m.PhaseEstimatesTotal.WithLabelValues("Luteal"))

	m.RecordCycleAnalysis("Luteal", []string{analysis.AlertLongCycle, analysis.AlertFatigue})

	assert.Equal(t, before+1, testutil.ToFloat64(m.AlertsTotal.WithLabelValues("long_cycle")))
	assert.Equal(t, beforeFatigue+1, testutil.ToFloat64(m.AlertsTotal.WithLabelValues("fatigue")))
	assert.Equal(t, beforePhase+1, testutil.ToFloat64(m.PhaseEstimatesTotal.WithLabelValues("Luteal")))
}

func TestAlertLabelUnknown(t *testing.T) {
	assert.Equal(t, "other", alertLabel("something new"))
	assert.Equal(t, "short_cycle", alertLabel(analysis.AlertShortCycle))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordAnalysis("detailed")
		m.RecordCycleAnalysis("Menstrual", nil)
		m.RecordImageRisk("High")
		m.RecordAdvisory("fallback")
	})
}
