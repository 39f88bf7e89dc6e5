package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/diillson/projection-dashboard-go/pkg/format"
)

func sampleReports() []entity.PeriodReport {
	return []entity.PeriodReport{
		{
			Period:       "2025",
			Metrics:      entity.ProjectionMetrics{Revenue: 985750, Expenses: 412557, Profit: 573193, Margin: 573193.0 / 985750.0 * 100},
			TargetMargin: 15,
			Variance:     573193.0/985750.0*100 - 15,
			OnTarget:     true,
		},
		{
			Period:       "2026",
			Metrics:      entity.ProjectionMetrics{Margin: math.NaN()},
			TargetMargin: 10,
			Variance:     math.NaN(),
		},
	}
}

func TestMetricsTable(t *testing.T) {
	rows := MetricsTable(sampleReports(), format.New("en-US", "€"), "€")

	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Metric", "2025", "2026"}, rows[0])
	assert.Equal(t, []string{"Revenue (€)", "985,750", "0"}, rows[1])
	assert.Equal(t, []string{"Total Expenses (€)", "412,557", "0"}, rows[2])
	assert.Equal(t, []string{"Net Profit (€)", "573,193", "0"}, rows[3])
	assert.Equal(t, []string{"Operating Margin (%)", "58.1%", "N/A"}, rows[4])
	assert.Equal(t, []string{"Target Margin (%)", "15.0%", "10.0%"}, rows[5])
	assert.Equal(t, []string{"Margin vs Target", "+43.1 pp", "N/A"}, rows[6])
}

func TestMetricsTable_NoSymbol(t *testing.T) {
	rows := MetricsTable(nil, format.New("en-US", ""), "")
	assert.Equal(t, []string{"Revenue"}, rows[1])
}

func TestNewPeriodReportViews(t *testing.T) {
	views := NewPeriodReportViews(sampleReports())
	require.Len(t, views, 2)

	require.NotNil(t, views[0].Margin)
	assert.InDelta(t, 58.15, *views[0].Margin, 0.01)
	assert.Equal(t, "58.1%", views[0].MarginDisplay)
	assert.True(t, views[0].OnTarget)

	assert.Nil(t, views[1].Margin)
	assert.Nil(t, views[1].Variance)
	assert.Equal(t, "N/A", views[1].MarginDisplay)
	assert.False(t, views[1].OnTarget)
}

func TestSeriesBars(t *testing.T) {
	bars := SeriesBars([]entity.SeriesPoint{{Period: "2025", Revenue: 985750, Profit: -5}}, format.New("en-US", "€"))
	require.Len(t, bars, 1)
	assert.Equal(t, "€985,750", bars[0].RevenueDisplay)
	assert.Equal(t, "-€5", bars[0].ProfitDisplay)
}
