package usecase

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
)

func twoPeriods() entity.Projections {
	return entity.Projections{
		"2025": {
			Services: map[string]entity.ServiceLine{
				"Bundle": {Clients: 10, RatePerClient: decimal.NewFromInt(1000)},
			},
			Expenses: entity.ExpenseMap{
				Fixed:    map[string]decimal.Decimal{"Salaries": decimal.NewFromInt(4000)},
				Variable: map[string]decimal.Decimal{"Marketing": decimal.NewFromInt(1000)},
			},
			TargetMargin: 15,
		},
		"2027": {
			Services: map[string]entity.ServiceLine{
				"Bundle": {Clients: 20, RatePerClient: decimal.NewFromInt(1000)},
			},
			TargetMargin: 45,
		},
	}
}

func TestProjectionSession_InitialMetrics(t *testing.T) {
	s := NewProjectionSession(twoPeriods())

	m, err := s.PeriodMetrics("2025")
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectionMetrics{Revenue: 10000, Expenses: 5000, Profit: 5000, Margin: 50}, m)

	_, err = s.PeriodMetrics("2099")
	assert.ErrorIs(t, err, types.ErrPeriodNotFound)
}

func TestProjectionSession_MutationsRecomputeImmediately(t *testing.T) {
	s := NewProjectionSession(twoPeriods())
	before2027 := s.Metrics()["2027"]

	require.NoError(t, s.SetService("2025", "Bundle", entity.ServiceLine{Clients: 20, RatePerClient: decimal.NewFromInt(1000)}))
	assert.Equal(t, 20000.0, s.Metrics()["2025"].Revenue)

	require.NoError(t, s.SetFixedExpense("2025", "Salaries", decimal.NewFromInt(9000)))
	assert.Equal(t, 10000.0, s.Metrics()["2025"].Expenses)

	require.NoError(t, s.SetVariableExpense("2025", "Travel", decimal.NewFromInt(500)))
	assert.Equal(t, 10500.0, s.Metrics()["2025"].Expenses)
	assert.Equal(t, 9500.0, s.Metrics()["2025"].Profit)

	require.NoError(t, s.RemoveService("2025", "Bundle"))
	assert.Equal(t, 0.0, s.Metrics()["2025"].Revenue)
	assert.True(t, math.IsInf(s.Metrics()["2025"].Margin, -1))

	assert.Equal(t, before2027, s.Metrics()["2027"])
}

func TestProjectionSession_NilExpenseMapsAreInitialised(t *testing.T) {
	s := NewProjectionSession(twoPeriods())

	require.NoError(t, s.SetFixedExpense("2027", "Rent", decimal.NewFromInt(2000)))
	assert.Equal(t, 2000.0, s.Metrics()["2027"].Expenses)
	assert.Equal(t, 90.0, s.Metrics()["2027"].Margin)
}

func TestProjectionSession_SetAndRemovePeriod(t *testing.T) {
	s := NewProjectionSession(twoPeriods())

	s.SetPeriod("2026", entity.ProjectionInput{
		Services: map[string]entity.ServiceLine{"Bundle": {Clients: 1, RatePerClient: decimal.NewFromInt(100)}},
	})
	assert.Len(t, s.Metrics(), 3)
	assert.Equal(t, 100.0, s.Metrics()["2026"].Margin)

	require.NoError(t, s.RemovePeriod("2026"))
	assert.Len(t, s.Metrics(), 2)
	assert.ErrorIs(t, s.RemovePeriod("2026"), types.ErrPeriodNotFound)
}

func TestProjectionSession_UnknownPeriod(t *testing.T) {
	s := NewProjectionSession(twoPeriods())

	assert.ErrorIs(t, s.SetService("1999", "x", entity.ServiceLine{}), types.ErrPeriodNotFound)
	assert.ErrorIs(t, s.SetFixedExpense("1999", "x", decimal.Zero), types.ErrPeriodNotFound)
	assert.ErrorIs(t, s.SetVariableExpense("1999", "x", decimal.Zero), types.ErrPeriodNotFound)
	assert.ErrorIs(t, s.SetTargetMargin("1999", 10), types.ErrPeriodNotFound)
}

func TestProjectionSession_TargetMarginOnlyAffectsReports(t *testing.T) {
	s := NewProjectionSession(twoPeriods())
	metrics := s.Metrics()

	require.NoError(t, s.SetTargetMargin("2025", 60))
	assert.Equal(t, metrics, s.Metrics())

	reports := s.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, "2025", reports[0].Period)
	assert.Equal(t, -10.0, reports[0].Variance)
	assert.False(t, reports[0].OnTarget)
}

func TestProjectionSession_IsolatedFromCallerData(t *testing.T) {
	input := twoPeriods()
	s := NewProjectionSession(input)

	input["2025"].Services["Bundle"] = entity.ServiceLine{Clients: 999, RatePerClient: decimal.NewFromInt(1)}
	assert.Equal(t, 10000.0, s.Metrics()["2025"].Revenue)

	out := s.Projections()
	out["2025"].Expenses.Fixed["Salaries"] = decimal.NewFromInt(1)
	assert.Equal(t, 5000.0, s.Metrics()["2025"].Expenses)

	metrics := s.Metrics()
	metrics["2025"] = entity.ProjectionMetrics{}
	assert.Equal(t, 10000.0, s.Metrics()["2025"].Revenue)
}

func TestProjectionSession_Series(t *testing.T) {
	series := NewProjectionSession(twoPeriods()).Series()
	require.Len(t, series, 2)
	assert.Equal(t, entity.SeriesPoint{Period: "2025", Revenue: 10000, Profit: 5000}, series[0])
	assert.Equal(t, entity.SeriesPoint{Period: "2027", Revenue: 20000, Profit: 20000}, series[1])
}
