// Package calculator derives revenue, expenses, profit and margin from a
// projection dataset. Every function here is pure.
package calculator

import (
	"math"
	"sort"
	"strconv"

	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ComputeMetrics derives the metrics of a single period.
//
// Sums are exact, so the result does not depend on map iteration order and two
// calls on the same input are bit-identical. The margin is left non-finite
// when revenue is zero.
func ComputeMetrics(input entity.ProjectionInput) entity.ProjectionMetrics {
	revenue := Revenue(input.Services)
	total := SumExpenses(input.Expenses.Fixed).Add(SumExpenses(input.Expenses.Variable))
	profit := revenue.Sub(total)

	revenueF := revenue.InexactFloat64()
	profitF := profit.InexactFloat64()

	return entity.ProjectionMetrics{
		Revenue:  revenueF,
		Expenses: total.InexactFloat64(),
		Profit:   profitF,
		Margin:   profitF / revenueF * 100,
	}
}

// ComputeAll applies ComputeMetrics to every period independently. The
// returned set has exactly the keys of projections.
func ComputeAll(projections entity.Projections) entity.MetricsSet {
	set := make(entity.MetricsSet, len(projections))
	for period, input := range projections {
		set[period] = ComputeMetrics(input)
	}
	return set
}

// Revenue returns Σ clients × ratePerClient.
func Revenue(services map[string]entity.ServiceLine) decimal.Decimal {
	total := decimal.Zero
	for _, svc := range services {
		total = total.Add(decimal.NewFromInt(svc.Clients).Mul(svc.RatePerClient))
	}
	return total
}

// SumExpenses returns the sum of one expense partition.
func SumExpenses(amounts map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}

// RevenueProfitSeries returns the chart series ordered by period.
func RevenueProfitSeries(set entity.MetricsSet) []entity.SeriesPoint {
	periods := SortedPeriods(set)
	series := make([]entity.SeriesPoint, 0, len(periods))
	for _, period := range periods {
		m := set[period]
		series = append(series, entity.SeriesPoint{
			Period:  period,
			Revenue: m.Revenue,
			Profit:  m.Profit,
		})
	}
	return series
}

// BuildReports joins metrics with each period's target margin, ordered by
// period. Periods missing from set are skipped.
func BuildReports(projections entity.Projections, set entity.MetricsSet) []entity.PeriodReport {
	periods := SortedPeriods(set)
	reports := make([]entity.PeriodReport, 0, len(periods))
	for _, period := range periods {
		input, ok := projections[period]
		if !ok {
			continue
		}
		m := set[period]
		variance := m.Margin - input.TargetMargin
		reports = append(reports, entity.PeriodReport{
			Period:       period,
			Metrics:      m,
			TargetMargin: input.TargetMargin,
			Variance:     variance,
			OnTarget:     isFinite(variance) && variance >= 0,
		})
	}
	return reports
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SortedPeriods returns the keys of set in ascending order. Integer keys
// compare numerically, anything else lexically after them.
func SortedPeriods[V any](set map[string]V) []string {
	periods := make([]string, 0, len(set))
	for period := range set {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periodLess(periods[i], periods[j])
	})
	return periods
}

func periodLess(a, b string) bool {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		if ai != bi {
			return ai < bi
		}
		return a < b
	case aErr == nil:
		return true
	case bErr == nil:
		return false
	default:
		return a < b
	}
}
