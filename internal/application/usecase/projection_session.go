package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/diillson/projection-dashboard-go/internal/domain/calculator"
	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
)

// ProjectionSession holds a projection dataset together with its metrics.
//
// Every mutating method recomputes the affected metrics before it returns, so
// Metrics never exposes values derived from older inputs. A session has a
// single owner and is not safe for concurrent use.
type ProjectionSession struct {
	projections entity.Projections
	metrics     entity.MetricsSet
}

// NewProjectionSession copies projections and computes every period.
func NewProjectionSession(projections entity.Projections) *ProjectionSession {
	s := &ProjectionSession{}
	s.Replace(projections)
	return s
}

// Replace swaps the whole dataset.
func (s *ProjectionSession) Replace(projections entity.Projections) {
	s.projections = projections.Clone()
	s.metrics = calculator.ComputeAll(s.projections)
}

// Projections returns a copy of the current inputs.
func (s *ProjectionSession) Projections() entity.Projections {
	return s.projections.Clone()
}

// Metrics returns a copy of the current metrics.
func (s *ProjectionSession) Metrics() entity.MetricsSet {
	return s.metrics.Clone()
}

// PeriodMetrics returns the metrics of one period.
func (s *ProjectionSession) PeriodMetrics(period string) (entity.ProjectionMetrics, error) {
	m, ok := s.metrics[period]
	if !ok {
		return entity.ProjectionMetrics{}, fmt.Errorf("%w: %s", types.ErrPeriodNotFound, period)
	}
	return m, nil
}

// Reports returns the metrics table ordered by period.
func (s *ProjectionSession) Reports() []entity.PeriodReport {
	return calculator.BuildReports(s.projections, s.metrics)
}

// Series returns the revenue/profit chart series ordered by period.
func (s *ProjectionSession) Series() []entity.SeriesPoint {
	return calculator.RevenueProfitSeries(s.metrics)
}

// SetPeriod adds or replaces a period.
func (s *ProjectionSession) SetPeriod(period string, input entity.ProjectionInput) {
	s.projections[period] = input.Clone()
	s.recompute(period)
}

// RemovePeriod drops a period and its metrics.
func (s *ProjectionSession) RemovePeriod(period string) error {
	if _, ok := s.projections[period]; !ok {
		return fmt.Errorf("%w: %s", types.ErrPeriodNotFound, period)
	}
	delete(s.projections, period)
	delete(s.metrics, period)
	return nil
}

// SetService adds or replaces a service line in a period.
func (s *ProjectionSession) SetService(period, name string, line entity.ServiceLine) error {
	return s.update(period, func(input *entity.ProjectionInput) {
		input.Services[name] = line
	})
}

// RemoveService drops a service line. Removing an unknown name is a no-op.
func (s *ProjectionSession) RemoveService(period, name string) error {
	return s.update(period, func(input *entity.ProjectionInput) {
		delete(input.Services, name)
	})
}

// SetFixedExpense sets a fixed expense category.
func (s *ProjectionSession) SetFixedExpense(period, category string, amount decimal.Decimal) error {
	return s.update(period, func(input *entity.ProjectionInput) {
		input.Expenses.Fixed[category] = amount
	})
}

// SetVariableExpense sets a variable expense category.
func (s *ProjectionSession) SetVariableExpense(period, category string, amount decimal.Decimal) error {
	return s.update(period, func(input *entity.ProjectionInput) {
		input.Expenses.Variable[category] = amount
	})
}

// SetTargetMargin changes the target margin. Metrics do not depend on it,
// only the reports do.
func (s *ProjectionSession) SetTargetMargin(period string, target float64) error {
	return s.update(period, func(input *entity.ProjectionInput) {
		input.TargetMargin = target
	})
}

// update applies fn to a copy of the period's input and stores the result.
func (s *ProjectionSession) update(period string, fn func(*entity.ProjectionInput)) error {
	current, ok := s.projections[period]
	if !ok {
		return fmt.Errorf("%w: %s", types.ErrPeriodNotFound, period)
	}
	next := current.Clone()
	fn(&next)
	s.projections[period] = next
	s.recompute(period)
	return nil
}

func (s *ProjectionSession) recompute(period string) {
	s.metrics[period] = calculator.ComputeMetrics(s.projections[period])
}
