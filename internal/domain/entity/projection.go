package entity

import "github.com/shopspring/decimal"

// ServiceLine is a billable offering for one period. Its name is the key in
// ProjectionInput.Services.
type ServiceLine struct {
	Clients       int64           `json:"clients"`
	RatePerClient decimal.Decimal `json:"rate_per_client"`
}

// ExpenseMap holds the two expense partitions. A category name may appear in
// both partitions; they are summed independently.
type ExpenseMap struct {
	Fixed    map[string]decimal.Decimal `json:"fixed"`
	Variable map[string]decimal.Decimal `json:"variable"`
}

// ProjectionInput is the projection dataset for a single period.
type ProjectionInput struct {
	Services     map[string]ServiceLine `json:"services"`
	Expenses     ExpenseMap             `json:"expenses"`
	TargetMargin float64                `json:"target_margin"`
}

// Projections maps a period identifier (usually a year) to its inputs.
type Projections map[string]ProjectionInput

// ProjectionMetrics are the values derived from a ProjectionInput.
// Margin is NaN or ±Inf when Revenue is zero.
type ProjectionMetrics struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
}

// MetricsSet maps a period identifier to its computed metrics.
type MetricsSet map[string]ProjectionMetrics

// Clone returns a deep copy of the input.
func (p ProjectionInput) Clone() ProjectionInput {
	out := ProjectionInput{
		Services:     make(map[string]ServiceLine, len(p.Services)),
		TargetMargin: p.TargetMargin,
		Expenses: ExpenseMap{
			Fixed:    make(map[string]decimal.Decimal, len(p.Expenses.Fixed)),
			Variable: make(map[string]decimal.Decimal, len(p.Expenses.Variable)),
		},
	}
	for name, svc := range p.Services {
		out.Services[name] = svc
	}
	for name, amount := range p.Expenses.Fixed {
		out.Expenses.Fixed[name] = amount
	}
	for name, amount := range p.Expenses.Variable {
		out.Expenses.Variable[name] = amount
	}
	return out
}

// Clone returns a deep copy of every period.
func (p Projections) Clone() Projections {
	out := make(Projections, len(p))
	for period, input := range p {
		out[period] = input.Clone()
	}
	return out
}

// Clone returns a copy of the set.
func (m MetricsSet) Clone() MetricsSet {
	out := make(MetricsSet, len(m))
	for period, metrics := range m {
		out[period] = metrics
	}
	return out
}
