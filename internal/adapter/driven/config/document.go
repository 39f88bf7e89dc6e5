package config

import (
	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// projectionDocument é o formato do payload em disco.
type projectionDocument struct {
	Title   string                    `json:"title" yaml:"title"`
	Periods map[string]periodDocument `json:"periods" yaml:"periods"`
}

type periodDocument struct {
	TargetMargin float64                    `json:"target_margin" yaml:"target_margin"`
	Services     map[string]serviceDocument `json:"services" yaml:"services"`
	Expenses     expensesDocument           `json:"expenses" yaml:"expenses"`
}

type serviceDocument struct {
	Clients       int64   `json:"clients" yaml:"clients"`
	RatePerClient float64 `json:"rate_per_client" yaml:"rate_per_client"`
}

type expensesDocument struct {
	Fixed    map[string]float64 `json:"fixed" yaml:"fixed"`
	Variable map[string]float64 `json:"variable" yaml:"variable"`
}

func (d projectionDocument) toEntity() entity.ProjectionDocument {
	projections := make(entity.Projections, len(d.Periods))
	for period, p := range d.Periods {
		input := entity.ProjectionInput{
			Services:     make(map[string]entity.ServiceLine, len(p.Services)),
			TargetMargin: p.TargetMargin,
			Expenses: entity.ExpenseMap{
				Fixed:    toAmounts(p.Expenses.Fixed),
				Variable: toAmounts(p.Expenses.Variable),
			},
		}
		for name, s := range p.Services {
			input.Services[name] = entity.ServiceLine{
				Clients:       s.Clients,
				RatePerClient: decimal.NewFromFloat(s.RatePerClient),
			}
		}
		projections[period] = input
	}
	return entity.ProjectionDocument{Title: d.Title, Projections: projections}
}

func toAmounts(in map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for name, v := range in {
		out[name] = decimal.NewFromFloat(v)
	}
	return out
}
