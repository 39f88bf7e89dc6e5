package types

import (
	"fmt"

	"github.com/diillson/projection-dashboard-go/internal/domain/entity"
	"github.com/diillson/projection-dashboard-go/pkg/format"
)

// PeriodReportView is the serializable form of a PeriodReport. Non-finite
// values become null and are rendered as "N/A" in the display fields.
type PeriodReportView struct {
	Period          string   `json:"period"`
	Revenue         float64  `json:"revenue"`
	Expenses        float64  `json:"expenses"`
	Profit          float64  `json:"profit"`
	Margin          *float64 `json:"margin"`
	MarginDisplay   string   `json:"margin_display"`
	TargetMargin    float64  `json:"target_margin"`
	Variance        *float64 `json:"variance"`
	VarianceDisplay string   `json:"variance_display"`
	OnTarget        bool     `json:"on_target"`
}

// NewPeriodReportViews converts reports for JSON output.
func NewPeriodReportViews(reports []entity.PeriodReport) []PeriodReportView {
	views := make([]PeriodReportView, 0, len(reports))
	for _, r := range reports {
		views = append(views, PeriodReportView{
			Period:          r.Period,
			Revenue:         r.Metrics.Revenue,
			Expenses:        r.Metrics.Expenses,
			Profit:          r.Metrics.Profit,
			Margin:          finiteOrNil(r.Metrics.Margin),
			MarginDisplay:   format.Margin(r.Metrics.Margin),
			TargetMargin:    r.TargetMargin,
			Variance:        finiteOrNil(r.Variance),
			VarianceDisplay: format.Variance(r.Variance),
			OnTarget:        r.OnTarget,
		})
	}
	return views
}

func finiteOrNil(v float64) *float64 {
	if !format.IsFinite(v) {
		return nil
	}
	return &v
}

// MetricsTable lays the reports out as rows of metrics by period columns,
// the way the dashboard shows them. The first row is the header.
func MetricsTable(reports []entity.PeriodReport, f *format.Formatter, currencySymbol string) [][]string {
	header := []string{"Metric"}
	revenue := []string{currencyLabel("Revenue", currencySymbol)}
	expenses := []string{currencyLabel("Total Expenses", currencySymbol)}
	profit := []string{currencyLabel("Net Profit", currencySymbol)}
	margin := []string{"Operating Margin (%)"}
	target := []string{"Target Margin (%)"}
	variance := []string{"Margin vs Target"}

	for _, r := range reports {
		header = append(header, r.Period)
		revenue = append(revenue, f.Number(r.Metrics.Revenue))
		expenses = append(expenses, f.Number(r.Metrics.Expenses))
		profit = append(profit, f.Number(r.Metrics.Profit))
		margin = append(margin, format.Margin(r.Metrics.Margin))
		target = append(target, format.Margin(r.TargetMargin))
		variance = append(variance, format.Variance(r.Variance))
	}

	return [][]string{header, revenue, expenses, profit, margin, target, variance}
}

func currencyLabel(name, symbol string) string {
	if symbol == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, symbol)
}

// SeriesBars formats the revenue/profit series for the console chart.
func SeriesBars(series []entity.SeriesPoint, f *format.Formatter) []SeriesBar {
	bars := make([]SeriesBar, 0, len(series))
	for _, p := range series {
		bars = append(bars, SeriesBar{
			Period:         p.Period,
			Revenue:        p.Revenue,
			Profit:         p.Profit,
			RevenueDisplay: f.Money(p.Revenue),
			ProfitDisplay:  f.Money(p.Profit),
		})
	}
	return bars
}

// ReportData is everything an exporter needs: the raw reports plus the
// metrics table already formatted for the configured locale.
type ReportData struct {
	Title   string
	Reports []entity.PeriodReport
	Table   [][]string
}
