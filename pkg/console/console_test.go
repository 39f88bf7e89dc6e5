package console

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/diillson/projection-dashboard-go/internal/shared/types"
)

func init() {
	pterm.DisableStyling()
}

func TestTable_Render(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("2025")
	table.AddRow("Revenue (€)", "985,750")

	out := table.Render()
	assert.Contains(t, out, "Metric")
	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "985,750")
}

func TestRenderSeriesBars(t *testing.T) {
	out := RenderSeriesBars("Revenue & Profit", []types.SeriesBar{
		{Period: "2025", Revenue: 985750, Profit: 573193, RevenueDisplay: "985,750", ProfitDisplay: "573,193"},
		{Period: "2027", Revenue: 1560000, Profit: 844650, RevenueDisplay: "1,560,000", ProfitDisplay: "844,650"},
	})

	assert.Contains(t, out, "Revenue & Profit")
	assert.Contains(t, out, "1,560,000")
	assert.Contains(t, out, "+58.26%")
	assert.Contains(t, out, "█")
}

func TestRenderSeriesBars_AllZero(t *testing.T) {
	out := RenderSeriesBars("Revenue & Profit", []types.SeriesBar{{Period: "2025"}})
	assert.Contains(t, out, "All revenue and profit values are 0")
}

func TestRevenueChange(t *testing.T) {
	assert.Equal(t, "0%", revenueChange(0, 0))
	assert.Equal(t, "N/A", revenueChange(0, 100))
	assert.Equal(t, "+50.00%", revenueChange(100, 150))
	assert.Equal(t, "-25.00%", revenueChange(100, 75))
	assert.Equal(t, ">+999%", revenueChange(1, 100))
}
