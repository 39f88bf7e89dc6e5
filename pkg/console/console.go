package console

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/projection-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

const barWidth = 40

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightRed     = color.New(color.FgRed, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithRightAlignment().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// DisplaySeriesBars exibe barras de receita e lucro por período, com a
// variação da receita em relação ao período anterior.
func (c *Console) DisplaySeriesBars(title string, series []types.SeriesBar) {
	fmt.Println("\n" + RenderSeriesBars(title, series))
}

// RenderSeriesBars monta o painel de barras sem imprimir.
func RenderSeriesBars(title string, series []types.SeriesBar) string {
	maxValue := 0.0
	for _, p := range series {
		maxValue = math.Max(maxValue, math.Abs(p.Revenue))
		maxValue = math.Max(maxValue, math.Abs(p.Profit))
	}

	if maxValue == 0 {
		return pterm.Warning.Sprint("All revenue and profit values are 0 for these periods")
	}

	tableData := pterm.TableData{
		{"Period", "Series", "Amount", "", "Change"},
	}

	var prevRevenue *float64

	for _, p := range series {
		change := ""
		if prevRevenue != nil {
			change = revenueChange(*prevRevenue, p.Revenue)
		}

		tableData = append(tableData,
			[]string{
				p.Period,
				"Revenue",
				p.RevenueDisplay,
				pterm.FgBlue.Sprint(bar(p.Revenue, maxValue)),
				change,
			},
			[]string{
				"",
				"Profit",
				p.ProfitDisplay,
				profitColor(p.Profit).Sprint(bar(p.Profit, maxValue)),
				"",
			},
		)

		currentRevenue := p.Revenue
		prevRevenue = &currentRevenue
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	return pterm.DefaultBox.WithTitle(title).WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)
}

func bar(value, maxValue float64) string {
	length := int((math.Abs(value) / maxValue) * barWidth)
	return strings.Repeat("█", length)
}

func profitColor(profit float64) pterm.Color {
	if profit < 0 {
		return pterm.FgRed
	}
	return pterm.FgGreen
}

// revenueChange calcula a variação percentual entre dois períodos.
func revenueChange(prev, curr float64) string {
	if math.Abs(prev) < 0.01 {
		if math.Abs(curr) < 0.01 {
			return pterm.FgYellow.Sprint("0%")
		}
		return pterm.FgYellow.Sprint("N/A")
	}

	changePercent := ((curr - prev) / math.Abs(prev)) * 100.0

	switch {
	case math.Abs(changePercent) < 0.01:
		return pterm.FgYellow.Sprint("0%")
	case math.Abs(changePercent) > 999:
		if changePercent > 0 {
			return pterm.FgGreen.Sprint(">+999%")
		}
		return pterm.FgRed.Sprint(">-999%")
	case changePercent > 0:
		return pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
	default:
		return pterm.FgRed.Sprintf("%.2f%%", changePercent)
	}
}
