package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/diillson/projection-dashboard-go/internal/domain/repository"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// reportDocument é o formato do relatório JSON.
type reportDocument struct {
	ReportID    string                   `json:"report_id"`
	Title       string                   `json:"title"`
	GeneratedAt time.Time                `json:"generated_at"`
	Periods     []types.PeriodReportView `json:"periods"`
}

func (r *ExportRepositoryImpl) ExportToCSV(data types.ReportData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, row := range data.Table {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(data types.ReportData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	doc := reportDocument{
		ReportID:    uuid.New().String(),
		Title:       data.Title,
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Periods:     types.NewPeriodReportViews(data.Reports),
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(data types.ReportData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	title := data.Title
	if len(title) > 80 {
		title = title[:77] + "..."
	}
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  %s", title)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
	pdf.Cell(0, 8, "Key Metrics")
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+contentWidth, pdf.GetY())
	pdf.Ln(4)

	rows := data.Table
	if len(rows) == 0 {
		return "", fmt.Errorf("no metrics to export")
	}
	labelWidth := 60.0
	valueWidth := (contentWidth - labelWidth) / float64(max(len(rows[0])-1, 1))

	for i, row := range rows {
		if i == 0 {
			pdf.SetFont("Arial", "B", 10)
			pdf.SetFillColor(240, 240, 240)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for j, cell := range row {
			if j == 0 {
				pdf.CellFormat(labelWidth, 8, tr(cell), "B", 0, "L", i == 0, 0, "")
				continue
			}
			pdf.CellFormat(valueWidth, 8, tr(cell), "B", 0, "R", i == 0, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.SetTextColor(128, 128, 128)
	footerText := fmt.Sprintf("Generated by Projection Dashboard (Go) | %s", time.Now().Format("2006-01-02"))
	pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToHTML(data types.ReportData, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "html")
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := md.Convert([]byte(metricsMarkdown(data.Title, data.Table)), &body); err != nil {
		return "", fmt.Errorf("error rendering HTML report: %w", err)
	}

	page := fmt.Sprintf(htmlPage, html.EscapeString(data.Title), body.String(),
		html.EscapeString(time.Now().Format("2006-01-02")))
	if err := os.WriteFile(outputFilename, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("error writing HTML file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { padding: 0.5rem; border-bottom: 1px solid #ddd; }
th { background: #f3f4f6; }
</style>
</head>
<body>
%s
<footer><small>Generated by Projection Dashboard (Go) | %s</small></footer>
</body>
</html>
`

// metricsMarkdown monta a tabela de métricas em Markdown (GFM).
func metricsMarkdown(title string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString("# " + escapeMarkdown(title) + "\n\n")

	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = escapeMarkdown(cell)
		}
		sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")

		if i == 0 {
			align := make([]string, len(row))
			for j := range align {
				align[j] = "---:"
			}
			align[0] = "---"
			sb.WriteString("| " + strings.Join(align, " | ") + " |\n")
		}
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(`|`, `\|`, `<`, `&lt;`, `>`, `&gt;`, `*`, `\*`, `_`, `\_`)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}
