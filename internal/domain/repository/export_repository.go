package repository

import (
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
)

type ExportRepository interface {
	ExportToCSV(data types.ReportData, filename, outputDir string) (string, error)
	ExportToJSON(data types.ReportData, filename, outputDir string) (string, error)
	ExportToPDF(data types.ReportData, filename, outputDir string) (string, error)
	ExportToHTML(data types.ReportData, filename, outputDir string) (string, error)
}
