package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/diillson/projection-dashboard-go/internal/domain/repository"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
	"github.com/diillson/projection-dashboard-go/pkg/format"
)

const defaultTitle = "Financial Projections"

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	projectionRepo repository.ProjectionRepository
	exportRepo     repository.ExportRepository
	configRepo     repository.ConfigRepository
	objectStore    repository.ObjectStore
	console        types.ConsoleInterface
	env            types.EnvConfig
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	projectionRepo repository.ProjectionRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	objectStore repository.ObjectStore,
	console types.ConsoleInterface,
	env types.EnvConfig,
) *DashboardUseCase {
	return &DashboardUseCase{
		projectionRepo: projectionRepo,
		exportRepo:     exportRepo,
		configRepo:     configRepo,
		objectStore:    objectStore,
		console:        console,
		env:            env,
	}
}

// ResolveArgs fills the arguments not given on the command line, first from
// the config file and then from the environment.
func (uc *DashboardUseCase) ResolveArgs(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}
		mergeConfig(args, cfg)
	}

	if args.Locale == "" {
		args.Locale = uc.env.Locale
	}
	if args.CurrencySymbol == "" {
		args.CurrencySymbol = uc.env.CurrencySymbol
	}
	if args.Addr == "" {
		args.Addr = uc.env.HTTPAddr
	}
	if args.ReportName != "" && len(args.ReportType) == 0 {
		args.ReportType = []string{"csv"}
	}
	return nil
}

func mergeConfig(args *types.CLIArgs, cfg *types.Config) {
	if args.Input == "" {
		args.Input = cfg.Input
	}
	if args.ReportName == "" {
		args.ReportName = cfg.ReportName
	}
	if len(args.ReportType) == 0 {
		args.ReportType = cfg.ReportType
	}
	if args.Dir == "" {
		args.Dir = cfg.Dir
	}
	if args.Upload == "" {
		args.Upload = cfg.Upload
	}
	if args.Locale == "" {
		args.Locale = cfg.Locale
	}
	if args.CurrencySymbol == "" {
		args.CurrencySymbol = cfg.CurrencySymbol
	}
	args.NoChart = args.NoChart || cfg.NoChart
}

// LoadSession carrega o payload e calcula as métricas de todos os períodos.
func (uc *DashboardUseCase) LoadSession(ctx context.Context, source string) (*ProjectionSession, string, error) {
	name := source
	if name == "" {
		name = "bundled sample"
	}
	status := uc.console.Status(fmt.Sprintf("Loading projections from %s...", name))
	doc, err := uc.projectionRepo.Load(ctx, source)
	status.Stop()
	if err != nil {
		return nil, "", err
	}

	title := doc.Title
	if title == "" {
		title = defaultTitle
	}
	return NewProjectionSession(doc.Projections), title, nil
}

// PrepareServe resolve os argumentos e carrega a sessão que o servidor HTTP
// vai expor.
func (uc *DashboardUseCase) PrepareServe(ctx context.Context, args *types.CLIArgs) (*ProjectionSession, string, error) {
	if err := uc.ResolveArgs(args); err != nil {
		return nil, "", err
	}
	session, title, err := uc.LoadSession(ctx, args.Input)
	if err != nil {
		return nil, "", err
	}
	uc.console.LogInfo("Serving %d period(s) of %q on %s", len(session.Metrics()), title, args.Addr)
	return session, title, nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ResolveArgs(args); err != nil {
		return err
	}

	session, title, err := uc.LoadSession(ctx, args.Input)
	if err != nil {
		return err
	}

	formatter := format.New(args.Locale, args.CurrencySymbol)
	reports := session.Reports()
	data := types.ReportData{
		Title:   title,
		Reports: reports,
		Table:   types.MetricsTable(reports, formatter, args.CurrencySymbol),
	}

	uc.console.Println(pterm.DefaultSection.Sprint(title))
	uc.console.Print(uc.renderTable(data.Table))

	for _, r := range reports {
		if !format.IsFinite(r.Metrics.Margin) {
			uc.console.LogWarning("Period %s has zero revenue; margin is shown as %s", r.Period, format.NotAvailable)
		}
	}

	if !args.NoChart {
		uc.console.DisplaySeriesBars("Revenue & Profit", types.SeriesBars(session.Series(), formatter))
	}

	if args.ReportName != "" {
		uc.exportReports(ctx, data, args)
	}

	return nil
}

func (uc *DashboardUseCase) renderTable(rows [][]string) string {
	table := uc.console.CreateTable()
	if len(rows) == 0 {
		return table.Render()
	}
	for _, col := range rows[0] {
		table.AddColumn(col)
	}
	for _, row := range rows[1:] {
		cells := make([]interface{}, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		table.AddRow(cells...)
	}
	return table.Render()
}

// exportReports grava cada tipo de relatório pedido. Falhas são registradas e
// não interrompem os demais tipos.
func (uc *DashboardUseCase) exportReports(ctx context.Context, data types.ReportData, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)

		switch strings.ToLower(strings.TrimSpace(reportType)) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(data, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(data, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(data, args.ReportName, args.Dir)
		case "html":
			path, err = uc.exportRepo.ExportToHTML(data, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Unsupported report type '%s' (expected csv, json, pdf or html)", reportType)
			continue
		}

		label := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", label, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", label, path)

		if args.Upload != "" {
			uc.uploadReport(ctx, args.Upload, path)
		}
	}
}

func (uc *DashboardUseCase) uploadReport(ctx context.Context, destination, path string) {
	if uc.objectStore == nil {
		uc.console.LogError("Cannot upload %s: %s", path, types.ErrObjectStoreMissing)
		return
	}
	if !strings.HasSuffix(destination, "/") {
		destination += "/"
	}
	uri, err := uc.objectStore.Put(ctx, destination, path)
	if err != nil {
		uc.console.LogError("Failed to upload %s: %s", path, err)
		return
	}
	uc.console.LogSuccess("Uploaded report to %s", uri)
}
