package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diillson/projection-dashboard-go/internal/adapter/driving/httpapi"
	"github.com/diillson/projection-dashboard-go/internal/application/usecase"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
	"github.com/diillson/projection-dashboard-go/pkg/version"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "projection-dashboard",
		Short:         "Financial projection dashboard: revenue, expenses, profit and margin per period",
		Version:       formattedVersion,
		RunE:          app.runCommand,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{printf "Projection Dashboard version: %s\n" .Version}}`)

	// Flags compartilhadas com o subcomando serve
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Projection payload: local file (yaml, json, toml, hjson) or s3://bucket/key. Defaults to the bundled sample")
	rootCmd.PersistentFlags().String("locale", "", "Locale used to format numbers, e.g. en-US, de-DE")
	rootCmd.PersistentFlags().String("currency", "", "Currency symbol shown next to money values")

	rootCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf, html (default: csv)")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().StringP("upload", "u", "", "Upload exported reports to s3://bucket/prefix")
	rootCmd.Flags().Bool("no-chart", false, "Do not display the revenue/profit chart")

	serveCmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the computed metrics as JSON over HTTP",
		RunE:         app.runServe,
		SilenceUsage: true,
	}
	serveCmd.Flags().String("addr", "", "Listen address (default: $PROJECTION_DASHBOARD_HTTP_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs lê as flags do comando. Flags não informadas ficam vazias para que
// o arquivo de configuração e o ambiente possam preenchê-las.
func parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	input, _ := flags.GetString("input")
	locale, _ := flags.GetString("locale")
	currency, _ := flags.GetString("currency")

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		Input:          input,
		Locale:         locale,
		CurrencySymbol: currency,
	}

	if flags.Lookup("report-name") != nil {
		args.ReportName, _ = flags.GetString("report-name")
		args.ReportType, _ = flags.GetStringSlice("report-type")
		args.Upload, _ = flags.GetString("upload")
		args.NoChart, _ = flags.GetBool("no-chart")

		dir, _ := flags.GetString("dir")
		if dir != "" {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return nil, err
			}
			args.Dir = absDir
		}
	}

	if flags.Lookup("addr") != nil {
		args.Addr, _ = flags.GetString("addr")
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	go checkLatestVersion(app.version)

	cliArgs, err := parseArgs(cmd)
	if err != nil {
		return err
	}

	return app.dashboardUseCase.RunDashboard(cmd.Context(), cliArgs)
}

// runServe carrega as projeções uma vez e atende a API até receber SIGINT/SIGTERM.
func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	cliArgs, err := parseArgs(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, title, err := app.dashboardUseCase.PrepareServe(ctx, cliArgs)
	if err != nil {
		return err
	}

	handler := httpapi.NewHandler(title, session.Reports(), session.Series())
	return httpapi.Serve(ctx, cliArgs.Addr, handler)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}
