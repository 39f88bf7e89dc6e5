package main

import (
	"fmt"
	"os"

	"github.com/diillson/projection-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/projection-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/projection-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/projection-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/projection-dashboard-go/internal/application/usecase"
	"github.com/diillson/projection-dashboard-go/internal/shared/types"
	"github.com/diillson/projection-dashboard-go/pkg/console"
	"github.com/diillson/projection-dashboard-go/pkg/version"
)

func main() {
	env, err := types.LoadEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	objectStore := aws.NewS3Repository(env.AWSProfile)
	projectionRepo := config.NewProjectionRepository(objectStore)
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		projectionRepo,
		exportRepo,
		configRepo,
		objectStore,
		consoleImpl,
		env,
	)

	app.SetDashboardUseCase(dashboardUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
