package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/projection-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
     ____            _           _   _               ____            _     _                         _
    |  _ \ _ __ ___ (_) ___  ___| |_(_) ___  _ __   |  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
    | |_) | '__/ _ \| |/ _ \/ __| __| |/ _ \| '_ \  | | | |/ _' / __| '_ \| '_ \ / _ \ / _' | '__/ _' |
    |  __/| | | (_) | |  __/ (__| |_| | (_) | | | | | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
    |_|   |_|  \___// |\___|\___|\__|_|\___/|_| |_| |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
                  |__/
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Projection Dashboard CLI (v%s)", formattedVersion)))
}

// checkLatestVersion verifica se uma versão mais recente está disponível.
func checkLatestVersion(currentVersion string) {
	version.CheckLatestVersion(currentVersion)
}
