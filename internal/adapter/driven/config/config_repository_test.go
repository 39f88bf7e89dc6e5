package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/projection-dashboard-go/internal/shared/types"
)

func TestConfigRepository_LoadConfigFile(t *testing.T) {
	want := &types.Config{
		Input:          "plans/2025.yaml",
		ReportName:     "projections",
		ReportType:     []string{"csv", "pdf"},
		Dir:            "out",
		Upload:         "s3://reports/finance",
		Locale:         "de-DE",
		CurrencySymbol: "€",
		NoChart:        true,
	}

	files := map[string]string{
		"app.yaml": `
input: plans/2025.yaml
report_name: projections
report_type: [csv, pdf]
dir: out
upload: s3://reports/finance
locale: de-DE
currency_symbol: "€"
no_chart: true
`,
		"app.toml": `
input = "plans/2025.yaml"
report_name = "projections"
report_type = ["csv", "pdf"]
dir = "out"
upload = "s3://reports/finance"
locale = "de-DE"
currency_symbol = "€"
no_chart = true
`,
		"app.json": `{
  "input": "plans/2025.yaml",
  "report_name": "projections",
  "report_type": ["csv", "pdf"],
  "dir": "out",
  "upload": "s3://reports/finance",
  "locale": "de-DE",
  "currency_symbol": "€",
  "no_chart": true
}`,
	}

	repo := NewConfigRepository()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestConfigRepository_Unsupported(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(writeFile(t, "app.ini", "x=1"))
	assert.ErrorIs(t, err, types.ErrUnsupportedFormat)
}
