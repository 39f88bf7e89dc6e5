package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Input          string   `json:"input" yaml:"input" toml:"input"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	Upload         string   `json:"upload" yaml:"upload" toml:"upload"`
	Locale         string   `json:"locale" yaml:"locale" toml:"locale"`
	CurrencySymbol string   `json:"currency_symbol" yaml:"currency_symbol" toml:"currency_symbol"`
	NoChart        bool     `json:"no_chart" yaml:"no_chart" toml:"no_chart"`
}
