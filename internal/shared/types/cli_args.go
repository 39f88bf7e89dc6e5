package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	Input          string
	ReportName     string
	ReportType     []string
	Dir            string
	Upload         string
	Locale         string
	CurrencySymbol string
	NoChart        bool

	// Addr is the listen address of the serve subcommand.
	Addr string
}
