package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle

	CreateTable() TableInterface
	DisplaySeriesBars(title string, series []SeriesBar)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// SeriesBar é um ponto do gráfico de receita/lucro, já com os valores formatados.
type SeriesBar struct {
	Period         string  `json:"period"`
	Revenue        float64 `json:"revenue"`
	Profit         float64 `json:"profit"`
	RevenueDisplay string  `json:"revenue_display"`
	ProfitDisplay  string  `json:"profit_display"`
}
