package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatter_Money(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		symbol string
		value  float64
		want   string
	}{
		{"grouped revenue", "en-US", "€", 985750, "€985,750"},
		{"millions", "en-US", "€", 1560000, "€1,560,000"},
		{"negative", "en-US", "$", -1250, "-$1,250"},
		{"no symbol", "en-US", "", 573193, "573,193"},
		{"fractional", "en-US", "€", 1234.5, "€1,234.50"},
		{"unknown locale falls back", "not a locale!!", "€", 1000, "€1,000"},
		{"nan", "en-US", "€", math.NaN(), NotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.locale, tt.symbol).Money(tt.value))
		})
	}
}

func TestMargin(t *testing.T) {
	assert.Equal(t, "58.1%", Margin(573193.0/985750.0*100))
	assert.Equal(t, "54.1%", Margin(844650.0/1560000.0*100))
	assert.Equal(t, "100.0%", Margin(100))
	assert.Equal(t, "0.0%", Margin(-0.01))
	assert.Equal(t, NotAvailable, Margin(math.NaN()))
	assert.Equal(t, NotAvailable, Margin(math.Inf(-1)))
}

func TestVariance(t *testing.T) {
	assert.Equal(t, "+43.1 pp", Variance(43.1478))
	assert.Equal(t, "-10.0 pp", Variance(-10))
	assert.Equal(t, "+0.0 pp", Variance(0))
	assert.Equal(t, NotAvailable, Variance(math.Inf(1)))
}
