// Package format renders metric values for people: currency grouped by
// thousands in the configured locale, margins with one decimal and "N/A"
// for non-finite values.
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is shown for values that have no meaningful rendering.
const NotAvailable = "N/A"

// Formatter formats numbers for a single locale and currency symbol.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New returns a Formatter for the BCP 47 locale. Unknown locales fall back to
// English.
func New(locale, currencySymbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  currencySymbol,
	}
}

// Number groups v by thousands. Whole values print without decimals.
func (f *Formatter) Number(v float64) string {
	if !IsFinite(v) {
		return NotAvailable
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return f.printer.Sprintf("%d", int64(v))
	}
	return f.printer.Sprintf("%.2f", v)
}

// Money is Number prefixed with the currency symbol.
func (f *Formatter) Money(v float64) string {
	n := f.Number(v)
	if n == NotAvailable || f.symbol == "" {
		return n
	}
	if strings.HasPrefix(n, "-") {
		return "-" + f.symbol + strings.TrimPrefix(n, "-")
	}
	return f.symbol + n
}

// Margin renders a percentage with one decimal, e.g. "58.1%".
func Margin(v float64) string {
	if !IsFinite(v) {
		return NotAvailable
	}
	return trimNegativeZero(strconvFixed(v, 1)) + "%"
}

// Variance renders a difference in percentage points with an explicit sign.
func Variance(v float64) string {
	if !IsFinite(v) {
		return NotAvailable
	}
	s := trimNegativeZero(strconvFixed(v, 1))
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + " pp"
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
