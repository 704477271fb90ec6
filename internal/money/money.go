// Package money formats whole-dollar amounts for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts with locale digit grouping and a currency symbol.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale tag. Unparseable tags fall back
// to American English.
func NewFormatter(symbol, locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// Default formats as "$1,700,000".
func Default() Formatter {
	return NewFormatter("$", "en-US")
}

// Format renders dollars, e.g. 6177000 -> "$6,177,000".
func (f Formatter) Format(dollars int64) string {
	if f.printer == nil {
		f = Default()
	}
	if dollars < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", -dollars)
	}
	return f.symbol + f.printer.Sprintf("%d", dollars)
}
