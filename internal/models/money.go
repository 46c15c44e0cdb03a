package models

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah formats an amount as Indonesian Rupiah for display: id-ID
// grouping, zero fraction digits. Display only; no conversion happens
// anywhere in the app.
func FormatRupiah(amount float64) string {
	rounded := math.Round(amount)
	return rupiahPrinter.Sprintf("Rp %v", number.Decimal(rounded, number.MaxFractionDigits(0)))
}
