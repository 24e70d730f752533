package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayLanguage = language.AmericanEnglish

// FormatPrice renders a price with thousands separators, e.g. "$25,000".
func FormatPrice(price float64) string {
	p := message.NewPrinter(displayLanguage)
	return p.Sprintf("$%v", number.Decimal(price, number.MaxFractionDigits(2)))
}

// FormatMileage renders an odometer reading, e.g. "15,000 mi".
func FormatMileage(miles int) string {
	p := message.NewPrinter(displayLanguage)
	return p.Sprintf("%v mi", number.Decimal(miles))
}
