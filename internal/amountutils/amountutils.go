// Package amountutils interprets spreadsheet cells as signed decimal
// amounts.
//
// Textual amounts follow the Brazilian convention: "." is a thousands
// separator and "," the decimal separator, so "1.234,56" reads as 1234.56.
// Negative values are indicated by a minus sign or accounting parentheses.
// Parsing never panics; failure is reported through the boolean return.
package amountutils

import (
	"math"
	"regexp"
	"strings"

	"dizimo/cents-csv/internal/models"

	"github.com/shopspring/decimal"
)

// currencyMarkers matches currency symbols and whitespace stripped before
// numeric parsing. The leading R covers the "R$" real marker.
var currencyMarkers = regexp.MustCompile(`[Rr$€£¥\s]`)

// ParseAmountCell converts a cell to an exact decimal amount. Numeric
// cells are taken verbatim with their sign; text cells are normalized from
// the Brazilian format first.
func ParseAmountCell(c models.Cell) (decimal.Decimal, bool) {
	switch c.Kind {
	case models.CellNumber:
		if math.IsNaN(c.Number) || math.IsInf(c.Number, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(c.Number), true
	case models.CellText:
		return ParseAmountString(c.Text)
	}
	return decimal.Decimal{}, false
}

// ParseAmountString parses a Brazilian-formatted amount string.
func ParseAmountString(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}

	s = StandardizeAmount(s)

	negative := strings.ContainsAny(s, "-(")
	s = strings.Map(func(r rune) rune {
		switch r {
		case '-', '(', ')':
			return -1
		}
		return r
	}, s)

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}

// StandardizeAmount rewrites a Brazilian-formatted amount into the plain
// decimal syntax the decimal parser accepts: currency markers and
// whitespace removed, thousands dots dropped, the decimal comma swapped
// for a point.
func StandardizeAmount(s string) string {
	s = currencyMarkers.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	return s
}

// IsNegative reports whether the amount is below zero.
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}
