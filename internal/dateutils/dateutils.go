// Package dateutils interprets spreadsheet cells as calendar dates.
//
// Dates arrive either as spreadsheet serial day counts or as free text in
// Brazilian or ISO conventions. Parsing never panics; failure is reported
// through the boolean return so callers can skip the row.
package dateutils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dizimo/cents-csv/internal/models"
)

// DateLayoutISO is the canonical date format used in fingerprints and
// exports.
const DateLayoutISO = "2006-01-02"

// serialEpoch is the spreadsheet day-zero: serial day 1 is 1899-12-31.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	// day-first patterns, Brazilian convention: DD/MM/YYYY and DD-MM-YYYY
	dayFirstPattern = regexp.MustCompile(`^(\d{1,2})([/-])(\d{1,2})([/-])(\d{4})$`)
	// ISO pattern: YYYY-MM-DD
	isoPattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	whitespace = regexp.MustCompile(`\s+`)
)

// fallbackLayouts are tried, in order, when the explicit component
// patterns do not match.
var fallbackLayouts = []string{
	DateLayoutISO + "T15:04:05Z07:00",
	DateLayoutISO + " 15:04:05",
	"02.01.2006",
	"2006/01/02",
	"2 January 2006",
	"02 Jan 2006",
}

// ParseDateCell converts a cell to a calendar date. Numeric cells are
// treated as serial day counts, text cells go through the layout rules.
func ParseDateCell(c models.Cell) (time.Time, bool) {
	switch c.Kind {
	case models.CellNumber:
		return FromSerial(c.Number)
	case models.CellText:
		return ParseDateString(c.Text)
	}
	return time.Time{}, false
}

// FromSerial converts a spreadsheet serial day count to a date. The
// fractional part carries time-of-day, which is insignificant here, so the
// serial is truncated to whole days.
func FromSerial(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	return serialEpoch.AddDate(0, 0, int(serial)), true
}

// ParseDateString parses a textual date. The explicit day-first and ISO
// patterns are tried before any generic layout so that 05/02/2024 is never
// read month-first.
func ParseDateString(s string) (time.Time, bool) {
	s = CleanDateString(s)
	if s == "" {
		return time.Time{}, false
	}

	if m := dayFirstPattern.FindStringSubmatch(s); m != nil && m[2] == m[4] {
		return calendarDate(atoi(m[5]), atoi(m[3]), atoi(m[1]))
	}
	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return calendarDate(atoi(m[1]), atoi(m[2]), atoi(m[3]))
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// CleanDateString trims and collapses internal whitespace.
func CleanDateString(s string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ToISODate formats a date as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// calendarDate builds a date from explicit components, rejecting values
// that time.Date would silently normalize (e.g. 31/02).
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
