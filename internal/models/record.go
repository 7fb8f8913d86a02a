package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnmappedLabel is the display label for records whose cent key has no
// configured church. It only exists at the export/CLI boundary; inside the
// pipeline the Mapped flag is authoritative, so a church legitimately named
// "unmapped" cannot collide with it.
const UnmappedLabel = "unmapped"

// DonationRecord is one validated transaction row. Donor and Description
// are optional; the grid parser normalizes absent values to "".
type DonationRecord struct {
	Date        time.Time
	Amount      decimal.Decimal
	Donor       string
	Description string
}

// ClassifiedRecord is a DonationRecord annotated by the classifier.
// Instances are created once and never mutated afterwards.
type ClassifiedRecord struct {
	DonationRecord

	// CentKey is the fractional-cent code of the absolute amount,
	// always in [0, 99].
	CentKey int

	// Church is the resolved church name; empty when Mapped is false.
	Church string

	// Mapped reports whether CentKey had an entry in the bucket mapping.
	Mapped bool

	// Duplicate is true for every record after the first with the same
	// date, signed amount, donor and description.
	Duplicate bool

	// Negative is true when the signed amount is below zero.
	Negative bool
}

// ChurchLabel returns the resolved church name, or UnmappedLabel when the
// record's cent key had no mapping.
func (r ClassifiedRecord) ChurchLabel() string {
	if !r.Mapped {
		return UnmappedLabel
	}
	return r.Church
}

// ChurchSummary is one aggregated row per resolved church. CentKey is the
// key of the first record observed for the church and is display-only.
type ChurchSummary struct {
	Church  string
	CentKey int
	Total   decimal.Decimal
	Count   int
}

// Average returns Total/Count rounded to 2 places, or zero for an empty
// summary.
func (s ChurchSummary) Average() decimal.Decimal {
	if s.Count == 0 {
		return decimal.Zero
	}
	return s.Total.Div(decimal.NewFromInt(int64(s.Count))).Round(2)
}

// PipelineStats holds the run-level counters, computed over the full
// classified sequence.
type PipelineStats struct {
	TotalRecords int
	Duplicates   int
	Negatives    int
	Unmapped     int
}

// Result is the complete output of one pipeline run.
type Result struct {
	Mapped    []ClassifiedRecord
	Unmapped  []ClassifiedRecord
	Summaries []ChurchSummary
	Stats     PipelineStats
}
