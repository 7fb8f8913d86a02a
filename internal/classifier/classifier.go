// Package classifier annotates donation records with their cent key,
// church resolution, duplicate flag and sign flag.
package classifier

import (
	"fmt"

	"dizimo/cents-csv/internal/dateutils"
	"dizimo/cents-csv/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CentKey derives the classification key from the fractional-cent part of
// the absolute amount: round(|amount|*100) mod 100, rounding half away
// from zero. The result is always in [0, 99].
func CentKey(amount decimal.Decimal) int {
	cents := amount.Abs().Mul(hundred).Round(0)
	return int(cents.Mod(hundred).IntPart())
}

// Fingerprint builds the duplicate-detection key from the date, the
// signed amount in its canonical decimal form, and the donor and
// description texts. Records agreeing on all four fields are duplicates.
func Fingerprint(r models.DonationRecord) string {
	return fmt.Sprintf("%s_%s_%s_%s",
		dateutils.ToISODate(r.Date), r.Amount.String(), r.Donor, r.Description)
}

// Classify annotates every record, in input order. The seen-fingerprint
// set is scoped to this call; the first record with a given fingerprint is
// never flagged, every later one is. Classification is total: each input
// record yields exactly one classified record.
func Classify(records []models.DonationRecord, mapping models.BucketMapping) []models.ClassifiedRecord {
	seen := make(map[string]struct{}, len(records))
	classified := make([]models.ClassifiedRecord, 0, len(records))

	for _, record := range records {
		fingerprint := Fingerprint(record)
		_, duplicate := seen[fingerprint]
		seen[fingerprint] = struct{}{}

		centKey := CentKey(record.Amount)
		church, mapped := mapping.Lookup(centKey)

		classified = append(classified, models.ClassifiedRecord{
			DonationRecord: record,
			CentKey:        centKey,
			Church:         church,
			Mapped:         mapped,
			Duplicate:      duplicate,
			Negative:       record.Amount.IsNegative(),
		})
	}

	return classified
}
