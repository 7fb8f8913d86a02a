// Package aggregator partitions classified records and produces per-church
// summaries and run statistics.
package aggregator

import (
	"sort"

	"dizimo/cents-csv/internal/models"
)

// Aggregate partitions the classified sequence into mapped and unmapped
// sets (relative order preserved), accumulates per-church totals over the
// absolute amounts, and computes the run statistics over the full
// sequence. Summaries are sorted by total descending; ties keep the order
// in which the churches first appeared.
func Aggregate(records []models.ClassifiedRecord) models.Result {
	result := models.Result{
		Mapped:    []models.ClassifiedRecord{},
		Unmapped:  []models.ClassifiedRecord{},
		Summaries: []models.ChurchSummary{},
	}

	index := make(map[string]int)
	for _, record := range records {
		if record.Duplicate {
			result.Stats.Duplicates++
		}
		if record.Negative {
			result.Stats.Negatives++
		}

		if !record.Mapped {
			result.Unmapped = append(result.Unmapped, record)
			continue
		}
		result.Mapped = append(result.Mapped, record)

		i, ok := index[record.Church]
		if !ok {
			i = len(result.Summaries)
			index[record.Church] = i
			// CentKey on the summary is taken from the first record
			// observed for the church; it is display-only.
			result.Summaries = append(result.Summaries, models.ChurchSummary{
				Church:  record.Church,
				CentKey: record.CentKey,
			})
		}
		summary := &result.Summaries[i]
		summary.Total = summary.Total.Add(record.Amount.Abs())
		summary.Count++
	}

	result.Stats.TotalRecords = len(records)
	result.Stats.Unmapped = len(result.Unmapped)

	sort.SliceStable(result.Summaries, func(i, j int) bool {
		return result.Summaries[i].Total.GreaterThan(result.Summaries[j].Total)
	})

	return result
}
