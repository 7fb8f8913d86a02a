// Package export serializes classification results to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"dizimo/cents-csv/internal/dateutils"
	"dizimo/cents-csv/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter is the CSV output delimiter, configurable via SetDelimiter.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for all CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// recordRow is the detailed-record CSV layout. Column order is part of the
// output contract consumed by downstream reports.
type recordRow struct {
	Date        string `csv:"Date"`
	Donor       string `csv:"Donor"`
	Amount      string `csv:"Amount"`
	CentKey     int    `csv:"CentKey"`
	Church      string `csv:"Church"`
	Description string `csv:"Description"`
	Duplicate   bool   `csv:"Duplicate"`
	Negative    bool   `csv:"Negative"`
}

// summaryRow is the per-church summary CSV layout.
type summaryRow struct {
	Church  string `csv:"Church"`
	CentKey int    `csv:"CentKey"`
	Total   string `csv:"Total"`
	Count   int    `csv:"Count"`
	Average string `csv:"Average"`
}

// WriteRecordsCSV writes classified records to a CSV file. Records whose
// cent key had no mapping carry the unmapped label in the Church column.
func WriteRecordsCSV(records []models.ClassifiedRecord, csvFile string) error {
	rows := make([]recordRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, recordRow{
			Date:        dateutils.ToISODate(record.Date),
			Donor:       record.Donor,
			Amount:      record.Amount.StringFixed(2),
			CentKey:     record.CentKey,
			Church:      record.ChurchLabel(),
			Description: record.Description,
			Duplicate:   record.Duplicate,
			Negative:    record.Negative,
		})
	}
	return writeCSV(rows, csvFile)
}

// WriteSummariesCSV writes per-church summaries to a CSV file.
func WriteSummariesCSV(summaries []models.ChurchSummary, csvFile string) error {
	rows := make([]summaryRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, summaryRow{
			Church:  summary.Church,
			CentKey: summary.CentKey,
			Total:   summary.Total.StringFixed(2),
			Count:   summary.Count,
			Average: summary.Average().StringFixed(2),
		})
	}
	return writeCSV(rows, csvFile)
}

// WriteResult writes the full run output into a directory: records.csv
// (mapped), unmapped.csv and summaries.csv.
func WriteResult(result *models.Result, dir string) error {
	if result == nil {
		return fmt.Errorf("cannot write nil result")
	}
	if err := WriteRecordsCSV(result.Mapped, filepath.Join(dir, "records.csv")); err != nil {
		return err
	}
	if err := WriteRecordsCSV(result.Unmapped, filepath.Join(dir, "unmapped.csv")); err != nil {
		return err
	}
	return WriteSummariesCSV(result.Summaries, filepath.Join(dir, "summaries.csv"))
}

func writeCSV(rows interface{}, csvFile string) error {
	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
