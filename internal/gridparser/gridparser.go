// Package gridparser turns the raw cell grid into validated donation
// records. Row 0 is the header; data rows whose date or amount cannot be
// parsed are skipped, never fatal.
package gridparser

import (
	"strings"

	"dizimo/cents-csv/internal/amountutils"
	"dizimo/cents-csv/internal/dateutils"
	"dizimo/cents-csv/internal/logging"
	"dizimo/cents-csv/internal/models"
	"dizimo/cents-csv/internal/pipelineerror"
)

// Parse resolves the columns from the header row and converts every data
// row into a DonationRecord, preserving the original row order. The only
// error it returns is a missing required column; unparseable rows are
// dropped with a debug log.
func Parse(grid [][]models.Cell, logger logging.Logger) ([]models.DonationRecord, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if len(grid) == 0 {
		return nil, &pipelineerror.MissingColumnError{Column: "date"}
	}

	cols, err := LocateColumns(grid[0])
	if err != nil {
		return nil, err
	}

	records := make([]models.DonationRecord, 0, len(grid)-1)
	skipped := 0
	for i, row := range grid[1:] {
		record, ok := parseRow(row, cols)
		if !ok {
			skipped++
			logger.Debug("Skipping unparseable row",
				logging.Field{Key: "row", Value: i + 2})
			continue
		}
		records = append(records, record)
	}

	logger.Info("Parsed donation grid",
		logging.Field{Key: "rows", Value: len(grid) - 1},
		logging.Field{Key: "records", Value: len(records)},
		logging.Field{Key: "skipped", Value: skipped})

	return records, nil
}

// parseRow converts one data row. A blank row or a row whose date or
// amount fails to parse yields ok=false.
func parseRow(row []models.Cell, cols Columns) (models.DonationRecord, bool) {
	if rowIsBlank(row) {
		return models.DonationRecord{}, false
	}

	date, ok := dateutils.ParseDateCell(cellAt(row, cols.Date))
	if !ok {
		return models.DonationRecord{}, false
	}

	amount, ok := amountutils.ParseAmountCell(cellAt(row, cols.Amount))
	if !ok {
		return models.DonationRecord{}, false
	}

	return models.DonationRecord{
		Date:        date,
		Amount:      amount,
		Donor:       textAt(row, cols.Donor),
		Description: textAt(row, cols.Description),
	}, true
}

func rowIsBlank(row []models.Cell) bool {
	for _, cell := range row {
		if !cell.IsBlank() {
			return false
		}
	}
	return true
}

// cellAt returns the cell at idx, or an empty cell when the row is too
// short or the column was not located.
func cellAt(row []models.Cell, idx int) models.Cell {
	if idx < 0 || idx >= len(row) {
		return models.EmptyCell()
	}
	return row[idx]
}

// textAt reads an optional text column, normalizing absent and
// whitespace-only values to "".
func textAt(row []models.Cell, idx int) string {
	cell := cellAt(row, idx)
	if cell.IsBlank() {
		return ""
	}
	return strings.TrimSpace(cell.String())
}
