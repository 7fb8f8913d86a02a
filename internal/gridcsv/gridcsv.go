// Package gridcsv decodes a CSV file into the untyped cell grid the
// pipeline consumes. It stands in for the spreadsheet-container decoder:
// blank fields become empty cells, plain numbers become numeric cells
// (which also carries spreadsheet serial dates through), everything else
// stays text.
package gridcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dizimo/cents-csv/internal/logging"
	"dizimo/cents-csv/internal/models"
	"dizimo/cents-csv/internal/pipelineerror"
)

// ReadGrid decodes CSV data into a rectangular cell grid. Ragged rows are
// padded or truncated to the header width, as row 0 defines the columns.
func ReadGrid(r io.Reader, logger logging.Logger) ([][]models.Cell, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &pipelineerror.FormatError{Path: "(from reader)", Msg: "empty grid file"}
		}
		return nil, &pipelineerror.FormatError{Path: "(from reader)", Msg: "failed to read header row", Err: err}
	}

	width := len(header)
	grid := [][]models.Cell{toCells(header, width)}

	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			logger.WithError(err).Warn("Skipping malformed CSV row")
			continue
		}
		grid = append(grid, toCells(record, width))
	}

	logger.Debug("Decoded cell grid",
		logging.Field{Key: "rows", Value: len(grid)},
		logging.Field{Key: "columns", Value: width})

	return grid, nil
}

// ReadGridFile opens and decodes a CSV grid file.
func ReadGridFile(path string, logger logging.Logger) ([][]models.Cell, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	file, err := os.Open(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening grid file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close grid file")
		}
	}()

	return ReadGrid(file, logger)
}

// toCells converts one CSV record to cells, normalizing its length to the
// header width.
func toCells(record []string, width int) []models.Cell {
	cells := make([]models.Cell, width)
	for i := range cells {
		if i < len(record) {
			cells[i] = toCell(record[i])
		} else {
			cells[i] = models.EmptyCell()
		}
	}
	return cells
}

// toCell sniffs the field shape. Only plain float syntax becomes a numeric
// cell; Brazilian-formatted amounts like "3,50" stay text so the amount
// parser applies its own separator rules.
func toCell(field string) models.Cell {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return models.EmptyCell()
	}
	if value, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.NumberCell(value)
	}
	return models.TextCell(trimmed)
}
