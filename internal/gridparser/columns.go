package gridparser

import (
	"strings"

	"dizimo/cents-csv/internal/models"
	"dizimo/cents-csv/internal/pipelineerror"
)

// Candidate header names per column category, in priority order. Matching
// is case-insensitive substring containment, so "Data da Oferta" satisfies
// "data".
var (
	DateColumns        = []string{"data", "date", "dt"}
	AmountColumns      = []string{"valor", "amount", "value", "vlr"}
	DonorColumns       = []string{"doador", "donor", "nome", "name"}
	DescriptionColumns = []string{"descricao", "description", "desc", "observacao"}
)

// Columns holds the resolved column indexes for one grid. Donor and
// Description are -1 when the header has no matching column.
type Columns struct {
	Date        int
	Amount      int
	Donor       int
	Description int
}

// Locate finds the first header cell containing any candidate name,
// testing candidates in priority order and header cells left to right.
func Locate(header []models.Cell, candidates []string) (int, bool) {
	for _, name := range candidates {
		for i, cell := range header {
			if strings.Contains(strings.ToLower(cell.String()), name) {
				return i, true
			}
		}
	}
	return -1, false
}

// LocateColumns resolves all four column categories from the header row.
// Missing date or amount columns are fatal: without them no record can be
// constructed.
func LocateColumns(header []models.Cell) (Columns, error) {
	cols := Columns{Donor: -1, Description: -1}

	idx, ok := Locate(header, DateColumns)
	if !ok {
		return Columns{}, &pipelineerror.MissingColumnError{Column: "date"}
	}
	cols.Date = idx

	idx, ok = Locate(header, AmountColumns)
	if !ok {
		return Columns{}, &pipelineerror.MissingColumnError{Column: "amount"}
	}
	cols.Amount = idx

	if idx, ok = Locate(header, DonorColumns); ok {
		cols.Donor = idx
	}
	if idx, ok = Locate(header, DescriptionColumns); ok {
		cols.Description = idx
	}

	return cols, nil
}
