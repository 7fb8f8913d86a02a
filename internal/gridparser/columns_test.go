package gridparser

import (
	"testing"

	"dizimo/cents-csv/internal/models"
	"dizimo/cents-csv/internal/pipelineerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(names ...string) []models.Cell {
	cells := make([]models.Cell, len(names))
	for i, name := range names {
		cells[i] = models.TextCell(name)
	}
	return cells
}

func TestLocateSubstringMatch(t *testing.T) {
	h := header("Data da Oferta", "Valor (R$)", "Nome do Doador")

	idx, ok := Locate(h, DateColumns)
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = Locate(h, AmountColumns)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestLocateCaseInsensitive(t *testing.T) {
	idx, ok := Locate(header("DATA", "VALOR"), DateColumns)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLocateCandidatePriority(t *testing.T) {
	// "valor" wins over "amount" because candidates are tried in order
	// even though the amount column appears first.
	h := header("Amount", "Valor")
	idx, ok := Locate(h, AmountColumns)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestLocateNotFound(t *testing.T) {
	idx, ok := Locate(header("foo", "bar"), DateColumns)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestLocateColumns(t *testing.T) {
	cols, err := LocateColumns(header("Data", "Doador", "Valor", "Descricao"))
	require.NoError(t, err)
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 2, cols.Amount)
	assert.Equal(t, 1, cols.Donor)
	assert.Equal(t, 3, cols.Description)
}

func TestLocateColumnsOptionalAbsent(t *testing.T) {
	cols, err := LocateColumns(header("Data", "Valor"))
	require.NoError(t, err)
	assert.Equal(t, -1, cols.Donor)
	assert.Equal(t, -1, cols.Description)
}

func TestLocateColumnsMissingRequired(t *testing.T) {
	_, err := LocateColumns(header("Doador", "Valor"))
	require.Error(t, err)
	var missing *pipelineerror.MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "date", missing.Column)

	_, err = LocateColumns(header("Data", "Doador"))
	require.Error(t, err)
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "amount", missing.Column)
}
