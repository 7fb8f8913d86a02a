package pipeline

import (
	"testing"

	"dizimo/cents-csv/internal/models"
	"dizimo/cents-csv/internal/pipelineerror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapping(t *testing.T, entries ...models.BucketEntry) models.BucketMapping {
	t.Helper()
	m, err := models.NewBucketMapping(entries)
	require.NoError(t, err)
	return m
}

func alphaBeta(t *testing.T) models.BucketMapping {
	return mapping(t,
		models.BucketEntry{CentKey: 1, Church: "Alpha"},
		models.BucketEntry{CentKey: 2, Church: "Beta"},
	)
}

func textRow(date, donor, amount, description string) []models.Cell {
	return []models.Cell{
		models.TextCell(date),
		models.TextCell(donor),
		models.TextCell(amount),
		models.TextCell(description),
	}
}

func numberRow(date, donor string, amount float64, description string) []models.Cell {
	return []models.Cell{
		models.TextCell(date),
		models.TextCell(donor),
		models.NumberCell(amount),
		models.TextCell(description),
	}
}

var gridHeader = []models.Cell{
	models.TextCell("Data"),
	models.TextCell("Doador"),
	models.TextCell("Valor"),
	models.TextCell("Descricao"),
}

func TestRunBasicClassification(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		numberRow("2024-01-05", "", 10.01, ""),
		numberRow("2024-01-06", "", 10.02, ""),
	}

	result, err := Run(grid, alphaBeta(t), nil)
	require.NoError(t, err)

	require.Len(t, result.Summaries, 2)
	assert.Equal(t, "Beta", result.Summaries[0].Church, "Beta has the larger total")
	assert.Equal(t, "10.02", result.Summaries[0].Total.StringFixed(2))
	assert.Equal(t, 1, result.Summaries[0].Count)
	assert.Equal(t, "Alpha", result.Summaries[1].Church)
	assert.Equal(t, "10.01", result.Summaries[1].Total.StringFixed(2))
	assert.Equal(t, 1, result.Summaries[1].Count)

	assert.Empty(t, result.Unmapped)
	assert.Equal(t, 2, result.Stats.TotalRecords)
}

func TestRunDuplicateDetection(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		numberRow("2024-01-05", "J", 5.01, "x"),
		numberRow("2024-01-05", "J", 5.01, "x"),
	}

	result, err := Run(grid, alphaBeta(t), nil)
	require.NoError(t, err)

	require.Len(t, result.Mapped, 2)
	assert.False(t, result.Mapped[0].Duplicate)
	assert.True(t, result.Mapped[1].Duplicate)
	assert.Equal(t, 1, result.Stats.Duplicates)

	require.Len(t, result.Summaries, 1)
	assert.Equal(t, "Alpha", result.Summaries[0].Church)
	assert.Equal(t, "10.02", result.Summaries[0].Total.StringFixed(2),
		"duplicates still count toward totals")
	assert.Equal(t, 2, result.Summaries[0].Count)
}

func TestRunUnmapped(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		numberRow("2024-02-01", "", 3.50, ""),
	}

	result, err := Run(grid, mapping(t, models.BucketEntry{CentKey: 1, Church: "Alpha"}), nil)
	require.NoError(t, err)

	require.Len(t, result.Unmapped, 1)
	assert.Equal(t, 50, result.Unmapped[0].CentKey)
	assert.Equal(t, 1, result.Stats.Unmapped)
	assert.Empty(t, result.Summaries)
}

func TestRunNegativeRefund(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		numberRow("2024-02-01", "", -1.01, "refund"),
	}

	result, err := Run(grid, mapping(t, models.BucketEntry{CentKey: 1, Church: "Alpha"}), nil)
	require.NoError(t, err)

	require.Len(t, result.Mapped, 1)
	assert.True(t, result.Mapped[0].Negative)
	assert.Equal(t, 1, result.Mapped[0].CentKey)
	assert.Equal(t, 1, result.Stats.Negatives)

	require.Len(t, result.Summaries, 1)
	assert.Equal(t, "1.01", result.Summaries[0].Total.StringFixed(2),
		"refunds contribute their magnitude")
}

func TestRunSkipsMalformedRow(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		textRow("not a date", "", "10,01", ""),
		numberRow("2024-01-05", "", 10.01, ""),
	}

	result, err := Run(grid, alphaBeta(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.TotalRecords,
		"the malformed row is absent from every output collection")
}

func TestRunMissingColumnFatal(t *testing.T) {
	grid := [][]models.Cell{
		{models.TextCell("foo"), models.TextCell("bar")},
		textRow("2024-01-05", "", "10,01", ""),
	}

	_, err := Run(grid, alphaBeta(t), nil)
	require.Error(t, err)
	var missing *pipelineerror.MissingColumnError
	assert.ErrorAs(t, err, &missing)
}

func TestRunNeverFailsOnValidGrid(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		textRow("05/01/2024", "Joana", "R$ 10,01", "dizimo"),
		textRow("garbage", "x", "y", "z"),
		numberRow("2024-01-06", "", -3.02, ""),
	}

	result, err := Run(grid, alphaBeta(t), nil)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestRunIdempotent(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		numberRow("2024-01-05", "J", 10.01, "a"),
		numberRow("2024-01-05", "J", 10.01, "a"),
		numberRow("2024-01-06", "K", 10.02, "b"),
		numberRow("2024-01-07", "", 3.50, ""),
	}
	m := alphaBeta(t)

	first, err := Run(grid, m, nil)
	require.NoError(t, err)
	second, err := Run(grid, m, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs yield identical results, order included")
}

func TestRunBrazilianTextAmounts(t *testing.T) {
	grid := [][]models.Cell{
		gridHeader,
		textRow("05/01/2024", "", "1.234,01", ""),
	}

	result, err := Run(grid, alphaBeta(t), nil)
	require.NoError(t, err)
	require.Len(t, result.Mapped, 1)
	assert.Equal(t, "1234.01", result.Mapped[0].Amount.String())
	assert.Equal(t, "Alpha", result.Mapped[0].Church)
}

func TestRunDoesNotMutateMapping(t *testing.T) {
	m := alphaBeta(t)
	before := m.Entries()

	grid := [][]models.Cell{
		gridHeader,
		numberRow("2024-01-05", "", 10.01, ""),
	}
	_, err := Run(grid, m, nil)
	require.NoError(t, err)

	assert.Equal(t, before, m.Entries())
}
