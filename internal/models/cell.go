// Package models provides the data structures used throughout the application.
package models

import (
	"strconv"
	"strings"
)

// CellKind discriminates the three value shapes a decoded spreadsheet
// cell can take.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// Cell is one untyped spreadsheet cell as delivered by the grid decoder.
// Exactly one of Number/Text is meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// EmptyCell returns a cell carrying no value.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// NumberCell returns a cell holding a numeric value.
func NumberCell(v float64) Cell {
	return Cell{Kind: CellNumber, Number: v}
}

// TextCell returns a cell holding free text.
func TextCell(s string) Cell {
	return Cell{Kind: CellText, Text: s}
}

// IsBlank reports whether the cell is empty or holds only whitespace.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case CellEmpty:
		return true
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	}
	return false
}

// String renders the cell value as text. Numbers use the shortest
// representation that round-trips.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	}
	return ""
}
