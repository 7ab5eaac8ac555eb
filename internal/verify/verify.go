// Package verify runs the post-generation integrity checks: no cell may be
// null or NaN, and every declared foreign key must resolve. A failed check
// aborts the run before anything is written out.
package verify

import (
	"fmt"
	"math"

	"github.com/fatih/color"

	"github.com/forgelabs/shopforge/internal/dataset"
)

// Check validates the whole dataset. The first failing table stops the scan.
func Check(ds *dataset.Dataset) error {
	tables := ds.Tables()

	for _, t := range tables {
		if err := checkCells(t); err != nil {
			return err
		}
	}
	color.Green("  ✅ No null or NaN cells across %d collections", len(tables))

	byName := make(map[string]dataset.Table, len(tables))
	for _, t := range tables {
		byName[t.Name] = t
	}
	for _, fk := range dataset.ForeignKeys {
		if err := checkForeignKey(byName, fk); err != nil {
			return err
		}
	}
	color.Green("  ✅ All %d foreign keys resolve", len(dataset.ForeignKeys))

	return nil
}

// checkCells rejects nil and NaN values, naming the offending column.
func checkCells(t dataset.Table) error {
	for rowIdx, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%s: row %d has %d cells, want %d", t.Name, rowIdx, len(row), len(t.Columns))
		}
		for colIdx, cell := range row {
			if cell == nil {
				return fmt.Errorf("%s: null value in column %s (row %d)", t.Name, t.Columns[colIdx], rowIdx)
			}
			if f, ok := cell.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
				return fmt.Errorf("%s: non-finite value in column %s (row %d)", t.Name, t.Columns[colIdx], rowIdx)
			}
		}
	}
	return nil
}

func checkForeignKey(tables map[string]dataset.Table, fk dataset.FK) error {
	child, ok := tables[fk.Table]
	if !ok {
		return fmt.Errorf("foreign key %s.%s: unknown table %s", fk.Table, fk.Column, fk.Table)
	}
	parent, ok := tables[fk.RefTable]
	if !ok {
		return fmt.Errorf("foreign key %s.%s: unknown referenced table %s", fk.Table, fk.Column, fk.RefTable)
	}

	childCol := child.ColumnIndex(fk.Column)
	if childCol < 0 {
		return fmt.Errorf("foreign key %s.%s: column not found", fk.Table, fk.Column)
	}
	parentCol := parent.ColumnIndex(fk.RefColumn)
	if parentCol < 0 {
		return fmt.Errorf("foreign key %s.%s: referenced column %s.%s not found", fk.Table, fk.Column, fk.RefTable, fk.RefColumn)
	}

	known := make(map[any]bool, len(parent.Rows))
	for _, row := range parent.Rows {
		known[row[parentCol]] = true
	}

	for rowIdx, row := range child.Rows {
		if !known[row[childCol]] {
			return fmt.Errorf("foreign key %s.%s: value %v (row %d) not found in %s.%s",
				fk.Table, fk.Column, row[childCol], rowIdx, fk.RefTable, fk.RefColumn)
		}
	}
	return nil
}
