package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesCoversEveryCollection(t *testing.T) {
	ds := &Dataset{}
	tables := ds.Tables()

	require.Len(t, tables, 21)
	assert.Equal(t, CollUsers, tables[0].Name)
	assert.Equal(t, CollReviews, tables[len(tables)-1].Name)

	seen := make(map[string]bool, len(tables))
	for _, table := range tables {
		assert.False(t, seen[table.Name], "collection %s appears twice", table.Name)
		seen[table.Name] = true
		assert.NotEmpty(t, table.Columns, "collection %s has no columns", table.Name)
	}
}

func TestTableRejectsUnknownName(t *testing.T) {
	ds := &Dataset{}
	_, err := ds.Table("nope")
	assert.Error(t, err)
}

func TestTableRowsMatchColumnWidth(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	ds := &Dataset{
		Users: []User{{UserID: 1000, Username: "u", RegistrationDate: now, LastLogin: now}},
		Orders: []Order{{
			OrderID: 1, BuyerID: 1, OrderNumber: "ORD-1", OrderDate: now,
			PaymentMethod: "COD", PaymentStatus: "Pending", PaymentDate: Epoch,
		}},
	}

	for _, table := range ds.Tables() {
		for i, row := range table.Rows {
			assert.Len(t, row, len(table.Columns), "%s row %d", table.Name, i)
		}
	}
}

func TestColumnIndex(t *testing.T) {
	table := Table{Columns: []string{"a", "b", "c"}}
	assert.Equal(t, 1, table.ColumnIndex("b"))
	assert.Equal(t, -1, table.ColumnIndex("z"))
}

func TestForeignKeysNameRealColumns(t *testing.T) {
	ds := &Dataset{}

	for _, fk := range ForeignKeys {
		child, err := ds.Table(fk.Table)
		require.NoError(t, err, "%s.%s", fk.Table, fk.Column)
		parent, err := ds.Table(fk.RefTable)
		require.NoError(t, err, "%s.%s", fk.Table, fk.Column)

		assert.GreaterOrEqual(t, child.ColumnIndex(fk.Column), 0, "%s.%s", fk.Table, fk.Column)
		assert.GreaterOrEqual(t, parent.ColumnIndex(fk.RefColumn), 0, "%s.%s", fk.RefTable, fk.RefColumn)
	}
}

func TestDateOfTruncatesToMidnight(t *testing.T) {
	d := DateOf(time.Date(2025, 7, 4, 18, 30, 45, 123, time.UTC))
	assert.Equal(t, "2025-07-04", d.Format("2006-01-02"))
	h, m, s := d.Clock()
	assert.Zero(t, h+m+s)
}
