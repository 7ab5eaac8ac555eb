package verify

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelabs/shopforge/internal/dataset"
)

func minimalDataset() *dataset.Dataset {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	ds := &dataset.Dataset{}
	ds.Users = append(ds.Users, dataset.User{
		UserID: 1000, Username: "u", Email: "u@example.com", PasswordHash: "h",
		PhoneNumber: "p", RegistrationDate: now, LastLogin: now, ProfilePicture: "pic",
	})
	ds.Buyers = append(ds.Buyers, dataset.Buyer{BuyerID: 1, UserID: 1000, LastPurchase: dataset.Epoch})
	ds.Carts = append(ds.Carts, dataset.Cart{CartID: 1, UserID: 1000, LastUpdated: now})
	return ds
}

func TestCheckAcceptsConsistentDataset(t *testing.T) {
	require.NoError(t, Check(minimalDataset()))
}

func TestCheckRejectsDanglingForeignKey(t *testing.T) {
	ds := minimalDataset()
	ds.Buyers[0].UserID = 9999

	err := Check(ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buyers")
	assert.Contains(t, err.Error(), "user_id")
}

func TestCheckCellsRejectsNull(t *testing.T) {
	table := dataset.Table{
		Name:    "things",
		Columns: []string{"id", "name"},
		Rows:    [][]any{{1, nil}},
	}

	err := checkCells(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestCheckCellsRejectsNaN(t *testing.T) {
	table := dataset.Table{
		Name:    "things",
		Columns: []string{"id", "price"},
		Rows:    [][]any{{1, math.NaN()}},
	}

	err := checkCells(table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestCheckCellsRejectsShortRow(t *testing.T) {
	table := dataset.Table{
		Name:    "things",
		Columns: []string{"id", "name"},
		Rows:    [][]any{{1}},
	}

	assert.Error(t, checkCells(table))
}

func TestCheckForeignKeyRejectsUnknownColumn(t *testing.T) {
	tables := map[string]dataset.Table{
		"child":  {Name: "child", Columns: []string{"id"}},
		"parent": {Name: "parent", Columns: []string{"id"}},
	}
	fk := dataset.FK{Table: "child", Column: "parent_id", RefTable: "parent", RefColumn: "id"}

	assert.Error(t, checkForeignKey(tables, fk))
}
