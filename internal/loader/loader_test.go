package loader

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelabs/shopforge/internal/dataset"
)

func TestLoadIntoSQLite(t *testing.T) {
	db, err := Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	// An in-memory SQLite database lives on a single connection.
	db.SetMaxOpenConns(1)

	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	ds := &dataset.Dataset{}
	for i := 0; i < 3; i++ {
		ds.Users = append(ds.Users, dataset.User{
			UserID: 1000 + i, Username: "u", Email: "u@example.com",
			PasswordHash: "h", PhoneNumber: "p",
			RegistrationDate: now, LastLogin: now, ProfilePicture: "pic",
			WalletBalance: 10.5,
		})
	}

	l := New(db, "sqlite3", 2)
	require.NoError(t, l.Load(context.Background(), ds, true))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	assert.Equal(t, 3, count)

	var userID int
	var username string
	require.NoError(t, db.QueryRow("SELECT user_id, username FROM users ORDER BY user_id LIMIT 1").Scan(&userID, &username))
	assert.Equal(t, 1000, userID)
	assert.Equal(t, "u", username)
}

func TestBatchSizeSplitsInserts(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	now := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	ds := &dataset.Dataset{}
	for i := 0; i < 7; i++ {
		ds.Carts = append(ds.Carts, dataset.Cart{CartID: i + 1, UserID: 1000 + i, LastUpdated: now})
	}

	l := New(db, "sqlite", 3)
	require.NoError(t, l.Load(context.Background(), ds, true))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM carts").Scan(&count))
	assert.Equal(t, 7, count)
}

func TestNormalizeUnwrapsDates(t *testing.T) {
	d := dataset.DateOf(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	got := normalize(d)
	tm, ok := got.(time.Time)
	require.True(t, ok)
	assert.True(t, tm.Equal(d.Time))

	assert.Equal(t, 42, normalize(42))
}

func TestNewClampsBatchSize(t *testing.T) {
	l := New(nil, "postgresql", 0)
	assert.Equal(t, DefaultBatchSize, l.batch)
}
