package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/forgelabs/shopforge/internal/dataset"
)

func TestWriteCSVProducesBothParts(t *testing.T) {
	outDir := t.TempDir()

	ds := &dataset.Dataset{}
	ds.Users = append(ds.Users, dataset.User{
		UserID: 1000, Username: "alice", Email: "alice@example.com",
		PasswordHash: "abc", PhoneNumber: "555",
		RegistrationDate: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		LastLogin:        time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
		ProfilePicture:   "pic", WalletBalance: 12.5,
	})

	manifest, err := WriteCSV(ds, outDir)
	require.NoError(t, err)
	require.Len(t, manifest, 21)

	// Every collection gets a file, populated or not.
	for _, name := range dataset.Part1 {
		assert.FileExists(t, filepath.Join(outDir, "dummy_data_part1", name+".csv"))
	}
	for _, name := range dataset.Part2 {
		assert.FileExists(t, filepath.Join(outDir, "dummy_data_part2", name+".csv"))
	}

	assert.Equal(t, 1, manifest["users"].Rows)
	assert.Equal(t, 0, manifest["orders"].Rows)
}

func TestWriteCSVSerializesValues(t *testing.T) {
	outDir := t.TempDir()

	ds := &dataset.Dataset{}
	ds.Users = append(ds.Users, dataset.User{
		UserID: 1000, Username: "alice", Email: "alice@example.com",
		PasswordHash: "abc", PhoneNumber: "555",
		RegistrationDate: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		LastLogin:        time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC),
		ProfilePicture:   "pic", IsActive: 1, WalletBalance: 12.5,
	})

	_, err := WriteCSV(ds, outDir)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(outDir, "dummy_data_part1", "users.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one row")

	header := records[0]
	row := records[1]
	assert.Equal(t, "user_id", header[0])
	assert.Equal(t, "1000", row[0])
	assert.Equal(t, "alice", row[1])
	assert.Equal(t, "2024-03-01T09:30:00", row[5])
	assert.Equal(t, "1", row[6])
	assert.Equal(t, "12.5", row[10])
}

func TestWriteCSVWritesManifest(t *testing.T) {
	outDir := t.TempDir()

	ds := &dataset.Dataset{}
	ds.Promotions = append(ds.Promotions, dataset.Promotion{
		PromotionID: 1, Title: "Promo One", Description: "d", BannerURL: "b",
		StartDate: dataset.DateOf(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:   dataset.DateOf(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)),
		TargetType: "all", ReferenceID: "ALL",
	})

	_, err := WriteCSV(ds, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "manifest.yaml"))
	require.NoError(t, err)

	var manifest map[string]ManifestEntry
	require.NoError(t, yaml.Unmarshal(data, &manifest))

	entry := manifest["promotions"]
	assert.Equal(t, 1, entry.Rows)
	assert.Equal(t, filepath.Join("dummy_data_part2", "promotions.csv"), entry.File)
}

func TestFormatCellDateGranularity(t *testing.T) {
	d := dataset.DateOf(time.Date(2025, 2, 10, 15, 45, 0, 0, time.UTC))
	assert.Equal(t, "2025-02-10", formatCell(d))
	assert.Equal(t, "2025-02-10T15:45:00", formatCell(time.Date(2025, 2, 10, 15, 45, 0, 0, time.UTC)))
}
