// Package export writes the generated dataset to disk as CSV files split
// into two part directories, plus a manifest describing what was written.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/forgelabs/shopforge/internal/dataset"
)

const (
	part1Dir = "dummy_data_part1"
	part2Dir = "dummy_data_part2"

	timestampLayout = "2006-01-02T15:04:05"
	dateLayout      = "2006-01-02"
)

// ManifestEntry records one written collection.
type ManifestEntry struct {
	File string `yaml:"file"`
	Rows int    `yaml:"rows"`
}

// WriteCSV writes every collection under outDir and returns the manifest. The
// part split mirrors how downstream imports consume the seed data.
func WriteCSV(ds *dataset.Dataset, outDir string) (map[string]ManifestEntry, error) {
	parts := map[string][]string{
		part1Dir: dataset.Part1,
		part2Dir: dataset.Part2,
	}

	manifest := make(map[string]ManifestEntry, len(dataset.Part1)+len(dataset.Part2))

	for dir, names := range parts {
		partPath := filepath.Join(outDir, dir)
		if err := os.MkdirAll(partPath, 0o755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", partPath, err)
		}

		for _, name := range names {
			table, err := ds.Table(name)
			if err != nil {
				return nil, err
			}

			relPath := filepath.Join(dir, name+".csv")
			if err := writeTable(table, filepath.Join(outDir, relPath)); err != nil {
				return nil, err
			}

			manifest[name] = ManifestEntry{File: relPath, Rows: len(table.Rows)}
			color.Green("  ✅ %s: %d rows", relPath, len(table.Rows))
		}
	}

	if err := writeManifest(manifest, filepath.Join(outDir, "manifest.yaml")); err != nil {
		return nil, err
	}

	return manifest, nil
}

func writeTable(t dataset.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header of %s: %w", path, err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = formatCell(cell)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// formatCell renders one cell. Timestamps serialize at second granularity,
// dates at day granularity; floats keep the shortest exact representation.
func formatCell(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case dataset.Date:
		return v.Format(dateLayout)
	case time.Time:
		return v.Format(timestampLayout)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func writeManifest(manifest map[string]ManifestEntry, path string) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
