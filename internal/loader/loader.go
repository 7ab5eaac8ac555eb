// Package loader pushes a generated dataset into a live database. Tables are
// inserted in dependency order with batched multi-row statements.
package loader

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/fatih/color"

	"github.com/forgelabs/shopforge/internal/dataset"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

const DefaultBatchSize = 500

type Loader struct {
	db       *sql.DB
	provider string
	batch    int
}

// Open connects to the database behind the configured provider.
func Open(provider, url string) (*sql.DB, error) {
	var driverName string
	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
	default:
		driverName = "pgx"
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func New(db *sql.DB, provider string, batch int) *Loader {
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	return &Loader{db: db, provider: provider, batch: batch}
}

// Load inserts every collection. With createTables set, each table is created
// first from the column types of its rows.
func (l *Loader) Load(ctx context.Context, ds *dataset.Dataset, createTables bool) error {
	for _, table := range ds.Tables() {
		if createTables {
			if err := l.createTable(ctx, table); err != nil {
				return fmt.Errorf("creating table %s: %w", table.Name, err)
			}
		}

		if err := l.insertTable(ctx, table); err != nil {
			return fmt.Errorf("loading table %s: %w", table.Name, err)
		}
		color.Green("  ✅ %s: %d rows loaded", table.Name, len(table.Rows))
	}
	return nil
}

func (l *Loader) builder() sq.StatementBuilderType {
	if l.provider == "postgresql" || l.provider == "postgres" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (l *Loader) insertTable(ctx context.Context, t dataset.Table) error {
	for start := 0; start < len(t.Rows); start += l.batch {
		end := start + l.batch
		if end > len(t.Rows) {
			end = len(t.Rows)
		}

		insert := l.builder().Insert(t.Name).Columns(t.Columns...)
		for _, row := range t.Rows[start:end] {
			values := make([]any, len(row))
			for i, cell := range row {
				values[i] = normalize(cell)
			}
			insert = insert.Values(values...)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("building insert: %w", err)
		}
		if _, err := l.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("executing insert batch [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

// normalize unwraps values the drivers cannot bind directly.
func normalize(cell any) any {
	if d, ok := cell.(dataset.Date); ok {
		return d.Time
	}
	return cell
}

func (l *Loader) createTable(ctx context.Context, t dataset.Table) error {
	if len(t.Rows) == 0 {
		return nil
	}

	defs := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		defs[i] = fmt.Sprintf("%s %s", col, l.columnType(t.Rows[0][i]))
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", t.Name, strings.Join(defs, ", "))
	_, err := l.db.ExecContext(ctx, ddl)
	return err
}

// columnType maps a sample value to a portable column type for the provider.
func (l *Loader) columnType(sample any) string {
	mysql := l.provider == "mysql"
	sqlite := l.provider == "sqlite" || l.provider == "sqlite3"

	switch sample.(type) {
	case int:
		return "BIGINT"
	case float64:
		if mysql {
			return "DOUBLE"
		}
		return "DOUBLE PRECISION"
	case dataset.Date:
		if sqlite {
			return "TEXT"
		}
		return "DATE"
	case time.Time:
		if mysql {
			return "DATETIME"
		}
		if sqlite {
			return "TEXT"
		}
		return "TIMESTAMP"
	default:
		return "TEXT"
	}
}
