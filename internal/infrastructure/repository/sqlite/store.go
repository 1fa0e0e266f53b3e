package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"

	"github.com/cricsight-io/cricsight/internal/domain/record"
	"github.com/cricsight-io/cricsight/internal/platform/logging"
	"github.com/cricsight-io/cricsight/internal/usecase"
)

const (
	// TableName is the single relation all catalogue queries run against.
	TableName = "cricket_data"

	// The store lives entirely in memory. A single pooled connection keeps the
	// database alive for the process lifetime: closing the last connection to
	// an in-memory SQLite database drops it.
	dsn = "file:cricsight?mode=memory&cache=shared"
)

// Store materializes the dataset into an in-memory SQLite relation and runs
// read queries against it.
type Store struct {
	db     *sqlx.DB
	logger *logging.Logger
}

func Open(logger *logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := otelsqlx.Open("sqlite", dsn,
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName("cricsight"),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open in-memory sqlite store: %w", err)
	}

	// Serialize access on one long-lived connection. The dataset is small and
	// read-mostly; the shared-cache DSN keeps the schema visible if the pool
	// ever grows.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping in-memory sqlite store: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Materialize replaces the cricket_data relation with the given table. Calling
// it again with the same table leaves the row count unchanged.
func (s *Store) Materialize(ctx context.Context, table record.Table) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin materialize tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+TableName); err != nil {
		return fmt.Errorf("drop %s: %w", TableName, err)
	}
	if _, err := tx.ExecContext(ctx, createTableStatement(table.Columns)); err != nil {
		return fmt.Errorf("create %s: %w", TableName, err)
	}

	stmt, err := tx.PreparexContext(ctx, insertStatement(table.Columns))
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", TableName, err)
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		if _, err := stmt.ExecContext(ctx, row.Values()...); err != nil {
			return fmt.Errorf("insert %s row %d: %w", TableName, i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit materialize tx: %w", err)
	}

	s.logger.InfoContext(ctx, "dataset materialized", "table", TableName, "rows", len(table.Rows))

	return nil
}

// Execute runs a read query and returns its full result set. Engine errors
// come back marked as invalid-query with the engine's message preserved.
func (s *Store) Execute(ctx context.Context, query string) (record.ResultTable, error) {
	if !isReadQuery(query) {
		return record.ResultTable{}, fmt.Errorf("%w: only SELECT statements are allowed", usecase.ErrInvalidQuery)
	}

	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return record.ResultTable{}, fmt.Errorf("%w: %v", usecase.ErrInvalidQuery, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return record.ResultTable{}, fmt.Errorf("read result columns: %w", err)
	}

	result := record.ResultTable{Columns: columns, Rows: [][]any{}}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return record.ResultTable{}, fmt.Errorf("scan result row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return record.ResultTable{}, fmt.Errorf("%w: %v", usecase.ErrInvalidQuery, err)
	}

	return result, nil
}

func isReadQuery(query string) bool {
	head := strings.ToUpper(strings.TrimSpace(query))
	return strings.HasPrefix(head, "SELECT") || strings.HasPrefix(head, "WITH")
}

func createTableStatement(columns []record.Column) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	b.WriteString(TableName)
	b.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(col.Name)
		b.WriteByte(' ')
		b.WriteString(string(col.Type))
	}
	b.WriteString(")")
	return b.String()
}

func insertStatement(columns []record.Column) string {
	names := make([]string, 0, len(columns))
	placeholders := make([]string, 0, len(columns))
	for _, col := range columns {
		names = append(names, col.Name)
		placeholders = append(placeholders, "?")
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		TableName, strings.Join(names, ", "), strings.Join(placeholders, ", "))
}
