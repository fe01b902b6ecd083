// Package runner provides the canned query runner behind the designer's
// "run query" surface. No real database is involved: every statement is
// served by a sqlmock connection primed with deterministic rows derived
// from the table's column types.
package runner

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/canvasql/canvasql/internal/model"
)

// SampleRows is the fixed number of rows every SELECT returns.
const SampleRows = 3

// Result holds the rows returned by a canned query.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Runner serves generated DML from canned result sets.
type Runner struct {
	db   *sql.DB
	mock sqlmock.Sqlmock
}

// New creates a runner backed by a sqlmock connection that matches
// statements by equality.
func New() (*Runner, error) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		return nil, fmt.Errorf("open mock connection: %w", err)
	}
	return &Runner{db: db, mock: mock}, nil
}

// Close releases the mock connection.
func (r *Runner) Close() error {
	return r.db.Close()
}

// Query runs a SELECT against canned rows shaped by the table's columns.
func (r *Runner) Query(ctx context.Context, t model.Table, stmt string) (*Result, error) {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	mockRows := sqlmock.NewRows(names)
	for i := 0; i < SampleRows; i++ {
		row := make([]driver.Value, len(t.Columns))
		for j, c := range t.Columns {
			row[j] = sampleValue(c, i)
		}
		mockRows.AddRow(row...)
	}
	r.mock.ExpectQuery(stmt).WillReturnRows(mockRows)

	rows, err := r.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	res := &Result{Columns: names}
	for rows.Next() {
		raw := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		rec := make([]string, len(names))
		for i, v := range raw {
			rec[i] = formatCell(v)
		}
		res.Rows = append(res.Rows, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return res, nil
}

// Exec runs an INSERT, UPDATE or DELETE; the canned result always
// reports one affected row.
func (r *Runner) Exec(ctx context.Context, stmt string) (int64, error) {
	r.mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(1, 1))
	res, err := r.db.ExecContext(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("run statement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

// Render writes the result as a text table.
func Render(w io.Writer, res *Result) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	header := make(table.Row, len(res.Columns))
	for i, c := range res.Columns {
		header[i] = c
	}
	tw.AppendHeader(header)
	for _, rec := range res.Rows {
		row := make(table.Row, len(rec))
		for i, v := range rec {
			row[i] = v
		}
		tw.AppendRow(row)
	}
	tw.Render()
}

// sampleValue returns a deterministic canned value for a column and row
// index, loosely matching the column's type family.
func sampleValue(c model.Column, i int) any {
	base := strings.ToUpper(c.Type)
	switch {
	case strings.Contains(base, "INT") || base == "NUMBER" || base == "SERIAL" || base == "BIGSERIAL":
		return int64(i + 1)
	case strings.Contains(base, "DECIMAL") || strings.Contains(base, "NUMERIC") ||
		strings.Contains(base, "FLOAT") || strings.Contains(base, "DOUBLE") || base == "REAL":
		return float64(i+1) + 0.5
	case base == "BOOLEAN" || base == "BOOL":
		return i%2 == 0
	case strings.Contains(base, "DATE") || strings.Contains(base, "TIME"):
		return fmt.Sprintf("2024-01-%02d", i+1)
	default:
		return fmt.Sprintf("%s_%d", c.Name, i+1)
	}
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
