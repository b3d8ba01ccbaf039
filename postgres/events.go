// Package postgres stores parsed scan events in a PostgreSQL table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"kastelo.dev/attendance"
)

const DefaultTable = "scan_events"

var columns = []string{"employee_id", "ts", "scan_date", "scan_time", "signal_1", "signal_2"}

func Open(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

func createTableSQL(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	employee_id BIGINT NOT NULL,
	ts TIMESTAMP NOT NULL,
	scan_date DATE NOT NULL,
	scan_time TIME NOT NULL,
	signal_1 INTEGER,
	signal_2 INTEGER
)`, pq.QuoteIdentifier(table))
}

// ReplaceEvents replaces the contents of table with events in a single
// transaction, creating the table if needed.
func ReplaceEvents(ctx context.Context, db *sql.DB, table string, events []attendance.ScanEvent) error {
	if table == "" {
		table = DefaultTable
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, createTableSQL(table)); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+pq.QuoteIdentifier(table)); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("copy into %s: %w", table, err)
	}
	for _, ev := range events {
		if _, err := stmt.ExecContext(ctx, eventRow(ev)...); err != nil {
			_ = stmt.Close()
			return fmt.Errorf("copy into %s: %w", table, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return fmt.Errorf("copy into %s: %w", table, err)
	}
	if err := stmt.Close(); err != nil {
		return err
	}

	return tx.Commit()
}

func eventRow(ev attendance.ScanEvent) []interface{} {
	return []interface{}{
		ev.EmployeeID,
		ev.Timestamp,
		ev.Date().Format(attendance.DateFormat),
		ev.Timestamp.Format("15:04:05"),
		nullable(ev.Signal1),
		nullable(ev.Signal2),
	}
}

func nullable(v *int) interface{} {
	if v == nil {
		return nil
	}
	return int64(*v)
}
