package postgresql

import (
	"context"
	"fmt"

	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/database"
)

const (
	constraintEmployeeID     = "employees_employee_id_key"
	constraintEmployeeEmail  = "employees_email_key"
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id          UUID PRIMARY KEY,
		employee_id TEXT NOT NULL,
		full_name   TEXT NOT NULL,
		email       TEXT NOT NULL,
		department  TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT employees_employee_id_key UNIQUE (employee_id),
		CONSTRAINT employees_email_key UNIQUE (email)
	)`,
	`CREATE SEQUENCE IF NOT EXISTS attendance_records_seq`,
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id          UUID PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees (employee_id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		status      TEXT NOT NULL CHECK (status IN ('Present', 'Absent')),
		seq         BIGINT NOT NULL DEFAULT nextval('attendance_records_seq'),
		marked_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT attendance_records_employee_date_key UNIQUE (employee_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_date ON attendance_records (date)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_records_seq ON attendance_records (seq DESC)`,
}

// Migrate creates the tables the repositories need. It is idempotent.
func Migrate(ctx context.Context, db *database.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
