// Package repository selects the storage backend named in configuration.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Bhaumik-99/ethara-hrm/internal/config"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/attendance"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/dashboard"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/database"
	"github.com/Bhaumik-99/ethara-hrm/internal/repository/memory"
	"github.com/Bhaumik-99/ethara-hrm/internal/repository/postgresql"
)

type Repositories struct {
	Employee   employee.EmployeeRepository
	Attendance attendance.AttendanceRepository
	Dashboard  dashboard.DashboardRepository

	close func()
}

// Close releases the backend's resources.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}

// NewMemory returns repositories sharing one fresh in-memory store.
func NewMemory() *Repositories {
	store := memory.NewStore()
	return &Repositories{
		Employee:   memory.NewEmployeeRepository(store),
		Attendance: memory.NewAttendanceRepository(store),
		Dashboard:  memory.NewDashboardRepository(store),
	}
}

// NewPostgres connects, applies the schema and returns Postgres repositories.
func NewPostgres(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := postgresql.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Repositories{
		Employee:   postgresql.NewEmployeeRepository(db),
		Attendance: postgresql.NewAttendanceRepository(db),
		Dashboard:  postgresql.NewDashboardRepository(db),
		close:      db.Close,
	}, nil
}

// Open builds the backend selected by cfg.Storage.Type.
func Open(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	switch cfg.Storage.Type {
	case config.StorageMemory:
		slog.Warn("Using in-memory storage, data is lost on restart")
		return NewMemory(), nil
	case config.StoragePostgres:
		return NewPostgres(ctx, cfg.DatabaseURL())
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
