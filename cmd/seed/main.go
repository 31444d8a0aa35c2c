// Command seed loads an employee roster from a YAML file into the configured store.
//
//	employees:
//	  - employee_id: EMP001
//	    full_name: Ada Lovelace
//	    email: ada@example.com
//	    department: Engineering
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Bhaumik-99/ethara-hrm/internal/config"
	"github.com/Bhaumik-99/ethara-hrm/internal/domain/employee"
	"github.com/Bhaumik-99/ethara-hrm/internal/pkg/validator"
	"github.com/Bhaumik-99/ethara-hrm/internal/repository"
	employeeService "github.com/Bhaumik-99/ethara-hrm/internal/service/employee"
	"gopkg.in/yaml.v3"
)

type roster struct {
	Employees []employee.CreateEmployeeRequest `yaml:"employees"`
}

func main() {
	file := flag.String("file", "cmd/seed/roster.example.yaml", "path to the YAML roster")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if cfg.Storage.Type != config.StoragePostgres {
		fmt.Println("seed needs STORAGE_TYPE=postgres; the memory store does not outlive this process")
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Println("Error opening roster:", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer repos.Close()

	created, skipped, err := seed(ctx, employeeService.NewEmployeeService(repos.Employee), f)
	if err != nil {
		fmt.Println("Error seeding roster:", err)
		os.Exit(1)
	}
	slog.Info("Roster seeded", "created", created, "skipped", skipped)
}

// seed creates every employee in r. Entries that already exist are skipped;
// invalid entries are logged and skipped.
func seed(ctx context.Context, svc employee.EmployeeService, r io.Reader) (created, skipped int, err error) {
	var data roster
	if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
		return 0, 0, fmt.Errorf("failed to decode roster: %w", err)
	}

	for _, req := range data.Employees {
		if _, err := svc.CreateEmployee(ctx, req); err != nil {
			if errors.Is(err, employee.ErrEmployeeIDExists) || errors.Is(err, employee.ErrEmailExists) {
				skipped++
				continue
			}
			var validationErrs validator.ValidationErrors
			if errors.As(err, &validationErrs) {
				slog.Warn("Skipping invalid roster entry", "employee_id", req.EmployeeID, "error", err)
				skipped++
				continue
			}
			return created, skipped, err
		}
		created++
	}
	return created, skipped, nil
}
