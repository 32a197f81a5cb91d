// Package main provides data seeding for the ITAM service.
//
// Seeds the default admin account and, when a seed file is present,
// the base catalogs (regions, fincas, departamentos, areas, asset
// types, brands). Safe to run repeatedly: existing rows are skipped.
package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/internal/config"
	"fincatech.io/itam/internal/infrastructure"
	"fincatech.io/itam/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Database and River migrations are expected to be executed before seeding.
	// This command only performs idempotent data bootstrap.

	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	seedPath := os.Getenv("SEED_FILE")
	if seedPath == "" {
		seedPath = "seed.yaml"
	}
	if _, err := os.Stat(seedPath); err == nil {
		if err := seedCatalogs(ctx, client, seedPath); err != nil {
			return fmt.Errorf("seed catalogs: %w", err)
		}
	} else {
		logger.Info("No seed file found, skipping catalog seed", zap.String("path", seedPath))
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// seedDefaultAdmin creates the default admin user (admin/admin).
// The password must be rotated immediately after first login.
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = client.User.Create().
		SetID("user-default-admin").
		SetUsername("admin").
		SetEmail("admin@localhost").
		SetFullName("Default Administrator").
		SetPasswordHash(string(hashBytes)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user", zap.String("username", "admin"))
	return nil
}

// seedFile is the YAML shape for catalog bootstrap.
type seedFile struct {
	Regions []struct {
		Name   string   `yaml:"name"`
		Fincas []string `yaml:"fincas"`
	} `yaml:"regions"`
	Departamentos []struct {
		Name  string   `yaml:"name"`
		Areas []string `yaml:"areas"`
	} `yaml:"departamentos"`
	TiposActivo []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"tipos_activo"`
	Marcas []string `yaml:"marcas"`
}

func seedCatalogs(ctx context.Context, client *ent.Client, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var sf seedFile
	if err := yaml.Unmarshal(raw, &sf); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, r := range sf.Regions {
		region, err := client.Region.Create().
			SetID(newID()).
			SetName(r.Name).
			Save(ctx)
		if err != nil {
			if !ent.IsConstraintError(err) {
				return fmt.Errorf("create region %s: %w", r.Name, err)
			}
			logger.Info("Region already exists, skipping", zap.String("region", r.Name))
			continue
		}
		for _, f := range r.Fincas {
			err := client.Finca.Create().
				SetID(newID()).
				SetName(f).
				SetRegionID(region.ID).
				Exec(ctx)
			if err != nil && !ent.IsConstraintError(err) {
				return fmt.Errorf("create finca %s: %w", f, err)
			}
		}
		logger.Info("Seeded region", zap.String("region", r.Name), zap.Int("fincas", len(r.Fincas)))
	}

	for _, d := range sf.Departamentos {
		dept, err := client.Departamento.Create().
			SetID(newID()).
			SetName(d.Name).
			Save(ctx)
		if err != nil {
			if !ent.IsConstraintError(err) {
				return fmt.Errorf("create departamento %s: %w", d.Name, err)
			}
			logger.Info("Departamento already exists, skipping", zap.String("departamento", d.Name))
			continue
		}
		for _, a := range d.Areas {
			err := client.Area.Create().
				SetID(newID()).
				SetName(a).
				SetDepartamentoID(dept.ID).
				Exec(ctx)
			if err != nil && !ent.IsConstraintError(err) {
				return fmt.Errorf("create area %s: %w", a, err)
			}
		}
		logger.Info("Seeded departamento", zap.String("departamento", d.Name), zap.Int("areas", len(d.Areas)))
	}

	for _, t := range sf.TiposActivo {
		err := client.TipoActivo.Create().
			SetID(newID()).
			SetName(t.Name).
			SetDescription(t.Description).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("create tipo activo %s: %w", t.Name, err)
		}
	}
	if len(sf.TiposActivo) > 0 {
		logger.Info("Seeded asset types", zap.Int("count", len(sf.TiposActivo)))
	}

	for _, m := range sf.Marcas {
		err := client.Marca.Create().
			SetID(newID()).
			SetName(m).
			Exec(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("create marca %s: %w", m, err)
		}
	}
	if len(sf.Marcas) > 0 {
		logger.Info("Seeded brands", zap.Int("count", len(sf.Marcas)))
	}

	return nil
}

func newID() string {
	id, _ := uuid.NewV7()
	return id.String()
}
