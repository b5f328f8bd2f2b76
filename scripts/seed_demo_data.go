package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crm-builder-backend/internal/catalog"
	"crm-builder-backend/internal/config"
	"crm-builder-backend/internal/database"
	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/repository"
	"crm-builder-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedActor = "seed-script"

type TenantData struct {
	Name    string    `yaml:"name"`
	Slug    string    `yaml:"slug"`
	OwnerID string    `yaml:"owner_id"`
	Plan    string    `yaml:"plan"`
	Apps    []AppData `yaml:"apps"`
}

type AppData struct {
	Name          string                              `yaml:"name"`
	BusinessType  string                              `yaml:"business_type"`
	BusinessName  string                              `yaml:"business_name"`
	PrimaryColor  string                              `yaml:"primary_color"`
	CustomPillars []string                            `yaml:"custom_pillars,omitempty"`
	Records       map[string][]map[string]interface{} `yaml:"records"`
}

type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type seeder struct {
	tenants      *service.TenantService
	provisioning *service.ProvisioningService
	records      *service.RecordService
}

func main() {
	log.Println("🚀 Seeding demo tenants from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect with retry so the script can run right after `docker compose up`
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	tenants, err := loadTenants("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed data: %v", err)
	}

	s := newSeeder(db)
	ctx := context.Background()
	created := 0
	for _, t := range tenants {
		ok, err := s.seedTenant(ctx, t)
		if err != nil {
			log.Fatalf("Failed to seed tenant %s: %v", t.Name, err)
		}
		if ok {
			created++
		}
	}

	log.Printf("📋 Tenants: %d created, %d total", created, len(tenants))
	log.Println("✅ Demo data loaded successfully!")
}

func newSeeder(db *gorm.DB) *seeder {
	v := validator.New()
	repos := repository.NewRepositories(db)
	transactor := repository.NewTransactor(db)
	return &seeder{
		tenants:      service.NewTenantService(repos.Tenants, transactor, v),
		provisioning: service.NewProvisioningService(catalog.Default(), transactor, v),
		records:      service.NewRecordService(repos, transactor, v, service.RecordOptions{}),
	}
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DSN(), opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var all []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file TenantsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, file.Tenants...)
		return nil
	})

	return all, err
}

// seedTenant creates the tenant and its apps; an existing slug is left untouched
func (s *seeder) seedTenant(ctx context.Context, t TenantData) (bool, error) {
	if t.Slug != "" {
		if _, err := s.tenants.GetBySlug(t.Slug); err == nil {
			log.Printf("⏭️  Tenant %s already exists, skipping", t.Slug)
			return false, nil
		} else if !apperrors.IsNotFound(err) {
			return false, err
		}
	}

	tenant, err := s.tenants.CreateTenant(&service.CreateTenantRequest{
		Name:    t.Name,
		Slug:    t.Slug,
		OwnerID: t.OwnerID,
		Plan:    models.TenantPlan(t.Plan),
	})
	if err != nil {
		return false, err
	}

	for _, app := range t.Apps {
		if err := s.seedApp(ctx, tenant.ID, app); err != nil {
			return false, fmt.Errorf("app %s: %w", app.Name, err)
		}
	}
	return true, nil
}

func (s *seeder) seedApp(ctx context.Context, tenantID string, app AppData) error {
	result, err := s.provisioning.CreateCrmApp(ctx, tenantID, &service.CreateCrmAppRequest{
		BusinessType:  app.BusinessType,
		Name:          app.Name,
		BusinessName:  app.BusinessName,
		PrimaryColor:  app.PrimaryColor,
		CustomPillars: app.CustomPillars,
	})
	if err != nil {
		return err
	}

	moduleIDs := make(map[string]string, len(result.Modules))
	for _, m := range result.Modules {
		moduleIDs[m.SystemName] = m.ID
	}

	count := 0
	for systemName, rows := range app.Records {
		moduleID, ok := moduleIDs[systemName]
		if !ok {
			log.Printf("⚠️  Warning: app %s has no module %q, skipping its records", app.Name, systemName)
			continue
		}
		for _, data := range rows {
			if _, err := s.records.CreateRecord(ctx, moduleID, &service.CreateRecordRequest{Data: data, CreatedBy: seedActor}); err != nil {
				return fmt.Errorf("record in %s: %w", systemName, err)
			}
			count++
		}
	}
	log.Printf("📋 App %s: %d modules, %d records", result.App.Slug, len(result.Modules), count)
	return nil
}
