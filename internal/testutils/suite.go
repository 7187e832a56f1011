package testutils

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entry-tracker-backend/internal/config"
	"entry-tracker-backend/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pgUser     = "tracker"
	pgPassword = "tracker-test"
	pgDatabase = "entry_tracker_test"
)

// container is the Postgres instance shared by every integration suite in a test binary
var container struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	config   *config.Config
	tables   []string
}

// BaseTestSuite gives integration suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	container.once.Do(func() { container.err = startPostgres() })
	if container.err != nil {
		t.Fatalf("failed to initialize shared test container: %v", container.err)
	}
	return &BaseTestSuite{
		DB:     container.db,
		Config: container.config,
	}
}

// CleanupSharedContainer purges the container. Called from TestMain.
func CleanupSharedContainer() {
	if container.db != nil {
		_ = database.Close(container.db)
		container.db = nil
	}
	if container.pool == nil || container.resource == nil {
		return
	}
	log.Printf("Purging Docker container: %s", container.resource.Container.Name)
	if err := container.pool.Purge(container.resource); err != nil {
		log.Printf("WARN: could not purge shared resource: %v", err)
	}
	container.resource = nil
	container.pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only cleans rows; the container outlives individual suites.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every migrated table and resets identity sequences
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(container.tables) == 0 {
		return
	}
	quoted := make([]string, len(container.tables))
	for i, name := range container.tables {
		quoted[i] = `"` + name + `"`
	}
	if err := s.DB.Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").Error; err != nil {
		s.T().Fatalf("failed to clean test database: %v", err)
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	container.pool = pool

	tag := os.Getenv("TEST_POSTGRES_TAG")
	if tag == "" {
		tag = "16-alpine"
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	container.resource = resource
	// Reap the container even if the test binary is killed
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// The server accepts connections before it is ready for DDL, so migrate only after a clean ping
	if err := pool.Retry(func() error {
		db, err := database.Initialize(dsn, &database.Options{LogLevel: logger.Silent, SkipMigrate: true})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			_ = sqlDB.Close()
			return err
		}
		container.db = db
		return nil
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	if err := container.db.AutoMigrate(database.Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	tables, err := migratedTables(container.db)
	if err != nil {
		return err
	}
	container.tables = tables

	container.config = &config.Config{
		DatabaseURL:            dsn,
		Port:                   "8080",
		LogLevel:               "debug",
		Environment:            "test",
		SessionStore:           config.SessionStoreDatabase,
		SessionCookieName:      "entry_session",
		SessionIdleTimeout:     time.Hour,
		SessionAbsoluteTimeout: 24 * time.Hour,
		SessionSweepInterval:   time.Minute,
		PasswordHashIterations: 1000,
	}

	log.Printf("Shared Postgres ready, tables: %v", tables)
	return nil
}

// migratedTables resolves model table names and fails if any is missing
func migratedTables(db *gorm.DB) ([]string, error) {
	var names []string
	for _, model := range database.Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		if !db.Migrator().HasTable(stmt.Schema.Table) {
			return nil, fmt.Errorf("table %s missing after migration", stmt.Schema.Table)
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}
