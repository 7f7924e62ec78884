package store

import (
	"fmt"
	"os"
	"testing"

	"phishsim-server/internal/database"
	"phishsim-server/internal/observability"
	"phishsim-server/migrations"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a migrated test database
type TestDB struct {
	db    *sqlx.DB
	Store Store
}

// SetupTestDB connects to the PostgreSQL instance described by the TEST_DB_* variables,
// applies the embedded migrations, and skips the test when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	connStr := testConnectionString()

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		t.Skipf("skipping: failed to open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: test database unavailable: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := database.RunMigrations(migrations.FS, connStr); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return &TestDB{
		db:    db,
		Store: Store{db: db, logger: observability.NewNopLogger()},
	}
}

func testConnectionString() string {
	get := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		get("TEST_DB_USER", "phishsim"),
		get("TEST_DB_PASSWORD", "phishsim"),
		get("TEST_DB_HOST", "localhost"),
		get("TEST_DB_PORT", "5432"),
		get("TEST_DB_NAME", "phishsim_test"),
	)
}

// Truncate clears all data while preserving schema
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	_, err := tdb.db.Exec(`TRUNCATE TABLE collected_data, email_events, campaign_recipients, campaigns,
        contacts, contact_groups, email_services, landing_pages, templates, users, companies CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// GetDB returns the underlying database connection for raw assertions
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}
