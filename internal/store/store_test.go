// store_test.go provides shared test database helpers for the store tests.
// SQLite tests run against a fresh temporary file; PostgreSQL tests are
// skipped if no server is available.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"brandcraft/internal/database"
)

// testPostgresDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testPostgresDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "brandcraft")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "brandcraft")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable&connect_timeout=2"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a migrated SQLite database in a temporary directory. A
// cleanup function is registered to close the connection when the test
// finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "brandcraft.db")
	db, err := database.Connect(database.DriverSQLite, database.SQLiteDSN(path))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db, database.DriverSQLite); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// testPostgresDB opens the PostgreSQL test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testPostgresDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Connect(database.DriverPostgres, testPostgresDSN())
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db, database.DriverPostgres); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// cleanGenerations removes test rows by idea. Call in t.Cleanup().
func cleanGenerations(t *testing.T, db *sql.DB, ideas ...string) {
	t.Helper()
	for _, idea := range ideas {
		db.Exec("DELETE FROM generations WHERE idea = $1", idea)
	}
}
