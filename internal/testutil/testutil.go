package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/collabhub/hubclient/internal/migrate"
)

// TestingTB is an interface that covers both *testing.T and *testing.B.
type TestingTB interface {
	Helper()
	Skip(args ...interface{})
	Skipf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Cleanup(func())
}

// TestDBConfig holds configuration for the run-results test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DefaultTestDBConfig returns default test database configuration.
// Defaults to port 55432 (local test DB from the docker-compose test profile).
// CI environments should set TEST_DB_PORT=5432 explicitly.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "hubclient"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "hubclient"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "hubclient"),
	}
}

func (c TestDBConfig) dsn() string {
	hostPort := net.JoinHostPort(c.Host, c.Port)
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		c.User, c.Password, hostPort, c.DBName)
}

// SkipIfNoTestDB skips the test if the test database is not available.
func SkipIfNoTestDB(t TestingTB) {
	t.Helper()

	db, err := sql.Open("pgx", DefaultTestDBConfig().dsn())
	if err != nil {
		skipOrFail(t, requireDB(), "Test database not available:", err)
		return
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			t.Logf("test db close failed: %v", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		skipOrFail(t, requireDB(), "Test database not available:", pingErr)
	}
}

// SetupTestDB creates a test database connection, runs migrations, and
// clears any leftover run records.
func SetupTestDB(t TestingTB) *sql.DB {
	t.Helper()
	SkipIfNoTestDB(t)

	db, err := sql.Open("pgx", DefaultTestDBConfig().dsn())
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if migrateErr := migrate.Run(ctx, db); migrateErr != nil {
		t.Fatal("Failed to run migrations:", migrateErr)
	}

	CleanupTestDB(t, db)
	return db
}

// CleanupTestDB removes all recorded runs from the database.
func CleanupTestDB(t TestingTB, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, "DELETE FROM scenario_runs"); err != nil {
		t.Fatalf("Failed to clean up table scenario_runs: %v", err)
	}
}

// TeardownTestDB cleans up and closes the database connection.
func TeardownTestDB(t TestingTB, db *sql.DB) {
	t.Helper()
	if db != nil {
		CleanupTestDB(t, db)
		if err := db.Close(); err != nil {
			t.Fatal("Failed to close database:", err)
		}
	}
}

// SetupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func SetupTestRedis(t TestingTB) *redis.Client {
	t.Helper()

	addr := getEnvOrDefault("TEST_REDIS_ADDR", "localhost:6379")
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   15, // keep test data away from any local default DB
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		skipOrFail(t, requireRedis(), fmt.Sprintf("Redis not available for testing at %s:", addr), err)
		return nil
	}

	client.FlushDB(ctx)
	return client
}

// TargetBaseURL returns the base URL of the CollabHub deployment under test.
func TargetBaseURL() string {
	return strings.TrimRight(os.Getenv("HUB_E2E_BASE_URL"), "/")
}

// SkipIfNoTargetAPI skips the test unless a CollabHub deployment is
// reachable at HUB_E2E_BASE_URL.
func SkipIfNoTargetAPI(t TestingTB) {
	t.Helper()

	base := TargetBaseURL()
	if base == "" {
		skipOrFail(t, requireTarget(), "HUB_E2E_BASE_URL not set; skipping end-to-end test", nil)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/v1/", nil)
	if err != nil {
		t.Fatal("build health request:", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		skipOrFail(t, requireTarget(), "Target API not reachable:", err)
		return
	}
	if cerr := resp.Body.Close(); cerr != nil {
		t.Logf("warning: close health response: %v", cerr)
	}
}

// SkipIfNoBrowser skips the test unless a Chrome instance is allowed.
// Browser tests are opt-in: set HUB_E2E_BROWSER=1 (go-rod downloads a
// Chromium build when none is installed, which is unwanted in most CI).
func SkipIfNoBrowser(t TestingTB) {
	t.Helper()
	if !envBool("HUB_E2E_BROWSER") {
		skipOrFail(t, requireBrowser(), "HUB_E2E_BROWSER not set; skipping browser test", nil)
	}
}

// UniqueEmail returns a collision-free email for provisioning test accounts.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@e2e.collabhub.dev", prefix, uuid.NewString()[:8])
}

func skipOrFail(t TestingTB, required bool, msg string, err error) {
	t.Helper()
	if err == nil {
		if required {
			t.Fatal(msg)
		}
		t.Skip(msg)
		return
	}
	if required {
		t.Fatal(msg, err)
	}
	t.Skip(msg, err)
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envBool parses common truthy values from env vars.
func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

func requireDB() bool      { return envBool("TEST_REQUIRE_DB") || envBool("TEST_REQUIRE_INFRA") }
func requireBrowser() bool { return envBool("TEST_REQUIRE_BROWSER") || envBool("TEST_REQUIRE_INFRA") }
func requireRedis() bool   { return envBool("TEST_REQUIRE_REDIS") || envBool("TEST_REQUIRE_INFRA") }
func requireTarget() bool  { return envBool("TEST_REQUIRE_TARGET") || envBool("TEST_REQUIRE_INFRA") }
