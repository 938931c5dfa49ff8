package integration

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBURLEnv names the connection string that enables these tests. They run
// against a real database with the schema from migrations/001_init.sql
// applied, and are skipped everywhere else.
const DBURLEnv = "CATALOG_TEST_DB_URL"

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv(DBURLEnv)
	if url == "" {
		t.Skipf("set %s to run database integration tests", DBURLEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	t.Cleanup(pool.Close)

	return pool
}

// uniqueSuffix keeps fixture names, slugs and ISBNs from colliding across
// test runs that share a database.
func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}

func uniqueISBN() string {
	// 16 characters, inside the isbn VARCHAR(17) column
	return fmt.Sprintf("978-%s", uniqueSuffix())
}

// noopCache satisfies cache.Cache without remembering anything, so the
// repositories under test always hit the database.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (noopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (noopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (noopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (noopCache) Ping(ctx context.Context) error { return nil }
