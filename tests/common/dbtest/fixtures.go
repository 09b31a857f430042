//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"studio-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the password of every user created by CreateTestUser.
const TestPassword = "password123"

var (
	passwordHashOnce sync.Once
	passwordHash     string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	passwordHashOnce.Do(func() {
		hash, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		passwordHash = hash
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, strings.Split(email, "@")[0], testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CatalogFixture is one bookable selection: a group package with a single
// sub-package and add-on.
type CatalogFixture struct {
	PackageID     uuid.UUID
	SubPackageID  uuid.UUID
	AddOnID       uuid.UUID
	PerPersonRate int64
	Price         int64
	AddOnPrice    int64
}

func CreateTestCatalog(t *testing.T, db DBLike) CatalogFixture {
	t.Helper()

	f := CatalogFixture{
		PackageID:     uuid.New(),
		SubPackageID:  uuid.New(),
		AddOnID:       uuid.New(),
		PerPersonRate: 50000,
		Price:         500000,
		AddOnPrice:    100000,
	}
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO packages (id, name, is_group, per_person_rate) VALUES ($1, 'Family Session', true, $2)",
		f.PackageID, f.PerPersonRate)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO sub_packages (id, package_id, name, price) VALUES ($1, $2, 'Classic', $3)",
		f.SubPackageID, f.PackageID, f.Price)
	require.NoError(t, err)
	_, err = db.Exec(ctx, "INSERT INTO add_ons (id, name, price) VALUES ($1, 'Printed album', $2)",
		f.AddOnID, f.AddOnPrice)
	require.NoError(t, err)

	return f
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO promos (code, percentage) VALUES
		    ('WELCOME10', 10)
		ON CONFLICT (code) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
