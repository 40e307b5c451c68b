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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultUnitID = "tprek:162"

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts a user with the flag set implied by role:
// "user", "staff", "general_admin" or "superuser".
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	isStaff := role == "staff" || role == "general_admin" || role == "superuser"
	isGeneralAdmin := role == "general_admin" || role == "superuser"
	isSuperuser := role == "superuser"

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, is_staff, is_general_admin, is_superuser, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, isStaff, isGeneralAdmin, isSuperuser)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestUnit(t *testing.T, db DBLike, id, name string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO units (id, name, time_zone)
		VALUES ($1, $2, 'Europe/Helsinki')
		ON CONFLICT (id) DO NOTHING`, id, name)
	require.NoError(t, err)
}

func GrantUnitLevel(t *testing.T, db DBLike, unitID string, userID uuid.UUID, level string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO unit_authorizations (id, subject_id, authorized_id, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (authorized_id, subject_id, level) DO NOTHING`,
		uuid.New(), unitID, userID, level)
	require.NoError(t, err)
}

func CreateTestUnitGroup(t *testing.T, db DBLike, name string, unitIDs ...string) uuid.UUID {
	t.Helper()

	groupID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO unit_groups (id, name) VALUES ($1, $2)", groupID, name)
	require.NoError(t, err)

	for _, unitID := range unitIDs {
		_, err := db.Exec(ctx, `
			INSERT INTO unit_group_members (unit_group_id, unit_id)
			VALUES ($1, $2) ON CONFLICT DO NOTHING`, groupID, unitID)
		require.NoError(t, err)
	}
	return groupID
}

func GrantGroupLevel(t *testing.T, db DBLike, groupID, userID uuid.UUID, level string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO unit_group_authorizations (id, subject_id, authorized_id, level)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (authorized_id, subject_id, level) DO NOTHING`,
		uuid.New(), groupID, userID, level)
	require.NoError(t, err)
}

func CreateTestResource(t *testing.T, db DBLike, unitID, name string) uuid.UUID {
	t.Helper()

	resourceID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO resources (id, unit_id, name, reservable)
		VALUES ($1, $2, $3, true)`, resourceID, unitID, name)
	require.NoError(t, err)
	return resourceID
}

func CreateConfirmedReservation(t *testing.T, db DBLike, resourceID, userID uuid.UUID, confirmedAt time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()
	begin := confirmedAt.Add(24 * time.Hour)
	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, resource_id, user_id, begin_at, end_at, state, source, confirmed_by_staff_at)
		VALUES ($1, $2, $3, $4, $5, 'confirmed', 'local', $6)`,
		reservationID, resourceID, userID, begin, begin.Add(time.Hour), confirmedAt)
	require.NoError(t, err)
	return reservationID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO units (id, name, time_zone) VALUES
		    ('tprek:162', 'Central Library', 'Europe/Helsinki'),
		    ('tprek:205', 'Harbour Meeting Point', 'Europe/Helsinki')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
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
