//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Precomputed bcrypt hash of "password123" so fixtures skip the expensive
// hashing step.
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role, tenant_id, store_id, is_active)
		 VALUES ($1, $2, $3, $4, 'tenant-1', 'store-1', true)
		 ON CONFLICT (username) DO NOTHING`,
		userID, username, TestPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateInactiveUser(t *testing.T, db DBLike, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, false)`,
		userID, username, TestPasswordHash, role)
	require.NoError(t, err)

	return userID
}

func CreatePriceInterval(t *testing.T, db DBLike, skuID string, priceCent int64, start time.Time, end *time.Time) uuid.UUID {
	t.Helper()

	intervalID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO price_intervals (
			id, tenant_id, store_id, sku_id,
			effective_price_cent, currency, start_at, end_at,
			price_component, provenance
		) VALUES ($1, 'tenant-1', 'store-1', $2, $3, 'USD', $4, $5, '{}'::jsonb, '{}'::jsonb)`,
		intervalID, skuID, priceCent, start, end)
	require.NoError(t, err)

	return intervalID
}

func TruncateAll(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), "TRUNCATE price_intervals, users")
	require.NoError(t, err)
}
