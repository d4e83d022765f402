package readstore

import (
	"context"
	"encoding/json"
	"time"

	"pricing-admin-api/internal/infra"
	"pricing-admin-api/internal/infra/db"
	"pricing-admin-api/internal/pkg/pgconv"
	"pricing-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PriceReadStore struct {
	db db.DBTX
}

func NewPriceReadStore(dbtx db.DBTX) *PriceReadStore {
	return &PriceReadStore{db: dbtx}
}

const intervalColumns = `
	id, tenant_id, store_id, sku_id, user_seg_id, channel_id,
	effective_price_cent, currency, start_at, end_at,
	price_component, provenance, created_at, updated_at`

const findBySKUQuery = `
SELECT` + intervalColumns + `
FROM price_intervals
WHERE sku_id = $1
ORDER BY start_at, id`

func (r *PriceReadStore) FindBySKU(ctx context.Context, skuID string) ([]*queries.PriceIntervalView, error) {
	rows, err := r.db.Query(ctx, findBySKUQuery, skuID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query intervals by sku", err)
	}
	defer rows.Close()

	return scanIntervalViews(rows)
}

// findBySKUAtQuery treats a NULL end_at as an open-ended window; the match is
// half-open, [start_at, end_at).
const findBySKUAtQuery = `
SELECT` + intervalColumns + `
FROM price_intervals
WHERE sku_id = $1
  AND start_at <= $2
  AND (end_at IS NULL OR end_at > $2)
ORDER BY start_at, id`

func (r *PriceReadStore) FindBySKUAt(ctx context.Context, skuID string, at time.Time) ([]*queries.PriceIntervalView, error) {
	rows, err := r.db.Query(ctx, findBySKUAtQuery, skuID, at.UTC())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query intervals by sku at instant", err)
	}
	defer rows.Close()

	return scanIntervalViews(rows)
}

const findByPriceRangeQuery = `
SELECT` + intervalColumns + `
FROM price_intervals
WHERE effective_price_cent BETWEEN $1 AND $2
ORDER BY effective_price_cent, start_at, id`

func (r *PriceReadStore) FindByPriceRange(ctx context.Context, minCent, maxCent int64) ([]*queries.PriceIntervalView, error) {
	rows, err := r.db.Query(ctx, findByPriceRangeQuery, minCent, maxCent)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query intervals by price range", err)
	}
	defer rows.Close()

	return scanIntervalViews(rows)
}

const findByIDQuery = `
SELECT` + intervalColumns + `
FROM price_intervals
WHERE id = $1`

func (r *PriceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PriceIntervalView, error) {
	row := r.db.QueryRow(ctx, findByIDQuery, id)

	view, err := scanIntervalView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("price interval not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find interval by ID", err)
	}
	return view, nil
}

func scanIntervalViews(rows pgx.Rows) ([]*queries.PriceIntervalView, error) {
	views := make([]*queries.PriceIntervalView, 0)
	for rows.Next() {
		view, err := scanIntervalView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan interval row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate interval rows", err)
	}
	return views, nil
}

func scanIntervalView(row pgx.Row) (*queries.PriceIntervalView, error) {
	var (
		view          queries.PriceIntervalView
		componentJSON []byte
		provJSON      []byte
	)

	err := row.Scan(
		&view.IntervalID,
		&view.Key.TenantID,
		&view.Key.StoreID,
		&view.Key.SKUID,
		&view.Key.UserSegID,
		&view.Key.ChannelID,
		&view.EffectivePriceCent,
		&view.Currency,
		&view.StartAtUTC,
		&view.EndAtUTC,
		&componentJSON,
		&provJSON,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if view.PriceComponent, err = decodeJSONMap(componentJSON); err != nil {
		return nil, err
	}
	if view.Provenance, err = decodeJSONMap(provJSON); err != nil {
		return nil, err
	}
	return &view, nil
}

func decodeJSONMap(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
