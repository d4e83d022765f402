package repository

import (
	"context"
	"encoding/json"
	"errors"

	"pricing-admin-api/internal/domain/price"
	"pricing-admin-api/internal/infra"
	"pricing-admin-api/internal/infra/db"
	"pricing-admin-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation = "23505"
	pgErrCodeCheckViolation  = "23514"
)

type PriceRepository struct{}

func NewPriceRepository() *PriceRepository {
	return &PriceRepository{}
}

const insertIntervalQuery = `
INSERT INTO price_intervals (
	id, tenant_id, store_id, sku_id, user_seg_id, channel_id,
	effective_price_cent, currency, start_at, end_at,
	price_component, provenance
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *PriceRepository) Create(ctx context.Context, dbtx db.DBTX, iv *price.Interval) error {
	componentJSON, provJSON, err := encodeDetailMaps(iv)
	if err != nil {
		return infra.WrapRepoErr("failed to encode interval detail maps", err)
	}

	_, err = dbtx.Exec(ctx, insertIntervalQuery,
		iv.ID(),
		iv.Key().TenantID(),
		iv.Key().StoreID(),
		iv.Key().SKUID(),
		pgconv.StringPtrToPgtype(iv.Key().UserSegID()),
		pgconv.StringPtrToPgtype(iv.Key().ChannelID()),
		iv.Price().Cents(),
		iv.Currency().Code(),
		iv.Validity().Start(),
		pgconv.TimePtrToPgtype(iv.Validity().End()),
		componentJSON,
		provJSON,
	)
	if err != nil {
		return classifyWriteErr("failed to insert price interval", err)
	}
	return nil
}

const updateIntervalQuery = `
UPDATE price_intervals SET
	tenant_id = $2,
	store_id = $3,
	sku_id = $4,
	user_seg_id = $5,
	channel_id = $6,
	effective_price_cent = $7,
	currency = $8,
	start_at = $9,
	end_at = $10,
	price_component = $11,
	provenance = $12,
	updated_at = now()
WHERE id = $1`

// Update is a full-record replace: every column is rewritten from the given
// interval, including end_at back to NULL when the validity is open-ended.
func (r *PriceRepository) Update(ctx context.Context, dbtx db.DBTX, iv *price.Interval) error {
	componentJSON, provJSON, err := encodeDetailMaps(iv)
	if err != nil {
		return infra.WrapRepoErr("failed to encode interval detail maps", err)
	}

	tag, err := dbtx.Exec(ctx, updateIntervalQuery,
		iv.ID(),
		iv.Key().TenantID(),
		iv.Key().StoreID(),
		iv.Key().SKUID(),
		pgconv.StringPtrToPgtype(iv.Key().UserSegID()),
		pgconv.StringPtrToPgtype(iv.Key().ChannelID()),
		iv.Price().Cents(),
		iv.Currency().Code(),
		iv.Validity().Start(),
		pgconv.TimePtrToPgtype(iv.Validity().End()),
		componentJSON,
		provJSON,
	)
	if err != nil {
		return classifyWriteErr("failed to update price interval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("price interval not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteBySKUQuery = `
DELETE FROM price_intervals
WHERE sku_id = $1`

// DeleteBySKU removes every interval under the SKU and reports how many rows
// went away. Zero rows is a valid outcome, not an error.
func (r *PriceRepository) DeleteBySKU(ctx context.Context, dbtx db.DBTX, skuID string) (int64, error) {
	tag, err := dbtx.Exec(ctx, deleteBySKUQuery, skuID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete intervals by sku", err)
	}
	return tag.RowsAffected(), nil
}

func encodeDetailMaps(iv *price.Interval) ([]byte, []byte, error) {
	componentJSON, err := json.Marshal(iv.Component())
	if err != nil {
		return nil, nil, err
	}
	provJSON, err := json.Marshal(iv.Provenance())
	if err != nil {
		return nil, nil, err
	}
	return componentJSON, provJSON, nil
}

func classifyWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case pgErrCodeCheckViolation:
			return infra.WrapRepoErr(msg, err, infra.KindCheckViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
