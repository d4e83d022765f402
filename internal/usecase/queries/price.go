package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pricing-admin-api/internal/pkg/errs"
)

var ErrInvalidPriceRange = errs.New("min must not exceed max")

type PriceQueries interface {
	// FindBySKU lists every interval under the SKU; a non-nil at narrows
	// the result to intervals active at that instant.
	FindBySKU(ctx context.Context, skuID string, at *time.Time) ([]*PriceIntervalView, error)
	FindByPriceRange(ctx context.Context, minCent, maxCent int64) ([]*PriceIntervalView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PriceIntervalView, error)
}

type PriceReadStore interface {
	FindBySKU(ctx context.Context, skuID string) ([]*PriceIntervalView, error)
	FindBySKUAt(ctx context.Context, skuID string, at time.Time) ([]*PriceIntervalView, error)
	FindByPriceRange(ctx context.Context, minCent, maxCent int64) ([]*PriceIntervalView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PriceIntervalView, error)
}

type priceQueriesImpl struct {
	readStore PriceReadStore
}

func NewPriceQueries(readStore PriceReadStore) PriceQueries {
	return &priceQueriesImpl{
		readStore: readStore,
	}
}

func (q *priceQueriesImpl) FindBySKU(ctx context.Context, skuID string, at *time.Time) ([]*PriceIntervalView, error) {
	if at != nil {
		return q.readStore.FindBySKUAt(ctx, skuID, *at)
	}
	return q.readStore.FindBySKU(ctx, skuID)
}

func (q *priceQueriesImpl) FindByPriceRange(ctx context.Context, minCent, maxCent int64) ([]*PriceIntervalView, error) {
	if minCent > maxCent {
		return nil, ErrInvalidPriceRange
	}
	return q.readStore.FindByPriceRange(ctx, minCent, maxCent)
}

func (q *priceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PriceIntervalView, error) {
	return q.readStore.FindByID(ctx, id)
}
