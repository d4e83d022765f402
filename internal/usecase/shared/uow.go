package shared

import (
	"context"
	"time"

	"pricing-admin-api/internal/domain/price"
	"pricing-admin-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Prices() PriceRepository
	Users() UserRepository
	DB() db.DBTX
}

type PriceRepository interface {
	Create(ctx context.Context, tx db.DBTX, iv *price.Interval) error
	Update(ctx context.Context, tx db.DBTX, iv *price.Interval) error
	DeleteBySKU(ctx context.Context, tx db.DBTX, skuID string) (int64, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, loginAt time.Time) error
}
