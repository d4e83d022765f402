package commands

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pricing-admin-api/internal/domain/price"
	reqdto "pricing-admin-api/internal/handler/dto/request"
	"pricing-admin-api/internal/infra"
	"pricing-admin-api/internal/pkg/errs"
	"pricing-admin-api/internal/usecase/queries"
	"pricing-admin-api/internal/usecase/shared"
)

var (
	ErrInvalidInterval    = errs.New("invalid price interval")
	ErrEmptyBatch         = errs.New("at least one interval is required")
	ErrDuplicateInterval  = errs.New("interval already exists")
	ErrIntervalNotFound   = errs.New("interval not found")
	ErrIntervalIDMismatch = errs.New("interval id in body does not match path")
	ErrMissingSKU         = errs.New("sku id is required")
)

type PriceCommands interface {
	// Create inserts the whole batch in one transaction; either every
	// interval lands or none do.
	Create(ctx context.Context, reqs []reqdto.PriceIntervalRequest) ([]uuid.UUID, error)
	Update(ctx context.Context, intervalID uuid.UUID, req reqdto.PriceIntervalUpdateRequest) error
	DeleteBySKU(ctx context.Context, skuID string) (int64, error)
}

type priceCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.PriceReadStore
}

func NewPriceCommands(uow shared.UnitOfWork, readStore queries.PriceReadStore) PriceCommands {
	return &priceCommandsImpl{uow: uow, readStore: readStore}
}

func (p *priceCommandsImpl) Create(ctx context.Context, reqs []reqdto.PriceIntervalRequest) ([]uuid.UUID, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	// Validate everything up front so a bad row fails the batch before any
	// insert happens.
	intervals := make([]*price.Interval, 0, len(reqs))
	for _, req := range reqs {
		iv, err := req.ToDomain()
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidInterval)
		}
		intervals = append(intervals, iv)
	}

	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, iv := range intervals {
			if err := tx.Prices().Create(ctx, tx.DB(), iv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateInterval)
		}
		if infra.IsKind(err, infra.KindCheckViolated) {
			return nil, errs.Mark(err, ErrInvalidInterval)
		}
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(intervals))
	for _, iv := range intervals {
		ids = append(ids, iv.ID())
	}
	return ids, nil
}

func (p *priceCommandsImpl) Update(ctx context.Context, intervalID uuid.UUID, req reqdto.PriceIntervalUpdateRequest) error {
	if trimmed := strings.TrimSpace(req.IntervalID); trimmed != "" {
		bodyID, err := uuid.Parse(trimmed)
		if err != nil || bodyID != intervalID {
			return ErrIntervalIDMismatch
		}
	}
	req.IntervalID = intervalID.String()

	// The admin console's update payload carries no startAtUtc; the stored
	// window start survives the replace in that case.
	var storedStart time.Time
	if req.StartAtUTC == nil {
		current, err := p.readStore.FindByID(ctx, intervalID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrIntervalNotFound)
			}
			return err
		}
		storedStart = current.StartAtUTC
	}

	iv, err := req.ToDomain(storedStart)
	if err != nil {
		return errs.Mark(err, ErrInvalidInterval)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Prices().Update(ctx, tx.DB(), iv)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrIntervalNotFound)
		}
		if infra.IsKind(err, infra.KindCheckViolated) {
			return errs.Mark(err, ErrInvalidInterval)
		}
		return err
	}
	return nil
}

// DeleteBySKU is idempotent: deleting a SKU with no intervals succeeds with
// a zero count.
func (p *priceCommandsImpl) DeleteBySKU(ctx context.Context, skuID string) (int64, error) {
	skuID = strings.TrimSpace(skuID)
	if skuID == "" {
		return 0, ErrMissingSKU
	}

	var deleted int64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Prices().DeleteBySKU(ctx, tx.DB(), skuID)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
