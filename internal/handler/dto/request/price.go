package request

import (
	"errors"
	"strings"
	"time"

	"pricing-admin-api/internal/domain/price"

	"github.com/google/uuid"
)

var ErrInvalidIntervalID = errors.New("invalid interval id")

type IntervalKeyRequest struct {
	TenantID  string  `json:"tenantId" binding:"required"`
	StoreID   string  `json:"storeId" binding:"required"`
	SKUID     string  `json:"skuId" binding:"required"`
	UserSegID *string `json:"userSegId,omitempty"`
	ChannelID *string `json:"channelId,omitempty"`
}

type PriceIntervalRequest struct {
	IntervalID         string             `json:"intervalId,omitempty"`
	Key                IntervalKeyRequest `json:"key" binding:"required"`
	EffectivePriceCent int64              `json:"effectivePriceCent" binding:"min=0"`
	Currency           string             `json:"currency" binding:"required"`
	StartAtUTC         time.Time          `json:"startAtUtc" binding:"required"`
	EndAtUTC           *time.Time         `json:"endAtUtc,omitempty"`
	PriceComponent     map[string]any     `json:"priceComponent,omitempty"`
	Provenance         map[string]any     `json:"provenance,omitempty"`
}

// PriceIntervalUpdateRequest is the replacement record for an update. The
// admin console omits startAtUtc on update; a nil start keeps the stored
// window start.
type PriceIntervalUpdateRequest struct {
	IntervalID         string             `json:"intervalId,omitempty"`
	Key                IntervalKeyRequest `json:"key" binding:"required"`
	EffectivePriceCent int64              `json:"effectivePriceCent" binding:"min=0"`
	Currency           string             `json:"currency" binding:"required"`
	StartAtUTC         *time.Time         `json:"startAtUtc,omitempty"`
	EndAtUTC           *time.Time         `json:"endAtUtc,omitempty"`
	PriceComponent     map[string]any     `json:"priceComponent,omitempty"`
	Provenance         map[string]any     `json:"provenance,omitempty"`
}

// ToDomain builds the replacement entity. storedStart fills in for an
// omitted startAtUtc; it is ignored when the body carries its own start.
func (r PriceIntervalUpdateRequest) ToDomain(storedStart time.Time) (*price.Interval, error) {
	start := storedStart
	if r.StartAtUTC != nil {
		start = *r.StartAtUTC
	}
	full := PriceIntervalRequest{
		IntervalID:         r.IntervalID,
		Key:                r.Key,
		EffectivePriceCent: r.EffectivePriceCent,
		Currency:           r.Currency,
		StartAtUTC:         start,
		EndAtUTC:           r.EndAtUTC,
		PriceComponent:     r.PriceComponent,
		Provenance:         r.Provenance,
	}
	return full.ToDomain()
}

// ToDomain builds the interval entity. An empty intervalId leaves id
// generation to the entity constructor.
func (r PriceIntervalRequest) ToDomain() (*price.Interval, error) {
	id := uuid.Nil
	if trimmed := strings.TrimSpace(r.IntervalID); trimmed != "" {
		parsed, err := uuid.Parse(trimmed)
		if err != nil {
			return nil, ErrInvalidIntervalID
		}
		id = parsed
	}

	key, err := price.NewKey(r.Key.TenantID, r.Key.StoreID, r.Key.SKUID, r.Key.UserSegID, r.Key.ChannelID)
	if err != nil {
		return nil, err
	}

	money, err := price.NewMoney(r.EffectivePriceCent)
	if err != nil {
		return nil, err
	}

	currency, err := price.NewCurrency(r.Currency)
	if err != nil {
		return nil, err
	}

	validity, err := price.NewValidity(r.StartAtUTC, r.EndAtUTC)
	if err != nil {
		return nil, err
	}

	return price.NewInterval(id, key, money, currency, validity, r.PriceComponent, r.Provenance), nil
}
