package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// IntervalKeyView mirrors the nested "key" object on the wire.
type IntervalKeyView struct {
	TenantID  string  `json:"tenantId"`
	StoreID   string  `json:"storeId"`
	SKUID     string  `json:"skuId"`
	UserSegID *string `json:"userSegId"`
	ChannelID *string `json:"channelId"`
}

type PriceIntervalView struct {
	IntervalID         uuid.UUID       `json:"intervalId"`
	Key                IntervalKeyView `json:"key"`
	EffectivePriceCent int64           `json:"effectivePriceCent"`
	Currency           string          `json:"currency"`
	StartAtUTC         time.Time       `json:"startAtUtc"`
	EndAtUTC           *time.Time      `json:"endAtUtc"`
	PriceComponent     map[string]any  `json:"priceComponent"`
	Provenance         map[string]any  `json:"provenance"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	TenantID *string   `json:"tenantId,omitempty"`
	StoreID  *string   `json:"storeId,omitempty"`
	IsActive bool      `json:"isActive"`
}
