package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"pricing-admin-api/internal/usecase/queries"
)

type IntervalKeyResponse struct {
	TenantID  string  `json:"tenantId"`
	StoreID   string  `json:"storeId"`
	SKUID     string  `json:"skuId"`
	UserSegID *string `json:"userSegId"`
	ChannelID *string `json:"channelId"`
}

type PriceIntervalResponse struct {
	IntervalID         uuid.UUID           `json:"intervalId"`
	Key                IntervalKeyResponse `json:"key"`
	EffectivePriceCent int64               `json:"effectivePriceCent"`
	Currency           string              `json:"currency"`
	StartAtUTC         time.Time           `json:"startAtUtc"`
	EndAtUTC           *time.Time          `json:"endAtUtc"`
	PriceComponent     map[string]any      `json:"priceComponent"`
	Provenance         map[string]any      `json:"provenance"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

type CreateIntervalsResponse struct {
	IntervalIDs []uuid.UUID `json:"intervalIds"`
}

type DeleteIntervalsResponse struct {
	Deleted int64 `json:"deleted"`
}

func FromPriceIntervalView(view *queries.PriceIntervalView) *PriceIntervalResponse {
	var resp PriceIntervalResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

// FromPriceIntervalViews always yields a non-nil slice so an empty result
// serializes as [] rather than null.
func FromPriceIntervalViews(views []*queries.PriceIntervalView) []*PriceIntervalResponse {
	resps := make([]*PriceIntervalResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromPriceIntervalView(view))
	}
	return resps
}
