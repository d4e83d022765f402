package client

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingTenantID = errors.New("tenantId is required")
	ErrMissingStoreID  = errors.New("storeId is required")
	ErrMissingSKUID    = errors.New("skuId is required")
	ErrInvalidCurrency = errors.New("currency must be a 3-letter code")
	ErrNegativePrice   = errors.New("effectivePriceCent cannot be negative")
	ErrInvalidValidity = errors.New("endAtUtc must be after startAtUtc")
	ErrEmptyBatch      = errors.New("at least one interval is required")
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

type IntervalKey struct {
	TenantID  string  `json:"tenantId"`
	StoreID   string  `json:"storeId"`
	SKUID     string  `json:"skuId"`
	UserSegID *string `json:"userSegId,omitempty"`
	ChannelID *string `json:"channelId,omitempty"`
}

// IntervalDraft is what the caller hands to Create and Update. A zero
// IntervalID is filled in client-side before submission, the same way the
// console assigns IDs in the create form.
type IntervalDraft struct {
	IntervalID         uuid.UUID      `json:"intervalId"`
	Key                IntervalKey    `json:"key"`
	EffectivePriceCent int64          `json:"effectivePriceCent"`
	Currency           string         `json:"currency"`
	StartAtUTC         time.Time      `json:"startAtUtc"`
	EndAtUTC           *time.Time     `json:"endAtUtc,omitempty"`
	PriceComponent     map[string]any `json:"priceComponent,omitempty"`
	Provenance         map[string]any `json:"provenance,omitempty"`
}

type PriceInterval struct {
	IntervalID         uuid.UUID      `json:"intervalId"`
	Key                IntervalKey    `json:"key"`
	EffectivePriceCent int64          `json:"effectivePriceCent"`
	Currency           string         `json:"currency"`
	StartAtUTC         time.Time      `json:"startAtUtc"`
	EndAtUTC           *time.Time     `json:"endAtUtc"`
	PriceComponent     map[string]any `json:"priceComponent"`
	Provenance         map[string]any `json:"provenance"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func validateDraft(index int, draft IntervalDraft) error {
	var err error
	switch {
	case strings.TrimSpace(draft.Key.TenantID) == "":
		err = ErrMissingTenantID
	case strings.TrimSpace(draft.Key.StoreID) == "":
		err = ErrMissingStoreID
	case strings.TrimSpace(draft.Key.SKUID) == "":
		err = ErrMissingSKUID
	case !currencyPattern.MatchString(strings.ToUpper(strings.TrimSpace(draft.Currency))):
		err = ErrInvalidCurrency
	case draft.EffectivePriceCent < 0:
		err = ErrNegativePrice
	case draft.EndAtUTC != nil && !draft.EndAtUTC.After(draft.StartAtUTC):
		err = ErrInvalidValidity
	}
	if err != nil {
		return fmt.Errorf("interval %d: %w", index, err)
	}
	return nil
}

// FindBySKU lists the intervals for a SKU. A non-nil at narrows the result
// to intervals whose [start, end) window contains that instant.
func (c *Client) FindBySKU(ctx context.Context, skuID string, at *time.Time) ([]PriceInterval, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("skuId", skuID)
	if at != nil {
		req.SetQueryParam("at", at.UTC().Format(time.RFC3339))
	}

	var intervals []PriceInterval
	resp, err := req.SetResult(&intervals).Get("/api/prices/lookup")
	if err != nil {
		return nil, fmt.Errorf("lookup request failed: %w", err)
	}
	if err := checkStatus(c, resp); err != nil {
		return nil, err
	}
	return intervals, nil
}

func (c *Client) FindByPriceRange(ctx context.Context, minCent, maxCent int64) ([]PriceInterval, error) {
	var intervals []PriceInterval
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("min", strconv.FormatInt(minCent, 10)).
		SetQueryParam("max", strconv.FormatInt(maxCent, 10)).
		SetResult(&intervals).
		Get("/api/prices/range")
	if err != nil {
		return nil, fmt.Errorf("range request failed: %w", err)
	}
	if err := checkStatus(c, resp); err != nil {
		return nil, err
	}
	return intervals, nil
}

// Create validates every draft before anything goes on the wire, assigns
// missing interval IDs, and submits the batch. The returned IDs are in
// draft order.
func (c *Client) Create(ctx context.Context, drafts []IntervalDraft) ([]uuid.UUID, error) {
	if len(drafts) == 0 {
		return nil, ErrEmptyBatch
	}

	payload := make([]IntervalDraft, len(drafts))
	for i, draft := range drafts {
		if err := validateDraft(i, draft); err != nil {
			return nil, err
		}
		if draft.IntervalID == uuid.Nil {
			draft.IntervalID = uuid.New()
		}
		payload[i] = draft
	}

	var result struct {
		IntervalIDs []uuid.UUID `json:"intervalIds"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/api/prices")
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	if err := checkStatus(c, resp); err != nil {
		return nil, err
	}
	return result.IntervalIDs, nil
}

// Update replaces the interval identified by draft.IntervalID in full.
func (c *Client) Update(ctx context.Context, draft IntervalDraft) (*PriceInterval, error) {
	if draft.IntervalID == uuid.Nil {
		return nil, errors.New("intervalId is required for update")
	}
	if err := validateDraft(0, draft); err != nil {
		return nil, err
	}

	var updated PriceInterval
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(draft).
		SetResult(&updated).
		Put("/api/prices/" + draft.IntervalID.String())
	if err != nil {
		return nil, fmt.Errorf("update request failed: %w", err)
	}
	if err := checkStatus(c, resp); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBySKU removes every interval under the SKU and reports how many
// were deleted. Deleting a SKU that has none succeeds with zero.
func (c *Client) DeleteBySKU(ctx context.Context, skuID string) (int64, error) {
	var result struct {
		Deleted int64 `json:"deleted"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("skuId", skuID).
		SetResult(&result).
		Delete("/api/prices/delete")
	if err != nil {
		return 0, fmt.Errorf("delete request failed: %w", err)
	}
	if err := checkStatus(c, resp); err != nil {
		return 0, err
	}
	return result.Deleted, nil
}
