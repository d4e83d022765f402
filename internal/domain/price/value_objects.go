package price

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrMissingTenantID = errors.New("tenant id is required")
	ErrMissingStoreID  = errors.New("store id is required")
	ErrMissingSKUID    = errors.New("sku id is required")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidValidity = errors.New("end time must be after start time")
)

// Key scopes an interval to a tenant/store/SKU, optionally narrowed to a
// user segment and sales channel. Nil segment/channel means "applies to all".
type Key struct {
	tenantID  string
	storeID   string
	skuID     string
	userSegID *string
	channelID *string
}

func NewKey(tenantID, storeID, skuID string, userSegID, channelID *string) (Key, error) {
	tenantID = strings.TrimSpace(tenantID)
	storeID = strings.TrimSpace(storeID)
	skuID = strings.TrimSpace(skuID)

	if tenantID == "" {
		return Key{}, ErrMissingTenantID
	}
	if storeID == "" {
		return Key{}, ErrMissingStoreID
	}
	if skuID == "" {
		return Key{}, ErrMissingSKUID
	}

	return Key{
		tenantID:  tenantID,
		storeID:   storeID,
		skuID:     skuID,
		userSegID: normalizeOptional(userSegID),
		channelID: normalizeOptional(channelID),
	}, nil
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (k Key) TenantID() string   { return k.tenantID }
func (k Key) StoreID() string    { return k.storeID }
func (k Key) SKUID() string      { return k.skuID }
func (k Key) UserSegID() *string { return k.userSegID }
func (k Key) ChannelID() *string { return k.channelID }

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

type Currency struct {
	code string
}

func NewCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !currencyRegex.MatchString(code) {
		return Currency{}, ErrInvalidCurrency
	}
	return Currency{code: code}, nil
}

func (c Currency) Code() string { return c.code }

// Money is an amount in minor currency units (cents).
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

// Validity is the half-open window [start, end) during which a price applies.
// A nil end means open-ended.
type Validity struct {
	start time.Time
	end   *time.Time
}

func NewValidity(start time.Time, end *time.Time) (Validity, error) {
	if end != nil && !end.After(start) {
		return Validity{}, ErrInvalidValidity
	}
	return Validity{start: start.UTC(), end: normalizeEnd(end)}, nil
}

func normalizeEnd(end *time.Time) *time.Time {
	if end == nil {
		return nil
	}
	utc := end.UTC()
	return &utc
}

func (v Validity) Start() time.Time { return v.start }
func (v Validity) End() *time.Time  { return v.end }

func (v Validity) IsOpenEnded() bool {
	return v.end == nil
}

// Contains reports whether the instant falls inside [start, end).
func (v Validity) Contains(at time.Time) bool {
	if at.Before(v.start) {
		return false
	}
	if v.end == nil {
		return true
	}
	return at.Before(*v.end)
}
