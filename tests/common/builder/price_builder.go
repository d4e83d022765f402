//go:build unit || e2e

package builder

import (
	"time"

	reqdto "pricing-admin-api/internal/handler/dto/request"
	"pricing-admin-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceBuilder struct {
	IntervalID         uuid.UUID
	TenantID           string
	StoreID            string
	SKUID              string
	UserSegID          *string
	ChannelID          *string
	EffectivePriceCent int64
	Currency           string
	StartAtUTC         time.Time
	EndAtUTC           *time.Time
	PriceComponent     map[string]any
	Provenance         map[string]any
}

func NewPriceBuilder() *PriceBuilder {
	return &PriceBuilder{
		IntervalID:         uuid.New(),
		TenantID:           "tenant-1",
		StoreID:            "store-1",
		SKUID:              "SKU-1001",
		EffectivePriceCent: 1999,
		Currency:           "USD",
		StartAtUTC:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		PriceComponent:     map[string]any{"base": float64(1999)},
		Provenance:         map[string]any{"source": "manual"},
	}
}

func (p *PriceBuilder) BuildDTO() reqdto.PriceIntervalRequest {
	intervalID := ""
	if p.IntervalID != uuid.Nil {
		intervalID = p.IntervalID.String()
	}
	return reqdto.PriceIntervalRequest{
		IntervalID: intervalID,
		Key: reqdto.IntervalKeyRequest{
			TenantID:  p.TenantID,
			StoreID:   p.StoreID,
			SKUID:     p.SKUID,
			UserSegID: p.UserSegID,
			ChannelID: p.ChannelID,
		},
		EffectivePriceCent: p.EffectivePriceCent,
		Currency:           p.Currency,
		StartAtUTC:         p.StartAtUTC,
		EndAtUTC:           p.EndAtUTC,
		PriceComponent:     p.PriceComponent,
		Provenance:         p.Provenance,
	}
}

// BuildUpdateDTO carries the builder's start; tests replaying the console's
// update shape nil it out.
func (p *PriceBuilder) BuildUpdateDTO() reqdto.PriceIntervalUpdateRequest {
	intervalID := ""
	if p.IntervalID != uuid.Nil {
		intervalID = p.IntervalID.String()
	}
	start := p.StartAtUTC
	return reqdto.PriceIntervalUpdateRequest{
		IntervalID: intervalID,
		Key: reqdto.IntervalKeyRequest{
			TenantID:  p.TenantID,
			StoreID:   p.StoreID,
			SKUID:     p.SKUID,
			UserSegID: p.UserSegID,
			ChannelID: p.ChannelID,
		},
		EffectivePriceCent: p.EffectivePriceCent,
		Currency:           p.Currency,
		StartAtUTC:         &start,
		EndAtUTC:           p.EndAtUTC,
		PriceComponent:     p.PriceComponent,
		Provenance:         p.Provenance,
	}
}

func (p *PriceBuilder) BuildReadModel() *queries.PriceIntervalView {
	now := time.Now().UTC()
	return &queries.PriceIntervalView{
		IntervalID: p.IntervalID,
		Key: queries.IntervalKeyView{
			TenantID:  p.TenantID,
			StoreID:   p.StoreID,
			SKUID:     p.SKUID,
			UserSegID: p.UserSegID,
			ChannelID: p.ChannelID,
		},
		EffectivePriceCent: p.EffectivePriceCent,
		Currency:           p.Currency,
		StartAtUTC:         p.StartAtUTC,
		EndAtUTC:           p.EndAtUTC,
		PriceComponent:     p.PriceComponent,
		Provenance:         p.Provenance,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (p *PriceBuilder) WithoutID() *PriceBuilder {
	p.IntervalID = uuid.Nil
	return p
}

func (p *PriceBuilder) WithSKU(skuID string) *PriceBuilder {
	p.SKUID = skuID
	return p
}

func (p *PriceBuilder) WithPrice(cents int64) *PriceBuilder {
	p.EffectivePriceCent = cents
	return p
}

func (p *PriceBuilder) WithCurrency(currency string) *PriceBuilder {
	p.Currency = currency
	return p
}

func (p *PriceBuilder) WithWindow(start time.Time, end *time.Time) *PriceBuilder {
	p.StartAtUTC = start
	p.EndAtUTC = end
	return p
}

func (p *PriceBuilder) WithSegment(userSegID string) *PriceBuilder {
	p.UserSegID = &userSegID
	return p
}

func (p *PriceBuilder) WithChannel(channelID string) *PriceBuilder {
	p.ChannelID = &channelID
	return p
}
