package price

import (
	"time"

	"github.com/google/uuid"
)

// Interval is a time-bounded price record for a tenant/store/SKU key.
// The id is assigned once at creation (usually by the client, per the
// console contract) and never changes afterwards.
type Interval struct {
	id        uuid.UUID
	key       Key
	price     Money
	currency  Currency
	validity  Validity
	component map[string]any
	prov      map[string]any
	createdAt time.Time
	updatedAt time.Time
}

// NewInterval builds a fresh interval. A zero id means the caller left
// generation to us; a non-zero id is honored as-is (client-generated).
func NewInterval(
	id uuid.UUID,
	key Key,
	price Money,
	currency Currency,
	validity Validity,
	component map[string]any,
	prov map[string]any,
) *Interval {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Interval{
		id:        id,
		key:       key,
		price:     price,
		currency:  currency,
		validity:  validity,
		component: emptyWhenNil(component),
		prov:      emptyWhenNil(prov),
	}
}

func ReconstructInterval(
	id uuid.UUID,
	key Key,
	price Money,
	currency Currency,
	validity Validity,
	component map[string]any,
	prov map[string]any,
	createdAt, updatedAt time.Time,
) *Interval {
	return &Interval{
		id:        id,
		key:       key,
		price:     price,
		currency:  currency,
		validity:  validity,
		component: emptyWhenNil(component),
		prov:      emptyWhenNil(prov),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func emptyWhenNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

// ActiveAt reports whether this interval's validity window contains the instant.
func (i *Interval) ActiveAt(at time.Time) bool {
	return i.validity.Contains(at)
}

func (i *Interval) ID() uuid.UUID             { return i.id }
func (i *Interval) Key() Key                  { return i.key }
func (i *Interval) Price() Money              { return i.price }
func (i *Interval) Currency() Currency        { return i.currency }
func (i *Interval) Validity() Validity        { return i.validity }
func (i *Interval) Component() map[string]any { return i.component }
func (i *Interval) Provenance() map[string]any {
	return i.prov
}
func (i *Interval) CreatedAt() time.Time { return i.createdAt }
func (i *Interval) UpdatedAt() time.Time { return i.updatedAt }
