//go:build unit || e2e

package builder

import (
	"time"

	"resource-booking-api/internal/usecase/queries"
)

type UnitBuilder struct {
	ID       string
	Name     string
	TimeZone string
}

func NewUnitBuilder() *UnitBuilder {
	return &UnitBuilder{
		ID:       "tprek:162",
		Name:     "Central Library",
		TimeZone: "Europe/Helsinki",
	}
}

func (b *UnitBuilder) BuildReadModel() *queries.UnitView {
	now := time.Now()
	return &queries.UnitView{
		ID:        b.ID,
		Name:      b.Name,
		TimeZone:  b.TimeZone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *UnitBuilder) WithID(id string) *UnitBuilder {
	b.ID = id
	return b
}

func (b *UnitBuilder) WithName(name string) *UnitBuilder {
	b.Name = name
	return b
}
