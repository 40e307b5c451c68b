package shared

import (
	"github.com/google/uuid"
)

type UnitSnapshot struct {
	ID         string
	Name       string
	TimeZone   string
	DataSource *string
}

func (s *UnitSnapshot) IsEditable() bool {
	return s.DataSource == nil || *s.DataSource == ""
}

type ResourceSnapshot struct {
	ID         uuid.UUID
	UnitID     string
	Name       string
	Reservable bool
}
