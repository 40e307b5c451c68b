package unit

import "errors"

var (
	ErrEmptyNamespace      = errors.New("identifier namespace cannot be empty")
	ErrEmptyIdentifierValue = errors.New("identifier value cannot be empty")
)

// UnitIdentifier binds an external namespace/value pair to a unit.
// Uniqueness is enforced by the store per (namespace, value) and per
// (namespace, unit).
type UnitIdentifier struct {
	unitID    string
	namespace string
	value     string
}

func NewUnitIdentifier(unitID, namespace, value string) (*UnitIdentifier, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}
	if value == "" {
		return nil, ErrEmptyIdentifierValue
	}
	return &UnitIdentifier{
		unitID:    unitID,
		namespace: namespace,
		value:     value,
	}, nil
}

func (i *UnitIdentifier) UnitID() string    { return i.unitID }
func (i *UnitIdentifier) Namespace() string { return i.namespace }
func (i *UnitIdentifier) Value() string     { return i.value }
