package value

import "github.com/google/uuid"

// UndefinedType is the type of [Undefined].
type UndefinedType struct{}

// String returns "undefined".
func (UndefinedType) String() string { return "undefined" }

// Undefined marks an absent value, such as a record field that does not
// exist. It differs from nil, which is [KindNull].
var Undefined = UndefinedType{}

// Symbol is a unique token. Two symbols are equal only when one was copied
// from the other, even if their descriptions match.
type Symbol struct {
	id   uuid.UUID
	desc string
}

// NewSymbol returns a fresh symbol carrying description.
func NewSymbol(description string) Symbol {
	return Symbol{id: uuid.New(), desc: description}
}

// Description returns the text the symbol was created with.
func (s Symbol) Description() string { return s.desc }

// ID returns the identity of the symbol.
func (s Symbol) ID() uuid.UUID { return s.id }

// String renders the symbol as Symbol(description).
func (s Symbol) String() string { return "Symbol(" + s.desc + ")" }
