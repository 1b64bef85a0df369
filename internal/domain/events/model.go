package events

import "time"

// Event.Type queda vacío cuando eventType es NULL.
type Event struct {
	EventID  int64
	Title    string
	Location string
	Date     time.Time
	Type     string
}

// Condition ya validada: atributo canónico, valor libre de la denylist y conector normalizado.
// El conector de la primera condición se ignora.
type Condition struct {
	Attribute  Attribute
	Value      string
	Connective Connective
}
