package events

import "strings"

// Attribute es una columna de Events habilitada para filtrar.
type Attribute string

const (
	AttrTitle    Attribute = "title"
	AttrLocation Attribute = "eventLocation"
	AttrDate     Attribute = "eventDate"
	AttrType     Attribute = "eventType"
)

var attributes = []Attribute{AttrTitle, AttrLocation, AttrDate, AttrType}

// ParseAttribute resuelve el nombre sin importar mayúsculas y devuelve la forma canónica.
func ParseAttribute(s string) (Attribute, bool) {
	s = strings.TrimSpace(s)
	for _, a := range attributes {
		if strings.EqualFold(string(a), s) {
			return a, true
		}
	}
	return "", false
}

// Connective une una condición con la anterior.
type Connective string

const (
	And Connective = "AND"
	Or  Connective = "OR"
)

// ParseConnective: vacío equivale a AND.
func ParseConnective(s string) (Connective, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "AND":
		return And, true
	case "OR":
		return Or, true
	default:
		return "", false
	}
}
