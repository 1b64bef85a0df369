package projection

import "strings"

// Table es una entrada del allow-list: nombre canónico y columnas permitidas, en orden.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// Catalog es la única fuente de tablas/columnas proyectables. El frontend arma su dropdown
// a partir de GET /projection/tables.
var Catalog = []Table{
	{Name: "AnimalAdmits", Columns: []string{"animalID", "animalName", "age", "breed", "branchID"}},
	{Name: "AnimalInfo", Columns: []string{"breed", "species"}},
	{Name: "Vaccination", Columns: []string{"animalID", "vaccineType", "vaccinationDate"}},
	{Name: "Applies", Columns: []string{"branchID", "adopterID", "animalID", "applicationStatus", "applicationDate"}},
	{Name: "Adopter", Columns: []string{"adopterID", "adopterName", "email", "phoneNum"}},
	{Name: "Donor", Columns: []string{"donorID", "donorName", "email"}},
	{Name: "Donates", Columns: []string{"donorID", "branchID", "amount", "donationDate"}},
	{Name: "Attends", Columns: []string{"donorID", "eventID"}},
	{Name: "Shelter", Columns: []string{"branchID", "phoneNum", "shelterAddress"}},
	{Name: "Events", Columns: []string{"eventID", "title", "eventLocation", "eventDate", "eventType"}},
}

// LookupTable busca sin importar mayúsculas.
func LookupTable(name string) (Table, bool) {
	name = strings.TrimSpace(name)
	for _, t := range Catalog {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Table{}, false
}

// Column devuelve el nombre canónico de col si pertenece a la tabla.
func (t Table) Column(col string) (string, bool) {
	col = strings.TrimSpace(col)
	for _, c := range t.Columns {
		if strings.EqualFold(c, col) {
			return c, true
		}
	}
	return "", false
}
