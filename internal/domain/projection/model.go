package projection

// Query ya resuelta contra Catalog: nombres canónicos, sin duplicados, al menos una columna.
type Query struct {
	Table   string
	Columns []string
}

// Row asocia columna -> valor. Siempre trae exactamente las columnas pedidas.
type Row map[string]any

type Result struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}
