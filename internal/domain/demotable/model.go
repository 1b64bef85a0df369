package demotable

// Row es una fila de DEMOTABLE, la tabla de prueba que usa el frontend para verificar la conexión.
type Row struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}
