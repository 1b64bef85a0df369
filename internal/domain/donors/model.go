package donors

// TopDonor es un donante cuyo total donado supera el promedio de totales por donante.
type TopDonor struct {
	DonorID      int64   `db:"donorid"`
	Name         string  `db:"donorname"`
	TotalDonated float64 `db:"totaldonated"`
}

// Donor aparece en AttendingAllEvents: asistió a todos los eventos registrados.
type Donor struct {
	DonorID int64  `db:"donorid"`
	Name    string `db:"donorname"`
}
