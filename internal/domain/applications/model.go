package applications

import "time"

// Status se guarda capitalizado; la entrada se acepta sin importar mayúsculas.
type Status string

const (
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
	StatusPending  Status = "Pending"
)

// Key identifica una solicitud (PK compuesta de Applies).
type Key struct {
	BranchID  int64
	AdopterID int64
	AnimalID  int64
}

// Application es una fila de Applies: un adoptante pide un animal en una sucursal.
type Application struct {
	Key
	Status Status
	Date   time.Time
}
