package donors

import "context"

type Repository interface {
	// TopDonors viene ordenado por total descendente.
	TopDonors(ctx context.Context) ([]TopDonor, error)
	AttendingAllEvents(ctx context.Context) ([]Donor, error)
}
