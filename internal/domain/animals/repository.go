package animals

import "context"

type Repository interface {
	ListAvailable(ctx context.Context) ([]AvailableAnimal, error)
	ListWithSpecies(ctx context.Context) ([]Animal, error)
	VaccinationCounts(ctx context.Context) ([]VaccinationCount, error)
}
