package animals

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListAvailable(ctx context.Context) ([]AvailableAnimal, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *Service) ListWithSpecies(ctx context.Context) ([]Animal, error) {
	return s.repo.ListWithSpecies(ctx)
}

func (s *Service) VaccinationCounts(ctx context.Context) ([]VaccinationCount, error) {
	return s.repo.VaccinationCounts(ctx)
}
