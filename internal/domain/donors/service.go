package donors

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) TopDonors(ctx context.Context) ([]TopDonor, error) {
	return s.repo.TopDonors(ctx)
}

func (s *Service) AttendingAllEvents(ctx context.Context) ([]Donor, error) {
	return s.repo.AttendingAllEvents(ctx)
}
