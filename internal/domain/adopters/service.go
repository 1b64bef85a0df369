package adopters

import (
	"context"

	"shelter-admin/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type DeleteInput struct {
	AdopterID int64 `json:"adopterID" validate:"gt=0"`
}

func (s *Service) List(ctx context.Context) ([]Adopter, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, in DeleteInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	return s.repo.Delete(ctx, in.AdopterID)
}
