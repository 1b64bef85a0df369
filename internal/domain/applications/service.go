package applications

import (
	"context"

	"shelter-admin/internal/platform/apperr"
	"shelter-admin/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// KeyInput son los tres IDs que identifican una solicitud.
type KeyInput struct {
	BranchID  int64 `json:"branchID" validate:"gt=0"`
	AdopterID int64 `json:"adopterID" validate:"gt=0"`
	AnimalID  int64 `json:"animalID" validate:"gt=0"`
}

// SubmitInput también se usa para Update: los IDs ubican la fila, status/fecha son los nuevos valores.
type SubmitInput struct {
	KeyInput
	Status string `json:"applicationStatus" validate:"appstatus"`
	Date   string `json:"applicationDate" validate:"isodate"`
}

func (s *Service) List(ctx context.Context) ([]Application, error) {
	return s.repo.List(ctx)
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (Application, error) {
	a, err := toApplication(in)
	if err != nil {
		return Application{}, err
	}
	if err := s.repo.Submit(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func (s *Service) Withdraw(ctx context.Context, in KeyInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	return s.repo.Withdraw(ctx, in.key())
}

func (s *Service) Update(ctx context.Context, in SubmitInput) (Application, error) {
	a, err := toApplication(in)
	if err != nil {
		return Application{}, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

func toApplication(in SubmitInput) (Application, error) {
	if err := validation.Struct(in); err != nil {
		return Application{}, err
	}
	status, ok := validation.NormalizeStatus(in.Status)
	if !ok {
		return Application{}, apperr.Validation("applicationStatus must be one of accepted, rejected, pending")
	}
	date, err := validation.ParseDate(in.Date)
	if err != nil {
		return Application{}, err
	}
	return Application{Key: in.key(), Status: Status(status), Date: date}, nil
}

func (k KeyInput) key() Key {
	return Key{BranchID: k.BranchID, AdopterID: k.AdopterID, AnimalID: k.AnimalID}
}
