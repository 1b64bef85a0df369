package shelters

import (
	"context"
	"strings"

	"shelter-admin/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type UpdateContactInput struct {
	BranchID       int64  `json:"branchID" validate:"gt=0"`
	PhoneNum       string `json:"phoneNum" validate:"phone10"`
	ShelterAddress string `json:"shelterAddress" validate:"shelteraddr"`
}

func (s *Service) List(ctx context.Context) ([]Shelter, error) {
	return s.repo.List(ctx)
}

// UpdateContact valida teléfono y dirección antes de tocar la base.
func (s *Service) UpdateContact(ctx context.Context, in UpdateContactInput) (Shelter, error) {
	in.PhoneNum = strings.TrimSpace(in.PhoneNum)
	in.ShelterAddress = strings.TrimSpace(in.ShelterAddress)
	if err := validation.Struct(in); err != nil {
		return Shelter{}, err
	}

	sh := Shelter{BranchID: in.BranchID, PhoneNum: in.PhoneNum, Address: in.ShelterAddress}
	if err := s.repo.UpdateContact(ctx, sh); err != nil {
		return Shelter{}, err
	}
	return sh, nil
}
