package demotable

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

type InsertInput struct {
	ID   int64  `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"min=1,max=20"`
}

type UpdateNameInput struct {
	OldName string `json:"oldName" validate:"required,max=20"`
	NewName string `json:"newName" validate:"min=1,max=20"`
}

func (s *Service) Fetch(ctx context.Context) ([]Row, error) {
	return s.repo.Fetch(ctx)
}

func (s *Service) Initiate(ctx context.Context) error {
	return s.repo.Initiate(ctx)
}

func (s *Service) Insert(ctx context.Context, in InsertInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return err
	}
	return s.repo.Insert(ctx, Row{ID: in.ID, Name: in.Name})
}

func (s *Service) UpdateName(ctx context.Context, in UpdateNameInput) error {
	in.OldName = strings.TrimSpace(in.OldName)
	in.NewName = strings.TrimSpace(in.NewName)
	if err := validation.Struct(in); err != nil {
		return err
	}
	return s.repo.UpdateName(ctx, in.OldName, in.NewName)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
