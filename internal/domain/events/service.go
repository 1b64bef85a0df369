package events

import (
	"context"
	"fmt"

	"shelter-admin/internal/platform/apperr"
	"shelter-admin/internal/platform/validation"
)

const MaxConditions = 20

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ConditionInput struct {
	Attribute  string `json:"attribute" validate:"required"`
	Value      string `json:"value" validate:"required,max=100,denylist"`
	Connective string `json:"connective"`
}

type FilterInput struct {
	Where []ConditionInput `json:"where" validate:"max=20,dive"`
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.List(ctx)
}

// Filter sin condiciones equivale a List.
func (s *Service) Filter(ctx context.Context, in FilterInput) ([]Event, error) {
	conds, err := parseConditions(in)
	if err != nil {
		return nil, err
	}
	if len(conds) == 0 {
		return s.repo.List(ctx)
	}
	return s.repo.Filter(ctx, conds)
}

func parseConditions(in FilterInput) ([]Condition, error) {
	if len(in.Where) > MaxConditions {
		return nil, apperr.Validation(fmt.Sprintf("at most %d conditions are allowed", MaxConditions))
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	out := make([]Condition, 0, len(in.Where))
	for i, c := range in.Where {
		attr, ok := ParseAttribute(c.Attribute)
		if !ok {
			return nil, apperr.Validation(fmt.Sprintf("where[%d].attribute %q is not filterable", i, c.Attribute))
		}
		conn, ok := ParseConnective(c.Connective)
		if !ok {
			return nil, apperr.Validation(fmt.Sprintf("where[%d].connective must be AND or OR", i))
		}
		if attr == AttrDate && !validation.IsISODate(c.Value) {
			return nil, apperr.Validation(fmt.Sprintf("where[%d].value must be YYYY-MM-DD for eventDate", i))
		}
		out = append(out, Condition{Attribute: attr, Value: c.Value, Connective: conn})
	}
	return out, nil
}
