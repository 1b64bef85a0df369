package projection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shelter-admin/internal/platform/apperr"
	"shelter-admin/internal/platform/validation"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ProjectInput struct {
	TableName  string   `json:"table_name"`
	Attributes []string `json:"attributes"`
}

func (s *Service) Tables() []Table {
	return Catalog
}

func (s *Service) Project(ctx context.Context, in ProjectInput) (Result, error) {
	q, err := Resolve(in)
	if err != nil {
		return Result{}, err
	}

	raw, err := s.repo.Project(ctx, q)
	if err != nil {
		return Result{}, err
	}

	rows := make([]Row, 0, len(raw))
	for i, vals := range raw {
		if len(vals) != len(q.Columns) {
			return Result{}, fmt.Errorf("projection: row %d has %d values, want %d", i, len(vals), len(q.Columns))
		}
		row := make(Row, len(q.Columns))
		for j, c := range q.Columns {
			row[c] = normalize(vals[j])
		}
		rows = append(rows, row)
	}
	return Result{Columns: q.Columns, Rows: rows}, nil
}

// Resolve valida tabla y columnas contra Catalog y devuelve los nombres canónicos.
func Resolve(in ProjectInput) (Query, error) {
	t, ok := LookupTable(in.TableName)
	if !ok {
		return Query{}, apperr.Validation(fmt.Sprintf("table %q is not available for projection", strings.TrimSpace(in.TableName)))
	}
	if len(in.Attributes) == 0 {
		return Query{}, apperr.Validation("attributes must contain at least one column")
	}

	cols := make([]string, 0, len(in.Attributes))
	seen := make(map[string]struct{}, len(in.Attributes))
	for _, a := range in.Attributes {
		c, ok := t.Column(a)
		if !ok {
			return Query{}, apperr.Validation(fmt.Sprintf("column %q does not exist in %s", strings.TrimSpace(a), t.Name))
		}
		if _, dup := seen[c]; dup {
			return Query{}, apperr.Validation(fmt.Sprintf("column %q is repeated", c))
		}
		seen[c] = struct{}{}
		cols = append(cols, c)
	}
	return Query{Table: t.Name, Columns: cols}, nil
}

// Las columnas de fecha del catálogo son DATE: se devuelven como YYYY-MM-DD.
func normalize(v any) any {
	switch x := v.(type) {
	case time.Time:
		return x.Format(validation.DateLayout)
	case []byte:
		return string(x)
	default:
		return v
	}
}
