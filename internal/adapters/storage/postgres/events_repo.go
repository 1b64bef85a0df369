package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgtype"

	"shelter-admin/internal/domain/events"
)

type EventsRepo struct {
	db *DB
}

func NewEventsRepo(db *DB) *EventsRepo {
	return &EventsRepo{db: db}
}

// eventRow refleja Events; eventType admite NULL.
type eventRow struct {
	EventID  int64       `db:"eventid"`
	Title    string      `db:"title"`
	Location string      `db:"eventlocation"`
	Date     time.Time   `db:"eventdate"`
	Type     pgtype.Text `db:"eventtype"`
}

func (r eventRow) toEvent() events.Event {
	return events.Event{
		EventID:  r.EventID,
		Title:    r.Title,
		Location: r.Location,
		Date:     r.Date,
		Type:     r.Type.String,
	}
}

func eventsSelect() squirrel.SelectBuilder {
	return psql.
		Select("eventID", "title", "eventLocation", "eventDate", "eventType").
		From("Events")
}

func (r *EventsRepo) List(ctx context.Context) ([]events.Event, error) {
	query, args, err := toSQL(eventsSelect().OrderBy("eventDate", "eventID"))
	if err != nil {
		return nil, err
	}
	return r.selectEvents(ctx, "events.list", query, args)
}

func (r *EventsRepo) Filter(ctx context.Context, conds []events.Condition) ([]events.Event, error) {
	query, args, err := toSQL(eventsSelect().Where(whereExpr(conds)).OrderBy("eventDate", "eventID"))
	if err != nil {
		return nil, err
	}
	return r.selectEvents(ctx, "events.filter", query, args)
}

func (r *EventsRepo) selectEvents(ctx context.Context, op, query string, args []any) ([]events.Event, error) {
	var rows []eventRow
	err := r.db.WithConn(ctx, op, func(ctx context.Context, q Querier) error {
		return pgxscan.Select(ctx, q, &rows, query, args...)
	})
	if err != nil {
		return nil, err
	}

	out := make([]events.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEvent())
	}
	return out, nil
}

// whereExpr concatena las condiciones de izquierda a derecha con su conector.
// Los atributos ya vienen del allow-list; cada valor es un parámetro.
func whereExpr(conds []events.Condition) squirrel.Sqlizer {
	var sb strings.Builder
	args := make([]any, 0, len(conds))
	for i, c := range conds {
		if i > 0 {
			sb.WriteString(" " + string(c.Connective) + " ")
		}
		if c.Attribute == events.AttrDate {
			sb.WriteString(string(c.Attribute) + " = to_date(?, 'YYYY-MM-DD')")
		} else {
			sb.WriteString(string(c.Attribute) + " = ?")
		}
		args = append(args, c.Value)
	}
	return squirrel.Expr(sb.String(), args...)
}
