package postgres

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shelter-admin/internal/config"
	"shelter-admin/internal/platform/apperr"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/platform/metrics"
)

const defaultPingTimeout = 3 * time.Second

// Querier es lo mínimo que usan los repos. Lo cumplen *pgxpool.Conn y los mocks de pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn es una conexión prestada por el pool; hay que devolverla con Release.
type Conn interface {
	Querier
	Release()
}

type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
	Ping(ctx context.Context) error
	Close()
}

// DB es el connection manager: un único pool creado en Open y cerrado en Close.
type DB struct {
	pool         Pool
	log          logger.Logger
	queryTimeout time.Duration
}

// Open crea el pool, hace ping y falla si la base no responde.
func Open(ctx context.Context, cfg config.DBConfig, log logger.Logger) (*DB, error) {
	if log == nil {
		log = logger.Nop()
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.ConnString())
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	poolCfg.MaxConns = clampConns(cfg.MaxConns, 4)
	poolCfg.MinConns = min(clampConns(cfg.MinConns, 0), poolCfg.MaxConns)
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	p, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: new pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	log.Info("postgres pool ready", map[string]any{
		"host":      poolCfg.ConnConfig.Host,
		"db_name":   poolCfg.ConnConfig.Database,
		"max_conns": poolCfg.MaxConns,
		"min_conns": poolCfg.MinConns,
	})

	return New(pgxPool{p}, log, cfg.QueryTimeout), nil
}

// New envuelve un Pool ya creado (tests usan un pool falso sobre pgxmock).
func New(pool Pool, log logger.Logger, queryTimeout time.Duration) *DB {
	if log == nil {
		log = logger.Nop()
	}
	return &DB{pool: pool, log: log, queryTimeout: queryTimeout}
}

// WithConn presta una conexión, ejecuta fn y la devuelve en cualquier camino de salida
// (éxito, error o panic). El error de fn se clasifica en la taxonomía de apperr.
func (d *DB) WithConn(ctx context.Context, op string, fn func(ctx context.Context, q Querier) error) (err error) {
	start := time.Now()
	defer func() {
		metrics.DBOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.DBOperationsTotal.WithLabelValues(op, outcome(err)).Inc()
	}()

	if d.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.queryTimeout)
		defer cancel()
	}

	conn, err := d.pool.Acquire(ctx)
	if err != nil {
		d.log.Error("acquire connection failed", map[string]any{"op": op, "err": err})
		return apperr.Unavailable(err)
	}
	metrics.DBAcquiredConns.Inc()
	defer func() {
		conn.Release()
		metrics.DBAcquiredConns.Dec()
	}()

	if err := fn(ctx, conn); err != nil {
		classified := classify(err)
		if apperr.HTTPStatus(classified) >= 500 {
			d.log.Error("database operation failed", map[string]any{"op": op, "err": err})
		} else {
			d.log.Debug("database operation rejected", map[string]any{"op": op, "err": err})
		}
		return classified
	}
	return nil
}

// Ping verifica la conexión (usado por /check-db-connection).
func (d *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()
	if err := d.pool.Ping(ctx); err != nil {
		return apperr.Unavailable(err)
	}
	return nil
}

func (d *DB) Close() {
	d.pool.Close()
	d.log.Info("postgres pool closed", nil)
}

// pgxPool adapta *pgxpool.Pool a Pool (Acquire devuelve *pgxpool.Conn concreto).
type pgxPool struct {
	*pgxpool.Pool
}

func (p pgxPool) Acquire(ctx context.Context) (Conn, error) {
	c, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func clampConns(v int, fallback int32) int32 {
	if v <= 0 {
		return fallback
	}
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
