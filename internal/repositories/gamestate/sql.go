package gamestate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx driver
	_ "modernc.org/sqlite"             // registers the sqlite driver

	"github.com/KirkDiggler/rpg-idle/internal/errors"
	"github.com/KirkDiggler/rpg-idle/internal/pkg/clock"
)

// Dialect selects the SQL flavour
type Dialect string

// Supported dialects
const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// DriverName returns the database/sql driver registered for d
func (d Dialect) DriverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

const createComponentsTable = `
	CREATE TABLE IF NOT EXISTS game_components (
		player_id TEXT NOT NULL,
		component TEXT NOT NULL,
		data TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (player_id, component)
	)
`

type sqlRepository struct {
	db      *sql.DB
	dialect Dialect
	clock   clock.Clock
}

// SQLConfig contains configuration for the SQL game state repository
type SQLConfig struct {
	DB      *sql.DB
	Dialect Dialect
	Clock   clock.Clock
}

// Validate validates the SQLConfig
func (cfg *SQLConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.DB == nil {
		vb.RequiredField("db")
	}
	errors.ValidateEnum("dialect", string(cfg.Dialect), []string{string(DialectSQLite), string(DialectPostgres)}, vb)
	return vb.Build()
}

// NewSQL creates a repository storing one row per player component and
// creates its table when missing. Timestamps are RFC 3339 text so both
// dialects share the schema.
func NewSQL(ctx context.Context, cfg *SQLConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	if _, err := cfg.DB.ExecContext(ctx, createComponentsTable); err != nil {
		return nil, errors.Wrap(err, "failed to create game_components table")
	}

	return &sqlRepository{
		db:      cfg.DB,
		dialect: cfg.Dialect,
		clock:   c,
	}, nil
}

// OpenSQL opens and pings a database for the given dialect
func OpenSQL(ctx context.Context, dialect Dialect, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.InvalidArgument("dsn cannot be empty")
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", dialect)
	}
	if dialect == DialectSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("failed to ping %s database", dialect))
	}
	return db, nil
}

func (r *sqlRepository) bind(pos int) string {
	if r.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

func (r *sqlRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	query := "SELECT component, data, updated_at FROM game_components WHERE player_id = " + r.bind(1)
	rows, err := r.db.QueryContext(ctx, query, input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get state for player %s", input.PlayerID)
	}
	defer func() { _ = rows.Close() }()

	records := make(map[string][]byte)
	var updatedAt time.Time
	for rows.Next() {
		var (
			name string
			data string
			raw  string
		)
		if err := rows.Scan(&name, &data, &raw); err != nil {
			return nil, errors.Wrapf(err, "failed to scan component for player %s", input.PlayerID)
		}
		records[name] = []byte(data)
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil && ts.After(updatedAt) {
			updatedAt = ts
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read state for player %s", input.PlayerID)
	}
	if len(records) == 0 {
		return nil, errors.NotFoundf("state for player %s not found", input.PlayerID)
	}

	state, err := decode(input.PlayerID, records)
	if err != nil {
		return nil, err
	}
	state.UpdatedAt = updatedAt.UTC()

	return &GetOutput{State: state}, nil
}

func (r *sqlRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := input.State.Validate(); err != nil {
		return nil, err
	}

	records, err := input.State.encode()
	if err != nil {
		return nil, err
	}

	upsert := fmt.Sprintf(
		`INSERT INTO game_components (player_id, component, data, updated_at) VALUES (%s, %s, %s, %s)
		ON CONFLICT (player_id, component) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		r.bind(1), r.bind(2), r.bind(3), r.bind(4),
	)

	now := r.clock.Now().UTC()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin save transaction")
	}
	for _, name := range Components {
		if _, err := tx.ExecContext(ctx, upsert, input.State.PlayerID, name, string(records[name]), now.Format(time.RFC3339Nano)); err != nil {
			_ = tx.Rollback()
			return nil, errors.Wrapf(err, "failed to save %s for player %s", name, input.State.PlayerID)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit save transaction")
	}

	input.State.UpdatedAt = now
	return &SaveOutput{UpdatedAt: now}, nil
}

func (r *sqlRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, "DELETE FROM game_components WHERE player_id = "+r.bind(1), input.PlayerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete state for player %s", input.PlayerID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read deleted rows")
	}
	if n == 0 {
		return nil, errors.NotFoundf("state for player %s not found", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}
