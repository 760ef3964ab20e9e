package armorset

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the pgx database/sql driver for goose
	"github.com/pressly/goose/v3"

	"github.com/KirkDiggler/armor-builder/internal/entities/armor"
	"github.com/KirkDiggler/armor-builder/internal/errors"
	"github.com/KirkDiggler/armor-builder/internal/repositories/armor_set/migrations"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig contains configuration for the PostgreSQL armor set repository.
type PostgresConfig struct {
	Pool *pgxpool.Pool
}

// Validate validates the PostgresConfig.
func (cfg *PostgresConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Pool == nil {
		return errors.InvalidArgument("pool cannot be nil")
	}
	return nil
}

// NewPostgres creates a new PostgreSQL-backed armor set repository.
// The schema must already be migrated, see RunMigrations.
func NewPostgres(cfg *PostgresConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &postgresRepository{
		pool: cfg.Pool,
	}, nil
}

// Connect opens a pgx pool and checks it answers
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "connecting to database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "pinging database")
	}
	return pool, nil
}

// RunMigrations runs goose migrations on the given DSN.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return errors.Wrap(err, "opening sql connection for migrations")
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "setting goose dialect")
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return errors.Wrap(err, "running migrations")
	}
	return nil
}

func (r *postgresRepository) LoadAll(ctx context.Context, _ LoadAllInput) (*LoadAllOutput, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, record FROM armor_sets ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "querying armor sets")
	}
	defer rows.Close()

	records := make([]*armor.SetRecord, 0, 16)
	for rows.Next() {
		var (
			name string
			raw  []byte
		)
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, errors.Wrap(err, "scanning armor set row")
		}

		var record armor.SetRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "armor set %q is corrupt", name).
				WithReason(armor.ReasonInvalidSetRecord)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating armor set rows")
	}

	sets, err := deserializeAll(records)
	if err != nil {
		return nil, err
	}

	return &LoadAllOutput{Sets: sets}, nil
}

// SaveAll replaces the table contents within a transaction
func (r *postgresRepository) SaveAll(ctx context.Context, input SaveAllInput) (*SaveAllOutput, error) {
	records, err := serializeAll(input.Sets)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "beginning armor set transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM armor_sets`); err != nil {
		return nil, errors.Wrap(err, "clearing armor sets")
	}

	batch := &pgx.Batch{}
	for i, record := range records {
		jsonData, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal armor set %s", input.Sets[i].Name)
		}
		batch.Queue(
			`INSERT INTO armor_sets (position, name, record) VALUES ($1, $2, $3::jsonb)`,
			i, input.Sets[i].Name, string(jsonData),
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, errors.Wrap(err, "inserting armor sets")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "committing armor sets")
	}

	slog.DebugContext(ctx, "Saved armor sets to postgres", "count", len(records))

	return &SaveAllOutput{Saved: len(records)}, nil
}
