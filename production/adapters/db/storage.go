package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/LuizRMSilva1973/projeto-pastelaria/production/core"
)

// DB is the Postgres journal behind the in-memory task store. Rows are only
// inserted and flipped to DONE, mirroring the store itself.
type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*DB, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &DB{log: log, conn: db}, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

func (db *DB) LoadTasks(ctx context.Context) ([]core.Task, error) {
	const q = `
		SELECT id, order_id, flavor, quantity, machine_id, status, origin, client, production_date, created_at
		FROM tasks
		ORDER BY id ASC;
	`

	var out []core.Task
	if err := db.conn.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return out, nil
}

// InsertTasks writes one order's tasks in a single transaction.
func (db *DB) InsertTasks(ctx context.Context, tasks []core.Task) (err error) {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert tasks: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Error("rollback failed", "error", rbErr)
			}
		}
	}()

	const q = `
		INSERT INTO tasks(id, order_id, flavor, quantity, machine_id, status, origin, client, production_date, created_at)
		VALUES (:id, :order_id, :flavor, :quantity, :machine_id, :status, :origin, :client, :production_date, :created_at);
	`

	stmt, err := tx.PrepareNamedContext(ctx, q)
	if err != nil {
		return fmt.Errorf("prepare insert task: %w", err)
	}
	defer stmt.Close()

	for _, t := range tasks {
		if _, err = stmt.ExecContext(ctx, t); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: task %d already journaled", core.ErrTaskInvalidArgs, t.ID)
			}
			if isCheckViolation(err) {
				return fmt.Errorf("%w: task %d rejected by journal", core.ErrTaskInvalidArgs, t.ID)
			}
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit insert tasks: %w", err)
	}
	return nil
}

// MarkDone is a no-op for rows already DONE.
func (db *DB) MarkDone(ctx context.Context, id int64) error {
	const q = `UPDATE tasks SET status = 'DONE' WHERE id = $1 AND status = 'PENDING'`

	res, err := db.conn.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("mark task done: %w", err)
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		db.log.Debug("mark done touched no rows", "task_id", id)
	}
	return nil
}

var _ core.Journal = (*DB)(nil)

// pg helpers

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23514"
}
