package lib

import (
	"context"
	"database/sql"
	"math"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const createEvaluationsTable = `CREATE TABLE IF NOT EXISTS evaluations (
	id           SERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	expression   TEXT NOT NULL,
	value        DOUBLE PRECISION NULL,
	display      TEXT NOT NULL,
	error        TEXT NULL,
	passed       BOOLEAN NOT NULL,
	evaluated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
)`

const insertEvaluation = `INSERT INTO evaluations (name, expression, value, display, error, passed)
VALUES ($1, $2, $3, $4, $5, $6)`

const selectRecentEvaluations = `SELECT name, expression, value, display, error, passed
FROM evaluations
ORDER BY evaluated_at DESC, id DESC
LIMIT $1`

// Store records case results in PostgreSQL.
type Store struct {
	db *sql.DB
}

// OpenStore connects to the database described by dsn and creates the
// evaluations table when it is missing.
func OpenStore(ctx context.Context, dsn string) (*Store, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid connection string")
	}
	db := sql.OpenDB(connector)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	s := &Store{db: db}
	if err := s.requireEvaluationsTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) requireEvaluationsTable(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createEvaluationsTable)
	return errors.Wrap(err, "failed to create evaluations table")
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (s *Store) Record(ctx context.Context, result CaseResult) error {
	return recordResult(ctx, s.db, result)
}

// RecordAll inserts every result in one transaction.
func (s *Store) RecordAll(ctx context.Context, results []CaseResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	for _, result := range results {
		if err := recordResult(ctx, tx, result); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return errors.Wrap(tx.Commit(), "failed to commit results")
}

func recordResult(ctx context.Context, db execer, result CaseResult) error {
	_, err := db.ExecContext(ctx, insertEvaluation,
		result.Case.Name,
		result.Case.Expression,
		storedValue(result),
		result.Display(),
		storedError(result),
		result.Passed,
	)
	return errors.Wrapf(err, "failed to record case '%s'", result.Case.Name)
}

// Recent returns up to limit results, newest first. Rows stored without a
// value come back with Value set to NaN.
func (s *Store) Recent(ctx context.Context, limit int) ([]CaseResult, error) {
	rows, err := s.db.QueryContext(ctx, selectRecentEvaluations, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query evaluations")
	}
	defer rows.Close()

	results := []CaseResult{}
	for rows.Next() {
		var (
			r       CaseResult
			value   sql.NullFloat64
			display string
			errText sql.NullString
		)
		if err := rows.Scan(&r.Case.Name, &r.Case.Expression, &value, &display, &errText, &r.Passed); err != nil {
			return nil, errors.Wrap(err, "failed to scan evaluation")
		}
		r.Value = math.NaN()
		if value.Valid {
			r.Value = value.Float64
		}
		r.Err = errText.String
		results = append(results, r)
	}
	return results, errors.Wrap(rows.Err(), "failed to read evaluations")
}

// Errors and non-finite values are stored as NULL; display keeps the text.
func storedValue(result CaseResult) sql.NullFloat64 {
	if result.Err != "" || math.IsNaN(result.Value) || math.IsInf(result.Value, 0) {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: result.Value, Valid: true}
}

func storedError(result CaseResult) sql.NullString {
	return sql.NullString{String: result.Err, Valid: result.Err != ""}
}
