package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
)

// ErrUniqueViolation is matched by every unique constraint collision.
var ErrUniqueViolation = errors.New("unique constraint violation")

// Unique constraint names as created by the migrations.
const (
	ConstraintUserEmail            = "users_email_key"
	ConstraintParticipantID        = "participants_participant_id_key"
	ConstraintParticipantSubjectID = "participants_subject_id_key"
)

// UniqueViolationError names the constraint a write collided with.
type UniqueViolationError struct {
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	return ErrUniqueViolation.Error() + ": " + e.Constraint
}

func (e *UniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolation
}

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// conn picks the request transaction when one is bound to ctx and falls back
// to the pool otherwise.
func conn(ctx context.Context, db *sqlx.DB, txGetter TxGetter) executor {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// mapError translates driver errors into repository errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &UniqueViolationError{Constraint: pgErr.ConstraintName}
	}
	return err
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
