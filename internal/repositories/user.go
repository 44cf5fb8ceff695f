package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-trial-participants/internal/models"
)

type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns the user with exactly this email, or nil when none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, email, full_name, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.User
	err := conn(ctx, r.db, r.txGetter).GetContext(ctx, &user, query, email)

	logQuery(query, []any{email}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a user and returns the stored row. A duplicate email yields
// ErrUniqueViolation.
func (r *UserWriteRepository) Save(ctx context.Context, email string, fullName *string, passwordHash string) (*models.User, error) {
	const query = `
		INSERT INTO users (email, full_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, email, full_name, password_hash, created_at, updated_at
	`

	var user models.User
	err := conn(ctx, r.db, r.txGetter).GetContext(ctx, &user, query, email, fullName, passwordHash)

	// the hash never reaches the log
	logQuery(query, []any{email, fullName}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

// Count returns the number of registered users.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var n int64
	err := conn(ctx, r.db, r.txGetter).GetContext(ctx, &n, query)

	logQuery(query, nil, n, err)

	return n, err
}
