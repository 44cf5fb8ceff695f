package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-trial-participants/internal/models"
)

const participantColumns = `id, participant_id, subject_id, study_group, enrollment_date,
	status, age, gender, created_at, updated_at`

// ParticipantReadRepository handles participant read operations
type ParticipantReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewParticipantReadRepository(db *sqlx.DB, txGetter TxGetter) *ParticipantReadRepository {
	return &ParticipantReadRepository{db: db, txGetter: txGetter}
}

// List returns every participant in primary key order.
func (r *ParticipantReadRepository) List(ctx context.Context) ([]models.Participant, error) {
	const query = `SELECT ` + participantColumns + ` FROM participants ORDER BY id`

	participants := make([]models.Participant, 0)
	err := conn(ctx, r.db, r.txGetter).SelectContext(ctx, &participants, query)

	logQuery(query, nil, len(participants), err)

	if err != nil {
		return nil, err
	}
	return participants, nil
}

// GetByID returns the participant with the given store id, or nil.
func (r *ParticipantReadRepository) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	const query = `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetBySubjectID returns the participant with the given subject id, or nil.
func (r *ParticipantReadRepository) GetBySubjectID(ctx context.Context, subjectID string) (*models.Participant, error) {
	const query = `SELECT ` + participantColumns + ` FROM participants WHERE subject_id = $1`
	return r.getOne(ctx, query, subjectID)
}

func (r *ParticipantReadRepository) getOne(ctx context.Context, query string, arg any) (*models.Participant, error) {
	var p models.Participant
	err := conn(ctx, r.db, r.txGetter).GetContext(ctx, &p, query, arg)

	logQuery(query, []any{arg}, p.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Count returns the number of participants.
func (r *ParticipantReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM participants`
	return r.count(ctx, query)
}

// CountByStatus returns the number of participants with the given status.
func (r *ParticipantReadRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	const query = `SELECT COUNT(*) FROM participants WHERE status = $1`
	return r.count(ctx, query, status)
}

// CountByStudyGroup returns the number of participants in the given study group.
func (r *ParticipantReadRepository) CountByStudyGroup(ctx context.Context, group string) (int64, error) {
	const query = `SELECT COUNT(*) FROM participants WHERE study_group = $1`
	return r.count(ctx, query, group)
}

func (r *ParticipantReadRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := conn(ctx, r.db, r.txGetter).GetContext(ctx, &n, query, args...)

	logQuery(query, args, n, err)

	return n, err
}

// ParticipantWriteRepository handles participant write operations
type ParticipantWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewParticipantWriteRepository(db *sqlx.DB, txGetter TxGetter) *ParticipantWriteRepository {
	return &ParticipantWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts p and returns the stored row. An empty ParticipantID is
// replaced with a fresh UUID. A duplicate subject or participant id yields
// ErrUniqueViolation.
func (r *ParticipantWriteRepository) Save(ctx context.Context, p *models.Participant) (*models.Participant, error) {
	const query = `
		INSERT INTO participants (participant_id, subject_id, study_group, enrollment_date,
			status, age, gender, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + participantColumns

	participantID := p.ParticipantID
	if participantID == "" {
		participantID = uuid.NewString()
	}
	args := []any{participantID, p.SubjectID, p.StudyGroup, p.EnrollmentDate, p.Status, p.Age, p.Gender}

	var saved models.Participant
	err := conn(ctx, r.db, r.txGetter).GetContext(ctx, &saved, query, args...)

	logQuery(query, args, saved.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &saved, nil
}

// Update overwrites every mutable field of the participant with id and
// returns the stored row, or nil when no such participant exists.
// ParticipantID is never changed.
func (r *ParticipantWriteRepository) Update(ctx context.Context, id int64, p *models.Participant) (*models.Participant, error) {
	const query = `
		UPDATE participants
		SET subject_id = $2, study_group = $3, enrollment_date = $4,
			status = $5, age = $6, gender = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + participantColumns

	args := []any{id, p.SubjectID, p.StudyGroup, p.EnrollmentDate, p.Status, p.Age, p.Gender}

	var updated models.Participant
	err := conn(ctx, r.db, r.txGetter).GetContext(ctx, &updated, query, args...)

	logQuery(query, args, updated.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &updated, nil
}

// Delete removes the participant with id. It reports whether a row was removed.
func (r *ParticipantWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM participants WHERE id = $1`

	res, err := conn(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
