package services

//go:generate mockgen -source=participant.go -destination=mock_participant_test.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/models"
	"github.com/sbilibin2017/gw-trial-participants/internal/repositories"
	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

var (
	ErrParticipantNotFound        = errors.New("participant not found")
	ErrSubjectIDAlreadyExists     = errors.New("subject ID already exists")
	ErrParticipantIDAlreadyExists = errors.New("participant ID already exists")
)

// ParticipantReader defines read-only operations for participants.
type ParticipantReader interface {
	List(ctx context.Context) ([]models.Participant, error)
	GetByID(ctx context.Context, id int64) (*models.Participant, error)
	GetBySubjectID(ctx context.Context, subjectID string) (*models.Participant, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByStudyGroup(ctx context.Context, group string) (int64, error)
}

// ParticipantWriter defines write operations for participants.
type ParticipantWriter interface {
	Save(ctx context.Context, p *models.Participant) (*models.Participant, error)
	Update(ctx context.Context, id int64, p *models.Participant) (*models.Participant, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ParticipantService handles participant CRUD, enrollment metrics and
// publishing of participant events.
type ParticipantService struct {
	reader      ParticipantReader
	writer      ParticipantWriter
	kafkaWriter KafkaWriter
}

// NewParticipantService creates a new ParticipantService. kafkaWriter may be
// nil, in which case no events are published.
func NewParticipantService(reader ParticipantReader, writer ParticipantWriter, kafkaWriter KafkaWriter) *ParticipantService {
	return &ParticipantService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all participants in primary key order.
func (s *ParticipantService) List(ctx context.Context) ([]models.Participant, error) {
	participants, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list participants", "error", err)
		return nil, err
	}
	logger.Log.Infow("listed participants", "count", len(participants))
	return participants, nil
}

// Get returns the participant with the given store id.
func (s *ParticipantService) Get(ctx context.Context, id int64) (*models.Participant, error) {
	p, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get participant", "id", id, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, ErrParticipantNotFound
	}
	return p, nil
}

// Create validates the input and stores a new participant.
func (s *ParticipantService) Create(ctx context.Context, userID int64, in models.ParticipantInput) (*models.Participant, error) {
	if err := validation.Struct(&in); err != nil {
		logger.Log.Warnw("participant creation validation error", "user_id", userID, "error", err)
		return nil, err
	}

	p, err := in.ToParticipant()
	if err != nil {
		return nil, &validation.Error{Field: "enrollment_date", Reason: err.Error()}
	}

	existing, err := s.reader.GetBySubjectID(ctx, p.SubjectID)
	if err != nil {
		logger.Log.Errorw("failed to check subject id", "subject_id", p.SubjectID, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("participant creation failed: subject id exists", "subject_id", p.SubjectID)
		return nil, ErrSubjectIDAlreadyExists
	}

	saved, err := s.writer.Save(ctx, p)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			logger.Log.Warnw("participant creation failed", "subject_id", p.SubjectID, "error", err)
			return nil, conflict
		}
		logger.Log.Errorw("failed to save participant", "subject_id", p.SubjectID, "error", err)
		return nil, err
	}

	logger.Log.Infow("participant created",
		"user_id", userID, "id", saved.ID, "subject_id", saved.SubjectID,
		"age", saved.Age, "study_group", saved.StudyGroup,
	)
	s.publishEvent(ctx, models.EventParticipantCreated, userID, saved)

	return saved, nil
}

// Update replaces every mutable field of an existing participant.
// ParticipantID in the input is ignored.
func (s *ParticipantService) Update(ctx context.Context, userID, id int64, in models.ParticipantInput) (*models.Participant, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.Struct(&in); err != nil {
		logger.Log.Warnw("participant update validation error", "id", id, "error", err)
		return nil, err
	}

	p, err := in.ToParticipant()
	if err != nil {
		return nil, &validation.Error{Field: "enrollment_date", Reason: err.Error()}
	}

	if p.SubjectID != current.SubjectID {
		other, err := s.reader.GetBySubjectID(ctx, p.SubjectID)
		if err != nil {
			logger.Log.Errorw("failed to check subject id", "subject_id", p.SubjectID, "error", err)
			return nil, err
		}
		if other != nil && other.ID != id {
			logger.Log.Warnw("participant update failed: subject id exists", "id", id, "subject_id", p.SubjectID)
			return nil, ErrSubjectIDAlreadyExists
		}
	}

	updated, err := s.writer.Update(ctx, id, p)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			logger.Log.Warnw("participant update failed", "id", id, "error", err)
			return nil, conflict
		}
		logger.Log.Errorw("failed to update participant", "id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrParticipantNotFound
	}

	logger.Log.Infow("participant updated",
		"user_id", userID, "id", id, "subject_id", updated.SubjectID,
		"status", updated.Status, "age", updated.Age,
	)
	s.publishEvent(ctx, models.EventParticipantUpdated, userID, updated)

	return updated, nil
}

// Delete permanently removes a participant.
func (s *ParticipantService) Delete(ctx context.Context, userID, id int64) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete participant", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrParticipantNotFound
	}

	logger.Log.Infow("participant deleted", "user_id", userID, "id", id, "subject_id", current.SubjectID)
	s.publishEvent(ctx, models.EventParticipantDeleted, userID, current)

	return nil
}

// Metrics returns the total participant count and its breakdown by status
// and by study group. Each figure is a separate query.
func (s *ParticipantService) Metrics(ctx context.Context) (*models.ParticipantMetrics, error) {
	var m models.ParticipantMetrics
	var err error

	if m.Total, err = s.reader.Count(ctx); err != nil {
		logger.Log.Errorw("failed to count participants", "error", err)
		return nil, err
	}

	byStatus := map[string]*int64{
		models.StatusActive:    &m.ByStatus.Active,
		models.StatusCompleted: &m.ByStatus.Completed,
		models.StatusWithdrawn: &m.ByStatus.Withdrawn,
	}
	for _, status := range models.Statuses {
		if *byStatus[status], err = s.reader.CountByStatus(ctx, status); err != nil {
			logger.Log.Errorw("failed to count participants by status", "status", status, "error", err)
			return nil, err
		}
	}

	byGroup := map[string]*int64{
		models.StudyGroupTreatment: &m.ByGroup.Treatment,
		models.StudyGroupControl:   &m.ByGroup.Control,
	}
	for _, group := range models.StudyGroups {
		if *byGroup[group], err = s.reader.CountByStudyGroup(ctx, group); err != nil {
			logger.Log.Errorw("failed to count participants by group", "study_group", group, "error", err)
			return nil, err
		}
	}

	logger.Log.Infow("participant metrics",
		"total", m.Total, "active", m.ByStatus.Active,
		"completed", m.ByStatus.Completed, "withdrawn", m.ByStatus.Withdrawn,
	)
	return &m, nil
}

// conflictError maps a unique violation to the matching service error.
func conflictError(err error) error {
	var uv *repositories.UniqueViolationError
	if !errors.As(err, &uv) {
		return nil
	}
	if uv.Constraint == repositories.ConstraintParticipantID {
		return ErrParticipantIDAlreadyExists
	}
	return ErrSubjectIDAlreadyExists
}

// publishEvent publishes a participant event to Kafka.
func (s *ParticipantService) publishEvent(ctx context.Context, eventType string, userID int64, p *models.Participant) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "id", p.ID)
		return
	}

	event := models.ParticipantEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ID:            p.ID,
		ParticipantID: p.ParticipantID,
		SubjectID:     p.SubjectID,
		UserID:        userID,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal participant event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(p.ParticipantID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish participant event", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Participant event published", "event_id", event.EventID, "type", eventType)
	}
}
