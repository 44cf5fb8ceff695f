package models

// Participant event types.
const (
	EventParticipantCreated = "participant.created"
	EventParticipantUpdated = "participant.updated"
	EventParticipantDeleted = "participant.deleted"
)

// ParticipantEvent is published after a participant mutation.
type ParticipantEvent struct {
	EventID       string `json:"event_id"`
	Type          string `json:"type"`
	ID            int64  `json:"id"`
	ParticipantID string `json:"participant_id"`
	SubjectID     string `json:"subject_id"`
	UserID        int64  `json:"user_id"`
	Timestamp     int64  `json:"timestamp"`
}
