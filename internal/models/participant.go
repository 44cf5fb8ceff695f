package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-trial-participants/internal/validation"
)

// Study groups.
const (
	StudyGroupTreatment = "treatment"
	StudyGroupControl   = "control"
)

// Participant statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusWithdrawn = "withdrawn"
)

// Genders.
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "Other"
)

// Statuses lists every participant status in reporting order.
var Statuses = []string{StatusActive, StatusCompleted, StatusWithdrawn}

// StudyGroups lists every study group in reporting order.
var StudyGroups = []string{StudyGroupTreatment, StudyGroupControl}

// DateLayout is the wire and storage layout of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day. It is encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date in UTC.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Participant represents a clinical-trial participant record in the database
type Participant struct {
	ID             int64     `json:"id" db:"id"`
	ParticipantID  string    `json:"participant_id" db:"participant_id"`
	SubjectID      string    `json:"subject_id" db:"subject_id"`
	StudyGroup     string    `json:"study_group" db:"study_group"`
	EnrollmentDate Date      `json:"enrollment_date" db:"enrollment_date"`
	Status         string    `json:"status" db:"status"`
	Age            int       `json:"age" db:"age"`
	Gender         string    `json:"gender" db:"gender"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// ParticipantInput is the create and update payload. Update is a full
// replacement: every required field must be present again.
type ParticipantInput struct {
	ParticipantID  *string `json:"participant_id" validate:"omitempty,max=36"`
	SubjectID      *string `json:"subject_id" validate:"required,max=50"`
	StudyGroup     *string `json:"study_group" validate:"required,oneof=treatment control"`
	EnrollmentDate *string `json:"enrollment_date" validate:"required,datetime=2006-01-02"`
	Status         *string `json:"status" validate:"omitempty,oneof=active completed withdrawn"`
	Age            *int    `json:"age" validate:"required,gte=0,lte=150"`
	Gender         *string `json:"gender" validate:"required,oneof=M F Other"`
}

// UnmarshalJSON rejects an explicit "status": null. A missing status still
// defaults to active.
func (in *ParticipantInput) UnmarshalJSON(b []byte) error {
	type plain ParticipantInput
	var raw struct {
		*plain
		Status json.RawMessage `json:"status"`
	}
	raw.plain = (*plain)(in)
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	in.Status = nil
	if raw.Status == nil {
		return nil
	}
	if string(raw.Status) == "null" {
		return &validation.Error{Field: "status", Reason: "must be one of: active, completed, withdrawn"}
	}

	var status string
	if err := json.Unmarshal(raw.Status, &status); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			typeErr.Field = "status"
		}
		return err
	}
	in.Status = &status
	return nil
}

// ToParticipant converts a validated input into a Participant. Status
// defaults to active; ParticipantID stays empty when not supplied.
func (in ParticipantInput) ToParticipant() (*Participant, error) {
	date, err := ParseDate(deref(in.EnrollmentDate))
	if err != nil {
		return nil, err
	}

	status := StatusActive
	if in.Status != nil {
		status = *in.Status
	}

	var age int
	if in.Age != nil {
		age = *in.Age
	}

	return &Participant{
		ParticipantID:  deref(in.ParticipantID),
		SubjectID:      deref(in.SubjectID),
		StudyGroup:     deref(in.StudyGroup),
		EnrollmentDate: date,
		Status:         status,
		Age:            age,
		Gender:         deref(in.Gender),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
