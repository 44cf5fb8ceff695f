// Package seed populates an empty database with demo users and participants.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/models"
	"github.com/sbilibin2017/gw-trial-participants/internal/repositories"
)

// DemoUser is an account created by the seeder.
type DemoUser struct {
	Email    string
	Password string
	FullName string
}

// Users are the demo accounts.
var Users = []DemoUser{
	{Email: "admin@trial.com", Password: "admin123", FullName: "Admin User"},
	{Email: "researcher@trial.com", Password: "research123", FullName: "Researcher Smith"},
}

// Participants are the demo participants. ParticipantID is generated on insert.
var Participants = []models.Participant{
	{SubjectID: "P001", StudyGroup: models.StudyGroupTreatment, EnrollmentDate: date(2024, 1, 15), Status: models.StatusActive, Age: 45, Gender: "M"},
	{SubjectID: "P002", StudyGroup: models.StudyGroupTreatment, EnrollmentDate: date(2024, 1, 20), Status: models.StatusActive, Age: 32, Gender: "F"},
	{SubjectID: "P003", StudyGroup: models.StudyGroupControl, EnrollmentDate: date(2024, 2, 1), Status: models.StatusCompleted, Age: 58, Gender: "M"},
	{SubjectID: "P004", StudyGroup: models.StudyGroupControl, EnrollmentDate: date(2024, 2, 10), Status: models.StatusActive, Age: 29, Gender: "F"},
	{SubjectID: "P005", StudyGroup: models.StudyGroupTreatment, EnrollmentDate: date(2024, 3, 5), Status: models.StatusWithdrawn, Age: 41, Gender: "Other"},
}

func date(y int, m time.Month, d int) models.Date {
	return models.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Result reports what a seeding run created.
type Result struct {
	Skipped      bool
	Users        int
	Participants int
}

// Run seeds the database in a single transaction. With reset both tables are
// truncated first; otherwise nothing is written when any data already exists.
func Run(ctx context.Context, db *sqlx.DB, reset bool) (*Result, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	txGetter := func(context.Context) *sqlx.Tx { return tx }
	userReader := repositories.NewUserReadRepository(db, txGetter)
	userWriter := repositories.NewUserWriteRepository(db, txGetter)
	participantReader := repositories.NewParticipantReadRepository(db, txGetter)
	participantWriter := repositories.NewParticipantWriteRepository(db, txGetter)

	if reset {
		if _, err := tx.ExecContext(ctx, `TRUNCATE TABLE participants, users RESTART IDENTITY`); err != nil {
			return nil, fmt.Errorf("truncate tables: %w", err)
		}
		logger.Log.Info("Tables truncated")
	} else {
		users, err := userReader.Count(ctx)
		if err != nil {
			return nil, err
		}
		participants, err := participantReader.Count(ctx)
		if err != nil {
			return nil, err
		}
		if users > 0 || participants > 0 {
			logger.Log.Infow("Database already contains data, skipping seed", "users", users, "participants", participants)
			return &Result{Skipped: true}, nil
		}
	}

	var res Result

	for _, u := range Users {
		existing, err := userReader.GetByEmail(ctx, u.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", u.Email, err)
		}
		fullName := u.FullName
		if _, err := userWriter.Save(ctx, u.Email, &fullName, string(hash)); err != nil {
			return nil, fmt.Errorf("create user %s: %w", u.Email, err)
		}
		res.Users++
	}

	for i := range Participants {
		p := Participants[i]
		existing, err := participantReader.GetBySubjectID(ctx, p.SubjectID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}
		if _, err := participantWriter.Save(ctx, &p); err != nil {
			return nil, fmt.Errorf("create participant %s: %w", p.SubjectID, err)
		}
		res.Participants++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	logger.Log.Infow("Database seeded", "users", res.Users, "participants", res.Participants)
	return &res, nil
}
