package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/leadpilot/leadpilot/internal/entity"
)

func newTrialRepoWithMock(t *testing.T) (*TrialRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTrialRepository(db), mock
}

func TestTrialCreateInserts(t *testing.T) {
	repo, mock := newTrialRepoWithMock(t)

	trial, err := entity.NewTrialSignup("Dana", "Reyes", "Reyes Roofing",
		"dana@reyesroofing.com", "555-0100", "roofing", "austin", "landing")
	assert.NoError(t, err)

	mock.ExpectExec(`INSERT INTO trial_signups`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), trial))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A unique violation on the email column becomes the typed duplicate error
// the handler maps to 409.
func TestTrialCreateDuplicateEmail(t *testing.T) {
	repo, mock := newTrialRepoWithMock(t)

	trial, err := entity.NewTrialSignup("Dana", "", "",
		"dana@reyesroofing.com", "555-0100", "", "", "")
	assert.NoError(t, err)

	mock.ExpectExec(`INSERT INTO trial_signups`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "trial_signups_email_key"})

	err = repo.Create(context.Background(), trial)

	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberUpsertIgnoresConflict(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := NewSubscriberRepository(db)

	sub, err := entity.NewSubscriber("new@example.com", "landing")
	assert.NoError(t, err)

	// The conflict path returns zero affected rows, not an error.
	mock.ExpectExec(`INSERT INTO subscribers .+ ON CONFLICT \(email\) DO NOTHING`).
		WithArgs(sub.ID, sub.Email, sub.Source, sub.Status, sub.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Upsert(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}
