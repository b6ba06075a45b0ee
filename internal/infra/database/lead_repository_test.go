package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/leadpilot/leadpilot/internal/entity"
)

func newLeadRepoWithMock(t *testing.T) (*LeadRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewLeadRepository(db), mock
}

func TestLeadCreateTransaction(t *testing.T) {
	repo, mock := newLeadRepoWithMock(t)

	lead := &entity.Lead{
		ID:          "lead-1",
		CapturePage: "roofing-austin",
		Name:        "Sam Walker",
		Phone:       "555-0101",
		Status:      entity.LeadStatusNew,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	activity := entity.NewLeadActivity(lead.ID, entity.ActivityActionCreated, map[string]any{
		"capture_page": "roofing-austin",
	})

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO leads`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE capture_pages SET submissions = submissions \+ 1`).
		WithArgs("roofing-austin").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO lead_activities`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), lead, activity)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A lead without a capture page skips the submission counter entirely.
func TestLeadCreateWithoutPage(t *testing.T) {
	repo, mock := newLeadRepoWithMock(t)

	lead := &entity.Lead{
		ID:        "lead-2",
		Name:      "Sam Walker",
		Phone:     "555-0101",
		Status:    entity.LeadStatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO leads`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO lead_activities`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	activity := entity.NewLeadActivity(lead.ID, entity.ActivityActionCreated, nil)
	err := repo.Create(context.Background(), lead, activity)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadCreateRollsBackOnActivityFailure(t *testing.T) {
	repo, mock := newLeadRepoWithMock(t)

	lead := &entity.Lead{
		ID:        "lead-3",
		Name:      "Sam Walker",
		Phone:     "555-0101",
		Status:    entity.LeadStatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO leads`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO lead_activities`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	activity := entity.NewLeadActivity(lead.ID, entity.ActivityActionCreated, nil)
	err := repo.Create(context.Background(), lead, activity)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadUpdateSetsOnlySuppliedFields(t *testing.T) {
	repo, mock := newLeadRepoWithMock(t)

	status := entity.LeadStatusContacted
	update := entity.LeadUpdate{Status: &status}
	activity := entity.NewLeadActivity("lead-1", entity.ActivityActionStatusUpdated,
		map[string]any{"status": status})

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE leads SET updated_at = NOW\(\), status = \$1 WHERE id = \$2`).
		WithArgs(status, "lead-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO lead_activities`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), "lead-1", update, activity)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadUpdateUnknownID(t *testing.T) {
	repo, mock := newLeadRepoWithMock(t)

	status := entity.LeadStatusBooked
	update := entity.LeadUpdate{Status: &status}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE leads SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), "missing", update, nil)

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadListFiltersByClientAndStatus(t *testing.T) {
	repo, mock := newLeadRepoWithMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "client_id", "capture_page", "name", "phone", "email", "address",
		"city", "postal_code", "service", "message", "source", "utm_source",
		"utm_medium", "utm_campaign", "status", "contacted_at", "booked_at",
		"job_value", "notes", "created_at", "updated_at",
	}).AddRow("l1", "client-1", "roofing-austin", "Sam", "555-0101", "", "",
		"", "", "", "", "", "", "", "", entity.LeadStatusBooked, nil, nil,
		nil, "", now, now)

	mock.ExpectQuery(`SELECT .+ FROM leads WHERE client_id = \$1 AND status = \$2 ORDER BY created_at DESC LIMIT \$3`).
		WithArgs("client-1", entity.LeadStatusBooked, 5).
		WillReturnRows(rows)

	out, err := repo.List(context.Background(), entity.LeadFilter{
		ClientID: "client-1",
		Status:   entity.LeadStatusBooked,
		Limit:    5,
	})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "client-1", out[0].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
