package postgresql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsgrid/workforce-backend-go/internal/domain/application"
)

type stubRow struct {
	scanFn func(dest ...any) error
}

func (s stubRow) Scan(dest ...any) error {
	return s.scanFn(dest...)
}

var applicationColumnNames = []string{
	"id", "job_id", "applicant_name", "email", "phone", "resume_url",
	"status", "notes", "created_at", "updated_at", "title", "department",
}

func TestScanApplication_NoRows(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...any) error {
		return pgx.ErrNoRows
	}}

	_, err := scanApplication(row)
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}

func TestScanApplication_InvalidNotes(t *testing.T) {
	t.Parallel()

	row := stubRow{scanFn: func(dest ...any) error {
		*(dest[7].(*[]byte)) = []byte("not json")
		return nil
	}}

	_, err := scanApplication(row)
	assert.Error(t, err)
}

func TestApplicationRepository_GetByID(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicationRepository(mock)

	now := time.Now().UTC()
	title := "Backend Engineer"
	department := "Engineering"
	notes := []byte(`[{"author":"hr-1","body":"strong CV","created_at":"2025-06-01T10:00:00Z"}]`)

	rows := pgxmock.NewRows(applicationColumnNames).
		AddRow("app-1", "job-1", "Jane Doe", "jane@example.com", nil, nil,
			string(application.StatusReviewing), notes, now, now, &title, &department)

	mock.ExpectQuery(`SELECT(.|\n)*FROM applications a(.|\n)*WHERE a\.id = \$1`).
		WithArgs("app-1").
		WillReturnRows(rows)

	app, err := repo.GetByID(context.Background(), "app-1")
	require.NoError(t, err)

	assert.Equal(t, "app-1", app.ID)
	assert.Equal(t, application.StatusReviewing, app.Status)
	require.Len(t, app.Notes, 1)
	assert.Equal(t, "strong CV", app.Notes[0].Body)
	require.NotNil(t, app.JobTitle)
	assert.Equal(t, title, *app.JobTitle)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicationRepository(mock)

	mock.ExpectQuery(`SELECT(.|\n)*FROM applications a`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, application.ErrApplicationNotFound)
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicationRepository(mock)

	now := time.Now().UTC()
	title := "Backend Engineer"
	department := "Engineering"

	rows := pgxmock.NewRows(applicationColumnNames).
		AddRow("app-1", "job-1", "Jane Doe", "jane@example.com", nil, nil,
			string(application.StatusHired), []byte(`[]`), now, now, &title, &department)

	mock.ExpectQuery(`UPDATE applications(.|\n)*SET status = \$2`).
		WithArgs("app-1", application.StatusHired).
		WillReturnRows(rows)

	app, err := repo.UpdateStatus(context.Background(), "app-1", application.StatusHired)
	require.NoError(t, err)
	assert.Equal(t, application.StatusHired, app.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_List_StatusFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicationRepository(mock)

	now := time.Now().UTC()
	title := "Backend Engineer"
	department := "Engineering"
	status := application.StatusPending

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applications a WHERE 1=1 AND a\.status = \$1`).
		WithArgs(status).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	rows := pgxmock.NewRows(applicationColumnNames).
		AddRow("app-1", "job-1", "Jane Doe", "jane@example.com", nil, nil,
			string(status), []byte(`[]`), now, now, &title, &department)

	mock.ExpectQuery(`SELECT(.|\n)*FROM applications a(.|\n)*ORDER BY a\.created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(status, 20, 0).
		WillReturnRows(rows)

	apps, total, err := repo.List(context.Background(), application.ApplicationFilter{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-1", apps[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_List_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewApplicationRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applications a`).
		WillReturnError(errors.New("connection refused"))

	_, _, err = repo.List(context.Background(), application.ApplicationFilter{})
	assert.Error(t, err)
}
