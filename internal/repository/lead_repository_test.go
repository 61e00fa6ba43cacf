package repository

import (
	"context"
	"testing"
	"time"

	"fireforge/internal/domain"
	"fireforge/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLeadTestDB creates a new sqlx.DB instance and sqlmock for lead repository testing.
func setupLeadTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func sampleLead() *domain.Lead {
	return domain.NewLead(
		"01HYZLEAD0000000000000000A",
		"01HYZCORR0000000000000000A",
		"María Pérez",
		"Colmado El Sol",
		"maria@example.com",
		"18095551234",
		"ecommerce",
		"",
		"",
	)
}

func TestCreateLead(t *testing.T) {
	db, mock := setupLeadTestDB(t)
	defer db.Close()
	repo := NewSQLXLeadRepository(db)

	mock.ExpectExec("INSERT INTO leads").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateLead(context.Background(), sampleLead())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLeads_WithStatusFilter(t *testing.T) {
	db, mock := setupLeadTestDB(t)
	defer db.Close()
	repo := NewSQLXLeadRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "client_name", "company_name", "email", "whatsapp",
		"service_type", "plan", "notes", "correlation_id", "status", "created_at",
	}).AddRow(
		"01A", "María", "Colmado", "maria@example.com", "18095551234",
		"ecommerce", "N/A", "Sin notas", "01C", "nuevo", now,
	)

	mock.ExpectPrepare("SELECT (.+) FROM leads WHERE status =").
		ExpectQuery().
		WithArgs("nuevo").
		WillReturnRows(rows)

	leads, err := repo.ListLeads(context.Background(), "nuevo")

	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "01A", leads[0].ID)
	assert.Equal(t, domain.StatusNuevo, leads[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateLeadStatus_NotFound(t *testing.T) {
	db, mock := setupLeadTestDB(t)
	defer db.Close()
	repo := NewSQLXLeadRepository(db)

	mock.ExpectExec("UPDATE leads SET status =").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateLeadStatus(context.Background(), "missing", domain.StatusContactado)

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountLeadsByStatus(t *testing.T) {
	db, mock := setupLeadTestDB(t)
	defer db.Close()
	repo := NewSQLXLeadRepository(db)

	mock.ExpectPrepare(`SELECT COUNT\(\*\) FROM leads WHERE status =`).
		ExpectQuery().
		WithArgs("nuevo").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountLeadsByStatus(context.Background(), domain.StatusNuevo)

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadModelRoundTrip(t *testing.T) {
	lead := sampleLead()

	row := toLeadModel(lead)
	back := toDomainLead(row)

	assert.Equal(t, lead, back)
	assert.IsType(t, &models.Lead{}, row)
}
