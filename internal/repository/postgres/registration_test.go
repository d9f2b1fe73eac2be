package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"volunteerhub-backend/internal/domain"
)

var pqUniqueViolation = pq.Error{Code: "23505"}

func TestRegistrationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reg := &domain.Registration{VolunteerID: 1, OpportunityID: 5, Status: domain.RegistrationStatusPending}

		mock.ExpectQuery("INSERT INTO registrations").
			WithArgs(reg.VolunteerID, reg.OpportunityID, reg.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		err := repo.Create(ctx, reg)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), reg.ID)
	})

	t.Run("Duplicate Pair Maps To Conflict", func(t *testing.T) {
		reg := &domain.Registration{VolunteerID: 1, OpportunityID: 5, Status: domain.RegistrationStatusPending}

		mock.ExpectQuery("INSERT INTO registrations").
			WithArgs(reg.VolunteerID, reg.OpportunityID, reg.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pqUniqueViolation)

		err := repo.Create(ctx, reg)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestRegistrationRepository_UpdateStatusIf(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	t.Run("Guard Matches", func(t *testing.T) {
		mock.ExpectExec("UPDATE registrations SET status").
			WithArgs(domain.RegistrationStatusAccepted, sqlmock.AnyArg(), int32(9), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.UpdateStatusIf(ctx, 9, domain.RegistrationStatusAccepted, domain.RegistrationStatusPending)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Guard Misses", func(t *testing.T) {
		mock.ExpectExec("UPDATE registrations SET status").
			WithArgs(domain.RegistrationStatusAccepted, sqlmock.AnyArg(), int32(9), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.UpdateStatusIf(ctx, 9, domain.RegistrationStatusAccepted, domain.RegistrationStatusPending)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRegistrationRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	t.Run("Deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM registrations").
			WithArgs(int32(1), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(ctx, 1, 5)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Nothing To Delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM registrations").
			WithArgs(int32(1), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(ctx, 1, 5)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRegistrationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRegistrationRepository(db)
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, volunteer_id, opportunity_id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "volunteer_id", "opportunity_id", "status", "created_on", "updated_on"}))

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
