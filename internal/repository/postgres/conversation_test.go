package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestConversationRepository_GetByOpportunity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewConversationRepository(db)
	ctx := context.Background()

	t.Run("Missing Conversation Returns Nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, opportunity_id, name, created_by, created_on FROM conversations").
			WithArgs(int32(5)).
			WillReturnError(sql.ErrNoRows)

		conv, err := repo.GetByOpportunity(ctx, 5)
		assert.NoError(t, err)
		assert.Nil(t, conv)
	})

	t.Run("Loads Participants", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, opportunity_id, name, created_by, created_on FROM conversations").
			WithArgs(int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "opportunity_id", "name", "created_by", "created_on"}).
				AddRow(3, 5, "Beach Cleanup", 2, "2026-08-01"))
		mock.ExpectQuery("SELECT account_id FROM conversation_participants").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"account_id"}).AddRow(1).AddRow(4))

		conv, err := repo.GetByOpportunity(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), conv.ID)
		assert.Equal(t, []int32{1, 4}, conv.Participants)
	})
}

func TestConversationRepository_AddParticipant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewConversationRepository(db)
	ctx := context.Background()

	// ON CONFLICT DO NOTHING makes re-adding idempotent; zero rows affected
	// is still a success
	mock.ExpectExec("INSERT INTO conversation_participants").
		WithArgs(int32(3), int32(1), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.AddParticipant(ctx, 3, 1)
	assert.NoError(t, err)
}

func TestConversationRepository_RemoveParticipant(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewConversationRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM conversation_participants").
		WithArgs(int32(3), int32(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.RemoveParticipant(ctx, 3, 1)
	assert.NoError(t, err)
}
