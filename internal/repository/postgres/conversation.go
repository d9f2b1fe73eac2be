package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type conversationRepository struct {
	db *sql.DB
}

func NewConversationRepository(db *sql.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, c *domain.Conversation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO conversations (opportunity_id, name, created_by, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	err = tx.QueryRowContext(ctx, query, c.OpportunityID, c.Name, c.CreatedBy, time.Now()).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.ConflictError("group chat already exists for opportunity")
	}
	if err != nil {
		return err
	}

	for _, accountID := range c.Participants {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO conversation_participants (conversation_id, account_id, joined_on) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			c.ID, accountID, time.Now())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *conversationRepository) GetByOpportunity(ctx context.Context, opportunityID int32) (*domain.Conversation, error) {
	c := &domain.Conversation{}
	query := `SELECT id, opportunity_id, name, created_by, created_on FROM conversations WHERE opportunity_id = $1`
	err := r.db.QueryRowContext(ctx, query, opportunityID).Scan(&c.ID, &c.OpportunityID, &c.Name, &c.CreatedBy, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Participants, err = r.ListParticipants(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *conversationRepository) AddParticipant(ctx context.Context, conversationID, accountID int32) error {
	// Single atomic statement; re-adding an existing member is a no-op
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversation_participants (conversation_id, account_id, joined_on) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		conversationID, accountID, time.Now())
	return err
}

func (r *conversationRepository) RemoveParticipant(ctx context.Context, conversationID, accountID int32) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM conversation_participants WHERE conversation_id=$1 AND account_id=$2`,
		conversationID, accountID)
	return err
}

func (r *conversationRepository) ListParticipants(ctx context.Context, conversationID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT account_id FROM conversation_participants WHERE conversation_id = $1 ORDER BY joined_on, account_id`,
		conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
