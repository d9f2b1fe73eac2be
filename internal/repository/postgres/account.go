package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"

	"github.com/lib/pq"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (email, password_hash, name, role, push_token, completed_opportunities, average_rating, total_hours, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, a.Email, a.PasswordHash, a.Name, a.Role, a.PushToken,
		a.CompletedOpportunities, a.AverageRating, a.TotalHours, time.Now(), time.Now()).Scan(&a.ID)
	if isUniqueViolation(err) {
		return domain.ConflictError("account email already registered")
	}
	return err
}

func (r *accountRepository) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, email, password_hash, name, role, push_token, completed_opportunities, average_rating, total_hours, created_on, updated_on
	          FROM accounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.PushToken,
		&a.CompletedOpportunities, &a.AverageRating, &a.TotalHours, &a.CreatedOn, &a.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("account", id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a := &domain.Account{}
	query := `SELECT id, email, password_hash, name, role, push_token, completed_opportunities, average_rating, total_hours, created_on, updated_on
	          FROM accounts WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &a.Role, &a.PushToken,
		&a.CompletedOpportunities, &a.AverageRating, &a.TotalHours, &a.CreatedOn, &a.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) UpdatePushToken(ctx context.Context, id int32, token string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE accounts SET push_token=$1, updated_on=$2 WHERE id=$3`, token, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError("account", id)
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
