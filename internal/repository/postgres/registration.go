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

type registrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) repository.RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (volunteer_id, opportunity_id, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, reg.VolunteerID, reg.OpportunityID, reg.Status, time.Now(), time.Now()).Scan(&reg.ID)
	if isUniqueViolation(err) {
		return domain.ConflictError("registration already exists for volunteer and opportunity")
	}
	return err
}

func (r *registrationRepository) GetByID(ctx context.Context, id int32) (*domain.Registration, error) {
	reg := &domain.Registration{}
	query := `SELECT id, volunteer_id, opportunity_id, status, created_on, updated_on FROM registrations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&reg.ID, &reg.VolunteerID, &reg.OpportunityID, &reg.Status, &reg.CreatedOn, &reg.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("registration", id)
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) GetByPair(ctx context.Context, volunteerID, opportunityID int32) (*domain.Registration, error) {
	reg := &domain.Registration{}
	query := `SELECT id, volunteer_id, opportunity_id, status, created_on, updated_on FROM registrations
	          WHERE volunteer_id = $1 AND opportunity_id = $2`
	err := r.db.QueryRowContext(ctx, query, volunteerID, opportunityID).Scan(&reg.ID, &reg.VolunteerID, &reg.OpportunityID, &reg.Status, &reg.CreatedOn, &reg.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) Exists(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM registrations WHERE volunteer_id = $1 AND opportunity_id = $2)`
	err := r.db.QueryRowContext(ctx, query, volunteerID, opportunityID).Scan(&exists)
	return exists, err
}

func (r *registrationRepository) ListByVolunteer(ctx context.Context, volunteerID int32) ([]domain.Registration, error) {
	query := `SELECT id, volunteer_id, opportunity_id, status, created_on, updated_on FROM registrations
	          WHERE volunteer_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, volunteerID)
}

func (r *registrationRepository) ListByOpportunity(ctx context.Context, opportunityID int32) ([]domain.Registration, error) {
	query := `SELECT id, volunteer_id, opportunity_id, status, created_on, updated_on FROM registrations
	          WHERE opportunity_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, opportunityID)
}

func (r *registrationRepository) list(ctx context.Context, query string, arg int32) ([]domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err := rows.Scan(&reg.ID, &reg.VolunteerID, &reg.OpportunityID, &reg.Status, &reg.CreatedOn, &reg.UpdatedOn); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) UpdateStatusIf(ctx context.Context, id int32, to domain.RegistrationStatus, from ...domain.RegistrationStatus) (bool, error) {
	ss := make([]string, len(from))
	for i, s := range from {
		ss[i] = string(s)
	}
	query := `UPDATE registrations SET status=$1, updated_on=$2 WHERE id=$3 AND status = ANY($4)`
	res, err := r.db.ExecContext(ctx, query, to, time.Now(), id, pq.Array(ss))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *registrationRepository) Delete(ctx context.Context, volunteerID, opportunityID int32) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM registrations WHERE volunteer_id=$1 AND opportunity_id=$2`, volunteerID, opportunityID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
