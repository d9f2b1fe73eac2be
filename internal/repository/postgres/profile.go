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

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.VolunteerProfile) error {
	query := `INSERT INTO volunteer_profiles (account_id, name, bio, skills, interests, is_blood_donor, blood_group, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.AccountID, p.Name, p.Bio,
		pq.Array(p.Skills), pq.Array(p.Interests), p.IsBloodDonor, p.BloodGroup, time.Now(), time.Now()).Scan(&p.ID)
	if isUniqueViolation(err) {
		return domain.ConflictError("profile already exists for account")
	}
	return err
}

func (r *profileRepository) GetByAccount(ctx context.Context, accountID int32) (*domain.VolunteerProfile, error) {
	p := &domain.VolunteerProfile{}
	query := `SELECT id, account_id, name, bio, skills, interests, is_blood_donor, blood_group, created_on, updated_on
	          FROM volunteer_profiles WHERE account_id = $1`
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&p.ID, &p.AccountID, &p.Name, &p.Bio,
		pq.Array(&p.Skills), pq.Array(&p.Interests), &p.IsBloodDonor, &p.BloodGroup, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("volunteer profile", accountID)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) List(ctx context.Context) ([]domain.VolunteerProfile, error) {
	query := `SELECT id, account_id, name, bio, skills, interests, is_blood_donor, blood_group, created_on, updated_on
	          FROM volunteer_profiles ORDER BY account_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.VolunteerProfile
	for rows.Next() {
		var p domain.VolunteerProfile
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Bio,
			pq.Array(&p.Skills), pq.Array(&p.Interests), &p.IsBloodDonor, &p.BloodGroup, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepository) Update(ctx context.Context, p *domain.VolunteerProfile) error {
	query := `UPDATE volunteer_profiles SET name=$1, bio=$2, skills=$3, interests=$4, is_blood_donor=$5, blood_group=$6, updated_on=$7
	          WHERE account_id=$8`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.Bio, pq.Array(p.Skills), pq.Array(p.Interests),
		p.IsBloodDonor, p.BloodGroup, time.Now(), p.AccountID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError("volunteer profile", p.AccountID)
	}
	return nil
}
