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

type opportunityRepository struct {
	db *sql.DB
}

func NewOpportunityRepository(db *sql.DB) repository.OpportunityRepository {
	return &opportunityRepository{db: db}
}

const opportunityColumns = `id, organization_id, title, description, purpose, role, details, longitude, latitude, address, skills_required, tags, kind, status, flagged, flag_reason, created_on, updated_on`

func (r *opportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var lon, lat sql.NullFloat64
	if o.Location != nil {
		lon = sql.NullFloat64{Float64: o.Location.Longitude, Valid: true}
		lat = sql.NullFloat64{Float64: o.Location.Latitude, Valid: true}
	}

	query := `INSERT INTO opportunities (organization_id, title, description, purpose, role, details, longitude, latitude, address, skills_required, tags, kind, status, flagged, flag_reason, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17) RETURNING id`
	err = tx.QueryRowContext(ctx, query, o.OrganizationID, o.Title, o.Description, o.Purpose, o.Role, o.Details,
		lon, lat, o.Address, pq.Array(o.SkillsRequired), pq.Array(o.Tags), o.Kind, o.Status, o.Flagged, o.FlagReason,
		time.Now(), time.Now()).Scan(&o.ID)
	if err != nil {
		return err
	}

	for i, slot := range o.Slots {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO opportunity_slots (opportunity_id, slot_date, start_time, end_time, position) VALUES ($1, $2, $3, $4, $5)`,
			o.ID, slot.Date, slot.StartTime, slot.EndTime, i)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *opportunityRepository) GetByID(ctx context.Context, id int32) (*domain.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	o, err := scanOpportunity(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundError("opportunity", id)
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadSlots(ctx, []*domain.Opportunity{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *opportunityRepository) ListActive(ctx context.Context, statuses []domain.OpportunityStatus, now time.Time) ([]domain.Opportunity, error) {
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	query := `SELECT ` + opportunityColumns + ` FROM opportunities o
	          WHERE o.status = ANY($1)
	            AND EXISTS (SELECT 1 FROM opportunity_slots s WHERE s.opportunity_id = o.id AND s.slot_date > $2)
	          ORDER BY o.id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ss), now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var opps []domain.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		opps = append(opps, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadSlots(ctx, slicePtrs(opps)); err != nil {
		return nil, err
	}
	return opps, nil
}

func (r *opportunityRepository) ListByOrganization(ctx context.Context, orgID int32, page, pageSize int32) ([]domain.Opportunity, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM opportunities WHERE organization_id = $1`, orgID).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + opportunityColumns + ` FROM opportunities WHERE organization_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, orgID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var opps []domain.Opportunity
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, 0, err
		}
		opps = append(opps, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadSlots(ctx, slicePtrs(opps)); err != nil {
		return nil, 0, err
	}
	return opps, count, nil
}

func (r *opportunityRepository) UpdateStatus(ctx context.Context, id int32, status domain.OpportunityStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE opportunities SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError("opportunity", id)
	}
	return nil
}

func (r *opportunityRepository) MarkStarted(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE opportunities o SET status=$1, updated_on=$2
	          WHERE o.status = $3
	            AND EXISTS (SELECT 1 FROM opportunity_slots s WHERE s.opportunity_id = o.id AND s.slot_date <= $4)`
	res, err := r.db.ExecContext(ctx, query, domain.OpportunityStatusStarted, time.Now(), domain.OpportunityStatusUpcoming, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *opportunityRepository) MarkEnded(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE opportunities o SET status=$1, updated_on=$2
	          WHERE o.status = $3
	            AND NOT EXISTS (SELECT 1 FROM opportunity_slots s WHERE s.opportunity_id = o.id AND s.slot_date >= $4)`
	res, err := r.db.ExecContext(ctx, query, domain.OpportunityStatusEnded, time.Now(), domain.OpportunityStatusStarted, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// slicePtrs must only be called on a slice that will no longer grow
func slicePtrs(opps []domain.Opportunity) []*domain.Opportunity {
	ptrs := make([]*domain.Opportunity, len(opps))
	for i := range opps {
		ptrs[i] = &opps[i]
	}
	return ptrs
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOpportunity(row rowScanner) (*domain.Opportunity, error) {
	o := &domain.Opportunity{}
	var lon, lat sql.NullFloat64
	err := row.Scan(&o.ID, &o.OrganizationID, &o.Title, &o.Description, &o.Purpose, &o.Role, &o.Details,
		&lon, &lat, &o.Address, pq.Array(&o.SkillsRequired), pq.Array(&o.Tags), &o.Kind, &o.Status,
		&o.Flagged, &o.FlagReason, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if lon.Valid && lat.Valid {
		o.Location = &domain.GeoPoint{Longitude: lon.Float64, Latitude: lat.Float64}
	}
	return o, nil
}

// loadSlots fetches the ordered slot lists for a batch of opportunities
func (r *opportunityRepository) loadSlots(ctx context.Context, opps []*domain.Opportunity) error {
	if len(opps) == 0 {
		return nil
	}
	byID := make(map[int32]*domain.Opportunity, len(opps))
	ids := make([]int32, 0, len(opps))
	for _, o := range opps {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query := `SELECT opportunity_id, slot_date, start_time, end_time FROM opportunity_slots
	          WHERE opportunity_id = ANY($1) ORDER BY opportunity_id, position`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var oppID int32
		var slot domain.TimeSlot
		if err := rows.Scan(&oppID, &slot.Date, &slot.StartTime, &slot.EndTime); err != nil {
			return err
		}
		if o, ok := byID[oppID]; ok {
			o.Slots = append(o.Slots, slot)
		}
	}
	return rows.Err()
}
