package careplan

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the slice of pgxpool.Pool the repository needs. Tests substitute
// a fake to verify statement ordering without a live database.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repoPG struct{ db querier }

// NewRepoPG returns a Postgres-backed Repository. Plans live in care_plan
// (one row per patient, string fields as text[]); revisions in
// care_plan_revision, read back in ascending version order.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{db: pool}
}

func (r *repoPG) GetByPatient(ctx context.Context, patientID string) (*CarePlan, error) {
	var cp CarePlan
	err := r.db.QueryRow(ctx, `
		SELECT plan_id, patient_id, goals, needs, self_management_activities
		FROM care_plan WHERE patient_id = $1`, patientID).
		Scan(&cp.PlanID, &cp.PatientID, &cp.Goals, &cp.Needs, &cp.SelfManagementActivities)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get care plan: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT version, updated_at, updated_by, summary
		FROM care_plan_revision WHERE plan_id = $1
		ORDER BY version ASC`, cp.PlanID)
	if err != nil {
		return nil, fmt.Errorf("get revisions: %w", err)
	}
	defer rows.Close()

	cp.RevisionHistory = []CarePlanRevision{}
	for rows.Next() {
		var rev CarePlanRevision
		if err := rows.Scan(&rev.Version, &rev.UpdatedAt, &rev.UpdatedBy, &rev.Summary); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		cp.RevisionHistory = append(cp.RevisionHistory, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return &cp, nil
}

// Put replaces the patient's plan wholesale. The existing plan row is deleted
// first so ON DELETE CASCADE clears prior revision rows; a re-created plan
// therefore carries exactly the history in cp (empty on create), and a
// replacement under a fresh plan ID cannot trip the revision foreign key.
func (r *repoPG) Put(ctx context.Context, cp *CarePlan) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `DELETE FROM care_plan WHERE patient_id = $1`, cp.PatientID)
	if err != nil {
		return fmt.Errorf("clear care plan: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO care_plan (plan_id, patient_id, goals, needs, self_management_activities)
		VALUES ($1, $2, $3, $4, $5)`,
		cp.PlanID, cp.PatientID, cp.Goals, cp.Needs, cp.SelfManagementActivities)
	if err != nil {
		return fmt.Errorf("put care plan: %w", err)
	}

	for _, rev := range cp.RevisionHistory {
		_, err = tx.Exec(ctx, `
			INSERT INTO care_plan_revision (plan_id, version, updated_at, updated_by, summary)
			VALUES ($1, $2, $3, $4, $5)`,
			cp.PlanID, rev.Version, rev.UpdatedAt, rev.UpdatedBy, rev.Summary)
		if err != nil {
			return fmt.Errorf("put revision %d: %w", rev.Version, err)
		}
	}

	return tx.Commit(ctx)
}
