package consent

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns a Postgres-backed Repository. The consent table keeps one
// row per patient; Put upserts so last-write-wins matches the in-memory store.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) GetByPatient(ctx context.Context, patientID string) (*Consent, error) {
	var c Consent
	err := r.pool.QueryRow(ctx, `
		SELECT consent_id, patient_id, consent_date, method
		FROM consent WHERE patient_id = $1`, patientID).
		Scan(&c.ConsentID, &c.PatientID, &c.ConsentDate, &c.Method)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get consent: %w", err)
	}
	return &c, nil
}

func (r *repoPG) Put(ctx context.Context, c *Consent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO consent (consent_id, patient_id, consent_date, method)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (patient_id) DO UPDATE
		SET consent_id = EXCLUDED.consent_id,
		    consent_date = EXCLUDED.consent_date,
		    method = EXCLUDED.method`,
		c.ConsentID, c.PatientID, c.ConsentDate, c.Method)
	if err != nil {
		return fmt.Errorf("put consent: %w", err)
	}
	return nil
}
