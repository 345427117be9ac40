package reporting

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type commRepoPG struct{ pool *pgxpool.Pool }

// NewCommunicationRepoPG returns a Postgres-backed communication log. Rows
// carry a serial position so ListByPatient preserves insertion order.
func NewCommunicationRepoPG(pool *pgxpool.Pool) CommunicationRepository {
	return &commRepoPG{pool: pool}
}

func (r *commRepoPG) Add(ctx context.Context, patientID string, entry CommunicationEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO communication_log (patient_id, logged_at, channel, note)
		VALUES ($1, $2, $3, $4)`,
		patientID, entry.Date, entry.Channel, entry.Note)
	if err != nil {
		return fmt.Errorf("add communication: %w", err)
	}
	return nil
}

func (r *commRepoPG) ListByPatient(ctx context.Context, patientID string) ([]CommunicationEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT logged_at, channel, note
		FROM communication_log WHERE patient_id = $1
		ORDER BY position ASC`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list communications: %w", err)
	}
	defer rows.Close()

	entries := []CommunicationEntry{}
	for rows.Next() {
		var e CommunicationEntry
		if err := rows.Scan(&e.Date, &e.Channel, &e.Note); err != nil {
			return nil, fmt.Errorf("scan communication: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate communications: %w", err)
	}
	return entries, nil
}
