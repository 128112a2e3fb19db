package slot

import (
	"context"
	"fmt"
)

// SeedIfEmpty inserts the given slots only when the catalog table holds no
// rows. Runs once at startup; the catalog is read-only afterwards.
func (a *Accessor) SeedIfEmpty(ctx context.Context, slots []Slot) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM slots`).Scan(&count); err != nil {
		return fmt.Errorf("count slots: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, s := range slots {
		query := `INSERT INTO slots (start_time, end_time) VALUES ($1, $2)`
		if _, err := tx.ExecContext(ctx, query, s.StartTime, s.EndTime); err != nil {
			return fmt.Errorf("insert slot %s-%s: %w", s.StartTime, s.EndTime, err)
		}
	}

	return tx.Commit()
}

// List returns every catalog slot in insertion order.
func (a *Accessor) List(ctx context.Context) ([]Slot, error) {
	query := `SELECT id, start_time, end_time FROM slots ORDER BY id`
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var slots []Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.ID, &s.StartTime, &s.EndTime); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		slots = append(slots, s)
	}

	return slots, rows.Err()
}

func (a *Accessor) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM slots WHERE id = $1)`
	if err := a.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("query row context: %w", err)
	}
	return exists, nil
}
