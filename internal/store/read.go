package store

import (
	"context"
	"fmt"
	"time"
)

// ListCalculations returns the most recent history records, newest first,
// up to limit. A limit <= 0 returns everything.
//
// Returns an empty slice (not nil) if the history is empty.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]Calculation, error) {
	query := `
		SELECT id, created_at, command, input, output, detail
		FROM calculations
		ORDER BY created_at DESC, id COLLATE BINARY ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	calcs := []Calculation{}
	for rows.Next() {
		var calc Calculation
		var createdAt string
		if err := rows.Scan(&calc.ID, &createdAt, &calc.Command, &calc.Input, &calc.Output, &calc.Detail); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		calc.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		calcs = append(calcs, calc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calculations: %w", err)
	}

	return calcs, nil
}
