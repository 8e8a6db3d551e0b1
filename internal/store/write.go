package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Calculation is one history record: a finished CLI computation.
type Calculation struct {
	// ID uniquely identifies the record (UUID v4).
	ID string `json:"id"`

	// CreatedAt is when the calculation ran.
	CreatedAt time.Time `json:"created_at"`

	// Command names the CLI command ("convert", "mag", "model", "run").
	Command string `json:"command"`

	// Input is the rendered input quantity, e.g. "1e-13 Jy at 1 micron".
	Input string `json:"input"`

	// Output is the rendered result, e.g. "41.43 mag (AB)".
	Output string `json:"output"`

	// Detail holds the exact parameters as a JSON blob.
	Detail string `json:"detail,omitempty"`
}

// NewCalculation creates a record with a fresh ID and timestamp.
func NewCalculation(command, input, output, detail string) Calculation {
	if detail == "" {
		detail = "{}"
	}
	return Calculation{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Command:   command,
		Input:     input,
		Output:    output,
		Detail:    detail,
	}
}

// WriteCalculation inserts a history record.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored.
func (s *Store) WriteCalculation(ctx context.Context, calc Calculation) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations
		(id, created_at, command, input, output, detail)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		calc.ID,
		calc.CreatedAt.Format(time.RFC3339Nano),
		calc.Command,
		calc.Input,
		calc.Output,
		calc.Detail,
	)
	if err != nil {
		return fmt.Errorf("write calculation: %w", err)
	}

	return nil
}
