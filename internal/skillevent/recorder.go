// Package skillevent records the audit trail of stat changes applied to pets.
package skillevent

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/datagotchi/datagotchi/internal/database"
	"github.com/datagotchi/datagotchi/internal/pet"
)

//go:generate mockgen -source=recorder.go -destination=../mocks/skillevent/mock_recorder.go -package=mock_skillevent

// Event is an immutable record of a stat delta applied to a pet.
type Event struct {
	ID     int64  `db:"id" json:"id" yaml:"id"`
	PetID  string `db:"pet_id" json:"pet_id" yaml:"pet_id"`
	Source string `db:"source" json:"source" yaml:"source"`
	pet.Deltas `yaml:",inline"`
	// Payload is optional raw JSON describing what triggered the event.
	Payload   []byte    `db:"payload" json:"-" yaml:"-"`
	Comment   string    `db:"comment" json:"comment" yaml:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at" yaml:"created_at"`
}

// Recorder writes skill events together with the pet stats they change.
type Recorder interface {
	Record(ctx context.Context, event Event) (*Event, error)
	ListByPet(ctx context.Context, petID string, limit int) ([]Event, error)
	SumByPet(ctx context.Context, petID string) (pet.Deltas, error)
}

// DBRecorder implements Recorder using MySQL.
type DBRecorder struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBRecorder creates a new DBRecorder.
func NewDBRecorder(db *sqlx.DB) *DBRecorder {
	return &DBRecorder{db: db, now: time.Now}
}

// Record inserts the event and applies its deltas to the pet in one transaction.
func (r *DBRecorder) Record(ctx context.Context, event Event) (*Event, error) {
	event.CreatedAt = r.now().UTC()
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx,
			`INSERT INTO skill_events (pet_id, source, delta_social, delta_trivia, delta_science, delta_code, delta_trenches, delta_streak, payload, comment, created_at)
			VALUES (:pet_id, :source, :delta_social, :delta_trivia, :delta_science, :delta_code, :delta_trenches, :delta_streak, :payload, :comment, :created_at)`,
			event,
		)
		if err != nil {
			return fmt.Errorf("insert skill event: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("read skill event id: %w", err)
		}
		event.ID = id

		if event.Deltas.IsZero() {
			return nil
		}
		return pet.ApplyStatDeltaWith(ctx, tx, event.PetID, event.Deltas)
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ListByPet returns the latest events for a pet, newest first.
func (r *DBRecorder) ListByPet(ctx context.Context, petID string, limit int) ([]Event, error) {
	events := []Event{}
	if err := r.db.SelectContext(ctx, &events,
		`SELECT id, pet_id, source, delta_social, delta_trivia, delta_science, delta_code, delta_trenches, delta_streak, payload, comment, created_at
		FROM skill_events WHERE pet_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		petID, limit,
	); err != nil {
		return nil, fmt.Errorf("list skill events: %w", err)
	}
	return events, nil
}

// SumByPet totals every recorded delta for a pet, for reconciling against its stat columns.
func (r *DBRecorder) SumByPet(ctx context.Context, petID string) (pet.Deltas, error) {
	var total pet.Deltas
	if err := r.db.GetContext(ctx, &total,
		`SELECT
			COALESCE(SUM(delta_social), 0) AS delta_social,
			COALESCE(SUM(delta_trivia), 0) AS delta_trivia,
			COALESCE(SUM(delta_science), 0) AS delta_science,
			COALESCE(SUM(delta_code), 0) AS delta_code,
			COALESCE(SUM(delta_trenches), 0) AS delta_trenches,
			COALESCE(SUM(delta_streak), 0) AS delta_streak
		FROM skill_events WHERE pet_id = ?`,
		petID,
	); err != nil {
		return pet.Deltas{}, fmt.Errorf("sum skill events: %w", err)
	}
	return total, nil
}
