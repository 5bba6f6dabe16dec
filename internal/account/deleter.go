// Package account removes a wallet's profile together with everything it owns.
package account

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/datagotchi/datagotchi/internal/database"
)

//go:generate mockgen -source=deleter.go -destination=../mocks/account/mock_deleter.go -package=mock_account

const ownedPets = "SELECT id FROM pets WHERE owner_wallet = ?"

type deleteStep struct {
	table string
	query string
}

// deleteSteps run in order; children go before the rows they reference.
var deleteSteps = []deleteStep{
	{table: "pet_items", query: "DELETE FROM pet_items WHERE pet_id IN (" + ownedPets + ")"},
	{table: "pet_achievements", query: "DELETE FROM pet_achievements WHERE pet_id IN (" + ownedPets + ")"},
	{table: "skill_events", query: "DELETE FROM skill_events WHERE pet_id IN (" + ownedPets + ")"},
	{table: "datainstance_knowledge", query: "DELETE FROM datainstance_knowledge WHERE datainstance_id IN (SELECT id FROM datainstances WHERE pet_id IN (" + ownedPets + "))"},
	{table: "datainstances", query: "DELETE FROM datainstances WHERE pet_id IN (" + ownedPets + ")"},
	{table: "pets", query: "DELETE FROM pets WHERE owner_wallet = ?"},
	{table: "language_progress", query: "DELETE FROM language_progress WHERE wallet_address = ?"},
	{table: "profiles", query: "DELETE FROM profiles WHERE wallet_address = ?"},
}

// StepResult is the number of rows removed from one table.
type StepResult struct {
	Table string `yaml:"table"`
	Rows  int64  `yaml:"rows"`
}

// Deleter removes an account and its owned rows.
type Deleter interface {
	Delete(ctx context.Context, walletAddress string) ([]StepResult, error)
}

// DBDeleter implements Deleter using MySQL.
type DBDeleter struct {
	db *sqlx.DB
}

// NewDBDeleter creates a new DBDeleter.
func NewDBDeleter(db *sqlx.DB) *DBDeleter {
	return &DBDeleter{db: db}
}

// Delete runs every step in one transaction, so a failed step leaves nothing deleted.
func (d *DBDeleter) Delete(ctx context.Context, walletAddress string) ([]StepResult, error) {
	results := make([]StepResult, 0, len(deleteSteps))
	err := database.RunInTx(ctx, d.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, step := range deleteSteps {
			result, err := tx.ExecContext(ctx, step.query, walletAddress)
			if err != nil {
				return fmt.Errorf("delete %s: %w", step.table, err)
			}
			rows, err := result.RowsAffected()
			if err != nil {
				return fmt.Errorf("read affected rows for %s: %w", step.table, err)
			}
			results = append(results, StepResult{Table: step.table, Rows: rows})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
