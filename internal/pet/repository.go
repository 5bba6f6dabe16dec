// Package pet stores user-owned pets and their skill stats.
package pet

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/pet/mock_repository.go -package=mock_pet

var (
	ErrNotFound      = errors.New("pet not found")
	ErrInvalidRarity = errors.New("invalid pet rarity")
	// ErrImmutableField is returned when an update touches a cosmetic field fixed at creation.
	ErrImmutableField = errors.New("pet field cannot be changed after creation")
)

const petColumns = "id, owner_wallet, name, rarity, variant, background, social, trivia, science, code, trenches, streak, created_at"

// updatableColumns are the columns Update accepts.
var updatableColumns = map[string]bool{
	"name":     true,
	"social":   true,
	"trivia":   true,
	"science":  true,
	"code":     true,
	"trenches": true,
	"streak":   true,
}

var immutableColumns = map[string]bool{
	"rarity":       true,
	"variant":      true,
	"background":   true,
	"owner_wallet": true,
	"id":           true,
	"created_at":   true,
}

// PetRepository defines operations on pets.
type PetRepository interface {
	FindByOwner(ctx context.Context, ownerWallet string) ([]Pet, error)
	FindByID(ctx context.Context, id string) (*Pet, error)
	Create(ctx context.Context, newPet NewPet) (*Pet, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Pet, error)
	Delete(ctx context.Context, id string) error
	ApplyStatDelta(ctx context.Context, id string, deltas Deltas) error
}

// DBPetRepository implements PetRepository using MySQL.
type DBPetRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewDBPetRepository creates a new DBPetRepository.
func NewDBPetRepository(db *sqlx.DB) *DBPetRepository {
	return &DBPetRepository{db: db, now: time.Now}
}

// FindByOwner returns the pets owned by ownerWallet, newest first.
func (r *DBPetRepository) FindByOwner(ctx context.Context, ownerWallet string) ([]Pet, error) {
	pets := []Pet{}
	if err := r.db.SelectContext(ctx, &pets,
		"SELECT "+petColumns+" FROM pets WHERE owner_wallet = ? ORDER BY created_at DESC",
		ownerWallet,
	); err != nil {
		return nil, fmt.Errorf("find pets by owner: %w", err)
	}
	return pets, nil
}

func (r *DBPetRepository) FindByID(ctx context.Context, id string) (*Pet, error) {
	var p Pet
	err := r.db.GetContext(ctx, &p, "SELECT "+petColumns+" FROM pets WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return &p, nil
}

// Create inserts a pet with zeroed stats and a generated id.
func (r *DBPetRepository) Create(ctx context.Context, newPet NewPet) (*Pet, error) {
	if newPet.Rarity == "" {
		newPet.Rarity = RarityCommon
	}
	if !newPet.Rarity.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRarity, newPet.Rarity)
	}

	p := Pet{
		ID:          uuid.NewString(),
		OwnerWallet: newPet.OwnerWallet,
		Name:        newPet.Name,
		Rarity:      newPet.Rarity,
		Variant:     newPet.Variant,
		Background:  newPet.Background,
		CreatedAt:   r.now().UTC(),
	}
	if _, err := r.db.NamedExecContext(ctx,
		`INSERT INTO pets (id, owner_wallet, name, rarity, variant, background, created_at)
		VALUES (:id, :owner_wallet, :name, :rarity, :variant, :background, :created_at)`,
		p,
	); err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}
	return &p, nil
}

// Update writes the given columns and returns the updated pet.
func (r *DBPetRepository) Update(ctx context.Context, id string, fields map[string]any) (*Pet, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	columns := make([]string, 0, len(fields))
	for column := range fields {
		if immutableColumns[column] {
			return nil, fmt.Errorf("%w: %s", ErrImmutableField, column)
		}
		if !updatableColumns[column] {
			return nil, fmt.Errorf("unknown pet column %q", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+1)
	for i, column := range columns {
		assignments[i] = column + " = ?"
		args = append(args, fields[column])
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx,
		"UPDATE pets SET "+strings.Join(assignments, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("update pet: %w", err)
	}
	if err := requireAffected(result); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *DBPetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return requireAffected(result)
}

// ApplyStatDelta adds deltas to the pet's stats, flooring each at zero.
func (r *DBPetRepository) ApplyStatDelta(ctx context.Context, id string, deltas Deltas) error {
	return ApplyStatDeltaWith(ctx, r.db, id, deltas)
}

// ApplyStatDeltaWith runs the stat update on exec, which may be a transaction.
// The update is one statement, so concurrent writers cannot lose increments.
func ApplyStatDeltaWith(ctx context.Context, exec sqlx.ExecerContext, id string, deltas Deltas) error {
	result, err := exec.ExecContext(ctx,
		`UPDATE pets SET
			social = GREATEST(social + ?, 0),
			trivia = GREATEST(trivia + ?, 0),
			science = GREATEST(science + ?, 0),
			code = GREATEST(code + ?, 0),
			trenches = GREATEST(trenches + ?, 0),
			streak = GREATEST(streak + ?, 0)
		WHERE id = ?`,
		deltas.Social, deltas.Trivia, deltas.Science, deltas.Code, deltas.Trenches, deltas.Streak, id,
	)
	if err != nil {
		return fmt.Errorf("apply stat delta: %w", err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
