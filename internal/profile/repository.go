// Package profile stores wallet-keyed user profiles and their points balance.
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/profile/mock_repository.go -package=mock_profile

var (
	ErrNotFound = errors.New("profile not found")
	// ErrStudioUnavailable means the studio is already unlocked or the balance is too low.
	ErrStudioUnavailable = errors.New("studio cannot be unlocked")
)

// StudioUnlockCost is the number of points spent to unlock the studio.
const StudioUnlockCost = 1000

// ProfileRepository defines operations on user profiles.
type ProfileRepository interface {
	Upsert(ctx context.Context, walletAddress, username string) (*User, error)
	FindByWallet(ctx context.Context, walletAddress string) (*User, error)
	AddPoints(ctx context.Context, walletAddress string, delta int64) error
	UpdateUsername(ctx context.Context, walletAddress, username string) error
	UnlockStudio(ctx context.Context, walletAddress string) error
}

// DBProfileRepository implements ProfileRepository using MySQL.
type DBProfileRepository struct {
	db *sqlx.DB
}

// NewDBProfileRepository creates a new DBProfileRepository.
func NewDBProfileRepository(db *sqlx.DB) *DBProfileRepository {
	return &DBProfileRepository{db: db}
}

// Upsert creates the profile on first login. An empty username keeps the stored one.
func (r *DBProfileRepository) Upsert(ctx context.Context, walletAddress, username string) (*User, error) {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (wallet_address, username) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE username = IF(VALUES(username) = '', username, VALUES(username))`,
		walletAddress, username,
	); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}
	return r.FindByWallet(ctx, walletAddress)
}

// FindByWallet returns the profile for walletAddress or ErrNotFound.
func (r *DBProfileRepository) FindByWallet(ctx context.Context, walletAddress string) (*User, error) {
	var user User
	err := r.db.GetContext(ctx, &user,
		"SELECT wallet_address, username, points, studio_unlocked, created_at FROM profiles WHERE wallet_address = ?",
		walletAddress,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &user, nil
}

// AddPoints applies delta to the balance in a single statement, flooring at zero.
func (r *DBProfileRepository) AddPoints(ctx context.Context, walletAddress string, delta int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE profiles SET points = GREATEST(points + ?, 0) WHERE wallet_address = ?",
		delta, walletAddress,
	)
	if err != nil {
		return fmt.Errorf("add points: %w", err)
	}
	return requireAffected(result)
}

func (r *DBProfileRepository) UpdateUsername(ctx context.Context, walletAddress, username string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE profiles SET username = ? WHERE wallet_address = ?",
		username, walletAddress,
	)
	if err != nil {
		return fmt.Errorf("update username: %w", err)
	}
	return requireAffected(result)
}

// UnlockStudio spends StudioUnlockCost points and sets the studio flag.
func (r *DBProfileRepository) UnlockStudio(ctx context.Context, walletAddress string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET points = points - ?, studio_unlocked = TRUE
		WHERE wallet_address = ? AND studio_unlocked = FALSE AND points >= ?`,
		StudioUnlockCost, walletAddress, StudioUnlockCost,
	)
	if err != nil {
		return fmt.Errorf("unlock studio: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrStudioUnavailable
	}
	return nil
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
