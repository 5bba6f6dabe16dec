// Package language tracks per-language flashcard progress for a wallet.
package language

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/language/mock_repository.go -package=mock_language

const progressColumns = "wallet_address, language, level, experience_points, difficulty, words_learned, current_streak, longest_streak, accuracy_rate, updated_at"

// ProgressRepository defines operations on language progress.
type ProgressRepository interface {
	Find(ctx context.Context, walletAddress, lang string) (*Progress, error)
	FindByWallet(ctx context.Context, walletAddress string) ([]Progress, error)
	RecordSession(ctx context.Context, walletAddress, lang string, result SessionResult) (*Progress, error)
}

// DBProgressRepository implements ProgressRepository using MySQL.
type DBProgressRepository struct {
	db *sqlx.DB
}

// NewDBProgressRepository creates a new DBProgressRepository.
func NewDBProgressRepository(db *sqlx.DB) *DBProgressRepository {
	return &DBProgressRepository{db: db}
}

// Find returns the progress for a language, or nil if the wallet has not started it.
func (r *DBProgressRepository) Find(ctx context.Context, walletAddress, lang string) (*Progress, error) {
	var p Progress
	err := r.db.GetContext(ctx, &p,
		"SELECT "+progressColumns+" FROM language_progress WHERE wallet_address = ? AND language = ?",
		walletAddress, lang)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find language progress: %w", err)
	}
	return &p, nil
}

func (r *DBProgressRepository) FindByWallet(ctx context.Context, walletAddress string) ([]Progress, error) {
	progress := []Progress{}
	if err := r.db.SelectContext(ctx, &progress,
		"SELECT "+progressColumns+" FROM language_progress WHERE wallet_address = ? ORDER BY language",
		walletAddress); err != nil {
		return nil, fmt.Errorf("find language progress by wallet: %w", err)
	}
	return progress, nil
}

// RecordSession folds a finished session into the stored progress in one
// statement. MySQL evaluates the update assignments left to right, so level
// and difficulty see the new experience points.
func (r *DBProgressRepository) RecordSession(ctx context.Context, walletAddress, lang string, result SessionResult) (*Progress, error) {
	xp := result.Correct * XPPerCorrectAnswer
	level := LevelFor(xp)
	streak := 0
	if result.Passed() {
		streak = 1
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO language_progress
			(wallet_address, language, level, experience_points, difficulty, words_learned, current_streak, longest_streak, accuracy_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			experience_points = experience_points + VALUES(experience_points),
			words_learned = words_learned + VALUES(words_learned),
			current_streak = IF(VALUES(current_streak) > 0, current_streak + 1, 0),
			longest_streak = GREATEST(longest_streak, current_streak),
			accuracy_rate = (accuracy_rate + VALUES(accuracy_rate)) / 2,
			level = 1 + FLOOR(experience_points / 100),
			difficulty = CASE WHEN level >= 6 THEN 'advanced' WHEN level >= 3 THEN 'intermediate' ELSE 'beginner' END`,
		walletAddress, lang, level, xp, DifficultyFor(level), result.Correct, streak, streak, result.Accuracy(),
	); err != nil {
		return nil, fmt.Errorf("record language session: %w", err)
	}

	p, err := r.Find(ctx, walletAddress, lang)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("language progress for %s/%s missing after write", walletAddress, lang)
	}
	return p, nil
}
