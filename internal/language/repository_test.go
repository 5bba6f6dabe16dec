package language

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"wallet_address", "language", "level", "experience_points", "difficulty",
	"words_learned", "current_streak", "longest_streak", "accuracy_rate", "updated_at",
}

func newMockRepository(t *testing.T) (*DBProgressRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDBProgressRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBProgressRepository_Find(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Progress
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM language_progress WHERE wallet_address = \\? AND language = \\?").
					WithArgs("0xabc", "es").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("0xabc", "es", 3, 240, "intermediate", 24, 2, 5, 0.8, now))
			},
			want: &Progress{
				WalletAddress: "0xabc", Language: "es", Level: 3, ExperiencePoints: 240, Difficulty: DifficultyIntermediate,
				WordsLearned: 24, CurrentStreak: 2, LongestStreak: 5, AccuracyRate: 0.8, UpdatedAt: now,
			},
		},
		{
			name: "not started",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM language_progress").
					WithArgs("0xabc", "es").
					WillReturnRows(sqlmock.NewRows(columns))
			},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM language_progress").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.Find(context.Background(), "0xabc", "es")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBProgressRepository_FindByWallet(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo, mock := newMockRepository(t)
	mock.ExpectQuery("SELECT (.+) FROM language_progress WHERE wallet_address = \\? ORDER BY language").
		WithArgs("0xabc").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("0xabc", "es", 1, 10, "beginner", 1, 1, 1, 1.0, now).
			AddRow("0xabc", "fr", 6, 500, "advanced", 50, 0, 9, 0.7, now))

	got, err := repo.FindByWallet(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, DifficultyAdvanced, got[1].Difficulty)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBProgressRepository_RecordSession(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		result    SessionResult
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name:   "passing session",
			result: SessionResult{Correct: 8, Total: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO language_progress(.+)ON DUPLICATE KEY UPDATE").
					WithArgs("0xabc", "es", 1, 80, DifficultyBeginner, 8, 1, 1, 0.8).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT (.+) FROM language_progress").
					WithArgs("0xabc", "es").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("0xabc", "es", 1, 80, "beginner", 8, 1, 1, 0.8, now))
			},
		},
		{
			name:   "failing session resets the streak",
			result: SessionResult{Correct: 1, Total: 10},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO language_progress").
					WithArgs("0xabc", "es", 1, 10, DifficultyBeginner, 1, 0, 0, 0.1).
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectQuery("SELECT (.+) FROM language_progress").
					WithArgs("0xabc", "es").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("0xabc", "es", 2, 130, "beginner", 13, 0, 4, 0.5, now))
			},
		},
		{
			name:   "write error",
			result: SessionResult{Correct: 1, Total: 1},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO language_progress").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.RecordSession(context.Background(), "0xabc", "es", tt.result)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "es", got.Language)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLevelAndDifficulty(t *testing.T) {
	tests := []struct {
		xp             int
		wantLevel      int
		wantDifficulty Difficulty
	}{
		{xp: -5, wantLevel: 1, wantDifficulty: DifficultyBeginner},
		{xp: 0, wantLevel: 1, wantDifficulty: DifficultyBeginner},
		{xp: 199, wantLevel: 2, wantDifficulty: DifficultyBeginner},
		{xp: 200, wantLevel: 3, wantDifficulty: DifficultyIntermediate},
		{xp: 500, wantLevel: 6, wantDifficulty: DifficultyAdvanced},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("xp %d", tt.xp), func(t *testing.T) {
			level := LevelFor(tt.xp)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantDifficulty, DifficultyFor(level))
		})
	}
}

func TestProgress_Hints(t *testing.T) {
	var missing *Progress
	level, difficulty := missing.Hints()
	assert.Equal(t, 1, level)
	assert.Equal(t, DifficultyBeginner, difficulty)

	level, difficulty = (&Progress{Level: 4, Difficulty: DifficultyIntermediate}).Hints()
	assert.Equal(t, 4, level)
	assert.Equal(t, DifficultyIntermediate, difficulty)
}

func TestSessionResult(t *testing.T) {
	assert.InDelta(t, 0.5, SessionResult{Correct: 5, Total: 10}.Accuracy(), 1e-9)
	assert.Zero(t, SessionResult{}.Accuracy())
	assert.True(t, SessionResult{Correct: 5, Total: 10}.Passed())
	assert.False(t, SessionResult{Correct: 4, Total: 10}.Passed())
	assert.False(t, SessionResult{}.Passed())
}
