package pet

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "owner_wallet", "name", "rarity", "variant", "background", "social", "trivia", "science", "code", "trenches", "streak", "created_at"}

func newMockRepository(t *testing.T) (*DBPetRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewDBPetRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBPetRepository_FindByOwner(t *testing.T) {
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantIDs   []string
		wantErr   bool
	}{
		{
			name: "returns pets newest first",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(columns).
					AddRow("pet-2", "0xabc", "Byte", "rare", "blue", "space", 1, 2, 3, 4, 5, 0, newer).
					AddRow("pet-1", "0xabc", "Bit", "common", "green", "forest", 0, 40, 0, 0, 0, 2, older)
				mock.ExpectQuery("SELECT (.+) FROM pets WHERE owner_wallet = \\? ORDER BY created_at DESC").
					WithArgs("0xabc").
					WillReturnRows(rows)
			},
			wantIDs: []string{"pet-2", "pet-1"},
		},
		{
			name: "no pets returns an empty list",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM pets WHERE owner_wallet = \\?").
					WithArgs("0xabc").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			wantIDs: []string{},
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM pets").WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.FindByOwner(context.Background(), "0xabc")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			gotIDs := make([]string, 0, len(got))
			for _, p := range got {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPetRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT (.+) FROM pets WHERE id = \\?").
			WithArgs("pet-1").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("pet-1", "0xabc", "Bit", "epic", "v1", "b1", 7, 40, 3, 2, 1, 9, now))

		got, err := repo.FindByID(context.Background(), "pet-1")
		require.NoError(t, err)
		assert.Equal(t, &Pet{
			ID: "pet-1", OwnerWallet: "0xabc", Name: "Bit", Rarity: RarityEpic, Variant: "v1", Background: "b1",
			Social: 7, Trivia: 40, Science: 3, Code: 2, Trenches: 1, Streak: 9, CreatedAt: now,
		}, got)
		assert.Equal(t, 40, got.Stat(SkillTrivia))
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectQuery("SELECT (.+) FROM pets WHERE id = \\?").
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.FindByID(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDBPetRepository_Create(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		newPet     NewPet
		setupMock  func(mock sqlmock.Sqlmock)
		wantRarity Rarity
		wantErr    error
	}{
		{
			name:   "creates pet with zeroed stats",
			newPet: NewPet{OwnerWallet: "0xabc", Name: "Bit", Rarity: RarityRare, Variant: "blue", Background: "space"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO pets \\(id, owner_wallet, name, rarity, variant, background, created_at\\)").
					WithArgs(sqlmock.AnyArg(), "0xabc", "Bit", "rare", "blue", "space", now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantRarity: RarityRare,
		},
		{
			name:   "empty rarity defaults to common",
			newPet: NewPet{OwnerWallet: "0xabc", Name: "Bit"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO pets").
					WithArgs(sqlmock.AnyArg(), "0xabc", "Bit", "common", "", "", now).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantRarity: RarityCommon,
		},
		{
			name:      "unknown rarity is rejected before insert",
			newPet:    NewPet{OwnerWallet: "0xabc", Name: "Bit", Rarity: "mythic"},
			setupMock: func(mock sqlmock.Sqlmock) {},
			wantErr:   ErrInvalidRarity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			repo.now = func() time.Time { return now }
			tt.setupMock(mock)

			got, err := repo.Create(context.Background(), tt.newPet)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			_, parseErr := uuid.Parse(got.ID)
			assert.NoError(t, parseErr)
			assert.Equal(t, tt.wantRarity, got.Rarity)
			assert.Equal(t, now, got.CreatedAt)
			assert.Zero(t, got.Trivia)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPetRepository_Update(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		fields     map[string]any
		setupMock  func(mock sqlmock.Sqlmock)
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:   "updates the given columns in sorted order",
			fields: map[string]any{"trivia": 41, "name": "Bit II"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE pets SET name = \\?, trivia = \\? WHERE id = \\?").
					WithArgs("Bit II", 41, "pet-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery("SELECT (.+) FROM pets WHERE id = \\?").
					WithArgs("pet-1").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("pet-1", "0xabc", "Bit II", "common", "", "", 0, 41, 0, 0, 0, 0, now))
			},
		},
		{
			name:      "cosmetic fields are immutable",
			fields:    map[string]any{"rarity": "legendary"},
			setupMock: func(mock sqlmock.Sqlmock) {},
			wantErr:   ErrImmutableField,
		},
		{
			name:       "unknown columns are rejected",
			fields:     map[string]any{"owner; DROP TABLE pets": 1},
			setupMock:  func(mock sqlmock.Sqlmock) {},
			wantAnyErr: true,
		},
		{
			name:   "missing pet",
			fields: map[string]any{"name": "x"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE pets SET name = \\? WHERE id = \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			got, err := repo.Update(context.Background(), "pet-1", tt.fields)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Bit II", got.Name)
			assert.Equal(t, 41, got.Trivia)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBPetRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectExec("DELETE FROM pets WHERE id = \\?").
		WithArgs("pet-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "pet-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Stats are never stored negative: each column is floored by GREATEST(col + ?, 0)
// inside the single UPDATE, so a stat of 5 given -10 is written as 0 by the
// database without a read-modify-write round trip.
func TestDBPetRepository_ApplyStatDelta(t *testing.T) {
	flooredUpdate := "UPDATE pets SET\\s+" +
		"social = GREATEST\\(social \\+ \\?, 0\\),\\s+" +
		"trivia = GREATEST\\(trivia \\+ \\?, 0\\),\\s+" +
		"science = GREATEST\\(science \\+ \\?, 0\\),\\s+" +
		"code = GREATEST\\(code \\+ \\?, 0\\),\\s+" +
		"trenches = GREATEST\\(trenches \\+ \\?, 0\\),\\s+" +
		"streak = GREATEST\\(streak \\+ \\?, 0\\)\\s+" +
		"WHERE id = \\?"

	tests := []struct {
		name      string
		deltas    Deltas
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:   "clamps every column at zero in one statement",
			deltas: Deltas{Trivia: -10},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(flooredUpdate).
					WithArgs(0, -10, 0, 0, 0, 0, "pet-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "negative deltas on every stat are all floored",
			deltas: Deltas{Social: -1, Trivia: -2, Science: -3, Code: -4, Trenches: -5, Streak: -6},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(flooredUpdate).
					WithArgs(-1, -2, -3, -4, -5, -6, "pet-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "missing pet",
			deltas: DeltaFor(SkillTrivia, 1),
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE pets SET").
					WithArgs(0, 1, 0, 0, 0, 0, "pet-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setupMock(mock)

			err := repo.ApplyStatDelta(context.Background(), "pet-1", tt.deltas)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeltaFor(t *testing.T) {
	assert.Equal(t, Deltas{Trivia: 1}, DeltaFor(SkillTrivia, 1))
	assert.Equal(t, Deltas{Streak: -2}, DeltaFor(SkillStreak, -2))
	assert.True(t, DeltaFor("unknown", 3).IsZero())
}

func TestDeltas_Of(t *testing.T) {
	d := Deltas{Social: 1, Trivia: 2, Science: 3, Code: 4, Trenches: 5, Streak: 6}
	for i, skill := range Skills {
		assert.Equal(t, i+1, d.Of(skill), skill)
	}
	assert.Zero(t, d.Of("unknown"))
}

func TestParseSkill(t *testing.T) {
	got, err := ParseSkill("science")
	require.NoError(t, err)
	assert.Equal(t, SkillScience, got)

	_, err = ParseSkill("magic")
	assert.Error(t, err)
}
