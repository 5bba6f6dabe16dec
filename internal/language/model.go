package language

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// XPPerCorrectAnswer is the experience granted for each correct flashcard.
const XPPerCorrectAnswer = 10

// Progress is a wallet's standing in one language.
type Progress struct {
	WalletAddress    string     `db:"wallet_address" yaml:"wallet_address"`
	Language         string     `db:"language" yaml:"language"`
	Level            int        `db:"level" yaml:"level"`
	ExperiencePoints int        `db:"experience_points" yaml:"experience_points"`
	Difficulty       Difficulty `db:"difficulty" yaml:"difficulty"`
	WordsLearned     int        `db:"words_learned" yaml:"words_learned"`
	CurrentStreak    int        `db:"current_streak" yaml:"current_streak"`
	LongestStreak    int        `db:"longest_streak" yaml:"longest_streak"`
	AccuracyRate     float64    `db:"accuracy_rate" yaml:"accuracy_rate"`
	UpdatedAt        time.Time  `db:"updated_at" yaml:"updated_at"`
}

// SessionResult is the outcome of one flashcard session.
type SessionResult struct {
	Correct int
	Total   int
}

// Accuracy is the share of correct answers, 0 for an empty session.
func (r SessionResult) Accuracy() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total)
}

// Passed reports whether the session keeps the streak going.
func (r SessionResult) Passed() bool {
	return r.Total > 0 && r.Correct*2 >= r.Total
}

// LevelFor returns the level reached with xp experience points.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return 1 + xp/100
}

func DifficultyFor(level int) Difficulty {
	switch {
	case level >= 6:
		return DifficultyAdvanced
	case level >= 3:
		return DifficultyIntermediate
	}
	return DifficultyBeginner
}

// Hints returns the level and difficulty used to personalize flashcards.
// A nil Progress is a learner who has not started the language.
func (p *Progress) Hints() (int, Difficulty) {
	if p == nil {
		return 1, DifficultyBeginner
	}
	return p.Level, p.Difficulty
}
