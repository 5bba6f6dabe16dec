package pet

import (
	"fmt"
	"time"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Skill names a stat column on a pet.
type Skill string

const (
	SkillSocial   Skill = "social"
	SkillTrivia   Skill = "trivia"
	SkillScience  Skill = "science"
	SkillCode     Skill = "code"
	SkillTrenches Skill = "trenches"
	SkillStreak   Skill = "streak"
)

// Skills lists every stat column in storage order.
var Skills = []Skill{SkillSocial, SkillTrivia, SkillScience, SkillCode, SkillTrenches, SkillStreak}

func ParseSkill(s string) (Skill, error) {
	for _, skill := range Skills {
		if string(skill) == s {
			return skill, nil
		}
	}
	return "", fmt.Errorf("unknown skill %q", s)
}

type Pet struct {
	ID          string    `db:"id" json:"id" yaml:"id"`
	OwnerWallet string    `db:"owner_wallet" json:"owner_wallet" yaml:"owner_wallet"`
	Name        string    `db:"name" json:"name" yaml:"name"`
	Rarity      Rarity    `db:"rarity" json:"rarity" yaml:"rarity"`
	Variant     string    `db:"variant" json:"variant" yaml:"variant"`
	Background  string    `db:"background" json:"background" yaml:"background"`
	Social      int       `db:"social" json:"social" yaml:"social"`
	Trivia      int       `db:"trivia" json:"trivia" yaml:"trivia"`
	Science     int       `db:"science" json:"science" yaml:"science"`
	Code        int       `db:"code" json:"code" yaml:"code"`
	Trenches    int       `db:"trenches" json:"trenches" yaml:"trenches"`
	Streak      int       `db:"streak" json:"streak" yaml:"streak"`
	CreatedAt   time.Time `db:"created_at" json:"created_at" yaml:"created_at"`
}

func (p Pet) Stat(skill Skill) int {
	switch skill {
	case SkillSocial:
		return p.Social
	case SkillTrivia:
		return p.Trivia
	case SkillScience:
		return p.Science
	case SkillCode:
		return p.Code
	case SkillTrenches:
		return p.Trenches
	case SkillStreak:
		return p.Streak
	}
	return 0
}

// Deltas is a per-skill change applied to a pet's stats.
type Deltas struct {
	Social   int `db:"delta_social" json:"delta_social"`
	Trivia   int `db:"delta_trivia" json:"delta_trivia"`
	Science  int `db:"delta_science" json:"delta_science"`
	Code     int `db:"delta_code" json:"delta_code"`
	Trenches int `db:"delta_trenches" json:"delta_trenches"`
	Streak   int `db:"delta_streak" json:"delta_streak"`
}

// DeltaFor returns Deltas changing a single skill by value.
func DeltaFor(skill Skill, value int) Deltas {
	var d Deltas
	switch skill {
	case SkillSocial:
		d.Social = value
	case SkillTrivia:
		d.Trivia = value
	case SkillScience:
		d.Science = value
	case SkillCode:
		d.Code = value
	case SkillTrenches:
		d.Trenches = value
	case SkillStreak:
		d.Streak = value
	}
	return d
}

// Of returns the change d applies to skill.
func (d Deltas) Of(skill Skill) int {
	switch skill {
	case SkillSocial:
		return d.Social
	case SkillTrivia:
		return d.Trivia
	case SkillScience:
		return d.Science
	case SkillCode:
		return d.Code
	case SkillTrenches:
		return d.Trenches
	case SkillStreak:
		return d.Streak
	}
	return 0
}

func (d Deltas) IsZero() bool {
	return d == Deltas{}
}

// NewPet holds the fields chosen when a pet is created.
type NewPet struct {
	OwnerWallet string
	Name        string
	Rarity      Rarity
	Variant     string
	Background  string
}
