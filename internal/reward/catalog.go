package reward

import (
	"fmt"
	"sort"

	"github.com/datagotchi/datagotchi/internal/pet"
)

// Game identifies a mini-game that grants a reward on completion.
type Game string

const (
	GameTrivia       Game = "trivia"
	GameFlashcards   Game = "flashcards"
	GameSentiment    Game = "sentiment"
	GameImageQuality Game = "image-quality"
)

// Reward is the static payout of one completed play-through.
type Reward struct {
	Game       Game      `yaml:"game"`
	Points     int64     `yaml:"points"`
	Skill      pet.Skill `yaml:"skill"`
	SkillValue int       `yaml:"skill_value"`
}

// Source is the skill event source tag for this reward.
func (r Reward) Source() string {
	return "game:" + string(r.Game)
}

var catalog = map[Game]Reward{
	GameTrivia:       {Game: GameTrivia, Points: 15, Skill: pet.SkillTrivia, SkillValue: 1},
	GameFlashcards:   {Game: GameFlashcards, Points: 10, Skill: pet.SkillSocial, SkillValue: 1},
	GameSentiment:    {Game: GameSentiment, Points: 5, Skill: pet.SkillSocial, SkillValue: 1},
	GameImageQuality: {Game: GameImageQuality, Points: 5, Skill: pet.SkillScience, SkillValue: 1},
}

// ForGame returns the reward configured for game.
func ForGame(game Game) (Reward, error) {
	r, ok := catalog[game]
	if !ok {
		return Reward{}, fmt.Errorf("unknown game %q", game)
	}
	return r, nil
}

// Games lists the known games in name order.
func Games() []Game {
	games := make([]Game, 0, len(catalog))
	for g := range catalog {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i] < games[j] })
	return games
}
