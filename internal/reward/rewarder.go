// Package reward grants game rewards to a user's profile and active pet.
package reward

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/datagotchi/datagotchi/internal/pet"
	"github.com/datagotchi/datagotchi/internal/profile"
	"github.com/datagotchi/datagotchi/internal/skillevent"
)

//go:generate mockgen -source=rewarder.go -destination=../mocks/reward/mock_rewarder.go -package=mock_reward

// Rewarder grants a reward to a wallet and one of its pets.
type Rewarder interface {
	Award(ctx context.Context, walletAddress, petID string, reward Reward) error
}

// GameRewarder adds points to the profile and records a skill event for the pet.
type GameRewarder struct {
	profiles profile.ProfileRepository
	events   skillevent.Recorder
}

func NewGameRewarder(profiles profile.ProfileRepository, events skillevent.Recorder) *GameRewarder {
	return &GameRewarder{profiles: profiles, events: events}
}

// Award runs the points and skill writes concurrently. They are independent:
// one failing does not undo or cancel the other, and the first error is returned.
func (r *GameRewarder) Award(ctx context.Context, walletAddress, petID string, reward Reward) error {
	var g errgroup.Group
	if reward.Points != 0 {
		g.Go(func() error {
			if err := r.profiles.AddPoints(ctx, walletAddress, reward.Points); err != nil {
				return fmt.Errorf("award points: %w", err)
			}
			return nil
		})
	}
	if reward.SkillValue != 0 {
		g.Go(func() error {
			_, err := r.events.Record(ctx, skillevent.Event{
				PetID:   petID,
				Source:  reward.Source(),
				Deltas:  pet.DeltaFor(reward.Skill, reward.SkillValue),
				Comment: fmt.Sprintf("%s completed", reward.Game),
			})
			if err != nil {
				return fmt.Errorf("award skill: %w", err)
			}
			return nil
		})
	}
	return g.Wait()
}
