package reward

import (
	"context"
	"errors"
	"sync"
)

var ErrNoActivePet = errors.New("a logged in user with an active pet is required")

// Hook grants a game's reward at most once per play-through.
type Hook struct {
	rewarder Rewarder
	reward   Reward

	mu      sync.Mutex
	awarded bool
}

func NewHook(rewarder Rewarder, reward Reward) *Hook {
	return &Hook{rewarder: rewarder, reward: reward}
}

// Start begins a new play-through.
func (h *Hook) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.awarded = false
}

func (h *Hook) Awarded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.awarded
}

// AwardRewards grants the reward unless this play-through already got it.
// It reports whether this call granted it. A failed award leaves the
// play-through unawarded so it can be retried. Calls are serialized, so
// concurrent callers cannot both reach the rewarder.
func (h *Hook) AwardRewards(ctx context.Context, walletAddress, petID string) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.awarded {
		return false, nil
	}
	if walletAddress == "" || petID == "" {
		return false, ErrNoActivePet
	}
	if err := h.rewarder.Award(ctx, walletAddress, petID, h.reward); err != nil {
		return false, err
	}
	h.awarded = true
	return true, nil
}
