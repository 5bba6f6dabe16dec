// Package session holds the logged-in user, their pets and the active pet,
// and keeps a copy of them in local storage so the next run starts warm.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/datagotchi/datagotchi/internal/account"
	"github.com/datagotchi/datagotchi/internal/localstore"
	"github.com/datagotchi/datagotchi/internal/pet"
	"github.com/datagotchi/datagotchi/internal/profile"
)

// Local storage keys.
const (
	KeyUser      = "datagotchi_user"
	KeyActivePet = "datagotchi_active_pet"
	// KeyLegacyActivePetID is only read while migrating older state and then removed.
	KeyLegacyActivePetID = "activePetId"
)

var sessionKeys = []string{KeyUser, KeyActivePet, KeyLegacyActivePetID}

var ErrEmptyWalletAddress = errors.New("wallet address is required")

type State int

const (
	StateLoading State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// cachedUser is the stored form of a user. Points is a pointer so a copy
// written before the field existed can be told apart from a zero balance.
type cachedUser struct {
	WalletAddress  string    `json:"wallet_address"`
	Username       string    `json:"username"`
	Points         *int64    `json:"points,omitempty"`
	StudioUnlocked bool      `json:"studio_unlocked"`
	CreatedAt      time.Time `json:"created_at"`
}

func toCached(u profile.User) cachedUser {
	points := u.Points
	return cachedUser{
		WalletAddress:  u.WalletAddress,
		Username:       u.Username,
		Points:         &points,
		StudioUnlocked: u.StudioUnlocked,
		CreatedAt:      u.CreatedAt,
	}
}

func (c cachedUser) user() profile.User {
	u := profile.User{
		WalletAddress:  c.WalletAddress,
		Username:       c.Username,
		StudioUnlocked: c.StudioUnlocked,
		CreatedAt:      c.CreatedAt,
	}
	if c.Points != nil {
		u.Points = *c.Points
	}
	return u
}

// Snapshot is a point-in-time copy of the session.
type Snapshot struct {
	State     string        `yaml:"state"`
	User      *profile.User `yaml:"user,omitempty"`
	Pets      []pet.Pet     `yaml:"pets"`
	ActivePet *pet.Pet      `yaml:"active_pet,omitempty"`
}

// Store is the single source of the current user, their pets and the active pet.
// All methods are safe for concurrent use.
type Store struct {
	kv          localstore.KV
	profileRepo profile.ProfileRepository
	petRepo     pet.PetRepository
	deleter     account.Deleter

	mu    sync.Mutex
	state State
	user  *profile.User
	pets  []pet.Pet
	// petsLoaded is set once pets holds a successful load for user.
	petsLoaded bool
	activePet  *pet.Pet
}

func NewStore(kv localstore.KV, profileRepo profile.ProfileRepository, petRepo pet.PetRepository, deleter account.Deleter) *Store {
	return &Store{
		kv:          kv,
		profileRepo: profileRepo,
		petRepo:     petRepo,
		deleter:     deleter,
		state:       StateLoading,
		pets:        []pet.Pet{},
	}
}

// Init restores the session from local storage. Unreadable stored values are
// discarded and leave the store unauthenticated.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading
	s.user, s.activePet, s.pets, s.petsLoaded = nil, nil, []pet.Pet{}, false

	raw, ok, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		s.state = StateUnauthenticated
		return fmt.Errorf("read stored user: %w", err)
	}
	if !ok {
		s.state = StateUnauthenticated
		return nil
	}

	var cached cachedUser
	if err := json.Unmarshal([]byte(raw), &cached); err != nil || cached.WalletAddress == "" {
		slog.Default().Warn("discarding unreadable stored session", "error", err)
		s.state = StateUnauthenticated
		return s.kv.Remove(ctx, sessionKeys...)
	}

	user := cached.user()
	if cached.Points == nil {
		fresh, err := s.profileRepo.FindByWallet(ctx, cached.WalletAddress)
		if err != nil {
			slog.Default().Warn("refetch stored user", "wallet", cached.WalletAddress, "error", err)
		} else {
			user = *fresh
			if err := s.persistUser(ctx, user); err != nil {
				return err
			}
		}
	}
	s.user = &user

	if err := s.loadPets(ctx, user.WalletAddress); err != nil {
		slog.Default().Warn("load pets", "wallet", user.WalletAddress, "error", err)
	}
	if err := s.restoreActivePet(ctx); err != nil {
		return err
	}

	s.state = StateAuthenticated
	return nil
}

// restoreActivePet reads the stored active pet, migrating the legacy id key.
func (s *Store) restoreActivePet(ctx context.Context) error {
	raw, ok, err := s.kv.Get(ctx, KeyActivePet)
	if err != nil {
		return fmt.Errorf("read stored active pet: %w", err)
	}
	if ok {
		var p pet.Pet
		if err := json.Unmarshal([]byte(raw), &p); err != nil || p.ID == "" {
			slog.Default().Warn("discarding unreadable stored active pet", "error", err)
			if err := s.kv.Remove(ctx, KeyActivePet); err != nil {
				return err
			}
		} else {
			s.activePet = &p
		}
	}

	legacyID, ok, err := s.kv.Get(ctx, KeyLegacyActivePetID)
	if err != nil {
		return fmt.Errorf("read legacy active pet: %w", err)
	}
	if ok {
		if s.activePet == nil {
			if p, found := s.findPet(legacyID); found {
				if err := s.persistActivePet(ctx, p); err != nil {
					return err
				}
				s.activePet = &p
			}
		}
		if err := s.kv.Remove(ctx, KeyLegacyActivePetID); err != nil {
			return err
		}
	}

	return s.syncActivePet(ctx)
}

// Login upserts the profile for walletAddress and loads its pets. If the
// upsert fails the previous session is left as it was.
func (s *Store) Login(ctx context.Context, walletAddress, username string) error {
	if walletAddress == "" {
		return ErrEmptyWalletAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.profileRepo.Upsert(ctx, walletAddress, username)
	if err != nil {
		return err
	}
	if err := s.persistUser(ctx, *user); err != nil {
		return err
	}
	if s.user == nil || s.user.WalletAddress != walletAddress {
		// Another wallet's pets must not outlive a failed load.
		s.pets, s.petsLoaded = []pet.Pet{}, false
	}
	s.user = user
	s.state = StateAuthenticated

	if s.activePet != nil && s.activePet.OwnerWallet != walletAddress {
		s.activePet = nil
		if err := s.kv.Remove(ctx, KeyActivePet); err != nil {
			return err
		}
	}
	return s.loadPets(ctx, walletAddress)
}

// Logout clears the session in memory and in local storage.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear(ctx)
}

func (s *Store) clear(ctx context.Context) error {
	s.user, s.activePet, s.pets, s.petsLoaded = nil, nil, []pet.Pet{}, false
	s.state = StateUnauthenticated
	if err := s.kv.Remove(ctx, sessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// DeleteAccount removes the current user's account and logs out. It does
// nothing when no one is logged in.
func (s *Store) DeleteAccount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	steps, err := s.deleter.Delete(ctx, s.user.WalletAddress)
	if err != nil {
		return err
	}
	slog.Default().Info("account deleted", "wallet", s.user.WalletAddress, "steps", len(steps))
	return s.clear(ctx)
}

// RefreshUserData reloads the profile and pets in parallel. On failure the
// cached session is kept.
func (s *Store) RefreshUserData(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	wallet := s.user.WalletAddress

	var (
		user *profile.User
		pets []pet.Pet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.profileRepo.FindByWallet(gctx, wallet)
		return err
	})
	g.Go(func() error {
		var err error
		pets, err = s.petRepo.FindByOwner(gctx, wallet)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Default().Error("refresh user data", "wallet", wallet, "error", err)
		return fmt.Errorf("refresh user data: %w", err)
	}

	if err := s.persistUser(ctx, *user); err != nil {
		return err
	}
	s.user = user
	s.pets, s.petsLoaded = pets, true
	return s.syncActivePet(ctx)
}

// SetActivePet makes p the active pet. Ownership is not checked.
func (s *Store) SetActivePet(ctx context.Context, p pet.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistActivePet(ctx, p); err != nil {
		return err
	}
	s.activePet = &p
	return nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns a copy of the logged-in user, or nil.
func (s *Store) User() *profile.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Pets returns the user's pets, newest first.
func (s *Store) Pets() []pet.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.pets)
}

func (s *Store) ActivePet() *pet.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activePet == nil {
		return nil
	}
	p := *s.activePet
	return &p
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: s.state.String(), Pets: slices.Clone(s.pets)}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.activePet != nil {
		p := *s.activePet
		snap.ActivePet = &p
	}
	return snap
}

func (s *Store) loadPets(ctx context.Context, walletAddress string) error {
	pets, err := s.petRepo.FindByOwner(ctx, walletAddress)
	if err != nil {
		return fmt.Errorf("load pets: %w", err)
	}
	s.pets, s.petsLoaded = pets, true
	return s.syncActivePet(ctx)
}

// syncActivePet replaces the active pet with its freshly loaded copy. An
// active pet missing from a successful load is dropped; without a load the
// stored copy is kept.
func (s *Store) syncActivePet(ctx context.Context) error {
	if s.activePet == nil || !s.petsLoaded {
		return nil
	}
	fresh, ok := s.findPet(s.activePet.ID)
	if !ok {
		slog.Default().Warn("active pet is gone, clearing it", "pet", s.activePet.ID)
		s.activePet = nil
		if err := s.kv.Remove(ctx, KeyActivePet); err != nil {
			return fmt.Errorf("clear active pet: %w", err)
		}
		return nil
	}
	if fresh == *s.activePet {
		return nil
	}
	s.activePet = &fresh
	return s.persistActivePet(ctx, fresh)
}

func (s *Store) findPet(id string) (pet.Pet, bool) {
	for _, p := range s.pets {
		if p.ID == id {
			return p, true
		}
	}
	return pet.Pet{}, false
}

func (s *Store) persistUser(ctx context.Context, u profile.User) error {
	data, err := json.Marshal(toCached(u))
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.kv.Set(ctx, KeyUser, string(data))
}

func (s *Store) persistActivePet(ctx context.Context, p pet.Pet) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode active pet: %w", err)
	}
	return s.kv.Set(ctx, KeyActivePet, string(data))
}
