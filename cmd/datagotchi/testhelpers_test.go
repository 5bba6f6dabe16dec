package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/datagotchi/datagotchi/internal/api"
	"github.com/datagotchi/datagotchi/internal/assistant"
	"github.com/datagotchi/datagotchi/internal/bootstrap"
	"github.com/datagotchi/datagotchi/internal/config"
	"github.com/datagotchi/datagotchi/internal/knowledge"
	"github.com/datagotchi/datagotchi/internal/localstore"
	mock_account "github.com/datagotchi/datagotchi/internal/mocks/account"
	mock_language "github.com/datagotchi/datagotchi/internal/mocks/language"
	mock_pet "github.com/datagotchi/datagotchi/internal/mocks/pet"
	mock_profile "github.com/datagotchi/datagotchi/internal/mocks/profile"
	mock_reward "github.com/datagotchi/datagotchi/internal/mocks/reward"
	mock_skillevent "github.com/datagotchi/datagotchi/internal/mocks/skillevent"
	"github.com/datagotchi/datagotchi/internal/notify"
	"github.com/datagotchi/datagotchi/internal/pet"
	"github.com/datagotchi/datagotchi/internal/profile"
	"github.com/datagotchi/datagotchi/internal/session"
)

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// commandFixture runs commands against mocked repositories, a real local
// store and an httptest backend.
type commandFixture struct {
	profiles  *mock_profile.MockProfileRepository
	pets      *mock_pet.MockPetRepository
	events    *mock_skillevent.MockRecorder
	languages *mock_language.MockProgressRepository
	rewarder  *mock_reward.MockRewarder
	deleter   *mock_account.MockDeleter
	store     *session.Store
	apiCfg    config.APIConfig
}

func newCommandFixture(t *testing.T, backend http.HandlerFunc) *commandFixture {
	t.Helper()
	color.NoColor = true

	if backend == nil {
		backend = func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected backend call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	kv, err := localstore.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	ctrl := gomock.NewController(t)
	f := &commandFixture{
		profiles:  mock_profile.NewMockProfileRepository(ctrl),
		pets:      mock_pet.NewMockPetRepository(ctrl),
		events:    mock_skillevent.NewMockRecorder(ctrl),
		languages: mock_language.NewMockProgressRepository(ctrl),
		rewarder:  mock_reward.NewMockRewarder(ctrl),
		deleter:   mock_account.NewMockDeleter(ctrl),
		apiCfg:    config.APIConfig{BaseURL: server.URL, TimeoutSeconds: 5},
	}
	f.store = session.NewStore(kv, f.profiles, f.pets, f.deleter)
	require.NoError(t, f.store.Init(context.Background()))

	previous := newServicesFunc
	t.Cleanup(func() { newServicesFunc = previous })
	newServicesFunc = func(ctx context.Context, app *bootstrap.App, cmd *cobra.Command) (*services, error) {
		notifier := notify.NewConsole(cmd.OutOrStdout())
		apiClient := api.NewClient(f.apiCfg)
		app.AddCloser(apiClient)
		return &services{
			store:     f.store,
			profiles:  f.profiles,
			pets:      f.pets,
			events:    f.events,
			languages: f.languages,
			rewarder:  f.rewarder,
			api:       apiClient,
			assistant: assistant.NewClient(f.apiCfg),
			ingester:  knowledge.NewIngester(apiClient, notifier, config.IngestionConfig{MaxFileSizeBytes: 1024}),
			notifier:  notifier,
		}, nil
	}
	return f
}

// login signs user in with pets and makes the first one active.
func (f *commandFixture) login(t *testing.T, user profile.User, pets ...pet.Pet) {
	t.Helper()
	f.profiles.EXPECT().Upsert(gomock.Any(), user.WalletAddress, user.Username).Return(&user, nil)
	f.pets.EXPECT().FindByOwner(gomock.Any(), user.WalletAddress).Return(pets, nil)
	require.NoError(t, f.store.Login(context.Background(), user.WalletAddress, user.Username))
	if len(pets) > 0 {
		require.NoError(t, f.store.SetActivePet(context.Background(), pets[0]))
	}
}

// expectRefresh answers one RefreshUserData call.
func (f *commandFixture) expectRefresh(user profile.User, pets ...pet.Pet) {
	f.profiles.EXPECT().FindByWallet(gomock.Any(), user.WalletAddress).Return(&user, nil)
	f.pets.EXPECT().FindByOwner(gomock.Any(), user.WalletAddress).Return(pets, nil)
}

func (f *commandFixture) run(stdin string, args ...string) (string, error) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
