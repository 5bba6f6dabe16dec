package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/datagotchi/datagotchi/internal/account"
	"github.com/datagotchi/datagotchi/internal/api"
	"github.com/datagotchi/datagotchi/internal/assistant"
	"github.com/datagotchi/datagotchi/internal/bootstrap"
	"github.com/datagotchi/datagotchi/internal/config"
	"github.com/datagotchi/datagotchi/internal/database"
	"github.com/datagotchi/datagotchi/internal/knowledge"
	"github.com/datagotchi/datagotchi/internal/language"
	"github.com/datagotchi/datagotchi/internal/localstore"
	"github.com/datagotchi/datagotchi/internal/notify"
	"github.com/datagotchi/datagotchi/internal/pet"
	"github.com/datagotchi/datagotchi/internal/profile"
	"github.com/datagotchi/datagotchi/internal/reward"
	"github.com/datagotchi/datagotchi/internal/session"
	"github.com/datagotchi/datagotchi/internal/skillevent"
)

const (
	outputText = "text"
	outputYAML = "yaml"

	dbReadyAttempts = 5
)

var (
	errNotLoggedIn = errors.New("not logged in, run `datagotchi login --wallet <address>` first")
	errNoActivePet = errors.New("no active pet, run `datagotchi pets select <id>` first")
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func validateOutputFormat(format string) error {
	switch format {
	case outputText, outputYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q, use %s or %s", format, outputText, outputYAML)
}

// services is everything a command needs after the session is restored.
type services struct {
	cfg       *config.Config
	store     *session.Store
	profiles  profile.ProfileRepository
	pets      pet.PetRepository
	events    skillevent.Recorder
	languages language.ProgressRepository
	rewarder  reward.Rewarder
	api       *api.Client
	assistant *assistant.Client
	ingester  *knowledge.Ingester
	notifier  notify.Notifier
}

// newServicesFunc is swapped in tests to run commands without MySQL.
var newServicesFunc = newServices

func newServices(ctx context.Context, app *bootstrap.App, cmd *cobra.Command) (*services, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := openDatabase(ctx, app, cfg)
	if err != nil {
		return nil, err
	}

	kv, err := localstore.Open(ctx, cfg.Storage.LocalStorePath())
	if err != nil {
		return nil, err
	}
	app.AddCloser(kv)

	apiClient := api.NewClient(cfg.API)
	app.AddCloser(apiClient)

	profiles := profile.NewDBProfileRepository(db)
	pets := pet.NewDBPetRepository(db)
	events := skillevent.NewDBRecorder(db)
	notifier := notify.NewConsole(cmd.OutOrStdout())

	store := session.NewStore(kv, profiles, pets, account.NewDBDeleter(db))
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &services{
		cfg:       cfg,
		store:     store,
		profiles:  profiles,
		pets:      pets,
		events:    events,
		languages: language.NewDBProgressRepository(db),
		rewarder:  reward.NewGameRewarder(profiles, events),
		api:       apiClient,
		assistant: assistant.NewClient(cfg.API),
		ingester:  knowledge.NewIngester(apiClient, notifier, cfg.Ingestion),
		notifier:  notifier,
	}, nil
}

func openDatabase(ctx context.Context, app *bootstrap.App, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, err
	}
	app.AddCloser(db)
	if err := database.WaitReady(ctx, db, dbReadyAttempts); err != nil {
		return nil, err
	}
	return db, nil
}

// withServices runs fn with the restored session and releases every resource
// afterwards, also when the command is interrupted.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *services) error) error {
	app := bootstrap.New()
	return app.Run(cmd.Context(), func(ctx context.Context) error {
		svc, err := newServicesFunc(ctx, app, cmd)
		if err != nil {
			return err
		}
		return fn(ctx, svc)
	})
}

func (svc *services) requireUser() (*profile.User, error) {
	user := svc.store.User()
	if user == nil {
		return nil, errNotLoggedIn
	}
	return user, nil
}

func (svc *services) requireActivePet() (*profile.User, *pet.Pet, error) {
	user, err := svc.requireUser()
	if err != nil {
		return nil, nil, err
	}
	activePet := svc.store.ActivePet()
	if activePet == nil {
		return nil, nil, errNoActivePet
	}
	return user, activePet, nil
}

// printOutput writes v as yaml with --output yaml and calls text otherwise.
func printOutput(w io.Writer, v any, text func(w io.Writer) error) error {
	if outputFormat != outputYAML {
		return text(w)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}

// addLimitFlag registers the --limit flag shared by list commands.
func addLimitFlag(flags *pflag.FlagSet, limit *int, defaultLimit int, what string) {
	flags.IntVar(limit, "limit", defaultLimit, "number of "+what+" to show")
}
