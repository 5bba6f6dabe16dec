package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/assistant"
	"github.com/datagotchi/datagotchi/internal/cli"
	"github.com/datagotchi/datagotchi/internal/language"
	"github.com/datagotchi/datagotchi/internal/pet"
	"github.com/datagotchi/datagotchi/internal/profile"
	"github.com/datagotchi/datagotchi/internal/reward"
)

const (
	defaultRoundSize = 5
	defaultLanguage  = "spanish"
)

type playOptions struct {
	count    int
	language string
}

func newPlayCommand() *cobra.Command {
	var opts playOptions
	command := &cobra.Command{
		Use:       "play <game>",
		Short:     "Play a mini-game with the active pet",
		Long:      "Play a mini-game with the active pet. Games: " + strings.Join(gameNames(), ", "),
		Args:      cobra.ExactArgs(1),
		ValidArgs: gameNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptor, err := reward.ForGame(reward.Game(args[0]))
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				user, activePet, err := svc.requireActivePet()
				if err != nil {
					return err
				}
				game := cli.NewGameCLI(cmd.InOrStdin(), cmd.OutOrStdout())
				hook := reward.NewHook(svc.rewarder, descriptor)
				for {
					hook.Start()
					if err := playOnce(ctx, svc, game, hook, descriptor, user, activePet, opts); err != nil {
						return err
					}
					again, err := game.Confirm("Play again?")
					if err != nil || !again {
						return err
					}
				}
			})
		},
	}
	command.Flags().IntVar(&opts.count, "count", defaultRoundSize, "number of questions in a round")
	command.Flags().StringVar(&opts.language, "language", defaultLanguage, "language for flashcards")
	return command
}

func gameNames() []string {
	games := reward.Games()
	names := make([]string, len(games))
	for i, g := range games {
		names[i] = string(g)
	}
	return names
}

// playOnce plays one round, reports it to the backend and awards the reward.
// A failed report or progress update is shown but does not withhold the reward.
func playOnce(
	ctx context.Context,
	svc *services,
	game *cli.GameCLI,
	hook *reward.Hook,
	descriptor reward.Reward,
	user *profile.User,
	activePet *pet.Pet,
	opts playOptions,
) error {
	round, err := fetchRound(ctx, svc, game, descriptor.Game, user.WalletAddress, activePet.ID, opts)
	if err != nil {
		svc.notifier.Error(fmt.Sprintf("Could not start %s: %v", descriptor.Game, err))
		return err
	}
	score, err := game.Run(ctx, round)
	if err != nil {
		return err
	}
	svc.notifier.Info(fmt.Sprintf("You scored %d/%d", score.Correct, score.Total))

	completed, err := svc.assistant.CompleteSession(ctx, string(descriptor.Game), assistant.CompleteSessionRequest{
		WalletAddress: user.WalletAddress,
		PetID:         activePet.ID,
		Score:         score.Correct,
		Total:         score.Total,
		Language:      flashcardLanguage(descriptor.Game, opts),
	})
	if err != nil {
		slog.Default().Warn("complete session", "game", descriptor.Game, "error", err)
		svc.notifier.Error("Could not save your session")
	} else if completed.Feedback != "" {
		svc.notifier.Info(completed.Feedback)
	}

	if descriptor.Game == reward.GameFlashcards {
		progress, err := svc.languages.RecordSession(ctx, user.WalletAddress, opts.language,
			language.SessionResult{Correct: score.Correct, Total: score.Total})
		if err != nil {
			slog.Default().Warn("record language progress", "language", opts.language, "error", err)
		} else {
			svc.notifier.Info(fmt.Sprintf("%s level %d (%s)", progress.Language, progress.Level, progress.Difficulty))
		}
	}

	return award(ctx, svc, game, hook, descriptor, user.WalletAddress, activePet.ID)
}

// award grants the round's reward, offering a retry while it fails.
func award(ctx context.Context, svc *services, game *cli.GameCLI, hook *reward.Hook, descriptor reward.Reward, walletAddress, petID string) error {
	for {
		awarded, err := hook.AwardRewards(ctx, walletAddress, petID)
		if err == nil {
			if awarded {
				svc.notifier.Success(fmt.Sprintf("+%d points, +%d %s", descriptor.Points, descriptor.SkillValue, descriptor.Skill))
				if err := svc.store.RefreshUserData(ctx); err != nil {
					svc.notifier.Error("Could not refresh your data")
				}
			}
			return nil
		}
		slog.Default().Error("award rewards", "game", descriptor.Game, "error", err)
		svc.notifier.Error("Could not award your rewards")
		retry, confirmErr := game.Confirm("Retry awarding rewards?")
		if confirmErr != nil {
			return confirmErr
		}
		if !retry {
			return err
		}
	}
}

func fetchRound(ctx context.Context, svc *services, game *cli.GameCLI, g reward.Game, walletAddress, petID string, opts playOptions) (cli.Round, error) {
	request := assistant.RoundRequest{PetID: petID, Count: opts.count}
	switch g {
	case reward.GameTrivia:
		questions, err := svc.assistant.GenerateTriviaQuestions(ctx, request)
		if err != nil {
			return nil, err
		}
		return cli.NewTriviaRound(game, questions), nil
	case reward.GameSentiment:
		texts, err := svc.assistant.GenerateSentimentTexts(ctx, request)
		if err != nil {
			return nil, err
		}
		return cli.NewSentimentRound(game, texts), nil
	case reward.GameFlashcards:
		progress, err := svc.languages.Find(ctx, walletAddress, opts.language)
		if err != nil {
			// Hints are optional; beginner defaults apply.
			slog.Default().Warn("find language progress", "language", opts.language, "error", err)
		}
		cards, err := svc.assistant.GenerateFlashcards(ctx, assistant.FlashcardsRequest{
			PetID:    petID,
			Language: opts.language,
			Count:    opts.count,
		}.WithProgress(progress))
		if err != nil {
			return nil, err
		}
		return cli.NewFlashcardRound(game, cards), nil
	case reward.GameImageQuality:
		round, err := svc.assistant.GetImageQualityRound(ctx, request)
		if err != nil {
			return nil, err
		}
		return cli.NewImageQualityRound(game, *round), nil
	}
	return nil, fmt.Errorf("unknown game %q", g)
}

func flashcardLanguage(g reward.Game, opts playOptions) string {
	if g == reward.GameFlashcards {
		return opts.language
	}
	return ""
}
