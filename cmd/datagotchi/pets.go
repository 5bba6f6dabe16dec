package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/pet"
	"github.com/datagotchi/datagotchi/internal/skillevent"
)

const defaultHistoryLimit = 20

func newPetsCommand() *cobra.Command {
	petsCommand := &cobra.Command{
		Use:   "pets",
		Short: "Manage your pets",
	}

	petsCommand.AddCommand(newPetsListCommand())
	petsCommand.AddCommand(newPetsCreateCommand())
	petsCommand.AddCommand(newPetsSelectCommand())
	petsCommand.AddCommand(newPetsHistoryCommand())

	return petsCommand
}

func newPetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your pets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				if _, err := svc.requireUser(); err != nil {
					return err
				}
				activeID := ""
				if active := svc.store.ActivePet(); active != nil {
					activeID = active.ID
				}
				return printPets(cmd.OutOrStdout(), svc.store.Pets(), activeID)
			})
		},
	}
}

func printPets(w io.Writer, pets []pet.Pet, activeID string) error {
	return printOutput(w, pets, func(w io.Writer) error {
		if len(pets) == 0 {
			_, err := fmt.Fprintln(w, "No pets yet. Run `datagotchi pets create --name <name>` to adopt one.")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "\tID\tNAME\tRARITY\tSOCIAL\tTRIVIA\tSCIENCE\tCODE\tTRENCHES\tSTREAK")
		for _, p := range pets {
			marker := ""
			if p.ID == activeID {
				marker = "*"
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
				marker, p.ID, p.Name, p.Rarity, p.Social, p.Trivia, p.Science, p.Code, p.Trenches, p.Streak)
		}
		return tw.Flush()
	})
}

func newPetsCreateCommand() *cobra.Command {
	var newPet pet.NewPet
	var rarity string
	command := &cobra.Command{
		Use:   "create",
		Short: "Adopt a new pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				user, err := svc.requireUser()
				if err != nil {
					return err
				}
				newPet.OwnerWallet = user.WalletAddress
				newPet.Rarity = pet.Rarity(rarity)

				created, err := svc.pets.Create(ctx, newPet)
				if err != nil {
					svc.notifier.Error("Could not create your pet")
					return err
				}
				if svc.store.ActivePet() == nil {
					if err := svc.store.SetActivePet(ctx, *created); err != nil {
						return err
					}
				}
				if err := svc.store.RefreshUserData(ctx); err != nil {
					return err
				}
				svc.notifier.Success(fmt.Sprintf("%s joined your family!", created.Name))
				return nil
			})
		},
	}
	command.Flags().StringVar(&newPet.Name, "name", "", "pet name")
	command.Flags().StringVar(&rarity, "rarity", string(pet.RarityCommon), "common, rare, epic or legendary")
	command.Flags().StringVar(&newPet.Variant, "variant", "", "appearance variant")
	command.Flags().StringVar(&newPet.Background, "background", "", "background art")
	_ = command.MarkFlagRequired("name")
	return command
}

func newPetsSelectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "select <pet-id>",
		Short: "Make one of your pets the active pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				if _, err := svc.requireUser(); err != nil {
					return err
				}
				for _, p := range svc.store.Pets() {
					if p.ID != args[0] {
						continue
					}
					if err := svc.store.SetActivePet(ctx, p); err != nil {
						return err
					}
					svc.notifier.Success(fmt.Sprintf("%s is now your active pet", p.Name))
					return nil
				}
				svc.notifier.Error("Pet not found")
				return fmt.Errorf("%w: %s", pet.ErrNotFound, args[0])
			})
		},
	}
}

// petHistory is the skill event trail of a pet checked against its stats.
type petHistory struct {
	Pet    pet.Pet            `yaml:"pet"`
	Events []skillevent.Event `yaml:"events"`
	Totals pet.Deltas         `yaml:"totals"`
	InSync bool               `yaml:"in_sync"`
}

func newPetsHistoryCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "history",
		Short: "Show the skill events of the active pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				_, activePet, err := svc.requireActivePet()
				if err != nil {
					return err
				}
				events, err := svc.events.ListByPet(ctx, activePet.ID, limit)
				if err != nil {
					return err
				}
				totals, err := svc.events.SumByPet(ctx, activePet.ID)
				if err != nil {
					return err
				}
				history := petHistory{
					Pet:    *activePet,
					Events: events,
					Totals: totals,
					InSync: statsMatch(*activePet, totals),
				}
				return printHistory(cmd.OutOrStdout(), history)
			})
		},
	}
	addLimitFlag(command.Flags(), &limit, defaultHistoryLimit, "events")
	return command
}

// statsMatch reports whether the recorded deltas account for every stat.
// Floors at zero make a stat exceed its total only if events are missing.
func statsMatch(p pet.Pet, totals pet.Deltas) bool {
	for _, skill := range pet.Skills {
		if p.Stat(skill) > totals.Of(skill) {
			return false
		}
	}
	return true
}

func printHistory(w io.Writer, history petHistory) error {
	return printOutput(w, history, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "Skill history for %s\n", history.Pet.Name); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "WHEN\tSOURCE\tCHANGE\tCOMMENT")
		for _, event := range history.Events {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
				event.CreatedAt.Format("2006-01-02 15:04"), event.Source, formatDeltas(event.Deltas), event.Comment)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if !history.InSync {
			_, err := fmt.Fprintln(w, "Warning: stats are higher than the recorded events account for")
			return err
		}
		return nil
	})
}

func formatDeltas(d pet.Deltas) string {
	var parts []string
	for _, skill := range pet.Skills {
		if v := d.Of(skill); v != 0 {
			parts = append(parts, fmt.Sprintf("%s%+d", skill, v))
		}
	}
	return strings.Join(parts, " ")
}
