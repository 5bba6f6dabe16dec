package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/profile"
)

var errDeleteNotConfirmed = errors.New("pass --yes to delete your account")

func newSettingsCommand() *cobra.Command {
	settingsCommand := &cobra.Command{
		Use:   "settings",
		Short: "Account settings",
	}

	settingsCommand.AddCommand(newSettingsUsernameCommand())
	settingsCommand.AddCommand(newSettingsDeleteAccountCommand())
	settingsCommand.AddCommand(newSettingsUnlockStudioCommand())

	return settingsCommand
}

func newSettingsUsernameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "username <name>",
		Short: "Change your display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				user, err := svc.requireUser()
				if err != nil {
					return err
				}
				if err := svc.profiles.UpdateUsername(ctx, user.WalletAddress, args[0]); err != nil {
					svc.notifier.Error("Could not update your username")
					return err
				}
				if err := svc.store.RefreshUserData(ctx); err != nil {
					return err
				}
				svc.notifier.Success("Username updated")
				return nil
			})
		},
	}
}

func newSettingsDeleteAccountCommand() *cobra.Command {
	var confirmed bool
	command := &cobra.Command{
		Use:   "delete-account",
		Short: "Delete your account, pets and everything they learned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errDeleteNotConfirmed
			}
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				if _, err := svc.requireUser(); err != nil {
					return err
				}
				if err := svc.store.DeleteAccount(ctx); err != nil {
					svc.notifier.Error("Could not delete your account")
					return err
				}
				svc.notifier.Success("Account deleted")
				return nil
			})
		},
	}
	command.Flags().BoolVar(&confirmed, "yes", false, "confirm the deletion")
	return command
}

func newSettingsUnlockStudioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock-studio",
		Short: fmt.Sprintf("Spend %d points to unlock the studio", profile.StudioUnlockCost),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				user, err := svc.requireUser()
				if err != nil {
					return err
				}
				err = svc.profiles.UnlockStudio(ctx, user.WalletAddress)
				if errors.Is(err, profile.ErrStudioUnavailable) {
					svc.notifier.Error(fmt.Sprintf("You need %d points to unlock the studio", profile.StudioUnlockCost))
					return err
				}
				if err != nil {
					return err
				}
				if err := svc.store.RefreshUserData(ctx); err != nil {
					return err
				}
				svc.notifier.Success("Studio unlocked!")
				return nil
			})
		},
	}
}
