package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/session"
)

func newHomeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the logged in user, their points and pets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				return printSnapshot(cmd.OutOrStdout(), svc.store.Snapshot())
			})
		},
	}
}

func printSnapshot(w io.Writer, snapshot session.Snapshot) error {
	return printOutput(w, snapshot, func(w io.Writer) error {
		if snapshot.User == nil {
			_, err := fmt.Fprintln(w, "Not logged in. Run `datagotchi login --wallet <address>` to start.")
			return err
		}
		name := snapshot.User.Username
		if name == "" {
			name = snapshot.User.WalletAddress
		}
		if _, err := fmt.Fprintf(w, "Welcome back, %s!\nPoints: %d\n", name, snapshot.User.Points); err != nil {
			return err
		}
		if snapshot.ActivePet != nil {
			if _, err := fmt.Fprintf(w, "Active pet: %s (%s)\n", snapshot.ActivePet.Name, snapshot.ActivePet.Rarity); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Pets: %d\n", len(snapshot.Pets)); err != nil {
			return err
		}
		return nil
	})
}

func newLoginCommand() *cobra.Command {
	var walletAddress, username string
	command := &cobra.Command{
		Use:   "login",
		Short: "Log in with a wallet address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				err := svc.store.Login(ctx, walletAddress, username)
				if errors.Is(err, session.ErrEmptyWalletAddress) {
					svc.notifier.Error("Please connect a wallet first")
					return err
				}
				if err != nil && svc.store.User() == nil {
					svc.notifier.Error("Login failed")
					return fmt.Errorf("login: %w", err)
				}
				if err != nil {
					// Logged in, but the pet list could not be fetched.
					svc.notifier.Error("Could not load your pets")
					return fmt.Errorf("load pets: %w", err)
				}
				svc.notifier.Success("Logged in")
				return printSnapshot(cmd.OutOrStdout(), svc.store.Snapshot())
			})
		},
	}
	command.Flags().StringVar(&walletAddress, "wallet", "", "wallet address")
	command.Flags().StringVar(&username, "username", "", "display name")
	return command
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				if err := svc.store.Logout(ctx); err != nil {
					return err
				}
				svc.notifier.Success("Logged out")
				return nil
			})
		},
	}
}

func newRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Reload the profile and pets from the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				if _, err := svc.requireUser(); err != nil {
					return err
				}
				if err := svc.store.RefreshUserData(ctx); err != nil {
					svc.notifier.Error("Could not refresh your data")
					return err
				}
				return printSnapshot(cmd.OutOrStdout(), svc.store.Snapshot())
			})
		},
	}
}
