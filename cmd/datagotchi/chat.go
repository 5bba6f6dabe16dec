package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/assistant"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Talk to the active pet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				_, activePet, err := svc.requireActivePet()
				if err != nil {
					return err
				}
				response, err := svc.assistant.Chat(ctx, assistant.ChatRequest{
					PetID:   activePet.ID,
					Message: strings.Join(args, " "),
				})
				if err != nil {
					svc.notifier.Error(err.Error())
					return err
				}
				return printOutput(cmd.OutOrStdout(), response, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s: %s\n", activePet.Name, response.Response)
					return err
				})
			})
		},
	}
}
