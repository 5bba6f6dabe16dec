package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/api"
	"github.com/datagotchi/datagotchi/internal/knowledge"
)

func newFeedCommand() *cobra.Command {
	var (
		text, url, file string
		input           knowledge.Input
	)
	command := &cobra.Command{
		Use:   "feed",
		Short: "Feed text, a URL or a file to the active pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Type, input.Content, input.URL, input.FilePath = feedSource(text, url, file)
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				petID := ""
				if activePet := svc.store.ActivePet(); activePet != nil {
					petID = activePet.ID
				}
				instance, err := svc.ingester.Submit(ctx, petID, input)
				if err != nil {
					return err
				}
				return printOutput(cmd.OutOrStdout(), instance, func(w io.Writer) error {
					return printInstance(w, *instance)
				})
			})
		},
	}
	command.Flags().StringVar(&text, "text", "", "text to feed")
	command.Flags().StringVar(&url, "url", "", "URL to feed")
	command.Flags().StringVar(&file, "file", "", "path of a text file to feed")
	command.Flags().StringVar(&input.Title, "title", "", "title of the entry")
	command.Flags().StringVar(&input.Category, "category", "", "category of the entry")
	command.Flags().StringSliceVar(&input.Tags, "tags", nil, "comma separated tags")
	command.MarkFlagsMutuallyExclusive("text", "url", "file")
	command.MarkFlagsOneRequired("text", "url", "file")
	return command
}

// feedSource maps the chosen flag to an ingestion type and its value.
func feedSource(text, url, file string) (knowledge.Type, string, string, string) {
	switch {
	case url != "":
		return knowledge.TypeURL, "", url, ""
	case file != "":
		return knowledge.TypeFile, "", "", file
	default:
		return knowledge.TypeText, text, "", ""
	}
}

func printInstance(w io.Writer, instance api.DataInstance) error {
	if _, err := fmt.Fprintf(w, "Instance %s (%s)\n", instance.ID, instance.ContentType); err != nil {
		return err
	}
	for _, k := range instance.Knowledge {
		if _, err := fmt.Fprintf(w, "  - %s\n", knowledgeLabel(k)); err != nil {
			return err
		}
	}
	return nil
}

func knowledgeLabel(k api.Knowledge) string {
	if k.Title != "" {
		return k.Title
	}
	const maxLen = 60
	runes := []rune(k.Content)
	if len(runes) > maxLen {
		return string(runes[:maxLen]) + "..."
	}
	return k.Content
}
