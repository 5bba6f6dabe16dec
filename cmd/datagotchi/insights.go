package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datagotchi/datagotchi/internal/api"
)

const defaultSimilarityThreshold = 0.5

func newInsightsCommand() *cobra.Command {
	insightsCommand := &cobra.Command{
		Use:   "insights",
		Short: "Browse what the active pet has learned",
	}

	insightsCommand.AddCommand(newInsightsKnowledgeCommand())
	insightsCommand.AddCommand(newInsightsInstancesCommand())
	insightsCommand.AddCommand(newInsightsSearchCommand())

	return insightsCommand
}

func newInsightsKnowledgeCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "knowledge",
		Short: "List knowledge entries of the active pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				_, activePet, err := svc.requireActivePet()
				if err != nil {
					return err
				}
				entries, err := svc.api.ListKnowledge(ctx, activePet.ID, limit)
				if err != nil {
					svc.notifier.Error(err.Error())
					return err
				}
				return printKnowledge(cmd.OutOrStdout(), entries)
			})
		},
	}
	addLimitFlag(command.Flags(), &limit, api.DefaultLimit, "entries")
	return command
}

func newInsightsInstancesCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "instances",
		Short: "List data fed to the active pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				_, activePet, err := svc.requireActivePet()
				if err != nil {
					return err
				}
				instances, err := svc.api.ListInstances(ctx, activePet.ID, limit)
				if err != nil {
					svc.notifier.Error(err.Error())
					return err
				}
				return printOutput(cmd.OutOrStdout(), instances, func(w io.Writer) error {
					for _, instance := range instances {
						if err := printInstance(w, instance); err != nil {
							return err
						}
					}
					return nil
				})
			})
		},
	}
	addLimitFlag(command.Flags(), &limit, api.DefaultLimit, "instances")
	return command
}

func newInsightsSearchCommand() *cobra.Command {
	var params api.SearchParams
	command := &cobra.Command{
		Use:   "search <query>",
		Short: "Semantic search over the active pet's knowledge",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.Query = strings.Join(args, " ")
			return withServices(cmd, func(ctx context.Context, svc *services) error {
				_, activePet, err := svc.requireActivePet()
				if err != nil {
					return err
				}
				entries, err := svc.api.SemanticSearch(ctx, activePet.ID, params)
				if err != nil {
					svc.notifier.Error(err.Error())
					return err
				}
				return printKnowledge(cmd.OutOrStdout(), entries)
			})
		},
	}
	addLimitFlag(command.Flags(), &params.Limit, api.DefaultLimit, "results")
	command.Flags().Float64Var(&params.SimilarityThreshold, "threshold", defaultSimilarityThreshold, "minimum similarity")
	return command
}

func printKnowledge(w io.Writer, entries []api.Knowledge) error {
	return printOutput(w, entries, func(w io.Writer) error {
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "Nothing learned yet. Feed your pet with `datagotchi feed`.")
			return err
		}
		for _, k := range entries {
			line := "- " + knowledgeLabel(k)
			if k.Similarity > 0 {
				line += fmt.Sprintf(" (%.2f)", k.Similarity)
			}
			if len(k.Tags) > 0 {
				line += " [" + strings.Join(k.Tags, ", ") + "]"
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	})
}
