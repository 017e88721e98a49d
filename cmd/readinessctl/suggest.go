package main

import (
	"fmt"

	"github.com/2beens/gymready/internal/gymstats/readiness"
	"github.com/2beens/gymready/internal/gymstats/remote"

	"github.com/spf13/cobra"
)

func newSuggestCmd(clientFn func() *remote.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the service for the next session's load suggestion",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			load, _ := cmd.Flags().GetFloat64("load")
			category, _ := cmd.Flags().GetString("category")

			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			if _, err := readiness.ParseCategory(category); err != nil {
				return err
			}

			resp, err := clientFn().GetSuggestion(cmd.Context(), userID, load, category)
			if err != nil {
				return fmt.Errorf("get suggestion: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().String("user", "", "user id")
	cmd.Flags().Float64("load", 0, "current working load")
	cmd.Flags().String("category", readiness.CategoryCompound.String(), "exercise category [compound | isolation]")

	return cmd
}
