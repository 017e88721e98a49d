package main

import (
	"fmt"

	"github.com/2beens/gymready/internal/gymstats/recovery"
	"github.com/2beens/gymready/internal/gymstats/remote"

	"github.com/spf13/cobra"
)

var metricFlags = []string{"sleep", "energy", "soreness", "motivation"}

func addMetricFlags(cmd *cobra.Command) {
	cmd.Flags().Int("sleep", recovery.DefaultMetricValue, "sleep quality (0-10)")
	cmd.Flags().Int("energy", recovery.DefaultMetricValue, "energy level (0-10)")
	cmd.Flags().Int("soreness", recovery.DefaultMetricValue, "overall soreness (0-10)")
	cmd.Flags().Int("motivation", recovery.DefaultMetricValue, "motivation (0-10)")
}

// metricsFromFlags only sets the answers given explicitly; the rest stay absent.
func metricsFromFlags(cmd *cobra.Command) (*recovery.Metrics, error) {
	values := make(map[string]*int, len(metricFlags))
	for _, name := range metricFlags {
		if !cmd.Flags().Changed(name) {
			continue
		}
		v, err := cmd.Flags().GetInt(name)
		if err != nil {
			return nil, err
		}
		values[name] = &v
	}
	return &recovery.Metrics{
		SleepQuality:    values["sleep"],
		EnergyLevel:     values["energy"],
		OverallSoreness: values["soreness"],
		Motivation:      values["motivation"],
	}, nil
}

func newSurveyCmd(clientFn func() *remote.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Submit today's recovery survey",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			if userID == "" {
				return fmt.Errorf("--user is required")
			}
			surveyMetrics, err := metricsFromFlags(cmd)
			if err != nil {
				return err
			}

			resp, err := clientFn().SubmitSurvey(cmd.Context(), remote.SurveyRequest{
				UserID:  userID,
				Metrics: surveyMetrics,
			})
			if err != nil {
				return fmt.Errorf("submit survey: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().String("user", "", "user id")
	addMetricFlags(cmd)

	return cmd
}
