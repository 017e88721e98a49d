package main

import (
	"github.com/2beens/gymready/internal/gymstats/readiness"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute readiness and the load decision offline",
		Long: `score evaluates the progression rules locally, without a service.
Metrics that are not given count as absent. Without --no-survey the given
metrics are treated as the latest survey.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			load, _ := cmd.Flags().GetFloat64("load")
			rawCategory, _ := cmd.Flags().GetString("category")
			noSurvey, _ := cmd.Flags().GetBool("no-survey")

			category, err := readiness.ParseCategory(rawCategory)
			if err != nil {
				return err
			}

			in := readiness.Input{
				CurrentLoad: load,
				Category:    category,
			}
			if !noSurvey {
				surveyMetrics, err := metricsFromFlags(cmd)
				if err != nil {
					return err
				}
				in.Survey = surveyMetrics
			}
			if cmd.Flags().Changed("avg-rpe") {
				avgRPE, _ := cmd.Flags().GetFloat64("avg-rpe")
				in.RecentAvgRPE = &avgRPE
			}

			rec := readiness.Evaluate(in)
			return printJSON(cmd.OutOrStdout(), struct {
				readiness.Recommendation
				Advice string `json:"advice"`
			}{
				Recommendation: rec,
				Advice:         readiness.Advice(rec.ReadinessIndex),
			})
		},
	}

	cmd.Flags().Float64("load", 0, "current working load")
	cmd.Flags().String("category", readiness.CategoryCompound.String(), "exercise category [compound | isolation]")
	cmd.Flags().Float64("avg-rpe", 0, "average RPE of recent sessions")
	cmd.Flags().Bool("no-survey", false, "evaluate as if no survey was ever submitted")
	addMetricFlags(cmd)

	return cmd
}
