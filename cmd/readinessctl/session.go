package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/gymready/internal/gymstats/recovery"
	"github.com/2beens/gymready/internal/gymstats/remote"

	"github.com/spf13/cobra"
)

// parseExercise parses a "SETSxREPSxWEIGHT" entry, e.g. "5x5x100".
func parseExercise(s string) (recovery.ExerciseEntry, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 3 {
		return recovery.ExerciseEntry{}, fmt.Errorf("invalid exercise [%s], expected SETSxREPSxWEIGHT", s)
	}

	sets, err := strconv.Atoi(parts[0])
	if err != nil {
		return recovery.ExerciseEntry{}, fmt.Errorf("invalid sets in [%s]: %w", s, err)
	}
	reps, err := strconv.Atoi(parts[1])
	if err != nil {
		return recovery.ExerciseEntry{}, fmt.Errorf("invalid reps in [%s]: %w", s, err)
	}
	weight, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return recovery.ExerciseEntry{}, fmt.Errorf("invalid weight in [%s]: %w", s, err)
	}

	return recovery.ExerciseEntry{Sets: sets, Reps: reps, Weight: weight}, nil
}

func newSessionCmd(clientFn func() *remote.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "session",
		Short:   "Log a completed session's perceived exertion",
		Example: `  readinessctl session --user u1 --rpe 7 --duration 60 -e 5x5x100 -e 3x10x40`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			rpe, _ := cmd.Flags().GetInt("rpe")
			duration, _ := cmd.Flags().GetInt("duration")
			rawExercises, _ := cmd.Flags().GetStringArray("exercise")

			if userID == "" {
				return fmt.Errorf("--user is required")
			}

			exercises := make([]recovery.ExerciseEntry, 0, len(rawExercises))
			for _, raw := range rawExercises {
				ex, err := parseExercise(raw)
				if err != nil {
					return err
				}
				exercises = append(exercises, ex)
			}

			resp, err := clientFn().LogSession(cmd.Context(), remote.SessionRequest{
				UserID:          userID,
				SessionRPE:      rpe,
				Exercises:       exercises,
				DurationMinutes: duration,
			})
			if err != nil {
				return fmt.Errorf("log session: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().String("user", "", "user id")
	cmd.Flags().Int("rpe", 0, "session RPE (1-10)")
	cmd.Flags().Int("duration", 0, "session duration in minutes")
	cmd.Flags().StringArrayP("exercise", "e", nil, "exercise as SETSxREPSxWEIGHT, repeatable")

	return cmd
}
