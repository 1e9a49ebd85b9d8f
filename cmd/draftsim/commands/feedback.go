package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
)

func newFeedbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feedback SCORE",
		Short: "Print the feedback message for a roster score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("score must be an integer: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), evaluation.FeedbackForScore(score))
			return nil
		},
	}
}
