package commands

import (
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
)

func newEvaluateCmd(global *globalOptions) *cobra.Command {
	var (
		rosterFile string
		raw        bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score a roster file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := global.logger(cmd)
			roster, err := readRoster(rosterFile, raw, logger)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), evaluation.NewEvaluator(logger, nil).Evaluate(roster))
		},
	}
	cmd.Flags().StringVar(&rosterFile, "roster", "", "JSON array of players")
	cmd.Flags().BoolVar(&raw, "raw", false, "roster holds raw dataset records")
	return cmd
}
