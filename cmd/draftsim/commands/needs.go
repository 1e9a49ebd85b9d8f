package commands

import (
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
)

func newNeedsCmd(global *globalOptions) *cobra.Command {
	var (
		rosterFile string
		raw        bool
		rounds     int
	)
	cmd := &cobra.Command{
		Use:   "needs",
		Short: "Show positional needs and pick priorities for a roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roster, err := readRoster(rosterFile, raw, global.logger(cmd))
			if err != nil {
				return err
			}
			report, err := needs.Analyze(roster, rounds)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVar(&rosterFile, "roster", "", "JSON array of players")
	cmd.Flags().BoolVar(&raw, "raw", false, "roster holds raw dataset records")
	cmd.Flags().IntVar(&rounds, "rounds", draft.DefaultRounds, "total draft rounds")
	return cmd
}
