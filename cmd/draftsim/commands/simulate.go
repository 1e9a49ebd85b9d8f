package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
)

type simulateOptions struct {
	pool     string
	rounds   int
	aiTeams  int
	userTeam string
	order    string
	seed     uint64
	asJSON   bool
}

func newSimulateCmd(global *globalOptions) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a full automatic draft and print the standings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, global, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.pool, "pool", string(pool.SelectorAllTime), "player pool: current, allTime or combined")
	f.IntVar(&opts.rounds, "rounds", draft.DefaultRounds, "number of rounds")
	f.IntVar(&opts.aiTeams, "ai-teams", draft.DefaultAITeamCount, "number of AI teams")
	f.StringVar(&opts.userTeam, "user-team", draft.DefaultUserTeamName, "name of your team")
	f.StringVar(&opts.order, "order", string(draft.OrderLinear), "pick order: linear or snake")
	f.Uint64Var(&opts.seed, "seed", 0, "seed for AI team names (0 picks one)")
	f.BoolVar(&opts.asJSON, "json", false, "print results as JSON")
	return cmd
}

func runSimulate(cmd *cobra.Command, global *globalOptions, opts *simulateOptions) error {
	logger := global.logger(cmd)
	src, err := global.source(logger)
	if err != nil {
		return err
	}
	order, err := draft.ParseOrder(opts.order)
	if err != nil {
		return err
	}

	list, sel := pool.NewNormalizer(logger, nil).Pool(src, opts.pool)
	session, err := draft.NewSession(draft.Options{
		Pool:         list,
		PoolName:     string(sel),
		Rounds:       opts.rounds,
		AITeamCount:  opts.aiTeams,
		UserTeamName: opts.userTeam,
		Order:        order,
		Seed:         opts.seed,
	})
	if err != nil {
		return err
	}

	strategy := draft.NeedsStrategy{}
	for session.OnTheClock() != nil {
		p, err := session.AutoPick(strategy)
		if err != nil {
			return err
		}
		logging.Debug(logger, "pick", append(logging.DraftAttrs(session.ID, p.Round, p.TeamID), logging.FieldPlayer, p.PlayerName)...)
	}

	res, err := session.Standings(cmd.Context(), evaluation.NewEvaluator(logger, nil))
	if err != nil {
		return err
	}
	if opts.asJSON {
		return printJSON(cmd.OutOrStdout(), res)
	}
	printStandings(cmd.OutOrStdout(), session.Seed, res)
	return nil
}

func printStandings(w io.Writer, seed uint64, res draft.Results) {
	fmt.Fprintf(w, "Draft %s (%s pool, %d rounds, seed %d)\n\n", res.DraftID, res.Pool, res.Rounds, seed)
	printTeam(w, "*", res.User)
	for i, t := range res.AI {
		printTeam(w, fmt.Sprintf("%d", i+1), t)
	}
}

func printTeam(w io.Writer, rank string, t draft.TeamResult) {
	fmt.Fprintf(w, "%-3s %-28s %3d  %s\n", rank, t.TeamName, t.Evaluation.Score, t.Evaluation.Feedback)
	for _, p := range t.Roster {
		fmt.Fprintf(w, "      %-26s %-3s %d\n", p.Name, p.PrimaryPosition, p.OverallRating)
	}
}
