package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	currentFile string
	allTimeFile string
	verbose     bool
}

// NewRootCmd builds the draftsim command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:   "draftsim",
		Short: "Offline NBA draft simulation and roster evaluation",
		Long: `draftsim runs drafts and grades rosters without the HTTP service.

Examples:
  draftsim simulate --pool current --rounds 8 --order snake
  draftsim evaluate --roster roster.json
  draftsim needs --roster roster.json --rounds 10
  draftsim feedback 72`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.currentFile, "pool-current", "", "current-era player file (default: built-in fixture)")
	root.PersistentFlags().StringVar(&opts.allTimeFile, "pool-all-time", "", "all-time player file (default: built-in fixture)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newSimulateCmd(opts),
		newEvaluateCmd(opts),
		newNeedsCmd(opts),
		newFeedbackCmd(),
	)
	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return logging.NewLogger(logging.Config{Level: level, Output: cmd.ErrOrStderr()})
}

func (o *globalOptions) source(logger *slog.Logger) (pool.Source, error) {
	return pool.LoadSource(o.currentFile, o.allTimeFile, logger)
}

// readRoster loads a JSON array of players. With raw set, the file holds
// dataset records, which are normalized and sorted first.
func readRoster(path string, raw bool, logger *slog.Logger) ([]players.Player, error) {
	if path == "" {
		return nil, fmt.Errorf("--roster is required")
	}
	if raw {
		records, skipped, err := pool.LoadFile(path)
		if err != nil {
			return nil, err
		}
		res := pool.NewNormalizer(logger, nil).Normalize(records)
		if dropped := skipped + res.Dropped; dropped > 0 {
			logging.Warn(logger, "dropped invalid roster records", logging.FieldDropped, dropped)
		}
		return res.Players, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var roster []players.Player
	if err := json.NewDecoder(f).Decode(&roster); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return roster, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
