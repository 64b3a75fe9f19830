package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"svw.info/steps/assets"
	"svw.info/steps/internal/config"
	"svw.info/steps/internal/generator"
	"svw.info/steps/internal/hint"
	"svw.info/steps/internal/infrastructure/storage"
	"svw.info/steps/internal/logging"
	"svw.info/steps/internal/solver"
	"svw.info/steps/internal/usecase"
	"svw.info/steps/internal/validator"
)

var (
	cfg       config.Config
	dataDir   string
	logLevel  string
	logFormat string
	seed      int64
)

var rootCmd = &cobra.Command{
	Use:   "steps",
	Short: "Validate and solve ring-piece placements",
	Long: `steps checks placements of the eight ring pieces on the 5x10 peg board,
lists the moves that keep a target solution reachable and serves a JSON API
for playing dealt games.

Placements are strings of three-letter tokens: shape A-H, orientation A-H
(E-H mirrored) and anchor A-Y or a-y.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("data-dir") {
			cfg.DataDir = dataDir
		}
		if flags.Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if flags.Changed("log-format") {
			cfg.LogFormat = logFormat
		}
		if flags.Changed("seed") {
			cfg.Seed = seed
		}
		return logging.Setup(cfg.LogLevel, cfg.LogFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data-dir", "", "directory with solutions/starting files (default: embedded)")
	pf.StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	pf.StringVar(&logFormat, "log-format", "console", "console|json")
	pf.Int64Var(&seed, "seed", 0, "random seed for hints and dealing (0: clock)")
}

// newService wires providers into the use cases.
func newService(c config.Config) *usecase.Service {
	corpus := storage.NewCorpus(c.DataDir, assets.Files)
	bt := solver.NewBacktrackingSolver()
	lookup := solver.NewLookup(corpus, bt)
	return usecase.NewService(
		validator.New(),
		hint.NewHinter(lookup, bt, c.SeedOrClock()),
		lookup,
		lookup,
		generator.NewCorpusGenerator(corpus, lookup),
		storage.NewMemoryGames(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("steps failed")
		os.Exit(1)
	}
}
