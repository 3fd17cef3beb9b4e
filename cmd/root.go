package cmd

import (
	"github.com/arcanaland/cardtable/internal/config"
	"github.com/arcanaland/cardtable/internal/deck"
	"github.com/charmbracelet/log"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *log.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardtable",
	Short: "Tool for handling a standard 52-card deck",
	Long: `Cardtable is a command-line tool for parsing playing cards and manipulating
a standard 52-card deck: pulling, inserting, removing and shuffling cards
while tracking each card's position.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		level := cfg.Level()
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = log.DebugLevel
		}
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "cardtable",
		})

		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || !cfg.Color {
			colorize.NoColor = true
		}

		logger.Debug("loaded config", "path", config.GetConfigFilePath(), "seed", cfg.Seed)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	RootCmd.PersistentFlags().Int64("seed", 0, "Seed the random source (0 uses the config, then the clock)")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newDeck builds a deck from the loaded config and the --seed flag
func newDeck(cmd *cobra.Command) *deck.Deck {
	opts := cfg.DeckOptions(logger)
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		opts = append(opts, deck.WithSeed(seed))
	}
	return deck.New(opts...)
}
