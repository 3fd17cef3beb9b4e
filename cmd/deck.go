package cmd

import (
	"fmt"
	"io"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/deck"
	"github.com/arcanaland/cardtable/internal/render"
	"github.com/arcanaland/cardtable/internal/validator"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Work with a standard 52-card deck",
	Long:  `Commands for building, shuffling and drawing from a standard 52-card deck.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the deck in canonical order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeck(cmd)
		printDeck(cmd.OutOrStdout(), d)
		return nil
	},
}

// deckShuffleCmd represents the deck shuffle command
var deckShuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle the deck and list the result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		passes := cfg.ShufflePasses
		if cmd.Flags().Changed("passes") {
			passes, _ = cmd.Flags().GetInt("passes")
		}

		d := newDeck(cmd)
		if d.Shuffle(passes) == nil {
			logger.Warn("deck was not shuffled", "passes", passes)
		}

		printDeck(cmd.OutOrStdout(), d)
		return nil
	},
}

// deckPullCmd represents the deck pull command
var deckPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Shuffle the deck and pull cards from it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")

		d := newDeck(cmd)
		d.Shuffle(cfg.ShufflePasses)

		var pulled []*card.Card
		if cmd.Flags().Changed("at") {
			at, _ := cmd.Flags().GetInt("at")
			c, err := d.Pull(at)
			if err != nil {
				return err
			}
			pulled = append(pulled, c)
		} else {
			for n := 0; n < count; n++ {
				c, err := d.PullRandom()
				if err != nil {
					return err
				}
				pulled = append(pulled, c)
			}
		}

		out := cmd.OutOrStdout()
		for _, c := range pulled {
			fmt.Fprintf(out, "%-4s %s\n", render.Colorize(c), c.Name)
		}
		fmt.Fprintf(out, "%d cards left\n", d.Size())
		return nil
	},
}

// deckAuditCmd represents the deck audit command
var deckAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Mutate a deck and report position and size consistency",
	Long: `Audit builds a deck, pulls and reinserts cards at random, optionally shuffles,
then reports stale positions, duplicates and missing cards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pulls, _ := cmd.Flags().GetInt("pull")
		inserts, _ := cmd.Flags().GetInt("insert")
		shuffle, _ := cmd.Flags().GetBool("shuffle")

		d := newDeck(cmd)
		var pulled []*card.Card
		for n := 0; n < pulls; n++ {
			c, err := d.PullRandom()
			if err != nil {
				return err
			}
			pulled = append(pulled, c)
		}
		for i := 0; i < inserts && i < len(pulled); i++ {
			if _, err := d.InsertRandom(pulled[i]); err != nil {
				return err
			}
		}
		if shuffle {
			d.Shuffle(cfg.ShufflePasses)
		}

		results, err := validator.NewValidator(d).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Audit Results:")
		fmt.Fprintln(out, "--------------")
		fmt.Fprintf(out, "size: %d\n", d.Size())

		if !results.Valid() {
			fmt.Fprintf(out, "%d errors:\n", len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
			return fmt.Errorf("audit failed")
		}

		if len(results.Warnings) == 0 {
			fmt.Fprintln(out, "deck is consistent")
			return nil
		}

		fmt.Fprintf(out, "%d warnings:\n", len(results.Warnings))
		for i, warn := range results.Warnings {
			fmt.Fprintf(out, "%d. %s\n", i+1, warn)
		}
		return nil
	},
}

func printDeck(out io.Writer, d *deck.Deck) {
	for _, line := range render.Listing(d.Cards(), render.TerminalWidth()) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "%d cards\n", d.Size())
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShuffleCmd)
	deckCmd.AddCommand(deckPullCmd)
	deckCmd.AddCommand(deckAuditCmd)

	deckShuffleCmd.Flags().IntP("passes", "p", 1, "Number of shuffle passes")
	deckPullCmd.Flags().IntP("count", "n", 1, "Number of random cards to pull")
	deckPullCmd.Flags().Int("at", 0, "Pull the card at this position instead")
	deckAuditCmd.Flags().Int("pull", 0, "Number of random cards to pull")
	deckAuditCmd.Flags().Int("insert", 0, "Number of pulled cards to insert back at random")
	deckAuditCmd.Flags().Bool("shuffle", false, "Shuffle after mutating")
}
