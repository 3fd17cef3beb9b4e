package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/render"
	"github.com/spf13/cobra"
)

// cardCmd represents the card command group
var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Parse and display single cards",
}

// cardParseCmd represents the card parse command
var cardParseCmd = &cobra.Command{
	Use:   "parse [name]",
	Short: "Parse a card name such as 'king of hearts'",
	Long: `Parse checks that a card name is made of a known value and suit,
and prints the suit, value and worth it resolves to.

Examples:
  cardtable card parse "ace of spades"
  cardtable card parse queen of diamonds`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		c, err := card.Parse(name)
		if err != nil {
			return fmt.Errorf("invalid card %q: %w", name, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name:  %s\n", c.Name)
		fmt.Fprintf(out, "suit:  %s\n", c.Suit)
		fmt.Fprintf(out, "value: %s\n", c.Value)
		fmt.Fprintf(out, "worth: %d\n", c.Worth)
		fmt.Fprintf(out, "short: %s\n", render.Colorize(c))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(cardCmd)
	cardCmd.AddCommand(cardParseCmd)
}
