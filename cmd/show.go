package cmd

import (
	"fmt"
	"strings"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/arcanaland/cardtable/internal/render"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Display a card with ANSI art",
	Long: `Show draws a card face in the terminal next to its details.
The card can be given by name, or by suit and worth with --suit and --worth.

Examples:
  cardtable card show "jack of clubs"
  cardtable card show --suit hearts --worth 12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, _ := cmd.Flags().GetString("suit")
		worth, _ := cmd.Flags().GetInt("worth")

		opts := card.Options{
			Name:  strings.Join(args, " "),
			Suit:  card.Suit(strings.ToLower(suit)),
			Worth: card.Worth(worth),
		}
		c, err := card.New(opts)
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), render.SideBySide(render.CardFace(c), render.Info(c)))
		fmt.Fprintln(cmd.OutOrStdout())

		return nil
	},
}

func init() {
	cardCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("suit", "s", "", "Suit of the card when no name is given")
	showCmd.Flags().IntP("worth", "w", 0, "Worth of the card (1-13) when no name is given")
}
