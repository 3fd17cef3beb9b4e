package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/cardtable/internal/card"
	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// Card face palette
var (
	faceColor  = mustHex("#f8f4e8")
	edgeColor  = mustHex("#3b3b3b")
	redColor   = mustHex("#c0392b")
	blackColor = mustHex("#1c1c1c")
)

const (
	faceWidth  = 11
	faceHeight = 7
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SuitSymbol returns the symbol for a suit
func SuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Spades:
		return "♠"
	case card.Hearts:
		return "♥"
	case card.Clubs:
		return "♣"
	case card.Diamonds:
		return "♦"
	default:
		return "•"
	}
}

// IsRed reports whether the suit is printed in red
func IsRed(suit card.Suit) bool {
	return suit == card.Hearts || suit == card.Diamonds
}

// RankSymbol returns the index letter or number for a value (A, 2 … 10, J, Q, K)
func RankSymbol(value card.Value) string {
	switch value {
	case card.Ace:
		return "A"
	case card.Jack:
		return "J"
	case card.Queen:
		return "Q"
	case card.King:
		return "K"
	}
	worth, ok := card.WorthOf(value)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%d", worth)
}

// ShortName returns the compact form of a card, e.g. A♠ or 10♥
func ShortName(c *card.Card) string {
	return RankSymbol(c.Value) + SuitSymbol(c.Suit)
}

// Colorize returns the short name coloured by suit
func Colorize(c *card.Card) string {
	if IsRed(c.Suit) {
		return colorize.RedString(ShortName(c))
	}
	return colorize.HiWhiteString(ShortName(c))
}

// Listing lays out cards as "position:card" cells wrapped to width
func Listing(cards []*card.Card, width int) []string {
	cells := make([]string, 0, len(cards))
	for i, c := range cards {
		pos := "-"
		if c.HasPosition() {
			pos = fmt.Sprintf("%d", *c.Position)
		}
		cells = append(cells, fmt.Sprintf("%d:%s(%s)", i, ShortName(c), pos))
	}
	return wrapText(strings.Join(cells, " "), width)
}

// CardFace renders the card as truecolor ANSI art
func CardFace(c *card.Card) string {
	ink := blackColor
	if IsRed(c.Suit) {
		ink = redColor
	}
	border := faceColor.BlendLab(edgeColor, 0.35)

	rank := RankSymbol(c.Value)
	suit := SuitSymbol(c.Suit)

	var buffer strings.Builder
	for y := 0; y < faceHeight; y++ {
		// Blank row, then the index in the corners and the pip in the middle
		line := []rune(strings.Repeat(" ", faceWidth))
		switch y {
		case 1:
			line = placeText(line, 1, rank)
		case faceHeight / 2:
			line = placeText(line, faceWidth/2, suit)
		case faceHeight - 2:
			line = placeText(line, faceWidth-1-len([]rune(rank)), rank)
		}

		for x, r := range line {
			// The outermost ring is the card edge
			bg := faceColor
			if y == 0 || y == faceHeight-1 || x == 0 || x == faceWidth-1 {
				bg = border
			}
			buffer.WriteString(ansiColorString(r, ink, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

func placeText(line []rune, at int, text string) []rune {
	for i, r := range []rune(text) {
		if at+i < len(line) {
			line[at+i] = r
		}
	}
	return line
}

// ansiColorString formats a character with truecolor ANSI codes
func ansiColorString(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// Info returns the labelled details shown next to a card face
func Info(c *card.Card) []string {
	lines := []string{
		colorize.CyanString("Card:  ") + colorize.HiWhiteString("%s", c.Name),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s · %s", c.Suit, SuitSymbol(c.Suit)),
		colorize.CyanString("Value: ") + colorize.HiWhiteString("%s", c.Value),
		colorize.CyanString("Worth: ") + colorize.HiWhiteString("%d", c.Worth),
	}
	if c.HasPosition() {
		lines = append(lines, colorize.CyanString("Pos:   ")+colorize.HiWhiteString("%d", *c.Position))
	}
	return lines
}

// SideBySide places the info lines to the right of the art
func SideBySide(art string, info []string) string {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	// Find the visible width of the art, ignoring escape codes
	maxArtWidth := 0
	for _, line := range artLines {
		if w := len([]rune(StripAnsi(line))); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	spacing := 4
	var out strings.Builder
	for i := 0; i < max(len(artLines), len(info)); i++ {
		out.WriteString("  ")

		// Pad short or missing art lines so the info column lines up
		if i < len(artLines) {
			out.WriteString(artLines[i])
			out.WriteString(strings.Repeat(" ", maxArtWidth-len([]rune(StripAnsi(artLines[i])))+spacing))
		} else {
			out.WriteString(strings.Repeat(" ", maxArtWidth+spacing))
		}
		if i < len(info) {
			out.WriteString(info[i])
		}
		out.WriteString("\n")
	}
	return out.String()
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			// First word on the line, always add it even if too long
			currentLine = word
		} else if len([]rune(currentLine))+1+len([]rune(word)) <= width {
			// Word fits on current line with a space
			currentLine += " " + word
		} else {
			// Word doesn't fit, start a new line
			result = append(result, currentLine)
			currentLine = word
		}
	}

	// Add the last line if not empty
	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			// SGR sequences end with 'm'
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			// Start of an escape sequence
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
