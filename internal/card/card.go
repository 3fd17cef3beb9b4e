package card

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by New
var (
	ErrMissingSuit         = errors.New("no suit")
	ErrMissingValueOrWorth = errors.New("no value/worth")
	ErrInvalidValue        = errors.New("invalid value")
	ErrInvalidSuit         = errors.New("invalid suit")
	ErrInvalidWorth        = errors.New("invalid worth")
)

// Suit is the lowercase, plural suit of a card (e.g. spades)
type Suit string

const (
	Spades   Suit = "spades"
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
)

// Value is the rank name of a card (e.g. ace)
type Value string

const (
	Ace   Value = "ace"
	Two   Value = "two"
	Three Value = "three"
	Four  Value = "four"
	Five  Value = "five"
	Six   Value = "six"
	Seven Value = "seven"
	Eight Value = "eight"
	Nine  Value = "nine"
	Ten   Value = "ten"
	Jack  Value = "jack"
	Queen Value = "queen"
	King  Value = "king"
)

// Worth is the numeric worth of a card, ace being 1 and king 13
type Worth int

type rank struct {
	value Value
	worth Worth
}

// ranks is the fixed rank-to-worth table, ordered ace to king
var ranks = [13]rank{
	{Ace, 1},
	{Two, 2},
	{Three, 3},
	{Four, 4},
	{Five, 5},
	{Six, 6},
	{Seven, 7},
	{Eight, 8},
	{Nine, 9},
	{Ten, 10},
	{Jack, 11},
	{Queen, 12},
	{King, 13},
}

var suits = [4]Suit{Spades, Hearts, Clubs, Diamonds}

// Values returns the 13 rank names from ace to king
func Values() []Value {
	values := make([]Value, 0, len(ranks))
	for _, r := range ranks {
		values = append(values, r.value)
	}
	return values
}

// Suits returns the four suits
func Suits() []Suit {
	s := suits
	return s[:]
}

// WorthOf looks up the worth of a rank name
func WorthOf(v Value) (Worth, bool) {
	for _, r := range ranks {
		if r.value == v {
			return r.worth, true
		}
	}
	return 0, false
}

// ValueOf looks up the rank name for a worth
func ValueOf(w Worth) (Value, bool) {
	for _, r := range ranks {
		if r.worth == w {
			return r.value, true
		}
	}
	return "", false
}

// Valid reports whether v is one of the 13 rank names
func (v Value) Valid() bool {
	_, ok := WorthOf(v)
	return ok
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	for _, suit := range suits {
		if suit == s {
			return true
		}
	}
	return false
}

// Options configures a new card. Either Name, or Suit plus one of Value/Worth.
// Name takes precedence; any Suit, Value or Worth given alongside it must
// agree with the name or New fails.
type Options struct {
	Name     string // Full name, e.g. "king of hearts"
	Suit     Suit
	Value    Value
	Worth    Worth
	Position *int // Position in a deck, if any
}

// Card represents a playing card
type Card struct {
	Suit     Suit
	Value    Value
	Worth    Worth
	Name     string // Always "<value> of <suit>"
	Position *int   // 0-based position in the owning deck, nil when untracked
}

// New creates a card from the given options
func New(opts Options) (*Card, error) {
	if opts.Name != "" {
		c, err := fromName(opts.Name, opts.Position)
		if err != nil {
			return nil, err
		}
		if err := checkAgainstName(c, opts); err != nil {
			return nil, err
		}
		return c, nil
	}

	if opts.Suit == "" {
		return nil, ErrMissingSuit
	}
	if !opts.Suit.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSuit, opts.Suit)
	}
	if opts.Value == "" && opts.Worth == 0 {
		return nil, ErrMissingValueOrWorth
	}

	value, worth := opts.Value, opts.Worth
	switch {
	case value == "":
		v, ok := ValueOf(worth)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrInvalidWorth, worth)
		}
		value = v
	case worth == 0:
		w, ok := WorthOf(value)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidValue, value)
		}
		worth = w
	default:
		w, ok := WorthOf(value)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidValue, value)
		}
		if w != worth {
			return nil, fmt.Errorf("%w: %d does not match %s", ErrInvalidWorth, worth, value)
		}
	}

	return &Card{
		Suit:     opts.Suit,
		Value:    value,
		Worth:    worth,
		Name:     nameOf(value, opts.Suit),
		Position: copyPosition(opts.Position),
	}, nil
}

// fromName parses a name such as "two of diamonds"
func fromName(name string, position *int) (*Card, error) {
	name = strings.ToLower(name)

	// Value is everything before the first space
	var value Value
	if i := strings.Index(name, " "); i >= 0 {
		value = Value(name[:i])
	}

	// Suit is everything after the first "of "
	var suit Suit
	if i := strings.Index(name, "of "); i >= 0 {
		suit = Suit(name[i+len("of "):])
	}

	worth, ok := WorthOf(value)
	if !ok {
		return nil, fmt.Errorf("%w in name: %q", ErrInvalidValue, name)
	}
	if !suit.Valid() {
		return nil, fmt.Errorf("%w in name: %q", ErrInvalidSuit, name)
	}

	return &Card{
		Suit:     suit,
		Value:    value,
		Worth:    worth,
		Name:     nameOf(value, suit),
		Position: copyPosition(position),
	}, nil
}

// checkAgainstName rejects suit, value or worth options that contradict the name
func checkAgainstName(c *Card, opts Options) error {
	if opts.Suit != "" && opts.Suit != c.Suit {
		return fmt.Errorf("%w: %q conflicts with name %q", ErrInvalidSuit, opts.Suit, c.Name)
	}
	if opts.Value != "" && opts.Value != c.Value {
		return fmt.Errorf("%w: %q conflicts with name %q", ErrInvalidValue, opts.Value, c.Name)
	}
	if opts.Worth != 0 && opts.Worth != c.Worth {
		return fmt.Errorf("%w: %d conflicts with name %q", ErrInvalidWorth, opts.Worth, c.Name)
	}
	return nil
}

// Parse creates a card from its full name
func Parse(name string) (*Card, error) {
	return New(Options{Name: name})
}

// Must is like New but panics on error
func Must(opts Options) *Card {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Card) String() string {
	return c.Name
}

// Matches reports whether both cards share suit and value
func (c *Card) Matches(other *Card) bool {
	if c == nil || other == nil {
		return false
	}
	return c.Suit == other.Suit && c.Value == other.Value
}

// HasPosition reports whether the card is tracked by a deck
func (c *Card) HasPosition() bool {
	return c.Position != nil
}

// PositionOr returns the card's position, or def when it has none
func (c *Card) PositionOr(def int) int {
	if c.Position == nil {
		return def
	}
	return *c.Position
}

// SetPosition records the card's position in a deck
func (c *Card) SetPosition(position int) {
	c.Position = &position
}

// ClearPosition marks the card as untracked
func (c *Card) ClearPosition() {
	c.Position = nil
}

func nameOf(value Value, suit Suit) string {
	return fmt.Sprintf("%s of %s", value, suit)
}

func copyPosition(position *int) *int {
	if position == nil {
		return nil
	}
	p := *position
	return &p
}
