package deck

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/arcanaland/cardtable/internal/card"
	"github.com/charmbracelet/log"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrEmpty           = errors.New("deck is empty")
	ErrNoPosition      = errors.New("card has no recorded position")
	ErrNilCard         = errors.New("nil card")
)

// StandardSize is the number of cards in a freshly built deck
const StandardSize = 52

// Intner is a source of uniformly distributed integers in [0, n)
type Intner interface {
	Intn(n int) int
}

// canonical build order, outer ranks then these suits
var buildSuits = []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs}

// Deck is an ordered, mutable collection of playing cards.
//
// Card positions are only guaranteed to match their index right after New
// and after Shuffle. Pull, Insert and Remove leave other cards' positions
// untouched unless renumbering is enabled. A pulled or removed card keeps
// the position it last held, so it can be reinserted there.
type Deck struct {
	cards    []*card.Card
	size     int
	rng      Intner
	logger   *log.Logger
	renumber bool
}

// Option configures a Deck
type Option func(*Deck)

// WithRand sets the random source used for shuffling and random positions
func WithRand(rng Intner) Option {
	return func(d *Deck) {
		d.rng = rng
	}
}

// WithSeed seeds a math/rand source for deterministic decks
func WithSeed(seed int64) Option {
	return func(d *Deck) {
		d.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used to trace mutations
func WithLogger(logger *log.Logger) Option {
	return func(d *Deck) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithRenumbering makes Pull, Insert and Remove keep every remaining
// position in sync with its index. Off by default.
func WithRenumbering(enabled bool) Option {
	return func(d *Deck) {
		d.renumber = enabled
	}
}

// New creates a deck of 52 unique cards in canonical order
func New(opts ...Option) *Deck {
	d := &Deck{
		cards: make([]*card.Card, 0, StandardSize),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.logger == nil {
		d.logger = log.New(io.Discard)
	}

	// Ranks ace to king, each in spades, hearts, diamonds, clubs
	pos := 0
	for _, value := range card.Values() {
		for _, suit := range buildSuits {
			p := pos
			d.cards = append(d.cards, card.Must(card.Options{
				Name:     fmt.Sprintf("%s of %s", value, suit),
				Position: &p,
			}))
			pos++
		}
	}
	d.size = len(d.cards)

	return d
}

// Size returns the number of cards in the deck
func (d *Deck) Size() int {
	return d.size
}

// Len returns the length of the underlying card slice
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the cards in order. The slice is a copy; the cards are not.
func (d *Deck) Cards() []*card.Card {
	cards := make([]*card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// At returns the card at index i
func (d *Deck) At(i int) (*card.Card, error) {
	if i < 0 || i >= len(d.cards) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(d.cards))
	}
	return d.cards[i], nil
}

// Index returns the index of the first card matching c's suit and value, or -1
func (d *Deck) Index(c *card.Card) int {
	for i, existing := range d.cards {
		if existing.Matches(c) {
			return i
		}
	}
	return -1
}

// Pull removes and returns the card at position
func (d *Deck) Pull(position int) (*card.Card, error) {
	if position < 0 || position >= len(d.cards) {
		return nil, fmt.Errorf("%w: pull %d (len %d)", ErrIndexOutOfRange, position, len(d.cards))
	}

	c := d.cards[position]
	d.cards = append(d.cards[:position], d.cards[position+1:]...)
	d.size--

	// Cards after the gap keep their old positions unless renumbering
	if d.renumber {
		c.SetPosition(position)
		d.renumberFrom(position)
	}

	d.logger.Debug("pulled card", "card", c.Name, "position", position, "size", d.size)
	return c, nil
}

// PullRandom removes and returns a card from a random position
func (d *Deck) PullRandom() (*card.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmpty
	}
	return d.Pull(d.rng.Intn(len(d.cards)))
}

// Insert places c at position, which may equal Size to append. Returns c.
func (d *Deck) Insert(c *card.Card, position int) (*card.Card, error) {
	if c == nil {
		return nil, ErrNilCard
	}
	if position < 0 || position > len(d.cards) {
		return nil, fmt.Errorf("%w: insert %d (len %d)", ErrIndexOutOfRange, position, len(d.cards))
	}

	// Grow by one and shift the tail right to open the slot
	d.cards = append(d.cards, nil)
	copy(d.cards[position+1:], d.cards[position:])
	d.cards[position] = c
	c.SetPosition(position)
	d.size++

	if d.renumber {
		d.renumberFrom(position + 1)
	}

	d.logger.Debug("inserted card", "card", c.Name, "position", position, "size", d.size)
	return c, nil
}

// InsertRandom places c at a random position in [0, Size)
func (d *Deck) InsertRandom(c *card.Card) (*card.Card, error) {
	position := 0
	if len(d.cards) > 0 {
		position = d.rng.Intn(len(d.cards))
	}
	return d.Insert(c, position)
}

// Remove takes the first card matching c's suit and value out of the deck.
// It returns c and true, or nil and false when nothing matches. With
// renumbering enabled c records the index it was removed from.
func (d *Deck) Remove(c *card.Card) (*card.Card, bool) {
	if c == nil {
		return nil, false
	}

	index := d.Index(c)
	if index == -1 {
		d.logger.Debug("card not in deck", "card", c.Name)
		return nil, false
	}

	removed := d.cards[index]
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
	d.size--

	if d.renumber {
		removed.SetPosition(index)
		c.SetPosition(index)
		d.renumberFrom(index)
	}

	d.logger.Debug("removed card", "card", c.Name, "position", index, "size", d.size)
	return c, true
}

// Reinsert puts c back at the position it last recorded
func (d *Deck) Reinsert(c *card.Card) (*card.Card, error) {
	if c == nil {
		return nil, ErrNilCard
	}
	if !c.HasPosition() {
		return nil, fmt.Errorf("%w: %s", ErrNoPosition, c.Name)
	}
	return d.Insert(c, *c.Position)
}

// Shuffle shuffles the deck in place with the Fisher-Yates algorithm and
// returns the new order. Every card's position matches its index afterwards.
//
// Only a single pass is ever made, whatever passes says; a negative passes
// leaves the deck untouched and returns nil.
func (d *Deck) Shuffle(passes int) []*card.Card {
	if passes < 0 {
		return nil
	}

	// Ascending Fisher-Yates: swap each index with one at or below it
	for i := range d.cards {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		d.cards[i].SetPosition(i)
		d.cards[j].SetPosition(j)
	}

	d.logger.Debug("shuffled deck", "size", d.size, "passes", passes)
	return d.Cards()
}

func (d *Deck) renumberFrom(start int) {
	for i := start; i < len(d.cards); i++ {
		d.cards[i].SetPosition(i)
	}
}
