package card

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllNames(t *testing.T) {
	t.Parallel()

	for i, value := range Values() {
		for _, suit := range Suits() {
			name := fmt.Sprintf("%s of %s", value, suit)
			c, err := Parse(name)
			require.NoError(t, err, name)

			assert.Equal(t, value, c.Value, name)
			assert.Equal(t, suit, c.Suit, name)
			assert.Equal(t, Worth(i+1), c.Worth, name)
			assert.Equal(t, name, c.Name)
			assert.False(t, c.HasPosition(), name)
		}
	}
}

func TestParseInvalidName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"unknown value", "thing of stuff", ErrInvalidValue},
		{"unknown suit", "ace of dogs", ErrInvalidSuit},
		{"no space", "ace", ErrInvalidValue},
		{"no of", "ace spades", ErrInvalidSuit},
		{"trailing space on suit", "ace of spades ", ErrInvalidSuit},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tc.input)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestParseNameWithPosition(t *testing.T) {
	t.Parallel()

	pos := 1
	c, err := New(Options{Name: "Ace of Spades", Position: &pos})
	require.NoError(t, err)

	assert.Equal(t, Ace, c.Value)
	assert.Equal(t, Spades, c.Suit)
	assert.Equal(t, "ace of spades", c.Name)
	require.True(t, c.HasPosition())
	assert.Equal(t, 1, *c.Position)

	// the card keeps its own copy of the position
	pos = 7
	assert.Equal(t, 1, *c.Position)
}

func TestNewFromSuitAndValue(t *testing.T) {
	t.Parallel()

	zero := 0
	tests := []struct {
		name      string
		opts      Options
		wantValue Value
		wantWorth Worth
		wantName  string
		wantErr   error
	}{
		{
			name:      "value only",
			opts:      Options{Suit: Hearts, Value: Queen},
			wantValue: Queen,
			wantWorth: 12,
			wantName:  "queen of hearts",
		},
		{
			name:      "worth only",
			opts:      Options{Suit: Clubs, Worth: 1},
			wantValue: Ace,
			wantWorth: 1,
			wantName:  "ace of clubs",
		},
		{
			name:      "value and matching worth",
			opts:      Options{Suit: Diamonds, Value: Ten, Worth: 10},
			wantValue: Ten,
			wantWorth: 10,
			wantName:  "ten of diamonds",
		},
		{
			name:      "position zero is kept",
			opts:      Options{Suit: Spades, Value: King, Position: &zero},
			wantValue: King,
			wantWorth: 13,
			wantName:  "king of spades",
		},
		{name: "missing suit", opts: Options{Value: Ace}, wantErr: ErrMissingSuit},
		{name: "missing value and worth", opts: Options{Suit: Spades}, wantErr: ErrMissingValueOrWorth},
		{name: "worth too high", opts: Options{Suit: Spades, Worth: 14}, wantErr: ErrInvalidWorth},
		{name: "worth negative", opts: Options{Suit: Spades, Worth: -1}, wantErr: ErrInvalidWorth},
		{name: "mismatched worth", opts: Options{Suit: Spades, Value: Two, Worth: 3}, wantErr: ErrInvalidWorth},
		{name: "unknown suit", opts: Options{Suit: "dogs", Value: Ace}, wantErr: ErrInvalidSuit},
		{name: "unknown value", opts: Options{Suit: Spades, Value: "joker"}, wantErr: ErrInvalidValue},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(tc.opts)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantValue, c.Value)
			assert.Equal(t, tc.wantWorth, c.Worth)
			assert.Equal(t, tc.wantName, c.Name)
			assert.Equal(t, tc.opts.Position != nil, c.HasPosition())
		})
	}
}

func TestNewIsValueEqual(t *testing.T) {
	t.Parallel()

	pos := 3
	opts := Options{Suit: Hearts, Worth: 7, Position: &pos}
	a := Must(opts)
	b := Must(opts)

	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
	assert.NotSame(t, a.Position, b.Position)
	assert.True(t, a.Matches(b))
}

func TestRankTable(t *testing.T) {
	t.Parallel()

	values := Values()
	require.Len(t, values, 13)
	assert.Equal(t, Ace, values[0])
	assert.Equal(t, King, values[12])

	for i, v := range values {
		w, ok := WorthOf(v)
		require.True(t, ok)
		assert.Equal(t, Worth(i+1), w)

		back, ok := ValueOf(w)
		require.True(t, ok)
		assert.Equal(t, v, back)
	}

	_, ok := ValueOf(0)
	assert.False(t, ok)
	_, ok = WorthOf("joker")
	assert.False(t, ok)

	// callers cannot modify the shared tables
	Suits()[0] = "dogs"
	values[0] = "joker"
	assert.Equal(t, Spades, Suits()[0])
	assert.Equal(t, Ace, Values()[0])
}

func TestPositionHelpers(t *testing.T) {
	t.Parallel()

	c := Must(Options{Name: "five of clubs"})
	assert.Equal(t, -1, c.PositionOr(-1))

	c.SetPosition(4)
	assert.Equal(t, 4, c.PositionOr(-1))

	c.ClearPosition()
	assert.False(t, c.HasPosition())
	assert.Equal(t, "five of clubs", c.String())
}

func TestMustPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { Must(Options{Name: "ace of dogs"}) })
}

func TestMatches(t *testing.T) {
	t.Parallel()

	a := Must(Options{Name: "jack of hearts"})
	b := Must(Options{Suit: Hearts, Worth: 11})
	c := Must(Options{Suit: Diamonds, Worth: 11})

	assert.True(t, a.Matches(b))
	assert.False(t, a.Matches(c))
	assert.False(t, a.Matches(nil))
}

func TestNameWithConflictingOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{"suit", Options{Name: "ace of spades", Suit: Hearts}, ErrInvalidSuit},
		{"value", Options{Name: "ace of spades", Value: King}, ErrInvalidValue},
		{"worth", Options{Name: "ace of spades", Worth: 2}, ErrInvalidWorth},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := New(tc.opts)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	c, err := New(Options{Name: "ace of spades", Suit: Spades, Value: Ace, Worth: 1})
	require.NoError(t, err)
	assert.Equal(t, "ace of spades", c.Name)
}
