package colorpool

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T) *Pool {
	t.Helper()
	p, err := New(DefaultPalette(), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	return p
}

func slotStates(p *Pool) []slot {
	out := make([]slot, len(p.slots))
	copy(out, p.slots)
	return out
}

func TestBorrowHandsOutUniqueColors(t *testing.T) {
	t.Parallel()

	p := newTestPool(t)
	seen := map[string]bool{}
	for i := 0; i < p.Size(); i++ {
		c, ok := p.Borrow()
		require.True(t, ok)
		require.False(t, seen[c.Hex()], "color %s lent twice", c)
		seen[c.Hex()] = true
		require.Equal(t, i+1, p.Borrowed())
	}
	require.Equal(t, 0, p.Available())
}

func TestBorrowFromExhaustedPool(t *testing.T) {
	t.Parallel()

	p := newTestPool(t)
	for i := 0; i < p.Size(); i++ {
		_, ok := p.Borrow()
		require.True(t, ok)
	}
	before := slotStates(p)

	c, ok := p.Borrow()
	require.False(t, ok)
	require.Equal(t, Color{}, c)
	require.Equal(t, before, slotStates(p))
}

func TestReturnMakesColorAvailable(t *testing.T) {
	t.Parallel()

	p := newTestPool(t)
	c, ok := p.Borrow()
	require.True(t, ok)
	require.NoError(t, p.Return(c))
	require.Equal(t, 0, p.Borrowed())

	again, ok := p.Borrow()
	require.True(t, ok)
	require.Equal(t, c, again)
}

func TestReturnUnknownColor(t *testing.T) {
	t.Parallel()

	p := newTestPool(t)
	_, ok := p.Borrow()
	require.True(t, ok)
	before := slotStates(p)

	err := p.Return(Color{Name: "chartreuse", R: 0x7F, G: 0xFF, B: 0x00})
	require.ErrorIs(t, err, ErrInvalidState)
	require.Equal(t, before, slotStates(p))
}

func TestReturnColorThatIsNotBorrowed(t *testing.T) {
	t.Parallel()

	p := newTestPool(t)
	before := slotStates(p)

	err := p.Return(DefaultPalette()[0])
	require.ErrorIs(t, err, ErrInvalidState)
	require.Equal(t, before, slotStates(p))
}

func TestReshuffleKeepsBorrowedState(t *testing.T) {
	t.Parallel()

	p := newTestPool(t)
	lent := map[string]bool{}
	for i := 0; i < 4; i++ {
		c, ok := p.Borrow()
		require.True(t, ok)
		lent[c.Hex()] = true
	}

	p.Reshuffle()

	require.Equal(t, 4, p.Borrowed())
	require.ElementsMatch(t, DefaultPalette(), p.Order())
	for _, s := range p.slots {
		require.Equal(t, lent[s.color.Hex()], !s.available, "slot %s", s.color)
	}
}

func TestReshufflePermutesOrder(t *testing.T) {
	t.Parallel()

	p := newTestPool(t)
	original := p.Order()
	changed := false
	for i := 0; i < 10 && !changed; i++ {
		p.Reshuffle()
		for j, c := range p.Order() {
			if c != original[j] {
				changed = true
				break
			}
		}
	}
	require.True(t, changed)
}

func TestNewRejectsBadPalettes(t *testing.T) {
	t.Parallel()

	_, err := New(nil, nil)
	require.ErrorIs(t, err, ErrEmptyPalette)

	red := Color{Name: "red", R: 0xFF}
	_, err = New([]Color{red, {Name: "also-red", R: 0xFF}}, nil)
	require.ErrorIs(t, err, ErrDuplicateColor)
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{name: "turquoise", hex: "#40E0D0", want: Color{Name: "turquoise", R: 0x40, G: 0xE0, B: 0xD0}},
		{name: "no-hash", hex: "ffa500", want: Color{Name: "no-hash", R: 0xFF, G: 0xA5, B: 0x00}},
		{name: "short", hex: "#FFF", wantErr: true},
		{name: "bad-digit", hex: "#GG0000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.name, tt.hex)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidHex)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, "#"+strings.ToUpper(strings.TrimPrefix(tt.hex, "#")), got.Hex())
		})
	}
}
