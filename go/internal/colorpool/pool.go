package colorpool

import "fmt"

// Shuffler permutes n elements through swap. *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type slot struct {
	color     Color
	available bool
}

// Pool lends out unique colours. It is not safe for concurrent use; the
// caller serializes access.
type Pool struct {
	slots []slot
	rng   Shuffler
}

// New creates a pool with every colour available. Colours are compared by
// RGB value, so a palette may not repeat one.
func New(colors []Color, rng Shuffler) (*Pool, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	seen := make(map[[3]uint8]string, len(colors))
	slots := make([]slot, 0, len(colors))
	for _, c := range colors {
		key := rgb(c)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicateColor, prev, c)
		}
		seen[key] = c.String()
		slots = append(slots, slot{color: c, available: true})
	}

	return &Pool{slots: slots, rng: rng}, nil
}

// Borrow hands out the first available colour. ok is false when every colour is lent.
func (p *Pool) Borrow() (Color, bool) {
	for i := range p.slots {
		if p.slots[i].available {
			p.slots[i].available = false
			return p.slots[i].color, true
		}
	}
	return Color{}, false
}

// Return makes a borrowed colour available again. Returning a colour the
// pool does not hold, or one that is not currently lent, fails with
// ErrInvalidState and leaves the pool untouched.
func (p *Pool) Return(c Color) error {
	key := rgb(c)
	for i := range p.slots {
		if rgb(p.slots[i].color) != key {
			continue
		}
		if p.slots[i].available {
			return fmt.Errorf("%w: color %s is not borrowed", ErrInvalidState, c)
		}
		p.slots[i].available = true
		return nil
	}
	return fmt.Errorf("%w: color %s does not belong to the pool", ErrInvalidState, c)
}

// Reshuffle randomly permutes slot order. Borrowed slots stay borrowed.
func (p *Pool) Reshuffle() {
	if p.rng == nil {
		return
	}
	p.rng.Shuffle(len(p.slots), func(i, j int) {
		p.slots[i], p.slots[j] = p.slots[j], p.slots[i]
	})
}

// Size is the number of colours in the palette.
func (p *Pool) Size() int {
	return len(p.slots)
}

// Borrowed counts colours currently lent out.
func (p *Pool) Borrowed() int {
	n := 0
	for _, s := range p.slots {
		if !s.available {
			n++
		}
	}
	return n
}

// Available counts colours that can still be borrowed.
func (p *Pool) Available() int {
	return len(p.slots) - p.Borrowed()
}

// Order returns the palette in current slot order.
func (p *Pool) Order() []Color {
	out := make([]Color, len(p.slots))
	for i, s := range p.slots {
		out[i] = s.color
	}
	return out
}

func rgb(c Color) [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}
