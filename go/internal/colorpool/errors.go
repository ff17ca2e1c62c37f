package colorpool

import "errors"

// ErrInvalidState is returned when a colour is returned that the pool does not lend out.
var ErrInvalidState = errors.New("invalid color pool state")

// ErrEmptyPalette is returned when a pool is built without colours.
var ErrEmptyPalette = errors.New("empty palette")

// ErrDuplicateColor is returned when a palette lists the same colour twice.
var ErrDuplicateColor = errors.New("duplicate color")

// ErrInvalidHex is returned when a colour string is not #RRGGBB.
var ErrInvalidHex = errors.New("invalid hex color")
