// Package code defines the symbols, palette and fixed-length codes the
// player guesses at.
package code

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/zyedidia/generic/mapset"
)

// Length is the number of symbols in every code.
const Length = 4

// Symbol is a single coloured peg, identified by its letter.
type Symbol byte

func (s Symbol) String() string {
	return string(rune(s))
}

// Palette is the ordered set of symbols a code may be built from.
type Palette struct {
	symbols []Symbol
	members mapset.Set[Symbol]
}

// NewPalette builds a palette from the given symbols, in order.
// Duplicate symbols are ignored after their first occurrence.
func NewPalette(symbols ...Symbol) *Palette {
	p := &Palette{members: mapset.New[Symbol]()}
	for _, s := range symbols {
		if p.members.Has(s) {
			continue
		}
		p.members.Put(s)
		p.symbols = append(p.symbols, s)
	}
	return p
}

// Colors is the standard palette: Blue, Green, Orange, Red, White, Yellow.
var Colors = NewPalette('B', 'G', 'O', 'R', 'W', 'Y')

// Has reports whether s belongs to the palette.
func (p *Palette) Has(s Symbol) bool {
	return p.members.Has(s)
}

// Size returns the number of symbols in the palette.
func (p *Palette) Size() int {
	return len(p.symbols)
}

// Symbols returns a copy of the palette's symbols in order.
func (p *Palette) Symbols() []Symbol {
	out := make([]Symbol, len(p.symbols))
	copy(out, p.symbols)
	return out
}

// String renders the palette as "[B, G, O, R, W, Y]".
func (p *Palette) String() string {
	return bracketed(p.symbols)
}

// Code is an ordered sequence of Length symbols. It is used both for the
// hidden secret and for a player's guess.
type Code [Length]Symbol

// String renders the code as "[B, G, O, R]".
func (c Code) String() string {
	return bracketed(c[:])
}

// Compact renders the code the way the player types it, e.g. "BGOR".
func (c Code) Compact() string {
	var b strings.Builder
	for _, s := range c {
		b.WriteByte(byte(s))
	}
	return b.String()
}

var (
	// ErrInvalidGuess is the parent of every guess-format error.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrLength reports a guess with the wrong number of symbols.
	ErrLength = fmt.Errorf("%w: wrong length", ErrInvalidGuess)
	// ErrSymbol reports a guess containing a symbol outside the palette.
	ErrSymbol = fmt.Errorf("%w: unknown symbol", ErrInvalidGuess)
)

// Parse converts a line typed by the player into a Code drawn from p.
// The line is matched as given: symbols are case-sensitive and
// whitespace counts against the length.
func Parse(p *Palette, line string) (Code, error) {
	var c Code

	symbols := []rune(line)
	if len(symbols) != Length {
		return c, fmt.Errorf("%w: got %d symbols, want %d", ErrLength, len(symbols), Length)
	}

	for i, r := range symbols {
		if r > unicode.MaxASCII || !p.Has(Symbol(r)) {
			return c, fmt.Errorf("%w: %q", ErrSymbol, r)
		}
		c[i] = Symbol(r)
	}

	return c, nil
}

// Random draws each position of a new code independently and uniformly
// from p.
func Random(p *Palette, rng *rand.Rand) Code {
	var c Code
	for i := range c {
		c[i] = p.symbols[rng.Intn(len(p.symbols))]
	}
	return c
}

// Feedback is the result of comparing a guess with the secret.
type Feedback struct {
	Exact   int // right symbol, right position
	Partial int // right symbol, wrong position
}

// Solved reports whether every position matched exactly.
func (f Feedback) Solved() bool {
	return f.Exact == Length
}

func bracketed(symbols []Symbol) string {
	parts := make([]string, len(symbols))
	for i, s := range symbols {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
