package major

import (
	"errors"
	"fmt"
)

// Params validation errors
var (
	// ErrMissingDigit is returned when the sound table does not cover all ten digits.
	ErrMissingDigit = errors.New("digit sound table must cover digits 0-9")

	// ErrAmbiguousSymbol is returned when a symbol is assigned to more than one digit.
	ErrAmbiguousSymbol = errors.New("symbol assigned to more than one digit")

	// ErrEmptySoundFamily is returned when a digit has no symbols at all.
	ErrEmptySoundFamily = errors.New("digit has an empty sound family")
)

// Params holds the digit-to-sound-family table for the major system.
//
// The table is supplied by configuration and immutable for the lifetime of
// the service. Each digit '0'-'9' owns a family of symbols; a symbol belongs
// to at most one family. Symbols absent from every family (vowels, h, w, y,
// and non-letter residue) map to no digit and are dropped from digit
// sequences without error.
type Params struct {
	// sounds is the configured table, kept for introspection.
	sounds map[rune][]Symbol

	// digitOf is the inverted index used by DigitFor.
	digitOf map[Symbol]rune
}

// NewParams builds Params from a digit-to-symbols table, validating that
// every digit '0'-'9' is present with a non-empty family and that no symbol
// appears in two families.
func NewParams(sounds map[rune][]Symbol) (*Params, error) {
	digitOf := make(map[Symbol]rune)
	kept := make(map[rune][]Symbol, 10)

	for d := '0'; d <= '9'; d++ {
		family, ok := sounds[d]
		if !ok || len(family) == 0 {
			if !ok {
				return nil, fmt.Errorf("%w: missing %q", ErrMissingDigit, d)
			}
			return nil, fmt.Errorf("%w: digit %q", ErrEmptySoundFamily, d)
		}

		for _, sym := range family {
			if prev, dup := digitOf[sym]; dup {
				return nil, fmt.Errorf("%w: %q maps to both %q and %q",
					ErrAmbiguousSymbol, sym, prev, d)
			}
			digitOf[sym] = d
		}
		kept[d] = append([]Symbol(nil), family...)
	}

	return &Params{sounds: kept, digitOf: digitOf}, nil
}

// NewDefaultParams returns the standard major-system grouping:
//
//	s,z -> 0   t,d,th -> 1   n -> 2   m -> 3   r -> 4
//	l -> 5     j,sh,ch -> 6  k,g,q,qu -> 7     f,v,ph -> 8   p,b -> 9
func NewDefaultParams() *Params {
	p, err := NewParams(map[rune][]Symbol{
		'0': {"s", "z"},
		'1': {"t", "d", "th"},
		'2': {"n"},
		'3': {"m"},
		'4': {"r"},
		'5': {"l"},
		'6': {"j", "sh", "ch"},
		'7': {"k", "g", "q", "qu"},
		'8': {"f", "v", "ph"},
		'9': {"p", "b"},
	})
	if err != nil {
		// The default table is a compile-time constant; it cannot fail validation.
		// ALLOW-PANIC: Invariant violation in hardcoded defaults
		panic(fmt.Sprintf("default major params invalid: %v", err))
	}
	return p
}

// DigitFor returns the digit owning the given symbol, or false when the
// symbol belongs to no family.
func (p *Params) DigitFor(sym Symbol) (rune, bool) {
	d, ok := p.digitOf[sym]
	return d, ok
}

// Sounds returns the sound family for a digit. The returned slice is a copy;
// mutating it does not affect the Params.
func (p *Params) Sounds(digit rune) []Symbol {
	return append([]Symbol(nil), p.sounds[digit]...)
}
