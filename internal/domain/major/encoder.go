package major

import "strings"

// Symbol is a single phonetic sound token produced by the encoder.
// It is either a two-letter digraph ("ch", "sh", "th", "ph", "qu") or a
// single letter. Symbols that represent vowels or the silent consonants
// h, w, and y survive encoding but map to no digit.
type Symbol string

// digraphs are the two-letter sounds recognized by the encoder, checked
// before any single-letter rule. Order matters only for documentation; the
// set is prefix-free so at most one digraph can match at a position.
var digraphs = []Symbol{"ch", "sh", "th", "ph", "qu"}

// Normalize lowercases the word and strips every character outside a-z.
// Digits, punctuation, whitespace, and accented characters are all dropped
// silently; a word with no letters normalizes to the empty string.
func Normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Encode converts a word into its ordered sequence of phonetic symbols.
//
// The input is normalized first (lowercase, letters only), then scanned left
// to right:
//
//  1. A digraph ("ch", "sh", "th", "ph", "qu") consumes two characters and
//     emits one symbol.
//  2. "c" emits "s" before e, i, or y (soft c) and "k" otherwise.
//  3. "g" emits "j" before e, i, or y (soft g) and stays "g" otherwise.
//  4. Any other character emits itself unchanged.
//
// Encoding is deterministic and has no failure modes: malformed input is
// simply stripped to nothing, and Encode("") returns an empty sequence.
func Encode(word string) []Symbol {
	letters := Normalize(word)
	if letters == "" {
		return nil
	}

	symbols := make([]Symbol, 0, len(letters))
	for i := 0; i < len(letters); {
		if i+1 < len(letters) {
			pair := Symbol(letters[i : i+2])
			if isDigraph(pair) {
				symbols = append(symbols, pair)
				i += 2
				continue
			}
		}

		c := letters[i]
		var next byte
		if i+1 < len(letters) {
			next = letters[i+1]
		}

		switch {
		case c == 'c' && softens(next):
			symbols = append(symbols, "s")
		case c == 'c':
			symbols = append(symbols, "k")
		case c == 'g' && softens(next):
			symbols = append(symbols, "j")
		default:
			symbols = append(symbols, Symbol(c))
		}
		i++
	}

	return symbols
}

// isDigraph reports whether s is one of the recognized two-letter sounds.
func isDigraph(s Symbol) bool {
	for _, d := range digraphs {
		if s == d {
			return true
		}
	}
	return false
}

// softens reports whether the following letter turns a preceding c or g soft.
func softens(next byte) bool {
	return next == 'e' || next == 'i' || next == 'y'
}
