// Package metaphone provides the production phonetic-key implementation for
// homonym grouping, backed by the Double Metaphone algorithm.
package metaphone

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/phrazzld/pegword-api/internal/domain/homonym"
)

// Keyer implements homonym.Keyer using the Double Metaphone primary code.
type Keyer struct{}

// Ensure Keyer implements the homonym.Keyer interface
var _ homonym.Keyer = (*Keyer)(nil)

// NewKeyer creates a Double Metaphone backed phonetic keyer.
func NewKeyer() *Keyer {
	return &Keyer{}
}

// Key returns the Double Metaphone primary code for the word.
// The code is deterministic and case-insensitive; words the algorithm cannot
// encode (for example, strings without letters) yield an empty key.
func (k *Keyer) Key(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}

	primary, _ := matchr.DoubleMetaphone(word)
	return primary
}
