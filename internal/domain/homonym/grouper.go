// Package homonym groups table entries whose words are acoustic homonyms.
//
// The phonetic-key algorithm itself is an external collaborator hidden behind
// the Keyer interface; this package owns only the grouping logic: partition
// the filled-in words by phonetic key and report which numbers share a group.
package homonym

import (
	"log/slog"
	"sort"
	"strings"
)

// Keyer produces a deterministic, case-insensitive phonetic key for a word.
// Words with equal keys are treated as acoustically identical.
type Keyer interface {
	Key(word string) string
}

// Grouper partitions words by phonetic key and derives a conflict map.
type Grouper struct {
	keyer  Keyer
	logger *slog.Logger
}

// NewGrouper creates a Grouper backed by the given Keyer.
// A nil keyer is permitted: grouping then degrades to "no conflicts detected".
// If logger is nil, a default logger will be used.
func NewGrouper(keyer Keyer, logger *slog.Logger) *Grouper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Grouper{
		keyer:  keyer,
		logger: logger.With(slog.String("component", "homonym_grouper")),
	}
}

// Conflicts returns, for every number whose word belongs to a homonym group,
// the sorted set of other numbers sharing that group.
//
// Words are trimmed and lowercased before keying; empty entries are skipped.
// A partition qualifies as a homonym group only when it contains at least two
// distinct words: the same word entered under two numbers is a duplicate, not
// a homonym. Numbers without conflicts are absent from the result.
func (g *Grouper) Conflicts(entries map[string]string) map[string][]string {
	if g.keyer == nil {
		return map[string][]string{}
	}

	// Partition numbers by the phonetic key of their word.
	groups := make(map[string][]string)
	words := make(map[string]string, len(entries))
	for number, word := range entries {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}

		key := g.keyer.Key(word)
		if key == "" {
			// Unkeyable word (no letters the algorithm understands).
			g.logger.Debug("skipping word with empty phonetic key",
				slog.String("number", number),
				slog.String("word", word))
			continue
		}

		groups[key] = append(groups[key], number)
		words[number] = word
	}

	conflicts := make(map[string][]string)
	for _, numbers := range groups {
		if !hasDistinctWords(numbers, words) {
			continue
		}

		for _, number := range numbers {
			others := make([]string, 0, len(numbers)-1)
			for _, other := range numbers {
				if other != number {
					others = append(others, other)
				}
			}
			sort.Strings(others)
			conflicts[number] = others
		}
	}

	return conflicts
}

// hasDistinctWords reports whether the group spans at least two distinct words.
func hasDistinctWords(numbers []string, words map[string]string) bool {
	if len(numbers) < 2 {
		return false
	}
	first := words[numbers[0]]
	for _, number := range numbers[1:] {
		if words[number] != first {
			return true
		}
	}
	return false
}
