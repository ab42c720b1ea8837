package generation

import "context"

// Suggester defines the interface for proposing candidate peg words for a
// two-digit key. Implementations wrap external LLM services; callers are
// expected to re-validate the returned words against the major system before
// showing them to users, since model output is not trusted.
type Suggester interface {
	// Suggest proposes candidate words for the given key. The exclude list
	// contains words already in the user's table that should not be repeated.
	// Returns the raw candidate words or an error if generation fails
	// (see errors.go for the specific kinds).
	Suggest(ctx context.Context, key string, exclude []string) ([]string, error)
}
