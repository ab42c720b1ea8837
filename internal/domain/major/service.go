package major

import "errors"

// Common errors
var (
	// ErrInvalidKey is returned when a key is not exactly two ASCII digits.
	ErrInvalidKey = errors.New("key must be exactly two digits")
)

// Service defines the interface for major-system encoding and validation.
type Service interface {
	// DigitsOf returns the word's digit sequence: the encoder's symbols
	// mapped through the digit table, with unmapped symbols dropped.
	DigitsOf(word string) string

	// IsValid reports whether the word's digit sequence contains the key's
	// two digits as an ordered, not necessarily contiguous, subsequence.
	// An empty word is vacuously valid. Returns ErrInvalidKey for keys that
	// are not exactly two ASCII digits.
	IsValid(key, word string) (bool, error)

	// ValidPositions returns every key in "00".."99" the word satisfies,
	// in ascending order. The word's digit sequence is computed once.
	// An empty word satisfies every key, consistent with IsValid.
	ValidPositions(word string) []string
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a major-system service with the standard digit table.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a major-system service with a custom digit table.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// DigitsOf implements the Service interface.
func (s *defaultService) DigitsOf(word string) string {
	symbols := Encode(word)
	digits := make([]byte, 0, len(symbols))
	for _, sym := range symbols {
		if d, ok := s.params.DigitFor(sym); ok {
			digits = append(digits, byte(d))
		}
	}
	return string(digits)
}

// IsValid implements the Service interface.
func (s *defaultService) IsValid(key, word string) (bool, error) {
	if !validKey(key) {
		return false, ErrInvalidKey
	}

	digits := s.DigitsOf(word)
	if digits == "" && Normalize(word) == "" {
		// Empty or all-stripped word: no claim made, vacuously valid.
		return true, nil
	}

	return containsSubsequence(digits, key), nil
}

// ValidPositions implements the Service interface.
func (s *defaultService) ValidPositions(word string) []string {
	digits := s.DigitsOf(word)
	vacuous := Normalize(word) == ""

	var keys []string
	for hi := '0'; hi <= '9'; hi++ {
		for lo := '0'; lo <= '9'; lo++ {
			key := string([]rune{hi, lo})
			if vacuous || containsSubsequence(digits, key) {
				keys = append(keys, key)
			}
		}
	}
	return keys
}

// containsSubsequence walks the target's digits in order, advancing a cursor
// through the candidate digit sequence past each match. Extra digits before,
// between, or after the target's digits are permitted.
func containsSubsequence(digits, target string) bool {
	cursor := 0
	for i := 0; i < len(target); i++ {
		found := false
		for ; cursor < len(digits); cursor++ {
			if digits[cursor] == target[i] {
				cursor++
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// validKey reports whether key is exactly two ASCII digits.
func validKey(key string) bool {
	if len(key) != 2 {
		return false
	}
	return key[0] >= '0' && key[0] <= '9' && key[1] >= '0' && key[1] <= '9'
}
