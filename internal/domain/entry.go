package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entry-specific validation errors
var (
	// ErrEntryWorkspaceIDEmpty is returned when an entry's workspace ID is empty or nil.
	ErrEntryWorkspaceIDEmpty = errors.New("entry workspace ID cannot be empty")

	// ErrEntryKeyInvalid is returned when an entry's key is not exactly two ASCII digits.
	ErrEntryKeyInvalid = errors.New("entry key must be exactly two digits")

	// ErrEntryWordTooLong is returned when an entry's word exceeds 100 characters.
	ErrEntryWordTooLong = errors.New("entry word cannot exceed 100 characters")
)

// WordEntry associates one two-digit key ("00".."99") with a user-supplied
// peg word inside a workspace. Entries are independent of each other; the
// full table logically has 100 keys, with unset keys simply absent.
type WordEntry struct {
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Key         string    `json:"key"`
	Word        string    `json:"word"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewWordEntry creates a WordEntry for the given workspace, key, and word,
// setting the update timestamp. Returns an error if validation fails.
func NewWordEntry(workspaceID uuid.UUID, key, word string) (*WordEntry, error) {
	entry := &WordEntry{
		WorkspaceID: workspaceID,
		Key:         key,
		Word:        word,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the WordEntry has valid data.
// Returns an error if any field fails validation.
func (e *WordEntry) Validate() error {
	if e.WorkspaceID == uuid.Nil {
		return ErrEntryWorkspaceIDEmpty
	}

	if !ValidEntryKey(e.Key) {
		return ErrEntryKeyInvalid
	}

	if len(e.Word) > 100 {
		return ErrEntryWordTooLong
	}

	return nil
}

// ValidEntryKey reports whether key is exactly two ASCII digits ("00".."99").
func ValidEntryKey(key string) bool {
	if len(key) != 2 {
		return false
	}
	return key[0] >= '0' && key[0] <= '9' && key[1] >= '0' && key[1] <= '9'
}

// AllEntryKeys returns the 100 two-digit keys "00".."99" in ascending order.
func AllEntryKeys() []string {
	keys := make([]string, 0, 100)
	for hi := '0'; hi <= '9'; hi++ {
		for lo := '0'; lo <= '9'; lo++ {
			keys = append(keys, string([]rune{hi, lo}))
		}
	}
	return keys
}
