// Package major implements the major-system phonetic encoding used to turn
// mnemonic peg words into digit sequences.
//
// The package has three pieces: an encoder that reduces a word to an ordered
// sequence of phonetic symbols, a configurable digit table that maps each
// symbol to at most one digit, and a validator that checks whether a word's
// digit sequence satisfies a two-digit key. All operations are pure functions
// over in-memory values; results never depend on storage or request state.
package major
