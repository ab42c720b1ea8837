// Package generation defines the boundary between the application core and
// external AI/LLM services that propose candidate peg words.
package generation
