// Package gemini implements the generation.Suggester interface using
// Google's Gemini API.
package gemini
