package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/pegword-api/internal/config"
	"github.com/phrazzld/pegword-api/internal/domain/major"
	"github.com/phrazzld/pegword-api/internal/generation"
)

// promptTemplateText instructs the model to propose peg words whose major
// system consonant sounds, in order, spell the key's two digits.
const promptTemplateText = `You are helping a user of the major mnemonic system find peg words for two-digit numbers.

Propose up to 10 common, concrete, easily visualized English words for the number {{.Key}}.

Rules:
- The word's consonant sounds, read left to right, must contain the sound {{.FirstSounds}} followed by the sound {{.SecondSounds}}. Other consonant sounds may appear before, between, or after them.
- Vowels and the sounds of h, w, and y carry no digits and may be used freely.
- Prefer short nouns that are easy to picture.
{{if .Exclude}}- Do not suggest any of these words: {{.Exclude}}.
{{end}}
Respond with JSON only, in this exact shape:
{"words": ["word1", "word2"]}
`

// Suggester implements the generation.Suggester interface using
// Google's Gemini API to propose peg words for two-digit keys.
type Suggester struct {
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.SuggestConfig

	// params supplies the digit-to-sound table quoted in prompts
	params *major.Params

	// promptTemplate is the parsed template for creating prompts
	promptTemplate *template.Template

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// Ensure Suggester implements generation.Suggester interface
var _ generation.Suggester = (*Suggester)(nil)

// NewSuggester creates a new Gemini-backed suggester.
// Returns generation.ErrInvalidConfig when the API key or model name is missing.
func NewSuggester(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.SuggestConfig,
	params *major.Params,
) (*Suggester, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if params == nil {
		return nil, errors.New("params cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	promptTemplate, err := template.New("suggest").Parse(promptTemplateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Suggester{
		logger:         logger.With(slog.String("component", "gemini_suggester")),
		config:         cfg,
		params:         params,
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
	}, nil
}

// Suggest implements generation.Suggester.Suggest
func (g *Suggester) Suggest(ctx context.Context, key string, exclude []string) ([]string, error) {
	prompt, err := g.createPrompt(ctx, key, exclude)
	if err != nil {
		return nil, err
	}

	response, err := g.callWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(response.Words))
	for _, word := range response.Words {
		word = strings.ToLower(strings.TrimSpace(word))
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no words in response", generation.ErrInvalidResponse)
	}

	g.logger.InfoContext(ctx, "suggestions generated",
		"key", key,
		"count", len(words))
	return words, nil
}

// createPrompt renders the prompt template for the given key.
func (g *Suggester) createPrompt(ctx context.Context, key string, exclude []string) (string, error) {
	if len(key) != 2 {
		return "", fmt.Errorf("%w: key must be exactly two digits", generation.ErrGenerationFailed)
	}

	data := promptData{
		Key:          key,
		FirstSounds:  soundList(g.params.Sounds(rune(key[0]))),
		SecondSounds: soundList(g.params.Sounds(rune(key[1]))),
		Exclude:      strings.Join(exclude, ", "),
	}
	if data.FirstSounds == "" || data.SecondSounds == "" {
		return "", fmt.Errorf("%w: key must be exactly two digits", generation.ErrGenerationFailed)
	}

	var buf bytes.Buffer
	if err := g.promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	g.logger.DebugContext(ctx, "prompt generated",
		"key", key,
		"prompt_length", buf.Len())
	return buf.String(), nil
}

// callWithRetry calls the Gemini API with exponential backoff and jitter.
// Permanent errors (blocked content, malformed responses) are returned
// immediately; transient errors are retried up to config.MaxRetries times.
func (g *Suggester) callWithRetry(ctx context.Context, prompt string) (*responseSchema, error) {
	maxRetries := g.config.MaxRetries
	baseDelaySeconds := g.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		maxRetries = 3
	}
	if baseDelaySeconds < 1 {
		baseDelaySeconds = 2
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	for attempt := 0; ; attempt++ {
		g.logger.DebugContext(ctx, "calling Gemini API",
			"attempt", attempt+1,
			"max_attempts", maxRetries+1)

		response, transient, err := g.callOnce(ctx, prompt, genConfig)
		if err == nil {
			return response, nil
		}

		g.logger.WarnContext(ctx, "Gemini API call failed",
			"attempt", attempt+1,
			"error", err,
			"transient", transient)

		if !transient {
			return nil, err
		}
		if attempt >= maxRetries {
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				generation.ErrTransientFailure, maxRetries)
		}

		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callOnce performs a single API call and classifies failures as transient
// (worth retrying) or permanent.
func (g *Suggester) callOnce(
	ctx context.Context,
	prompt string,
	genConfig *genai.GenerateContentConfig,
) (*responseSchema, bool, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), genConfig)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, false, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return nil, false, fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}

	text := resp.Text()
	if text == "" {
		return nil, false, fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}

	var parsed responseSchema
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, false, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}

	return &parsed, false, nil
}

// soundList renders a sound family as a comma-separated list.
func soundList(sounds []major.Symbol) string {
	parts := make([]string, 0, len(sounds))
	for _, s := range sounds {
		parts = append(parts, string(s))
	}
	return strings.Join(parts, ", ")
}
