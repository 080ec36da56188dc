// Package oracle provides a client for the natural-language extraction
// service that turns free-form utterances into structured calorie entries.
package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/theirongolddev/calburn/internal/model"
)

var (
	// ErrEmptyInput indicates blank input; rejected locally, no request made.
	ErrEmptyInput = errors.New("oracle: empty input")
	// ErrExtractionFailed indicates the oracle was unreachable, timed out,
	// or returned an unparseable or incomplete payload.
	ErrExtractionFailed = errors.New("oracle: extraction failed")
)

// Extractor is the narrow interface the session controller depends on.
type Extractor interface {
	Extract(ctx context.Context, text, userContext string) ([]Candidate, error)
}

// Options holds client settings, overridable via CALBURN_* env vars.
type Options struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com"`
	Model   string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	Timeout time.Duration `envconfig:"ORACLE_TIMEOUT" default:"30s"`
}

// OptionsFromEnv reads Options from the environment.
func OptionsFromEnv() (Options, error) {
	var o Options
	if err := envconfig.Process("calburn", &o); err != nil {
		return o, fmt.Errorf("oracle: reading env options: %w", err)
	}
	return o, nil
}

// Client calls the Gemini generateContent API with a structured-JSON
// response schema.
type Client struct {
	http  *resty.Client
	model string
	log   zerolog.Logger
}

// NewClient creates a client from the given options.
func NewClient(opts Options, log zerolog.Logger) *Client {
	c := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", opts.APIKey).
		SetTimeout(opts.Timeout)

	return &Client{http: c, model: opts.Model, log: log}
}

// Extract asks the oracle to identify every distinct food or exercise
// mention in text and returns the surviving candidates. Candidates the
// oracle classifies UNKNOWN are dropped; a zero-length result is a
// legitimate "no candidates" outcome, not an error.
func (c *Client) Extract(ctx context.Context, text, userContext string) ([]Candidate, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	req := generateRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: buildPrompt(text, userContext)}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   entrySchema(),
		},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&req).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return nil, fmt.Errorf("%w: request: %v", ErrExtractionFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrExtractionFailed, resp.StatusCode())
	}

	payload, err := decodePayload(resp.Body())
	if err != nil {
		return nil, err
	}

	return parseCandidates(payload, c.log)
}

// buildPrompt embeds the utterance and user context into the extraction
// instruction. The context biases calorie estimates only.
func buildPrompt(text, userContext string) string {
	return fmt.Sprintf(`You are a precise nutrition and fitness tracker AI.
The user is: %s

Analyze the following text: %q.

1. Identify all distinct items mentioned (foods or exercises).
2. For each item:
   - Determine if it is FOOD intake or EXERCISE.
   - Estimate the calories.
     - If FOOD: Return positive calories.
     - If EXERCISE: Return the calories burned as a POSITIVE integer.
     - Be realistic based on the user's stats.
   - Extract the item name and quantity.

Return a JSON ARRAY of objects matching the schema.`, userContext, text)
}

// decodePayload pulls the model's JSON text out of the generateContent
// response envelope.
func decodePayload(body []byte) (string, error) {
	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("%w: parsing response: %v", ErrExtractionFailed, err)
	}
	if len(gr.Candidates) == 0 {
		return "", fmt.Errorf("%w: response has no content", ErrExtractionFailed)
	}

	var b strings.Builder
	for _, p := range gr.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%w: response has no content", ErrExtractionFailed)
	}
	return b.String(), nil
}

// parseCandidates validates the oracle's JSON array. Every element must
// carry all four fields; UNKNOWN-classified elements are dropped as the
// oracle's own uncertainty signal.
func parseCandidates(payload string, log zerolog.Logger) ([]Candidate, error) {
	var raw []rawCandidate
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing candidates: %v", ErrExtractionFailed, err)
	}

	candidates := make([]Candidate, 0, len(raw))
	for _, rc := range raw {
		if rc.EntryType == nil || rc.Item == nil || rc.Calories == nil || rc.Quantity == nil {
			return nil, fmt.Errorf("%w: candidate missing required field", ErrExtractionFailed)
		}

		switch model.EntryType(*rc.EntryType) {
		case model.EntryFood, model.EntryExercise:
			candidates = append(candidates, Candidate{
				Type:     model.EntryType(*rc.EntryType),
				Item:     *rc.Item,
				Calories: *rc.Calories,
				Quantity: *rc.Quantity,
			})
		case "UNKNOWN":
			log.Debug().Str("item", *rc.Item).Msg("dropping UNKNOWN candidate")
		default:
			return nil, fmt.Errorf("%w: unrecognized entry type %q", ErrExtractionFailed, *rc.EntryType)
		}
	}

	return candidates, nil
}
