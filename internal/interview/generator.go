package interview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/llm"
)

// Generator produces interview question sets.
type Generator interface {
	// Generate produces a validated question set for the given topic.
	// All configured validators are run before returning.
	Generate(ctx context.Context, topic string, kind catalog.Kind) ([]Question, error)
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated set; the first failure
	// stops the pipeline.
	Validators []SetValidator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators:  []SetValidator{&StructuralValidator{}},
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates an LLMGenerator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionSetOutput is the raw LLM response before validation.
type questionSetOutput struct {
	Questions []struct {
		ID            int      `json:"id"`
		Type          string   `json:"type"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Hint          string   `json:"hint"`
	} `json:"questions"`
}

// Generate produces a question set for the given topic.
func (g *LLMGenerator) Generate(ctx context.Context, topic string, kind catalog.Kind) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeInterviewGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, kind)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	qs := make([]Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		q := Question{
			ID:            rq.ID,
			Kind:          QuestionKind(rq.Type),
			Prompt:        rq.Question,
			CorrectAnswer: rq.CorrectAnswer,
			Hint:          rq.Hint,
		}
		if len(rq.Options) > 0 {
			q.Options = rq.Options
		}
		qs = append(qs, q)
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(qs); verr != nil {
			return nil, verr
		}
	}
	return qs, nil
}

// Load fetches a question set for the topic, falling back to the fixed
// set on a nil generator, transport failure, or an invalid response.
// It never fails: an interview can always start.
func Load(ctx context.Context, g Generator, topic string, kind catalog.Kind) []Question {
	if g == nil {
		return Fallback(topic)
	}
	qs, err := g.Generate(ctx, topic, kind)
	if err != nil {
		return Fallback(topic)
	}
	return qs
}
