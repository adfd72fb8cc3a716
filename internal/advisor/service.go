package advisor

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/dev-hari-haran/Way-to-Industry/internal/llm"
)

// Messages shown in place of generated advice when the AI layer cannot
// serve. Advice is decorative: failures degrade to readable text, they
// never surface as errors.
const (
	MsgNoProvider  = "AI advice is unavailable: no API key configured. Set one of the supported API keys to enable it."
	MsgEmptyAdvice = "Could not generate a roadmap right now. Please try again."
	MsgError       = "An error occurred while talking to the AI mentor. Check your connection and try again."
)

// AdviceInput describes the learner for the advisory prompt.
type AdviceInput struct {
	TargetRole   string
	StrongTopics []string // rated at or above the completion threshold
	WeakTopics   []string
	ExtraContext string // free text from the assessment step
	ReadinessPct int
}

// Service generates career advice asynchronously. One request is
// in-flight at a time; a new request replaces the pending result.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending string
	ready   bool
}

// NewService creates an advisory service. A nil provider is valid and
// yields the no-provider message for every request.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestAdvice starts async advice generation.
func (s *Service) RequestAdvice(ctx context.Context, input AdviceInput) {
	go func() {
		text := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = text
		s.ready = true
	}()
}

// ConsumeAdvice returns the pending advice text if one is ready.
// Returns ("", false) until then. The pending slot is cleared on read.
func (s *Service) ConsumeAdvice() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", false
	}
	text := s.pending
	s.pending = ""
	s.ready = false
	return text, true
}

// generate always returns displayable text, mapping every failure mode
// to one of the canned messages.
func (s *Service) generate(ctx context.Context, input AdviceInput) string {
	if s.provider == nil {
		return MsgNoProvider
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeCareerAdvice)
	req := llm.Request{
		System: advisorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdviceUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return MsgError
	}

	// Schemaless responses arrive as a JSON-encoded string.
	var text string
	if err := json.Unmarshal(resp.Content, &text); err != nil {
		// Some providers hand back raw text; try an unquote-free read.
		text = string(resp.Content)
		if unq, uerr := strconv.Unquote(text); uerr == nil {
			text = unq
		}
	}
	if text == "" {
		return MsgEmptyAdvice
	}
	return text
}
