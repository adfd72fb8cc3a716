package interview

import (
	"fmt"
	"strings"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
)

const systemPrompt = `You are a senior technical interviewer preparing a short screening round.

Rules:
- Generate exactly 5 questions: the first 3 of type MCQ, the last 2 of type CODE.
- MCQ questions must have exactly 4 options with exactly one correct answer. Distractors should reflect common misunderstandings, not random noise.
- The correct_answer field must repeat the correct option text exactly, character for character.
- CODE questions are small, self-contained tasks solvable in under 10 lines. Include a one-line hint.
- Questions must be answerable without external tools or documentation.
- Use plain text only. No markdown, no code fences in prompts.
- Calibrate to an entry-level candidate: fundamentals over trivia.`

// buildUserMessage constructs the user message for a question set request.
func buildUserMessage(topic string, kind catalog.Kind) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if kind == catalog.KindRole {
		fmt.Fprintf(&b, "Scope: the %s role overall. Mix questions across its core skills.\n", topic)
	} else {
		fmt.Fprintf(&b, "Scope: the %s skill specifically.\n", topic)
	}
	b.WriteString("Audience: a student preparing for their first industry interview.")
	return b.String()
}
