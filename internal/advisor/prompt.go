package advisor

import (
	"fmt"
	"strings"
)

const advisorSystemPrompt = `You are an expert career coach and industry mentor for software students.

Given a student's current skills and target role, produce a concise, motivating, actionable roadmap:
1. Analyze the Gap: briefly mention what they are missing.
2. Step-by-Step Plan: list 3-5 key milestones they need to hit (e.g. learn React, build a project).
3. Resource Recommendation: suggest 1 general type of resource (e.g. "official documentation" or "open source projects").

Keep the tone encouraging but professional. Use short Markdown headings and bullet lists. Plain text otherwise.`

// buildAdviceUserMessage renders the learner's assessment for the prompt.
func buildAdviceUserMessage(input AdviceInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target role: %s\n", input.TargetRole)
	fmt.Fprintf(&b, "Readiness: %d%% of the curriculum already covered\n", input.ReadinessPct)

	b.WriteString("Strong topics (rated 3+ stars): ")
	b.WriteString(joinOrNone(input.StrongTopics))
	b.WriteString("\nWeak or unrated topics: ")
	b.WriteString(joinOrNone(input.WeakTopics))

	if input.ExtraContext != "" {
		b.WriteString("\nAdditional context from the student: ")
		b.WriteString(input.ExtraContext)
	}
	return b.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
