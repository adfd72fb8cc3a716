package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
	"github.com/dev-hari-haran/Way-to-Industry/internal/llm"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview in plain terminal mode (no database)",
	Long: `Generate and answer a 5-question mock interview for a topic.

This is a stateless mode: nothing is recorded. Without an LLM API key
the built-in question set is used.`,
	RunE: runInterview,
}

func init() {
	interviewCmd.Flags().String("topic", "", "Role or skill to interview on (required)")
	_ = interviewCmd.MarkFlagRequired("topic")
}

func runInterview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")

	kind := catalog.KindSkill
	for _, e := range catalog.All() {
		if strings.EqualFold(e.Label, topic) || e.ID == topic {
			topic = e.Label
			kind = e.Kind
			break
		}
	}

	// Provider is optional here; a nil generator falls back to the
	// built-in question set.
	ctx := context.Background()
	var gen interview.Generator
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	if provider != nil {
		gen = interview.NewGenerator(provider, interview.DefaultConfig())
	} else {
		fmt.Println("No LLM API key configured; using the built-in question set.")
	}

	fmt.Printf("Topic: %s (%s)\nGenerating %d questions...\n\n",
		topic, strings.ToLower(string(kind)), interview.QuestionsPerSession)

	questions := interview.Load(ctx, gen, topic, kind)
	scanner := bufio.NewScanner(os.Stdin)
	answers := make(map[int]string)

	for i, q := range questions {
		fmt.Printf("── Question %d/%d [%s] ──\n", i+1, len(questions), q.Kind)
		fmt.Println(q.Prompt)
		if q.Kind == interview.KindMCQ {
			for j, opt := range q.Options {
				fmt.Printf("  %c) %s\n", 'A'+j, opt)
			}
		} else if q.Hint != "" {
			fmt.Printf("  Hint: %s\n", q.Hint)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())

		// Accept an option letter for multiple choice.
		if q.Kind == interview.KindMCQ && len(answer) == 1 {
			idx := int((answer[0] | 0x20) - 'a')
			if idx >= 0 && idx < len(q.Options) {
				answer = q.Options[idx]
			}
		}

		answers[q.ID] = answer
		fmt.Println()
	}

	score := interview.Score(questions, answers)
	fmt.Printf("── Result: %d/100 (%s) ──\n", score, interview.LabelFor(score))
	return nil
}
