package interview

import (
	"strings"
	"testing"
)

func TestFallbackShape(t *testing.T) {
	qs := Fallback("Kubernetes")
	if verr := (&StructuralValidator{}).Validate(qs); verr != nil {
		t.Fatalf("fallback must pass the same validation as generated sets: %v", verr)
	}
}

func TestFallbackMentionsTopic(t *testing.T) {
	qs := Fallback("Terraform")
	for _, q := range qs {
		if !strings.Contains(q.Prompt, "Terraform") {
			t.Errorf("question %d does not mention the topic: %q", q.ID, q.Prompt)
		}
	}
}

func TestFallbackIsScorable(t *testing.T) {
	qs := Fallback("Go")
	answers := map[int]string{}
	for _, q := range qs {
		if q.Kind == KindMCQ {
			answers[q.ID] = q.CorrectAnswer
		} else {
			answers[q.ID] = "a reasonably long code answer"
		}
	}
	if got := Score(qs, answers); got != 100 {
		t.Errorf("perfect fallback run = %d, want 100", got)
	}
}
