package roadmap

import (
	"errors"
	"testing"
)

func assessFlow(t *testing.T, roleID string) *Flow {
	t.Helper()
	f := NewFlow()
	if err := f.Select(roleID); err != nil {
		t.Fatalf("Select(%s): %v", roleID, err)
	}
	if err := f.Confirm(); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	return f
}

func TestHappyPath(t *testing.T) {
	f := assessFlow(t, "Go")

	if f.Step() != StepAssess {
		t.Fatalf("step = %v, want StepAssess", f.Step())
	}
	if err := f.Rate("Goroutines", 4); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if err := f.Rate("Channels", 2); err != nil {
		t.Fatalf("Rate: %v", err)
	}
	f.SetContext("built a small CLI at work")
	if err := f.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if f.Step() != StepView {
		t.Fatalf("step = %v, want StepView", f.Step())
	}
	if !f.Completed("Goroutines") {
		t.Error("rating 4 should mark topic completed")
	}
	if f.Completed("Channels") {
		t.Error("rating 2 should not mark topic completed")
	}
	if f.Completed("Interfaces") {
		t.Error("unrated topic should not be completed")
	}
}

func TestRatingAtThresholdCompletes(t *testing.T) {
	f := assessFlow(t, "Go")
	if err := f.Rate("Structs", 3); err != nil {
		t.Fatal(err)
	}
	if err := f.Submit(); err != nil {
		t.Fatal(err)
	}
	if !f.Completed("Structs") {
		t.Error("rating 3 is the completion threshold and should complete")
	}
}

func TestInvalidInputLeavesStateUntouched(t *testing.T) {
	f := assessFlow(t, "Go")
	if err := f.Rate("Goroutines", 5); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name  string
		op    func() error
	}{
		{"unknown topic", func() error { return f.Rate("Quantum Computing", 3) }},
		{"rating too low", func() error { return f.Rate("Channels", 0) }},
		{"rating too high", func() error { return f.Rate("Channels", 6) }},
		{"toggle before view", func() error { return f.ToggleTopic("Channels") }},
		{"select mid-flow", func() error { return f.Select("Rust") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.op(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
		})
	}

	// Prior state survives.
	if r, ok := f.Rating("Goroutines"); !ok || r != 5 {
		t.Errorf("Goroutines rating = %d,%v, want 5,true", r, ok)
	}
	if _, ok := f.Rating("Channels"); ok {
		t.Error("failed rating must not be recorded")
	}
	if f.Step() != StepAssess {
		t.Errorf("step changed to %v", f.Step())
	}
}

func TestRerateOverwrites(t *testing.T) {
	f := assessFlow(t, "Go")
	if err := f.Rate("Channels", 1); err != nil {
		t.Fatal(err)
	}
	if err := f.Rate("Channels", 4); err != nil {
		t.Fatal(err)
	}
	if r, _ := f.Rating("Channels"); r != 4 {
		t.Errorf("rating = %d, want 4", r)
	}
}

func TestToggleTopic(t *testing.T) {
	f := assessFlow(t, "Go")
	if err := f.Rate("Goroutines", 5); err != nil {
		t.Fatal(err)
	}
	if err := f.Submit(); err != nil {
		t.Fatal(err)
	}

	if err := f.ToggleTopic("Goroutines"); err != nil {
		t.Fatal(err)
	}
	if f.Completed("Goroutines") {
		t.Error("toggle should uncomplete a completed topic")
	}
	if err := f.ToggleTopic("Channels"); err != nil {
		t.Fatal(err)
	}
	if !f.Completed("Channels") {
		t.Error("toggle should complete an uncompleted topic")
	}
	if err := f.ToggleTopic("nope"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown topic toggle err = %v, want ErrInvalidInput", err)
	}
}

func TestBackNavigation(t *testing.T) {
	f := assessFlow(t, "Go")

	if exit := f.Back(); exit {
		t.Fatal("Back from assess should return to select")
	}
	if f.Step() != StepSelect {
		t.Fatalf("step = %v, want StepSelect", f.Step())
	}
	if exit := f.Back(); !exit {
		t.Fatal("Back from select should exit the flow")
	}
}

func TestBackFromViewExitsFlow(t *testing.T) {
	f := assessFlow(t, "Go")
	if err := f.Rate("Goroutines", 5); err != nil {
		t.Fatal(err)
	}
	if err := f.Submit(); err != nil {
		t.Fatal(err)
	}
	if err := f.ToggleTopic("Channels"); err != nil {
		t.Fatal(err)
	}

	// Once the roadmap is built there is no way back into assessment;
	// a second Submit from a stale assessment would wipe manual toggles.
	if exit := f.Back(); !exit {
		t.Fatal("Back from view should exit the flow")
	}
	if f.Step() != StepView {
		t.Fatalf("step = %v, want StepView", f.Step())
	}
	if !f.Completed("Channels") {
		t.Error("exiting must not recompute the completed set")
	}
}

func TestReenteredAssessmentStartsFresh(t *testing.T) {
	f := assessFlow(t, "Go")
	if err := f.Rate("Goroutines", 5); err != nil {
		t.Fatal(err)
	}
	f.SetContext("ten years of Python")

	if exit := f.Back(); exit {
		t.Fatal("Back from assess should not exit")
	}
	if err := f.Confirm(); err != nil {
		t.Fatal(err)
	}

	if _, ok := f.Rating("Goroutines"); ok {
		t.Error("re-entering assessment must drop earlier ratings")
	}
	if f.Context() != "" {
		t.Errorf("re-entering assessment kept context %q", f.Context())
	}
}

func TestDeepLinkBackExits(t *testing.T) {
	f, err := NewFlowWithRole("React")
	if err != nil {
		t.Fatal(err)
	}
	if f.Step() != StepAssess {
		t.Fatalf("deep link should start at assess, got %v", f.Step())
	}
	if exit := f.Back(); !exit {
		t.Error("Back from deep-linked assess should exit, not visit select")
	}
}

func TestDeepLinkUnknownRole(t *testing.T) {
	if _, err := NewFlowWithRole("nope"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestReset(t *testing.T) {
	f := assessFlow(t, "Go")
	if err := f.Rate("Goroutines", 5); err != nil {
		t.Fatal(err)
	}
	f.SetContext("some context")
	if err := f.Submit(); err != nil {
		t.Fatal(err)
	}

	f.Reset()
	if f.Step() != StepSelect {
		t.Errorf("step = %v, want StepSelect", f.Step())
	}
	if _, ok := f.Role(); ok {
		t.Error("role should be cleared")
	}
	if _, ok := f.Rating("Goroutines"); ok {
		t.Error("ratings should be cleared")
	}
	if f.Context() != "" {
		t.Error("context should be cleared")
	}
	if f.Readiness() != 0 {
		t.Error("readiness should be zero after reset")
	}
}

func TestConfirmWithoutRole(t *testing.T) {
	f := NewFlow()
	if err := f.Confirm(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
