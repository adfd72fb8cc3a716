package interview

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
)

// testEngine returns an engine with deterministic clock and IDs.
func testEngine() *Engine {
	e := NewEngine()
	n := 0
	e.newID = func() string { n++; return fmt.Sprintf("result-%d", n) }
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e.now = func() time.Time { base = base.Add(time.Minute); return base }
	return e
}

// startInterview drives a test engine into PhaseInProgress on the
// fallback set for the topic.
func startInterview(t *testing.T, e *Engine, topic string, kind catalog.Kind) []Question {
	t.Helper()
	if err := e.Begin(topic, kind); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	qs := Fallback(topic)
	if err := e.Deliver(qs); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	return qs
}

func TestLifecycle(t *testing.T) {
	e := testEngine()
	if e.Phase() != PhaseIdle {
		t.Fatalf("new engine phase = %v, want idle", e.Phase())
	}

	qs := startInterview(t, e, "React", catalog.KindSkill)
	if e.Phase() != PhaseInProgress {
		t.Fatalf("phase = %v, want in progress", e.Phase())
	}

	// Answer every question correctly / substantially.
	for i, q := range qs {
		cur, err := e.Current()
		if err != nil {
			t.Fatal(err)
		}
		if cur.ID != q.ID {
			t.Fatalf("current = %d, want %d", cur.ID, q.ID)
		}
		ans := cur.CorrectAnswer
		if cur.Kind == KindCode {
			ans = "func main() { fmt.Println(42) }"
		}
		if err := e.Answer(cur.ID, ans); err != nil {
			t.Fatalf("Answer: %v", err)
		}
		moved, err := e.Next()
		if err != nil {
			t.Fatal(err)
		}
		if last := i == len(qs)-1; moved == last {
			t.Fatalf("Next at question %d: moved=%v", i, moved)
		}
	}

	res, err := e.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	if res.Label != "Excellent" {
		t.Errorf("label = %q, want Excellent", res.Label)
	}
	if res.Topic != "React" || res.Kind != catalog.KindSkill {
		t.Errorf("result topic/kind = %q/%q", res.Topic, res.Kind)
	}
	if e.Phase() != PhaseIdle {
		t.Errorf("engine should return to idle, got %v", e.Phase())
	}
}

func TestUnansweredScoreZero(t *testing.T) {
	e := testEngine()
	startInterview(t, e, "Go", catalog.KindSkill)
	for {
		moved, err := e.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !moved {
			break
		}
	}
	res, err := e.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if res.Score != 0 || res.Label != "Bad" {
		t.Errorf("blank session = %d %q, want 0 Bad", res.Score, res.Label)
	}
}

func TestAnswerOnlyCurrentQuestion(t *testing.T) {
	e := testEngine()
	qs := startInterview(t, e, "SQL", catalog.KindSkill)

	// Current is question 1; answering question 3 must fail.
	if err := e.Answer(qs[2].ID, "whatever"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
	if _, ok := e.AnswerFor(qs[2].ID); ok {
		t.Error("rejected answer must not be recorded")
	}
	if err := e.Answer(qs[0].ID, qs[0].CorrectAnswer); err != nil {
		t.Errorf("answering current question: %v", err)
	}
}

func TestReanswerOverwrites(t *testing.T) {
	e := testEngine()
	qs := startInterview(t, e, "SQL", catalog.KindSkill)
	if err := e.Answer(qs[0].ID, qs[0].Options[0]); err != nil {
		t.Fatal(err)
	}
	if err := e.Answer(qs[0].ID, qs[0].Options[1]); err != nil {
		t.Fatal(err)
	}
	if got, _ := e.AnswerFor(qs[0].ID); got != qs[0].Options[1] {
		t.Errorf("answer = %q, want the second choice", got)
	}
}

func TestPhaseGuards(t *testing.T) {
	e := testEngine()

	if err := e.Deliver(Fallback("Go")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Deliver while idle err = %v", err)
	}
	if _, err := e.Finish(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Finish while idle err = %v", err)
	}
	if err := e.Begin("", catalog.KindSkill); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Begin with empty topic err = %v", err)
	}

	if err := e.Begin("Go", catalog.KindSkill); err != nil {
		t.Fatal(err)
	}
	if err := e.Begin("Rust", catalog.KindSkill); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Begin while loading err = %v", err)
	}
	if err := e.Deliver(Fallback("Go")[:3]); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Deliver short set err = %v", err)
	}
}

func TestAbortDiscards(t *testing.T) {
	e := testEngine()
	startInterview(t, e, "Docker", catalog.KindSkill)
	e.Abort()
	if e.Phase() != PhaseIdle {
		t.Errorf("phase after abort = %v, want idle", e.Phase())
	}
	if len(e.History()) != 0 {
		t.Error("abort must not record a result")
	}

	// Aborting when idle is harmless.
	e.Abort()
	if e.Phase() != PhaseIdle {
		t.Error("double abort changed phase")
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	e := testEngine()

	finishWith := func(topic string, correct int) Result {
		qs := startInterview(t, e, topic, catalog.KindSkill)
		for i := 0; i < correct; i++ {
			if err := e.Answer(qs[i].ID, qs[i].CorrectAnswer); err != nil {
				t.Fatal(err)
			}
			if _, err := e.Next(); err != nil {
				t.Fatal(err)
			}
		}
		for e.Index() < len(qs)-1 {
			if _, err := e.Next(); err != nil {
				t.Fatal(err)
			}
		}
		res, err := e.Finish()
		if err != nil {
			t.Fatal(err)
		}
		return res
	}

	first := finishWith("React", 1)
	second := finishWith("Go", 2)

	h := e.History()
	if len(h) != 2 {
		t.Fatalf("history len = %d, want 2", len(h))
	}
	if h[0].ID != second.ID || h[1].ID != first.ID {
		t.Errorf("history order = [%s %s], want newest first", h[0].ID, h[1].ID)
	}
	if !h[0].Timestamp.After(h[1].Timestamp) {
		t.Error("newest entry should carry the later timestamp")
	}
}
