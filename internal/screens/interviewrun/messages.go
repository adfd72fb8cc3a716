package interviewrun

import (
	"time"

	"github.com/dev-hari-haran/Way-to-Industry/internal/interview"
)

// questionsReadyMsg is sent when the question set has been generated
// (or the built-in fallback set was substituted).
type questionsReadyMsg struct {
	Questions []interview.Question
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time

// finishedMsg carries the scored result of the session.
type finishedMsg struct {
	Result interview.Result
	Err    error
}
