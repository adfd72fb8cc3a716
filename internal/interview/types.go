package interview

import (
	"errors"
	"time"

	"github.com/dev-hari-haran/Way-to-Industry/internal/catalog"
)

// ErrInvalidInput is returned when an engine operation is given input it
// cannot act on (wrong phase, unknown question ID). Engine state is left
// untouched.
var ErrInvalidInput = errors.New("invalid input")

// QuestionKind is the answer mode of a question.
type QuestionKind string

const (
	KindMCQ  QuestionKind = "MCQ"  // pick one of 4 options
	KindCode QuestionKind = "CODE" // free-text coding answer
)

// Counts that define an interview session. Scoring assumes exactly
// QuestionsPerSession questions at PointsPerQuestion each.
const (
	QuestionsPerSession = 5
	MCQPerSession       = 3
	CodePerSession      = 2
	MCQOptionCount      = 4
	PointsPerQuestion   = 20
)

// Question is a single interview question.
type Question struct {
	ID            int
	Kind          QuestionKind
	Prompt        string
	Options       []string // MCQ only, exactly MCQOptionCount entries
	CorrectAnswer string   // MCQ only, must equal one of Options
	Hint          string   // CODE only, optional
}

// Result records one finished interview session.
type Result struct {
	ID        string
	Topic     string
	Kind      catalog.Kind
	Score     int
	Label     string
	Timestamp time.Time
}

// LabelFor maps a 0..100 score to its verdict label.
func LabelFor(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 70:
		return "Very Good"
	case score >= 40:
		return "Good"
	default:
		return "Bad"
	}
}
