package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // id > After
	Before int64     // id < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event row.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates usage per purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// InterviewEventData captures one finished mock interview.
type InterviewEventData struct {
	ResultID string
	Topic    string
	Kind     string
	Score    int
	Label    string
}

// InterviewEvent is a stored interview event row.
type InterviewEvent struct {
	ID        int
	Timestamp time.Time
	InterviewEventData
}

// InterviewTopicStat aggregates interview outcomes per topic.
type InterviewTopicStat struct {
	Topic     string
	Kind      string
	Count     int
	AvgScore  int
	BestScore int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per served model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendInterview records a finished mock interview.
	AppendInterview(ctx context.Context, data InterviewEventData) error

	// QueryInterviewEvents returns interview events, newest first.
	QueryInterviewEvents(ctx context.Context, opts QueryOpts) ([]InterviewEvent, error)

	// InterviewStatsByTopic aggregates interview outcomes per topic.
	InterviewStatsByTopic(ctx context.Context) ([]InterviewTopicStat, error)

	// PracticeDays returns the distinct UTC days with at least one
	// finished interview, newest first, as YYYY-MM-DD strings.
	PracticeDays(ctx context.Context) ([]string, error)
}
