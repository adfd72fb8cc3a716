package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (r *eventRepo) AppendInterview(ctx context.Context, data InterviewEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO interview_events (timestamp, result_id, topic, kind, score, label)
		VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.ResultID, data.Topic, data.Kind, data.Score, data.Label,
	)
	if err != nil {
		return fmt.Errorf("save interview event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryInterviewEvents(ctx context.Context, opts QueryOpts) ([]InterviewEvent, error) {
	query := `SELECT id, timestamp, result_id, topic, kind, score, label FROM interview_events`
	where, args := buildFilters(opts)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query interview events: %w", err)
	}
	defer rows.Close()

	var events []InterviewEvent
	for rows.Next() {
		var e InterviewEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.ResultID, &e.Topic, &e.Kind, &e.Score, &e.Label); err != nil {
			return nil, fmt.Errorf("scan interview event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) InterviewStatsByTopic(ctx context.Context) ([]InterviewTopicStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT topic, kind, COUNT(*), CAST(AVG(score) AS INTEGER), MAX(score)
		FROM interview_events
		GROUP BY topic, kind
		ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("query interview stats: %w", err)
	}
	defer rows.Close()

	var stats []InterviewTopicStat
	for rows.Next() {
		var st InterviewTopicStat
		if err := rows.Scan(&st.Topic, &st.Kind, &st.Count, &st.AvgScore, &st.BestScore); err != nil {
			return nil, fmt.Errorf("scan interview stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func (r *eventRepo) PracticeDays(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT date(timestamp)
		FROM interview_events
		ORDER BY 1 DESC`)
	if err != nil {
		return nil, fmt.Errorf("query practice days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan practice day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
