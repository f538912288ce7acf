package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/performance"
)

// QuizResult is one completed session's outcome.
type QuizResult struct {
	ID         int64
	SessionID  string
	VideoID    string
	Correct    int
	Total      int
	Percentage float64
	TopicStats []performance.TopicStat
	CreatedAt  time.Time
}

// ResultRepo stores and queries quiz results.
type ResultRepo interface {
	Save(ctx context.Context, r *QuizResult) error
	ByVideo(ctx context.Context, videoID string) ([]QuizResult, error)
	Recent(ctx context.Context, limit int) ([]QuizResult, error)
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, result *QuizResult) error {
	stats, err := json.Marshal(result.TopicStats)
	if err != nil {
		return fmt.Errorf("marshal topic stats: %w", err)
	}

	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results (session_id, video_id, correct, total, percentage, topic_stats, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.SessionID, result.VideoID, result.Correct, result.Total,
		result.Percentage, string(stats), result.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert quiz result: %w", err)
	}

	result.ID, _ = res.LastInsertId()
	return nil
}

func (r *resultRepo) ByVideo(ctx context.Context, videoID string) ([]QuizResult, error) {
	return r.query(ctx,
		`SELECT id, session_id, video_id, correct, total, percentage, topic_stats, created_at
		 FROM quiz_results WHERE video_id = ? ORDER BY created_at DESC`, videoID)
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]QuizResult, error) {
	return r.query(ctx,
		`SELECT id, session_id, video_id, correct, total, percentage, topic_stats, created_at
		 FROM quiz_results ORDER BY created_at DESC LIMIT ?`, limit)
}

func (r *resultRepo) query(ctx context.Context, q string, args ...any) ([]QuizResult, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var results []QuizResult
	for rows.Next() {
		var res QuizResult
		var stats string
		if err := rows.Scan(&res.ID, &res.SessionID, &res.VideoID, &res.Correct,
			&res.Total, &res.Percentage, &stats, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		if err := json.Unmarshal([]byte(stats), &res.TopicStats); err != nil {
			return nil, fmt.Errorf("decode topic stats: %w", err)
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
