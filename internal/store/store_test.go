package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"
	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/performance"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestResultRepoSaveAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	result := &QuizResult{
		SessionID:  "sess-1",
		VideoID:    "vid-1",
		Correct:    9,
		Total:      15,
		Percentage: 60,
		TopicStats: []performance.TopicStat{
			{Topic: "Pointers", Correct: 5, Total: 5, Percentage: 100, Status: performance.StatusStrong},
			{Topic: "Maps", Correct: 4, Total: 10, Percentage: 40, Status: performance.StatusWeak},
		},
	}
	if err := repo.Save(ctx, result); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if result.ID == 0 {
		t.Errorf("Save() did not set ID")
	}

	got, err := repo.ByVideo(ctx, "vid-1")
	if err != nil {
		t.Fatalf("ByVideo() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ByVideo() returned %d results, want 1", len(got))
	}
	if got[0].Correct != 9 || got[0].Total != 15 {
		t.Errorf("result = %d/%d, want 9/15", got[0].Correct, got[0].Total)
	}
	if len(got[0].TopicStats) != 2 || got[0].TopicStats[1].Status != performance.StatusWeak {
		t.Errorf("topic stats = %+v", got[0].TopicStats)
	}

	none, err := repo.ByVideo(ctx, "other-vid")
	if err != nil {
		t.Fatalf("ByVideo() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ByVideo(other) = %d results, want 0", len(none))
	}
}

func TestResultRepoRecentOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		r := &QuizResult{
			SessionID: "sess",
			VideoID:   "vid",
			Correct:   i,
			Total:     10,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Save(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d results", len(got))
	}
	if got[0].Correct != 2 {
		t.Errorf("newest result first: got Correct=%d, want 2", got[0].Correct)
	}
}

func TestEventRepoSummary(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []llm.Event{
		{Model: "m1", Purpose: "notes", DurationMS: 1200, InputTokens: 100, OutputTokens: 50, CostUSD: 0.001},
		{Model: "m1", Purpose: "questions:easy", DurationMS: 900, InputTokens: 200, OutputTokens: 150, CostUSD: 0.002},
		{Model: "m2", Purpose: "questions:hard", Error: "rate limited"},
	}
	for _, ev := range events {
		if err := repo.RecordEvent(ctx, ev); err != nil {
			t.Fatalf("RecordEvent() error = %v", err)
		}
	}

	sum, err := repo.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if sum.Calls != 3 {
		t.Errorf("Calls = %d, want 3", sum.Calls)
	}
	if sum.Errors != 1 {
		t.Errorf("Errors = %d, want 1", sum.Errors)
	}
	if sum.InputTokens != 300 || sum.OutputTokens != 200 {
		t.Errorf("tokens = %d in / %d out, want 300/200", sum.InputTokens, sum.OutputTokens)
	}
	if sum.CostUSD < 0.0029 || sum.CostUSD > 0.0031 {
		t.Errorf("CostUSD = %v, want ~0.003", sum.CostUSD)
	}
}

func TestEventRepoIsEventSink(t *testing.T) {
	var _ llm.EventSink = openTestStore(t).EventRepo()
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("LECTERN_DB", p)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Errorf("DefaultDBPath() = %q, want %q", got, p)
	}
}
