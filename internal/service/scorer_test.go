package service

import (
	"context"
	"errors"
	"testing"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/planner"
	"github.com/postpilot/content-planner-go/internal/timetable"
	"go.uber.org/zap"
)

type fakeAnalyzer struct {
	text  string
	err   error
	calls int
}

func (f *fakeAnalyzer) AnalyzeContent(ctx context.Context, platform string, features domain.ContentFeatures) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestScoreUsesParsedAnalysis(t *testing.T) {
	analyzer := &fakeAnalyzer{
		text: "Overall score: 82. Hook: 70.\n- Add a stronger call to action at the end",
	}
	scorer := NewScorerService(analyzer, nil, zap.NewNop())

	result, err := scorer.Score(context.Background(), "instagram", domain.ContentFeatures{
		Caption: "morning routine",
	}, "")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if result.Source != domain.ScoreSourceAI {
		t.Errorf("source = %q, want %q", result.Source, domain.ScoreSourceAI)
	}
	if result.Scores.Overall != 82 {
		t.Errorf("overall = %d, want 82", result.Scores.Overall)
	}
	if result.Scores.Hook != 70 {
		t.Errorf("hook = %d, want 70", result.Scores.Hook)
	}
	if len(result.Suggestions) != 1 {
		t.Fatalf("suggestions = %v, want exactly one", result.Suggestions)
	}
	if analyzer.calls != 1 {
		t.Errorf("analyzer calls = %d, want 1", analyzer.calls)
	}
}

func TestScoreFallsBackWhenAnalyzerFails(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("provider down")}
	scorer := NewScorerService(analyzer, nil, zap.NewNop())

	result, err := scorer.Score(context.Background(), "tiktok", domain.ContentFeatures{
		Caption:  "Is this working? 🔥",
		Hashtags: "#fit #gym #motivation",
		Title:    "Leg Day",
	}, "")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if result.Source != domain.ScoreSourceHeuristic {
		t.Errorf("source = %q, want %q", result.Source, domain.ScoreSourceHeuristic)
	}
	if result.Scores.Hook != 85 {
		t.Errorf("hook = %d, want 85", result.Scores.Hook)
	}
	if result.Scores.Overall != 66 {
		t.Errorf("overall = %d, want 66", result.Scores.Overall)
	}
}

func TestScoreFallsBackWhenNothingMatched(t *testing.T) {
	analyzer := &fakeAnalyzer{text: "Looks great, keep posting!"}
	scorer := NewScorerService(analyzer, nil, zap.NewNop())

	result, err := scorer.Score(context.Background(), "x", domain.ContentFeatures{}, "")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if result.Source != domain.ScoreSourceHeuristic {
		t.Errorf("source = %q, want %q", result.Source, domain.ScoreSourceHeuristic)
	}
}

func TestScoreWithSuppliedAnalysisSkipsProvider(t *testing.T) {
	analyzer := &fakeAnalyzer{text: "should not be used"}
	scorer := NewScorerService(analyzer, nil, zap.NewNop())

	result, err := scorer.Score(context.Background(), "instagram", domain.ContentFeatures{},
		"Hook: 60. CTA: 40.")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}

	if analyzer.calls != 0 {
		t.Errorf("analyzer calls = %d, want 0", analyzer.calls)
	}
	if result.Scores.Hook != 60 || result.Scores.CTA != 40 {
		t.Errorf("scores = %+v, want hook 60 cta 40", result.Scores)
	}
	if result.Scores.Overall != 50 {
		t.Errorf("derived overall = %d, want 50", result.Scores.Overall)
	}
}

func TestScoreWithoutAnalyzerScoresHeuristically(t *testing.T) {
	scorer := NewScorerService(nil, nil, zap.NewNop())

	result, err := scorer.Score(context.Background(), "facebook", domain.ContentFeatures{}, "")
	if err != nil {
		t.Fatalf("Score returned error: %v", err)
	}
	if result.Source != domain.ScoreSourceHeuristic {
		t.Errorf("source = %q, want %q", result.Source, domain.ScoreSourceHeuristic)
	}
	if len(result.Suggestions) == 0 {
		t.Error("expected heuristic tips for an empty draft")
	}
}

func TestSuggestDelegatesToRecommender(t *testing.T) {
	svc := NewSuggestionService(planner.New(timetable.Default()), nil, zap.NewNop())

	suggestions := svc.Suggest(context.Background(), []string{"Instagram"}, "reel", "2025-01-07")
	if len(suggestions) != 3 {
		t.Fatalf("suggestions = %d, want 3", len(suggestions))
	}
	for _, s := range suggestions {
		if s.Platform != "Instagram" {
			t.Errorf("platform = %q, want Instagram", s.Platform)
		}
	}

	if got := svc.Suggest(context.Background(), nil, "", "not-a-date"); len(got) != 0 {
		t.Errorf("malformed input produced %d suggestions, want 0", len(got))
	}
}
