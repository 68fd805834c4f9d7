package planner

import (
	"reflect"
	"testing"
	"time"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/timetable"
)

func newRecommender() *Recommender {
	return New(timetable.Default())
}

func TestRecommendInstagramReelOnBestDay(t *testing.T) {
	r := newRecommender()

	// 2025-01-07 is a Tuesday: Instagram best day, zero day shift, Reel has
	// no hour shift, so the base slots come back unshifted with bonuses.
	got := r.Recommend([]string{"Instagram"}, "Reel", "2025-01-07")

	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}

	wantTimes := []string{"11:00", "14:00", "17:00"}
	baseScores := []int{88, 84, 80}
	for i, s := range got {
		if s.Time != wantTimes[i] {
			t.Errorf("suggestion %d: expected time %s, got %s", i, wantTimes[i], s.Time)
		}
		if s.Score < baseScores[i] {
			t.Errorf("suggestion %d: expected score >= base %d, got %d", i, baseScores[i], s.Score)
		}
		if s.Score > 99 {
			t.Errorf("suggestion %d: score %d above ceiling", i, s.Score)
		}
		if s.DayName != "Tuesday" {
			t.Errorf("suggestion %d: expected Tuesday, got %s", i, s.DayName)
		}
		if s.ID != "Instagram-"+s.Time+"-2025-01-07" {
			t.Errorf("suggestion %d: unexpected id %q", i, s.ID)
		}
	}

	// Tuesday is both an Instagram best day (+8) and a Reel preference day
	// (+4); 88+12 crosses the ceiling.
	if got[0].Score != 99 {
		t.Errorf("expected top slot clamped to 99, got %d", got[0].Score)
	}
	if got[1].Score != 96 || got[2].Score != 92 {
		t.Errorf("expected bonus-adjusted scores 96/92, got %d/%d", got[1].Score, got[2].Score)
	}
}

func TestRecommendSundayShiftsHoursWithoutTypePenalty(t *testing.T) {
	r := newRecommender()

	// 2025-01-05 is a Sunday: +2h day shift, not an Instagram best day, empty
	// content type means no hour shift of its own and therefore no penalty.
	got := r.Recommend([]string{"Instagram"}, "", "2025-01-05")

	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}

	wantTimes := []string{"13:00", "16:00", "19:00"}
	baseScores := []int{88, 84, 80}
	for i, s := range got {
		if s.Time != wantTimes[i] {
			t.Errorf("suggestion %d: expected +2h time %s, got %s", i, wantTimes[i], s.Time)
		}
		if s.Score != baseScores[i] {
			t.Errorf("suggestion %d: expected base score %d (no bonus, no penalty), got %d", i, baseScores[i], s.Score)
		}
	}
}

func TestRecommendAppliesTypeShiftPenalty(t *testing.T) {
	r := newRecommender()

	// Story shifts -2h; on a Wednesday (zero day shift) the penalty is the
	// only score change besides the best-day bonus.
	got := r.Recommend([]string{"Instagram"}, "Story", "2025-01-08")

	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(got))
	}
	if got[0].Time != "09:00" {
		t.Errorf("expected first slot shifted to 09:00, got %s", got[0].Time)
	}
	// 88 + 8 (best day) - 3 (type shift) = 93
	if got[0].Score != 93 {
		t.Errorf("expected score 93, got %d", got[0].Score)
	}
}

func TestRecommendDeterminism(t *testing.T) {
	r := newRecommender()

	a := r.Recommend([]string{"Instagram", "TikTok", "YouTube"}, "Video", "2025-03-14")
	b := r.Recommend([]string{"Instagram", "TikTok", "YouTube"}, "Video", "2025-03-14")

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical inputs produced different output:\n%v\n%v", a, b)
	}
}

func TestRecommendMergeSortDedupCap(t *testing.T) {
	r := newRecommender()

	platforms := []string{"Instagram", "TikTok", "X", "Facebook", "YouTube"}
	got := r.Recommend(platforms, "Reel", "2025-06-10")

	if len(got) > 6 {
		t.Fatalf("expected at most 6 suggestions, got %d", len(got))
	}
	if len(got) == 0 {
		t.Fatal("expected suggestions for known platforms")
	}

	seen := make(map[string]struct{})
	for i, s := range got {
		if i > 0 && got[i-1].Score < s.Score {
			t.Errorf("scores not non-increasing at index %d: %d then %d", i, got[i-1].Score, s.Score)
		}
		key := s.Time + "@" + s.Date
		if _, dup := seen[key]; dup {
			t.Errorf("duplicate (time,date) pair %s", key)
		}
		seen[key] = struct{}{}
		if s.Score < 0 || s.Score > 100 {
			t.Errorf("score %d out of [0,100]", s.Score)
		}
	}
}

func TestRecommendEmptyInputs(t *testing.T) {
	r := newRecommender()

	cases := []struct {
		name        string
		platforms   []string
		contentType string
		date        string
	}{
		{"no platforms", nil, "Reel", "2025-01-07"},
		{"empty date", []string{"Instagram"}, "Reel", ""},
		{"garbage date", []string{"Instagram"}, "Reel", "not-a-date"},
		{"impossible date", []string{"Instagram"}, "Reel", "2025-02-31"},
		{"wrong format", []string{"Instagram"}, "Reel", "07-01-2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Recommend(tc.platforms, tc.contentType, tc.date); len(got) != 0 {
				t.Fatalf("expected empty result, got %v", got)
			}
		})
	}
}

func TestRecommendSkipsUnknownPlatforms(t *testing.T) {
	r := newRecommender()

	got := r.Recommend([]string{"MySpace", "Instagram"}, "", "2025-01-07")
	if len(got) != 3 {
		t.Fatalf("expected 3 suggestions from the known platform, got %d", len(got))
	}
	for _, s := range got {
		if s.Platform != "Instagram" {
			t.Errorf("unexpected platform %s", s.Platform)
		}
	}
}

func TestRecommendUnknownContentTypeIsNeutral(t *testing.T) {
	r := newRecommender()

	plain := r.Recommend([]string{"TikTok"}, "", "2025-01-09")
	unknown := r.Recommend([]string{"TikTok"}, "hologram", "2025-01-09")

	if !reflect.DeepEqual(plain, unknown) {
		t.Fatalf("unknown content type should behave like no content type:\n%v\n%v", plain, unknown)
	}
}

func TestRecommendHourClamping(t *testing.T) {
	profiles := []*domain.PlatformProfile{
		{
			Platform: "Instagram",
			BestDays: []time.Weekday{},
			BestTimes: []domain.BestTime{
				{Time: "23:00", Label: "Late", BaseScore: 70},
			},
			Tip: "t",
		},
	}
	adjustments := map[string]domain.ContentTypeAdjustment{
		"live": {TimeShiftHours: 3},
	}
	r := New(timetable.New(profiles, adjustments, map[time.Weekday]int{time.Sunday: 2}))

	got := r.Recommend([]string{"Instagram"}, "Live", "2025-01-05")
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Time != "23:00" {
		t.Errorf("expected hour clamped to 23:00, got %s", got[0].Time)
	}
}

func TestParseCalendarDateWeekday(t *testing.T) {
	// Weekday must come from the literal components, not from a timezone
	// sensitive conversion of the ISO string.
	d, ok := parseCalendarDate("2025-01-07")
	if !ok {
		t.Fatal("expected valid date")
	}
	if d.Weekday() != time.Tuesday {
		t.Fatalf("expected Tuesday, got %s", d.Weekday())
	}
}
