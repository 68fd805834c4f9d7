package timetable

import (
	"testing"
	"time"
)

func TestDefaultProfiles(t *testing.T) {
	tt := Default()

	for _, platform := range []string{"Instagram", "TikTok", "X", "Facebook", "YouTube"} {
		profile, ok := tt.Profile(platform)
		if !ok {
			t.Fatalf("missing profile for %s", platform)
		}
		if len(profile.BestTimes) < 3 {
			t.Errorf("%s: expected at least 3 best times, got %d", platform, len(profile.BestTimes))
		}
		for _, slot := range profile.BestTimes {
			if slot.BaseScore < 0 || slot.BaseScore > 100 {
				t.Errorf("%s %s: base score %d out of range", platform, slot.Time, slot.BaseScore)
			}
		}
		if len(profile.BestDays) == 0 {
			t.Errorf("%s: no best days", platform)
		}
		if profile.Tip == "" {
			t.Errorf("%s: missing tip", platform)
		}
	}
}

func TestProfileLookupIsCaseInsensitive(t *testing.T) {
	tt := Default()

	if _, ok := tt.Profile("instagram"); !ok {
		t.Error("lowercase lookup failed")
	}
	if _, ok := tt.Profile(" TIKTOK "); !ok {
		t.Error("padded uppercase lookup failed")
	}
	if _, ok := tt.Profile("friendster"); ok {
		t.Error("unknown platform should not resolve")
	}
}

func TestAdjustmentDefaultsToZero(t *testing.T) {
	tt := Default()

	adj := tt.Adjustment("definitely-not-a-type")
	if adj.TimeShiftHours != 0 || len(adj.DayPreference) != 0 {
		t.Fatalf("unknown content type should yield zero adjustment, got %+v", adj)
	}

	story := tt.Adjustment("Story")
	if story.TimeShiftHours != -2 {
		t.Fatalf("expected story shift -2, got %d", story.TimeShiftHours)
	}
}

func TestDayShiftTable(t *testing.T) {
	tt := Default()

	want := map[time.Weekday]int{
		time.Sunday:    2,
		time.Monday:    1,
		time.Tuesday:   0,
		time.Wednesday: 0,
		time.Thursday:  0,
		time.Friday:    1,
		time.Saturday:  2,
	}
	for day, shift := range want {
		if got := tt.DayShift(day); got != shift {
			t.Errorf("%s: expected shift %d, got %d", day, shift, got)
		}
	}
}
