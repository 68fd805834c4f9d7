// Package timetable holds the static posting-time reference data the
// recommender reads: per-platform best days and slots, per-content-type
// adjustments, and the per-weekday hour shift. The tables are built once and
// treated as read-only afterwards.
package timetable

import (
	"time"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/util"
)

type Timetable struct {
	profiles    map[string]*domain.PlatformProfile
	adjustments map[string]domain.ContentTypeAdjustment
	dayShifts   map[time.Weekday]int
}

// New assembles a timetable from explicit tables. Adjustment keys are
// normalized the same way lookups are, so callers can pass display names.
func New(profiles []*domain.PlatformProfile, adjustments map[string]domain.ContentTypeAdjustment, dayShifts map[time.Weekday]int) *Timetable {
	profileMap := make(map[string]*domain.PlatformProfile, len(profiles))
	for _, p := range profiles {
		profileMap[util.Normalize(p.Platform)] = p
	}

	adjMap := make(map[string]domain.ContentTypeAdjustment, len(adjustments))
	for name, adj := range adjustments {
		adjMap[util.Normalize(name)] = adj
	}

	if dayShifts == nil {
		dayShifts = map[time.Weekday]int{}
	}

	return &Timetable{
		profiles:    profileMap,
		adjustments: adjMap,
		dayShifts:   dayShifts,
	}
}

// Profile looks up a platform by name, case-insensitively.
func (t *Timetable) Profile(platform string) (*domain.PlatformProfile, bool) {
	p, ok := t.profiles[util.Normalize(platform)]
	return p, ok
}

// Adjustment returns the content-type adjustment, or the zero adjustment for
// unknown types.
func (t *Timetable) Adjustment(contentType string) domain.ContentTypeAdjustment {
	return t.adjustments[util.Normalize(contentType)]
}

// DayShift returns the hour offset applied to base slots on the given weekday.
// The shift exists so the same platform/content-type inputs do not produce the
// same clock times every day of the week.
func (t *Timetable) DayShift(day time.Weekday) int {
	return t.dayShifts[day]
}

func (t *Timetable) Platforms() []string {
	names := make([]string, 0, len(t.profiles))
	for _, p := range t.profiles {
		names = append(names, p.Platform)
	}
	return names
}

// Default builds the shipped reference timetable.
func Default() *Timetable {
	profiles := []*domain.PlatformProfile{
		{
			Platform: "Instagram",
			BestDays: []time.Weekday{time.Tuesday, time.Wednesday, time.Thursday},
			BestTimes: []domain.BestTime{
				{Time: "11:00", Label: "Late morning reach", BaseScore: 88},
				{Time: "14:00", Label: "Lunch break scroll", BaseScore: 84},
				{Time: "17:00", Label: "Commute wind-down", BaseScore: 80},
				{Time: "20:00", Label: "Evening browse", BaseScore: 76},
			},
			WorstTimes: []string{"03:00", "05:00"},
			Tip:        "Reels posted before lunch tend to pick up midday momentum.",
		},
		{
			Platform: "TikTok",
			BestDays: []time.Weekday{time.Tuesday, time.Thursday, time.Friday},
			BestTimes: []domain.BestTime{
				{Time: "10:00", Label: "Morning feed refresh", BaseScore: 90},
				{Time: "16:00", Label: "After-school peak", BaseScore: 86},
				{Time: "19:00", Label: "Prime time", BaseScore: 84},
				{Time: "22:00", Label: "Late night scroll", BaseScore: 78},
			},
			WorstTimes: []string{"04:00", "06:00"},
			Tip:        "The first hour decides distribution; post when you can reply to comments.",
		},
		{
			Platform: "X",
			BestDays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday},
			BestTimes: []domain.BestTime{
				{Time: "08:00", Label: "Morning commute", BaseScore: 85},
				{Time: "12:00", Label: "Lunch check-in", BaseScore: 83},
				{Time: "15:00", Label: "Afternoon lull", BaseScore: 79},
				{Time: "18:00", Label: "End of workday", BaseScore: 74},
			},
			WorstTimes: []string{"00:00", "04:00"},
			Tip:        "Threads outperform single posts on weekday mornings.",
		},
		{
			Platform: "Facebook",
			BestDays: []time.Weekday{time.Wednesday, time.Thursday, time.Friday},
			BestTimes: []domain.BestTime{
				{Time: "09:00", Label: "Morning catch-up", BaseScore: 82},
				{Time: "13:00", Label: "Early afternoon", BaseScore: 80},
				{Time: "15:00", Label: "Mid-afternoon break", BaseScore: 77},
				{Time: "19:00", Label: "After dinner", BaseScore: 72},
			},
			WorstTimes: []string{"01:00", "05:00"},
			Tip:        "Native video and link-free posts get wider organic reach.",
		},
		{
			Platform: "YouTube",
			BestDays: []time.Weekday{time.Thursday, time.Friday, time.Saturday},
			BestTimes: []domain.BestTime{
				{Time: "12:00", Label: "Lunchtime premiere", BaseScore: 87},
				{Time: "15:00", Label: "Afternoon upload", BaseScore: 84},
				{Time: "18:00", Label: "Evening watch window", BaseScore: 82},
				{Time: "21:00", Label: "Late evening", BaseScore: 77},
			},
			WorstTimes: []string{"03:00", "06:00"},
			Tip:        "Upload 2-3 hours before your audience's evening peak so indexing finishes.",
		},
	}

	adjustments := map[string]domain.ContentTypeAdjustment{
		"reel": {
			TimeShiftHours: 0,
			DayPreference:  []time.Weekday{time.Tuesday, time.Friday},
		},
		"story": {
			TimeShiftHours: -2,
			DayPreference:  []time.Weekday{time.Saturday, time.Sunday},
		},
		"photo": {
			TimeShiftHours: 0,
			DayPreference:  []time.Weekday{time.Monday, time.Wednesday},
		},
		"video": {
			TimeShiftHours: 1,
			DayPreference:  []time.Weekday{time.Thursday, time.Sunday},
		},
		"short": {
			TimeShiftHours: 0,
			DayPreference:  []time.Weekday{time.Wednesday, time.Saturday},
		},
		"live": {
			TimeShiftHours: 3,
			DayPreference:  []time.Weekday{time.Friday, time.Saturday},
		},
	}

	return New(profiles, adjustments, map[time.Weekday]int{
		time.Sunday:    2,
		time.Monday:    1,
		time.Tuesday:   0,
		time.Wednesday: 0,
		time.Thursday:  0,
		time.Friday:    1,
		time.Saturday:  2,
	})
}
