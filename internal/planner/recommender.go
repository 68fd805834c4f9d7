// Package planner ranks candidate posting times for a set of platforms on a
// given calendar date. Recommend is a pure function of its inputs: no clock
// reads, no I/O, no randomness.
package planner

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/timetable"
	"github.com/postpilot/content-planner-go/internal/util"
)

const (
	maxSuggestions   = 6
	slotsPerPlatform = 3

	bestDayBonus    = 8
	dayPrefBonus    = 4
	typeShiftMalus  = 3
	suggestionFloor = 55
	suggestionCeil  = 99
)

type Recommender struct {
	tt *timetable.Timetable
}

func New(tt *timetable.Timetable) *Recommender {
	return &Recommender{tt: tt}
}

// Recommend returns up to six deduplicated posting-time suggestions for the
// requested platforms on the given date, best score first. An empty platform
// list or a malformed date yields an empty slice, never an error; unknown
// platforms and content types contribute nothing.
func (r *Recommender) Recommend(platforms []string, contentType, date string) []domain.Suggestion {
	if len(platforms) == 0 {
		return []domain.Suggestion{}
	}

	day, ok := parseCalendarDate(date)
	if !ok {
		return []domain.Suggestion{}
	}

	weekday := day.Weekday()
	adj := r.tt.Adjustment(contentType)
	hourShift := adj.TimeShiftHours + r.tt.DayShift(weekday)

	merged := make([]domain.Suggestion, 0, len(platforms)*slotsPerPlatform)
	for _, platform := range platforms {
		profile, found := r.tt.Profile(platform)
		if !found {
			continue
		}

		scoreShift := 0
		if weekdayIn(weekday, profile.BestDays) {
			scoreShift += bestDayBonus
		}
		if weekdayIn(weekday, adj.DayPreference) {
			scoreShift += dayPrefBonus
		}

		penalty := 0
		if adj.TimeShiftHours != 0 {
			penalty = typeShiftMalus
		}

		slots := profile.BestTimes
		if len(slots) > slotsPerPlatform {
			slots = slots[:slotsPerPlatform]
		}

		for _, slot := range slots {
			adjusted, ok := shiftClockTime(slot.Time, hourShift)
			if !ok {
				continue
			}

			merged = append(merged, domain.Suggestion{
				ID:       fmt.Sprintf("%s-%s-%s", profile.Platform, adjusted, date),
				Platform: profile.Platform,
				Time:     adjusted,
				Date:     date,
				DayName:  weekday.String(),
				Label:    slot.Label,
				Score:    util.Clamp(slot.BaseScore+scoreShift-penalty, suggestionFloor, suggestionCeil),
				Tip:      profile.Tip,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	seen := make(map[string]struct{}, len(merged))
	deduped := make([]domain.Suggestion, 0, len(merged))
	for _, s := range merged {
		key := s.Time + "@" + s.Date
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, s)
		if len(deduped) == maxSuggestions {
			break
		}
	}

	return deduped
}

// parseCalendarDate builds a date from the literal YYYY-MM-DD components. The
// components are validated by round-tripping through time.Date so overflowing
// days (2025-02-31) are rejected instead of normalized. No timezone conversion
// happens here: the weekday must match the calendar date as written.
func parseCalendarDate(value string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(value), "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	dayOfMonth, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), dayOfMonth, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != dayOfMonth {
		return time.Time{}, false
	}
	return t, true
}

// shiftClockTime shifts the hour of an HH:MM value, clamping to [0,23] and
// leaving minutes untouched.
func shiftClockTime(value string, hours int) (string, bool) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return "", false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", util.Clamp(hour+hours, 0, 23), minute), true
}

func weekdayIn(day time.Weekday, days []time.Weekday) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
