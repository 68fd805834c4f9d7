package domain

import "time"

// BestTime is one posting slot in a platform's reference timetable.
type BestTime struct {
	Time      string `json:"time"` // HH:MM, 24h
	Label     string `json:"label"`
	BaseScore int    `json:"baseScore"` // 0-100
}

// PlatformProfile is the static per-platform reference data the recommender
// reads. Profiles are built once at startup and never mutated.
type PlatformProfile struct {
	Platform   string         `json:"platform"`
	BestDays   []time.Weekday `json:"bestDays"`
	BestTimes  []BestTime     `json:"bestTimes"`
	WorstTimes []string       `json:"worstTimes"` // HH:MM
	Tip        string         `json:"tip"`
}

// ContentTypeAdjustment shifts a platform's base slots for a given post format.
type ContentTypeAdjustment struct {
	TimeShiftHours int            `json:"timeShiftHours"`
	DayPreference  []time.Weekday `json:"dayPreference"`
}

// Suggestion is a single recommended (platform, time, date) posting candidate.
type Suggestion struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Time     string `json:"time"` // HH:MM
	Date     string `json:"date"` // YYYY-MM-DD
	DayName  string `json:"dayName"`
	Label    string `json:"label"`
	Score    int    `json:"score"` // 0-100
	Tip      string `json:"tip"`
}
