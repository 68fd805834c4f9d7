package domain

// ContentFeatures is the raw text the scorer works from. Any field may be empty.
type ContentFeatures struct {
	Title    string `json:"title"`
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
}

// ScoreBreakdown is the multi-axis engagement score. Every field is an
// integer in [0,100].
type ScoreBreakdown struct {
	Overall    int `json:"overall"`
	Hook       int `json:"hook"`
	CTA        int `json:"cta"`
	Hashtags   int `json:"hashtags"`
	BrandVoice int `json:"brandVoice"`
}

// ScoreSource identifies which path produced a breakdown.
type ScoreSource string

const (
	ScoreSourceAI        ScoreSource = "ai"
	ScoreSourceHeuristic ScoreSource = "heuristic"
)

// ScoreResult is what the scoring pipeline hands back to callers.
type ScoreResult struct {
	Scores      ScoreBreakdown `json:"scores"`
	Suggestions []string       `json:"suggestions"`
	Source      ScoreSource    `json:"source"`
}
