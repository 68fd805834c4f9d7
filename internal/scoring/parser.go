package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/util"
)

const maxParsedSuggestions = 4

// ParseResult is the typed outcome of reading an AI analysis text. Matched is
// false when no score pattern was found at all, which is the signal for
// callers to fall back to the heuristic scorer.
type ParseResult struct {
	Scores      domain.ScoreBreakdown
	Suggestions []string
	Matched     bool
}

// scoreField names one axis of the breakdown for the pattern table.
type scoreField int

const (
	fieldOverall scoreField = iota
	fieldHook
	fieldCTA
	fieldHashtags
	fieldBrandVoice
)

// scorePatterns maps keyword groups to breakdown fields. Each pattern takes
// the first 1-3 digit integer after the keyword; first match wins per field.
var scorePatterns = []struct {
	field scoreField
	re    *regexp.Regexp
}{
	{fieldOverall, regexp.MustCompile(`(?i)(?:overall|total|engagement)[^0-9]*?(\d{1,3})`)},
	{fieldHook, regexp.MustCompile(`(?i)hook[^0-9]*?(\d{1,3})`)},
	{fieldCTA, regexp.MustCompile(`(?i)(?:cta|call\s+to\s+action)[^0-9]*?(\d{1,3})`)},
	{fieldHashtags, regexp.MustCompile(`(?i)hashtag[^0-9]*?(\d{1,3})`)},
	{fieldBrandVoice, regexp.MustCompile(`(?i)(?:brand|voice|alignment)[^0-9]*?(\d{1,3})`)},
}

var (
	bulletPrefix     = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*`)
	suggestionPrefix = regexp.MustCompile(`(?i)^\s*(?:suggestions?|improvements?|improve|tips?|recommendations?)\s*[:\-]?\s*`)
)

// ParseAnalysis extracts sub-scores and improvement suggestions from
// free-form AI analysis text. No provider schema is guaranteed, so anything
// that does not match simply stays at its zero value; the function never
// fails.
func ParseAnalysis(text string) ParseResult {
	result := ParseResult{Suggestions: []string{}}

	var overallFound bool
	for _, p := range scorePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		value = util.Min(value, 100)

		result.Matched = true
		switch p.field {
		case fieldOverall:
			result.Scores.Overall = value
			overallFound = true
		case fieldHook:
			result.Scores.Hook = value
		case fieldCTA:
			result.Scores.CTA = value
		case fieldHashtags:
			result.Scores.Hashtags = value
		case fieldBrandVoice:
			result.Scores.BrandVoice = value
		}
	}

	if !overallFound {
		result.Scores.Overall = deriveOverall(
			result.Scores.Hook,
			result.Scores.CTA,
			result.Scores.Hashtags,
			result.Scores.BrandVoice,
		)
	}

	result.Scores = clampBreakdown(result.Scores)
	result.Suggestions = extractSuggestions(text)
	return result
}

// extractSuggestions pulls short improvement lines: anything introduced by a
// bullet marker or a suggestion/improve/tip/recommendation keyword. Source
// order is preserved and the list is capped.
func extractSuggestions(text string) []string {
	suggestions := []string{}

	for _, line := range strings.Split(text, "\n") {
		candidate, ok := stripSuggestionMarker(line)
		if !ok {
			continue
		}

		length := len([]rune(candidate))
		if length <= 10 || length >= 200 {
			continue
		}

		suggestions = append(suggestions, candidate)
		if len(suggestions) == maxParsedSuggestions {
			break
		}
	}

	return suggestions
}

func stripSuggestionMarker(line string) (string, bool) {
	rest := line
	marked := false

	if loc := bulletPrefix.FindStringIndex(rest); loc != nil && loc[1] > loc[0] {
		trimmed := rest[loc[1]:]
		if strings.TrimSpace(trimmed) != "" {
			rest = trimmed
			marked = true
		}
	}

	if loc := suggestionPrefix.FindStringIndex(rest); loc != nil && loc[1] > loc[0] {
		rest = rest[loc[1]:]
		marked = true
	}

	if !marked {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
