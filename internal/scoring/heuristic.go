package scoring

import (
	"strings"
	"unicode"

	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/util"
)

// ctaKeywords are the phrases that count as an explicit call to action.
var ctaKeywords = []string{
	"comment", "share", "follow", "click", "link", "dm",
	"save", "tag", "check out", "learn more",
}

// emphasisRunes mark an energetic hook line: plain exclamation or one of a
// fixed celebratory emoji set.
var emphasisRunes = map[rune]struct{}{
	'!': {}, '🔥': {}, '🎉': {}, '🚀': {}, '💪': {}, '✨': {}, '😍': {}, '🙌': {}, '💯': {},
}

// ScoreContent is the fallback scorer used when no AI analysis text is
// available or parsing it produced nothing. Fixed baselines plus fixed
// bonuses per axis, clamped to [0,100]; the same inputs always produce the
// same breakdown.
func ScoreContent(caption, hashtags, title string) domain.ScoreBreakdown {
	hook := scoreHook(caption)
	cta := scoreCTA(caption)
	tags := scoreHashtags(hashtags)
	brand := scoreBrandVoice(caption, title)

	return clampBreakdown(domain.ScoreBreakdown{
		Overall:    util.RoundMean(hook, cta, tags, brand),
		Hook:       hook,
		CTA:        cta,
		Hashtags:   tags,
		BrandVoice: brand,
	})
}

func scoreHook(caption string) int {
	score := 30
	first := util.FirstLine(caption)
	if first == "" {
		return score
	}

	if strings.ContainsRune(first, '?') {
		score += 20
	}
	if r := []rune(first)[0]; unicode.IsUpper(r) {
		score += 10
	}
	if length := len([]rune(first)); length > 10 && length < 80 {
		score += 15
	}
	if containsEmphasis(first) {
		score += 10
	}
	return score
}

func scoreCTA(caption string) int {
	score := 30
	lower := strings.ToLower(caption)

	for _, kw := range ctaKeywords {
		if strings.Contains(lower, kw) {
			score += 30
			break
		}
	}
	if strings.ContainsRune(caption, '?') {
		score += 15
	}
	if strings.Contains(lower, "below") || strings.Contains(caption, "👇") || strings.Contains(caption, "⬇") {
		score += 10
	}
	return score
}

func scoreHashtags(hashtags string) int {
	score := 30
	count := countHashtags(hashtags)

	switch {
	case count >= 3 && count <= 10:
		score += 30
	case count > 0 && count < 3:
		score += 15
	case count > 10:
		score += 10
	}
	if len([]rune(hashtags)) > 20 {
		score += 15
	}
	return score
}

func scoreBrandVoice(caption, title string) int {
	score := 50
	if len([]rune(caption)) > 50 {
		score += 20
	}
	if len([]rune(title)) > 5 {
		score += 10
	}
	return score
}

func containsEmphasis(s string) bool {
	for _, r := range s {
		if _, ok := emphasisRunes[r]; ok {
			return true
		}
	}
	return false
}

func countHashtags(s string) int {
	count := 0
	for _, field := range strings.Fields(s) {
		if strings.HasPrefix(field, "#") && len(field) > 1 {
			count++
		}
	}
	return count
}
