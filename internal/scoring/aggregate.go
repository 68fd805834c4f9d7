package scoring

import (
	"github.com/postpilot/content-planner-go/internal/domain"
	"github.com/postpilot/content-planner-go/internal/util"
)

const defaultOverall = 50

// clampBreakdown enforces the [0,100] invariant on every axis. Both scoring
// paths go through here so their outputs stay comparable.
func clampBreakdown(b domain.ScoreBreakdown) domain.ScoreBreakdown {
	return domain.ScoreBreakdown{
		Overall:    util.Clamp(b.Overall, 0, 100),
		Hook:       util.Clamp(b.Hook, 0, 100),
		CTA:        util.Clamp(b.CTA, 0, 100),
		Hashtags:   util.Clamp(b.Hashtags, 0, 100),
		BrandVoice: util.Clamp(b.BrandVoice, 0, 100),
	}
}

// deriveOverall fills in a missing overall from the non-zero sub-scores, or
// falls back to the neutral default when nothing was found.
func deriveOverall(hook, cta, hashtags, brandVoice int) int {
	parts := make([]int, 0, 4)
	for _, v := range []int{hook, cta, hashtags, brandVoice} {
		if v > 0 {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return defaultOverall
	}
	return util.RoundMean(parts...)
}
