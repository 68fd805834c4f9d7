package prompt

import "fmt"

// AnalysisPromptVars holds variables for the caption analysis prompt template
type AnalysisPromptVars struct {
	Platform string
	Title    string
	Caption  string
	Hashtags string
}

// BuildAnalysisPrompt builds the engagement-analysis prompt. The response is
// free-form prose; the scoring parser only looks for labeled numbers and
// bulleted suggestions, so no strict output schema is requested.
func BuildAnalysisPrompt(vars AnalysisPromptVars) string {
	platform := vars.Platform
	if platform == "" {
		platform = "social media"
	}

	return fmt.Sprintf(`You are an engagement coach for %s creators.
Analyze the draft post below and rate it on four axes, each 0-100.

## Draft:
Title: %s
Caption:
%s
Hashtags: %s

## Respond with:
- "Overall score: <number>"
- "Hook: <number>" (how well the first line stops the scroll)
- "CTA: <number>" (strength of the call to action)
- "Hashtags: <number>" (relevance and count)
- "Brand voice: <number>" (consistency of tone)
- Up to 4 bullet-point suggestions, each one short actionable sentence.

Keep the whole response under 200 words.`,
		platform,
		vars.Title,
		vars.Caption,
		vars.Hashtags,
	)
}
