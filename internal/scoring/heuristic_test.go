package scoring

import (
	"reflect"
	"strings"
	"testing"
)

func TestScoreContentFixtureBreakdown(t *testing.T) {
	got := ScoreContent("Is this working? 🔥", "#fit #gym #motivation", "Leg Day")

	// hook: 30 base, +20 question, +10 uppercase start, +15 length in
	// (10,80), +10 emoji emphasis = 85
	if got.Hook != 85 {
		t.Errorf("hook: expected 85, got %d", got.Hook)
	}
	// cta: 30 base, no keyword, +15 question = 45
	if got.CTA != 45 {
		t.Errorf("cta: expected 45, got %d", got.CTA)
	}
	// hashtags: 30 base, +30 for 3 tags, +15 for 21-rune string = 75
	if got.Hashtags != 75 {
		t.Errorf("hashtags: expected 75, got %d", got.Hashtags)
	}
	// brand voice: 50 base, caption <= 50 runes, +10 title longer than 5 = 60
	if got.BrandVoice != 60 {
		t.Errorf("brandVoice: expected 60, got %d", got.BrandVoice)
	}
	// overall: round(mean(85, 45, 75, 60)) = round(66.25) = 66
	if got.Overall != 66 {
		t.Errorf("overall: expected 66, got %d", got.Overall)
	}
}

func TestScoreContentEmptyInput(t *testing.T) {
	got := ScoreContent("", "", "")

	if got.Hook != 30 || got.CTA != 30 || got.Hashtags != 30 {
		t.Errorf("expected bare baselines 30/30/30, got %+v", got)
	}
	if got.BrandVoice != 50 {
		t.Errorf("brandVoice: expected baseline 50, got %d", got.BrandVoice)
	}
	// round(mean(30, 30, 30, 50)) = 35
	if got.Overall != 35 {
		t.Errorf("overall: expected 35, got %d", got.Overall)
	}
}

func TestScoreContentCTAKeywords(t *testing.T) {
	got := ScoreContent("Check out the full routine and save it for later 👇", "", "")

	// 30 base, +30 keyword, +10 downward cue; no question mark.
	if got.CTA != 70 {
		t.Errorf("cta: expected 70, got %d", got.CTA)
	}
}

func TestScoreContentHashtagBuckets(t *testing.T) {
	cases := []struct {
		name     string
		hashtags string
		want     int
	}{
		{"none", "", 30},
		{"one short tag", "#go", 45},
		{"two tags", "#fit #gym", 45},
		{"three tags long string", "#fitness #workout #gym", 75},
		{"eleven tags", strings.Repeat("#t ", 11), 55},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreHashtags(tc.hashtags); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestScoreContentLongCaptionBrandVoice(t *testing.T) {
	caption := strings.Repeat("steady voice ", 10) // well over 50 runes
	got := ScoreContent(caption, "", "My Channel")

	if got.BrandVoice != 80 {
		t.Errorf("brandVoice: expected 80, got %d", got.BrandVoice)
	}
}

func TestScoreContentBounds(t *testing.T) {
	inputs := []struct{ caption, hashtags, title string }{
		{"", "", ""},
		{"WOW! Amazing? Share, comment, follow below! 🔥🎉", strings.Repeat("#tag ", 30), strings.Repeat("T", 100)},
		{strings.Repeat("a", 5000), strings.Repeat("#", 500), ""},
		{"\n\n\n", "###", "?"},
	}

	for _, in := range inputs {
		got := ScoreContent(in.caption, in.hashtags, in.title)
		for _, v := range []int{got.Overall, got.Hook, got.CTA, got.Hashtags, got.BrandVoice} {
			if v < 0 || v > 100 {
				t.Errorf("score %d out of [0,100] for caption %q", v, in.caption)
			}
		}
	}
}

func TestScoreContentIdempotent(t *testing.T) {
	a := ScoreContent("Morning routine that changed my life", "#morning #habits", "Routine")
	b := ScoreContent("Morning routine that changed my life", "#morning #habits", "Routine")

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same features scored differently: %+v vs %+v", a, b)
	}
}
