package constants

import "time"

var CacheTTL = struct {
	ScoreResult     time.Duration
	TimeSuggestions time.Duration
	TrendingTags    time.Duration
	ChannelStats    time.Duration
}{
	ScoreResult:     10 * time.Minute,
	TimeSuggestions: 30 * time.Minute,
	TrendingTags:    30 * time.Minute,
	ChannelStats:    2 * time.Hour,
}

var AIInputLimits = struct {
	MaxCaptionLength  int
	MaxTitleLength    int
	MaxHashtagsLength int
}{
	MaxCaptionLength:  2000,
	MaxTitleLength:    200,
	MaxHashtagsLength: 500,
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	RateLimitTimeout time.Duration
}{
	FailureThreshold: 3,
	ResetTimeout:     30 * time.Second,
	RateLimitTimeout: 1 * time.Hour,
}

var HTTPConfig = struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}{
	ReadTimeout:     15 * time.Second,
	WriteTimeout:    30 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}

var LiveScoreConfig = struct {
	DebounceWindow time.Duration
	WriteTimeout   time.Duration
	MaxFrameBytes  int64
}{
	DebounceWindow: 2 * time.Second,
	WriteTimeout:   5 * time.Second,
	MaxFrameBytes:  16 * 1024,
}

var TrendsConfig = struct {
	FetchTimeout   time.Duration
	MaxConcurrency int
	MaxTags        int
}{
	FetchTimeout:   15 * time.Second,
	MaxConcurrency: 4,
	MaxTags:        20,
}
