package domain

import "time"

// TrendingTag is one scraped trending hashtag/topic for a platform.
type TrendingTag struct {
	Platform  string    `json:"platform"`
	Tag       string    `json:"tag"`
	Rank      int       `json:"rank"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// ChannelStats is the creator analytics panel payload.
type ChannelStats struct {
	ChannelID   string    `json:"channelId"`
	Title       string    `json:"title"`
	Subscribers uint64    `json:"subscribers"`
	Views       uint64    `json:"views"`
	VideoCount  uint64    `json:"videoCount"`
	FetchedAt   time.Time `json:"fetchedAt"`
}
