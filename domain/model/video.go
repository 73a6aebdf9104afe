package model

// VideoMetadata is the normalized record produced from one YouTube Data API
// lookup. Counts are carried exactly as the provider formats them (strings)
// and are never validated numerically. The record lives for a single request
// and is never cached.
type VideoMetadata struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ChannelName  string   `json:"channelName"`
	PublishedAt  string   `json:"publishedAt"`
	Tags         []string `json:"tags"`
	Category     string   `json:"category"`
	ViewCount    string   `json:"viewCount"`
	LikeCount    string   `json:"likeCount"`
	CommentCount string   `json:"commentCount"`
	Duration     string   `json:"duration"`
	Thumbnails   struct {
		Default string `json:"default,omitempty"`
		Medium  string `json:"medium,omitempty"`
		High    string `json:"high,omitempty"`
	} `json:"thumbnails"`
}

// Transcript is the flattened caption text for a video. Timing information
// from the caption track is dropped; fragments are joined with single spaces.
type Transcript struct {
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
}
