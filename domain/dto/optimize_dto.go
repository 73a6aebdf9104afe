package dto

import "tubeboost/domain/model"

// MetadataRequest represents the body for POST /api/metadata and
// POST /api/transcript.
type MetadataRequest struct {
	URL string `json:"url"`
}

// OptimizeRequest represents the body for POST /api/optimize.
type OptimizeRequest struct {
	URL              string `json:"url"`
	OptimizationType string `json:"optimizationType,omitempty"` // seo (default), summary, hashtags
}

// BulkOptimizeRequest represents the body for POST /api/bulk-optimize.
type BulkOptimizeRequest struct {
	URLs             []string `json:"urls"`
	OptimizationType string   `json:"optimizationType,omitempty"`
}

// TrendingKeywordsRequest represents the body for POST /api/trending-keywords.
type TrendingKeywordsRequest struct {
	Topic    string `json:"topic"`
	Category string `json:"category,omitempty"` // defaults to "general"
}

// MetadataResponse is the success envelope for POST /api/metadata.
type MetadataResponse struct {
	Success  bool                 `json:"success"`
	VideoID  string               `json:"videoId"`
	Metadata *model.VideoMetadata `json:"metadata"`
}

// TranscriptResponse is the success envelope for POST /api/transcript.
type TranscriptResponse struct {
	Success    bool   `json:"success"`
	VideoID    string `json:"videoId"`
	Transcript string `json:"transcript"`
	WordCount  int    `json:"wordCount"`
}

// OptimizeResponse is the success envelope for POST /api/optimize.
type OptimizeResponse struct {
	Success      bool                     `json:"success"`
	VideoID      string                   `json:"videoId"`
	Metadata     *model.VideoMetadata     `json:"metadata"`
	Transcript   *model.Transcript        `json:"transcript"`
	Optimization model.OptimizationResult `json:"optimization"`
}

// MetadataSummary is the abbreviated metadata embedded in bulk items.
type MetadataSummary struct {
	Title       string `json:"title"`
	ChannelName string `json:"channelName"`
	ViewCount   string `json:"viewCount"`
}

// BulkItem is one per-URL outcome. Successful items carry videoId, metadata
// and optimization; failed items carry the original url and an error message
// and no success field.
type BulkItem struct {
	Success      bool                     `json:"success,omitempty"`
	VideoID      string                   `json:"videoId,omitempty"`
	Metadata     *MetadataSummary         `json:"metadata,omitempty"`
	Optimization model.OptimizationResult `json:"optimization,omitempty"`
	URL          string                   `json:"url,omitempty"`
	Error        string                   `json:"error,omitempty"`
}

// BulkOptimizeResponse is the envelope for POST /api/bulk-optimize. Results
// preserve input order.
type BulkOptimizeResponse struct {
	Success    bool       `json:"success"`
	Results    []BulkItem `json:"results"`
	Processed  int        `json:"processed"`
	Successful int        `json:"successful"`
}

// TrendingKeywordsResponse is the envelope for POST /api/trending-keywords.
type TrendingKeywordsResponse struct {
	Success  bool     `json:"success"`
	Topic    string   `json:"topic"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}
