package youtube

import (
	"context"
	"fmt"
	"strconv"

	"tubeboost/domain/model"
	"tubeboost/domain/repository"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API v3 in API-key (read-only) mode. It is
// read-only after construction and safe for concurrent reuse across inbound
// requests.
type Client struct {
	service *youtube.Service
}

// NewClient creates a YouTube Data API client authenticated with an API key.
func NewClient(ctx context.Context, apiKey string) (repository.IVideoMetadata, error) {
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service}, nil
}

// FetchMetadata retrieves and normalizes metadata for a single video. Zero
// items from the provider maps to model.ErrVideoNotFound; transport and auth
// failures propagate with the provider message intact. One outbound call,
// no retry.
func (c *Client) FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	call := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(videoID).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video metadata: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrVideoNotFound, videoID)
	}

	return convertToMetadata(response.Items[0]), nil
}

// convertToMetadata normalizes the API video resource into our model. Counts
// are carried as provider-formatted strings, never validated numerically.
func convertToMetadata(video *youtube.Video) *model.VideoMetadata {
	meta := &model.VideoMetadata{
		Title:       video.Snippet.Title,
		Description: video.Snippet.Description,
		ChannelName: video.Snippet.ChannelTitle,
		PublishedAt: video.Snippet.PublishedAt,
		Tags:        video.Snippet.Tags,
		Category:    video.Snippet.CategoryId,
	}

	if video.Statistics != nil {
		meta.ViewCount = strconv.FormatUint(video.Statistics.ViewCount, 10)
		meta.LikeCount = strconv.FormatUint(video.Statistics.LikeCount, 10)
		meta.CommentCount = strconv.FormatUint(video.Statistics.CommentCount, 10)
	}
	if video.ContentDetails != nil {
		meta.Duration = video.ContentDetails.Duration
	}
	if video.Snippet.Thumbnails != nil {
		if video.Snippet.Thumbnails.Default != nil {
			meta.Thumbnails.Default = video.Snippet.Thumbnails.Default.Url
		}
		if video.Snippet.Thumbnails.Medium != nil {
			meta.Thumbnails.Medium = video.Snippet.Thumbnails.Medium.Url
		}
		if video.Snippet.Thumbnails.High != nil {
			meta.Thumbnails.High = video.Snippet.Thumbnails.High.Url
		}
	}

	return meta
}
