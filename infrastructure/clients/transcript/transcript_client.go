package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tubeboost/domain/model"
	"tubeboost/infrastructure/logger"
	"tubeboost/infrastructure/utils"
)

const defaultBaseURL = "https://www.youtube.com/api/timedtext"

// Client fetches caption tracks from YouTube's timedtext API and flattens
// them into a single text blob. Timing information is dropped.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a timedtext client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// timedtextResponse is the raw json3 payload shape.
type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

type timedtextEvent struct {
	Segs []timedtextSegment `json:"segs,omitempty"`
}

type timedtextSegment struct {
	UTF8 string `json:"utf8"`
}

// FetchTranscript fetches the English caption track for a video and joins its
// fragments with single spaces. Every failure mode, including disabled
// captions, private videos and transport errors, surfaces as
// model.ErrTranscriptUnavailable; the underlying cause is logged, never
// returned. No retry, no partial fallback.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (*model.Transcript, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", "en")
	params.Set("fmt", "json3")

	apiURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, c.unavailable(videoID, err)
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.unavailable(videoID, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, c.unavailable(videoID, fmt.Errorf("timedtext API returned status %d", response.StatusCode))
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, c.unavailable(videoID, err)
	}

	text, err := flattenTimedtext(body)
	if err != nil {
		return nil, c.unavailable(videoID, err)
	}

	return &model.Transcript{
		Text:      text,
		WordCount: utils.CountWords(text),
	}, nil
}

// flattenTimedtext joins the caption fragments of a json3 track with single
// spaces, losing original timing information. An empty track is an error;
// a video without captions returns an empty events list.
func flattenTimedtext(data []byte) (string, error) {
	var resp timedtextResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("unmarshal timedtext JSON: %w", err)
	}

	fragments := make([]string, 0, len(resp.Events))
	for _, event := range resp.Events {
		if len(event.Segs) == 0 {
			continue
		}
		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		fragment := strings.TrimSpace(text.String())
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}

	if len(fragments) == 0 {
		return "", fmt.Errorf("caption track is empty")
	}
	return strings.Join(fragments, " "), nil
}

// unavailable collapses the provider failure into the single sanitized
// transcript error so provider-specific detail never reaches the caller.
func (c *Client) unavailable(videoID string, cause error) error {
	logger.GetLogger().WithField("videoId", videoID).WithField("error", cause).Warn("Transcript fetch failed")
	return model.ErrTranscriptUnavailable
}
