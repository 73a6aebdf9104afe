package repository

import (
	"context"

	"tubeboost/domain/model"
)

// IVideoMetadata fetches and normalizes video metadata from the video-data
// provider. One outbound call per invocation, no retry; failures propagate
// unmodified except for the not-found condition which maps to
// model.ErrVideoNotFound.
type IVideoMetadata interface {
	FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error)
}

// ITranscript fetches a caption track and flattens it into a Transcript.
// Every failure surfaces as model.ErrTranscriptUnavailable.
type ITranscript interface {
	FetchTranscript(ctx context.Context, videoID string) (*model.Transcript, error)
}

// IOptimizer sends a composed prompt to the generative model and parses the
// structured response.
type IOptimizer interface {
	Optimize(ctx context.Context, prompt *model.Prompt) (model.OptimizationResult, error)
	TrendingKeywords(ctx context.Context, topic, category string) ([]string, error)
}
