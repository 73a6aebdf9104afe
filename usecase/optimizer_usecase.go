package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tubeboost/domain/dto"
	"tubeboost/domain/model"
	"tubeboost/domain/repository"
	"tubeboost/infrastructure/logger"
	"tubeboost/infrastructure/utils"

	"golang.org/x/sync/errgroup"
)

// MaxBulkURLs caps one bulk request; enforced before any network call.
const MaxBulkURLs = 10

// IOptimizerUseCase defines the orchestration operations behind the HTTP
// surface: per-provider lookups, the single-video pipeline, the bulk loop
// and trending keyword generation.
type IOptimizerUseCase interface {
	GetMetadata(ctx context.Context, url string) (*dto.MetadataResponse, error)
	GetTranscript(ctx context.Context, url string) (*dto.TranscriptResponse, error)
	Optimize(ctx context.Context, url string, mode model.OptimizationMode) (*dto.OptimizeResponse, error)
	BulkOptimize(ctx context.Context, urls []string, mode model.OptimizationMode) (*dto.BulkOptimizeResponse, error)
	TrendingKeywords(ctx context.Context, topic, category string) (*dto.TrendingKeywordsResponse, error)
}

// OptimizerUseCase sequences URL parsing, the concurrent provider fan-out,
// prompt composition and the model call. It holds no per-request state; the
// injected provider clients are read-only and shared across requests.
type OptimizerUseCase struct {
	metadataRepo   repository.IVideoMetadata
	transcriptRepo repository.ITranscript
	optimizer      repository.IOptimizer
	bulkPause      time.Duration
}

// NewOptimizerUseCase creates the orchestrator with the default inter-item
// bulk pacing of one second.
func NewOptimizerUseCase(
	metadataRepo repository.IVideoMetadata,
	transcriptRepo repository.ITranscript,
	optimizer repository.IOptimizer,
) IOptimizerUseCase {
	return &OptimizerUseCase{
		metadataRepo:   metadataRepo,
		transcriptRepo: transcriptRepo,
		optimizer:      optimizer,
		bulkPause:      time.Second,
	}
}

// WithBulkPause overrides the inter-item pause (fluent; tests use 0).
func (u *OptimizerUseCase) WithBulkPause(d time.Duration) *OptimizerUseCase {
	u.bulkPause = d
	return u
}

// GetMetadata resolves a URL to its video identifier and fetches metadata.
func (u *OptimizerUseCase) GetMetadata(ctx context.Context, url string) (*dto.MetadataResponse, error) {
	videoID, ok := utils.ExtractVideoID(url)
	if !ok {
		return nil, model.ErrInvalidURL
	}

	meta, err := u.metadataRepo.FetchMetadata(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &dto.MetadataResponse{Success: true, VideoID: videoID, Metadata: meta}, nil
}

// GetTranscript resolves a URL to its video identifier and fetches the
// flattened caption text.
func (u *OptimizerUseCase) GetTranscript(ctx context.Context, url string) (*dto.TranscriptResponse, error) {
	videoID, ok := utils.ExtractVideoID(url)
	if !ok {
		return nil, model.ErrInvalidURL
	}

	transcript, err := u.transcriptRepo.FetchTranscript(ctx, videoID)
	if err != nil {
		return nil, err
	}

	return &dto.TranscriptResponse{
		Success:    true,
		VideoID:    videoID,
		Transcript: transcript.Text,
		WordCount:  transcript.WordCount,
	}, nil
}

// Optimize runs the full single-video pipeline: parse -> fetch metadata and
// transcript concurrently (both must succeed) -> compose -> model call.
func (u *OptimizerUseCase) Optimize(ctx context.Context, url string, mode model.OptimizationMode) (*dto.OptimizeResponse, error) {
	if mode == "" {
		mode = model.ModeSEO
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedMode, mode)
	}

	videoID, ok := utils.ExtractVideoID(url)
	if !ok {
		return nil, model.ErrInvalidURL
	}

	meta, transcript, err := u.fetchBoth(ctx, videoID)
	if err != nil {
		return nil, err
	}

	prompt, err := ComposePrompt(mode, meta, transcript)
	if err != nil {
		return nil, err
	}

	optimization, err := u.optimizer.Optimize(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &dto.OptimizeResponse{
		Success:      true,
		VideoID:      videoID,
		Metadata:     meta,
		Transcript:   transcript,
		Optimization: optimization,
	}, nil
}

// fetchBoth issues the metadata and transcript calls in parallel and joins on
// both before returning. Fetch order relative to each other is unspecified.
func (u *OptimizerUseCase) fetchBoth(ctx context.Context, videoID string) (*model.VideoMetadata, *model.Transcript, error) {
	var (
		meta       *model.VideoMetadata
		transcript *model.Transcript
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := u.metadataRepo.FetchMetadata(gctx, videoID)
		if err != nil {
			return err
		}
		meta = m
		return nil
	})
	g.Go(func() error {
		t, err := u.transcriptRepo.FetchTranscript(gctx, videoID)
		if err != nil {
			return err
		}
		transcript = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return meta, transcript, nil
}

// BulkOptimize runs the single-video pipeline for up to MaxBulkURLs inputs,
// strictly sequentially and in input order. Per-item failures are recorded in
// that item's slot without halting the loop; a fixed pause after each item
// reduces upstream rate-limit pressure.
func (u *OptimizerUseCase) BulkOptimize(ctx context.Context, urls []string, mode model.OptimizationMode) (*dto.BulkOptimizeResponse, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("at least one URL is required")
	}
	if len(urls) > MaxBulkURLs {
		return nil, fmt.Errorf("maximum %d URLs per bulk request", MaxBulkURLs)
	}

	results := make([]dto.BulkItem, 0, len(urls))
	successful := 0

	for _, url := range urls {
		item := u.processBulkItem(ctx, url, mode)
		if item.Success {
			successful++
		}
		results = append(results, item)

		if err := u.pause(ctx); err != nil {
			// Caller went away; report what we have so far.
			break
		}
	}

	return &dto.BulkOptimizeResponse{
		Success:    true,
		Results:    results,
		Processed:  len(results),
		Successful: successful,
	}, nil
}

// processBulkItem isolates one URL's pipeline so a failure fills that item's
// slot instead of aborting the loop.
func (u *OptimizerUseCase) processBulkItem(ctx context.Context, url string, mode model.OptimizationMode) dto.BulkItem {
	res, err := u.Optimize(ctx, url, mode)
	if err != nil {
		logger.GetLogger().WithField("url", url).WithField("error", err).Warn("Bulk item failed")
		return dto.BulkItem{URL: url, Error: err.Error()}
	}

	return dto.BulkItem{
		Success: true,
		VideoID: res.VideoID,
		Metadata: &dto.MetadataSummary{
			Title:       res.Metadata.Title,
			ChannelName: res.Metadata.ChannelName,
			ViewCount:   res.Metadata.ViewCount,
		},
		Optimization: res.Optimization,
	}
}

func (u *OptimizerUseCase) pause(ctx context.Context) error {
	if u.bulkPause <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(u.bulkPause):
		return nil
	}
}

// TrendingKeywords generates keyword suggestions for a topic; category
// defaults to "general".
func (u *OptimizerUseCase) TrendingKeywords(ctx context.Context, topic, category string) (*dto.TrendingKeywordsResponse, error) {
	if topic == "" {
		return nil, errors.New("topic is required")
	}
	if category == "" {
		category = "general"
	}

	keywords, err := u.optimizer.TrendingKeywords(ctx, topic, category)
	if err != nil {
		return nil, err
	}

	return &dto.TrendingKeywordsResponse{
		Success:  true,
		Topic:    topic,
		Category: category,
		Keywords: keywords,
	}, nil
}
