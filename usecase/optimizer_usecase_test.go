package usecase_test

import (
	"context"
	"testing"

	"tubeboost/domain/model"
	"tubeboost/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations of the provider interfaces

type MockMetadataClient struct {
	mock.Mock
}

func (m *MockMetadataClient) FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoMetadata), args.Error(1)
}

type MockTranscriptClient struct {
	mock.Mock
}

func (m *MockTranscriptClient) FetchTranscript(ctx context.Context, videoID string) (*model.Transcript, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcript), args.Error(1)
}

type MockOptimizer struct {
	mock.Mock
}

func (m *MockOptimizer) Optimize(ctx context.Context, prompt *model.Prompt) (model.OptimizationResult, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.OptimizationResult), args.Error(1)
}

func (m *MockOptimizer) TrendingKeywords(ctx context.Context, topic, category string) ([]string, error) {
	args := m.Called(ctx, topic, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func newTestUseCase(meta *MockMetadataClient, tr *MockTranscriptClient, opt *MockOptimizer) usecase.IOptimizerUseCase {
	return usecase.NewOptimizerUseCase(meta, tr, opt).(*usecase.OptimizerUseCase).WithBulkPause(0)
}

const (
	validURL  = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	validID   = "dQw4w9WgXcQ"
	secondURL = "https://youtu.be/abcdefghijk"
	secondID  = "abcdefghijk"
)

func TestOptimize_HappyPath(t *testing.T) {
	mockMeta := new(MockMetadataClient)
	mockTr := new(MockTranscriptClient)
	mockOpt := new(MockOptimizer)

	mockMeta.On("FetchMetadata", mock.Anything, validID).
		Return(&model.VideoMetadata{Title: "A Video", ChannelName: "A Channel", ViewCount: "100"}, nil).
		Once()
	mockTr.On("FetchTranscript", mock.Anything, validID).
		Return(&model.Transcript{Text: "hello world", WordCount: 2}, nil).
		Once()
	mockOpt.On("Optimize", mock.Anything, mock.AnythingOfType("*model.Prompt")).
		Return(model.OptimizationResult{"optimizedTitle": "Better Video"}, nil).
		Once()

	uc := newTestUseCase(mockMeta, mockTr, mockOpt)
	res, err := uc.Optimize(context.Background(), validURL, model.ModeSEO)

	require.NoError(t, err)
	assert.Equal(t, validID, res.VideoID)
	assert.True(t, res.Success)
	assert.Equal(t, "A Video", res.Metadata.Title)
	assert.Equal(t, "hello world", res.Transcript.Text)
	assert.Equal(t, "Better Video", res.Optimization["optimizedTitle"])

	mockMeta.AssertExpectations(t)
	mockTr.AssertExpectations(t)
	mockOpt.AssertExpectations(t)
}

func TestOptimize_DefaultsToSEOMode(t *testing.T) {
	mockMeta := new(MockMetadataClient)
	mockTr := new(MockTranscriptClient)
	mockOpt := new(MockOptimizer)

	mockMeta.On("FetchMetadata", mock.Anything, validID).
		Return(&model.VideoMetadata{Title: "A Video"}, nil)
	mockTr.On("FetchTranscript", mock.Anything, validID).
		Return(&model.Transcript{Text: "hello", WordCount: 1}, nil)
	// SEO mode carries the 1500-token budget; that identifies the template.
	mockOpt.On("Optimize", mock.Anything, mock.MatchedBy(func(p *model.Prompt) bool {
		return p.MaxTokens == 1500
	})).Return(model.OptimizationResult{}, nil)

	uc := newTestUseCase(mockMeta, mockTr, mockOpt)
	_, err := uc.Optimize(context.Background(), validURL, "")

	require.NoError(t, err)
	mockOpt.AssertExpectations(t)
}

func TestOptimize_InvalidURL(t *testing.T) {
	uc := newTestUseCase(new(MockMetadataClient), new(MockTranscriptClient), new(MockOptimizer))

	_, err := uc.Optimize(context.Background(), "not a url", model.ModeSEO)

	assert.ErrorIs(t, err, model.ErrInvalidURL)
}

func TestOptimize_UnsupportedMode(t *testing.T) {
	uc := newTestUseCase(new(MockMetadataClient), new(MockTranscriptClient), new(MockOptimizer))

	_, err := uc.Optimize(context.Background(), validURL, "poetry")

	assert.ErrorIs(t, err, model.ErrUnsupportedMode)
}

func TestOptimize_TranscriptFailureStopsPipeline(t *testing.T) {
	mockMeta := new(MockMetadataClient)
	mockTr := new(MockTranscriptClient)
	mockOpt := new(MockOptimizer)

	mockMeta.On("FetchMetadata", mock.Anything, validID).
		Return(&model.VideoMetadata{Title: "A Video"}, nil).Maybe()
	mockTr.On("FetchTranscript", mock.Anything, validID).
		Return(nil, model.ErrTranscriptUnavailable)

	uc := newTestUseCase(mockMeta, mockTr, mockOpt)
	_, err := uc.Optimize(context.Background(), validURL, model.ModeSEO)

	assert.ErrorIs(t, err, model.ErrTranscriptUnavailable)
	// Both fetches must succeed before the model is called.
	mockOpt.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
}

func TestGetMetadata_NotFoundPropagates(t *testing.T) {
	mockMeta := new(MockMetadataClient)
	mockMeta.On("FetchMetadata", mock.Anything, validID).
		Return(nil, model.ErrVideoNotFound)

	uc := newTestUseCase(mockMeta, new(MockTranscriptClient), new(MockOptimizer))
	_, err := uc.GetMetadata(context.Background(), validURL)

	assert.ErrorIs(t, err, model.ErrVideoNotFound)
}

func TestGetTranscript_HappyPath(t *testing.T) {
	mockTr := new(MockTranscriptClient)
	mockTr.On("FetchTranscript", mock.Anything, validID).
		Return(&model.Transcript{Text: "one two three", WordCount: 3}, nil)

	uc := newTestUseCase(new(MockMetadataClient), mockTr, new(MockOptimizer))
	res, err := uc.GetTranscript(context.Background(), validURL)

	require.NoError(t, err)
	assert.Equal(t, validID, res.VideoID)
	assert.Equal(t, "one two three", res.Transcript)
	assert.Equal(t, 3, res.WordCount)
}

func TestBulkOptimize_MixedValidity(t *testing.T) {
	mockMeta := new(MockMetadataClient)
	mockTr := new(MockTranscriptClient)
	mockOpt := new(MockOptimizer)

	for _, id := range []string{validID, secondID} {
		mockMeta.On("FetchMetadata", mock.Anything, id).
			Return(&model.VideoMetadata{Title: "Video " + id, ChannelName: "Chan", ViewCount: "1"}, nil)
		mockTr.On("FetchTranscript", mock.Anything, id).
			Return(&model.Transcript{Text: "text", WordCount: 1}, nil)
	}
	mockOpt.On("Optimize", mock.Anything, mock.Anything).
		Return(model.OptimizationResult{"optimizedTitle": "t"}, nil)

	uc := newTestUseCase(mockMeta, mockTr, mockOpt)
	urls := []string{validURL, "not a url", secondURL}
	res, err := uc.BulkOptimize(context.Background(), urls, model.ModeSEO)

	require.NoError(t, err)
	require.Len(t, res.Results, 3, "one result slot per input URL")
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 2, res.Successful)

	// Results preserve input order.
	assert.True(t, res.Results[0].Success)
	assert.Equal(t, validID, res.Results[0].VideoID)
	assert.NotNil(t, res.Results[0].Metadata)
	assert.NotNil(t, res.Results[0].Optimization)

	// The invalid entry carries the original URL and an error, no success.
	assert.False(t, res.Results[1].Success)
	assert.Equal(t, "not a url", res.Results[1].URL)
	assert.Equal(t, "Invalid YouTube URL", res.Results[1].Error)
	assert.Empty(t, res.Results[1].VideoID)

	assert.True(t, res.Results[2].Success)
	assert.Equal(t, secondID, res.Results[2].VideoID)
}

func TestBulkOptimize_FailureDoesNotHaltLoop(t *testing.T) {
	mockMeta := new(MockMetadataClient)
	mockTr := new(MockTranscriptClient)
	mockOpt := new(MockOptimizer)

	// First video is missing; second succeeds.
	mockMeta.On("FetchMetadata", mock.Anything, validID).
		Return(nil, model.ErrVideoNotFound)
	mockTr.On("FetchTranscript", mock.Anything, validID).
		Return(&model.Transcript{Text: "text", WordCount: 1}, nil).Maybe()

	mockMeta.On("FetchMetadata", mock.Anything, secondID).
		Return(&model.VideoMetadata{Title: "Second"}, nil)
	mockTr.On("FetchTranscript", mock.Anything, secondID).
		Return(&model.Transcript{Text: "text", WordCount: 1}, nil)
	mockOpt.On("Optimize", mock.Anything, mock.Anything).
		Return(model.OptimizationResult{}, nil).Once()

	uc := newTestUseCase(mockMeta, mockTr, mockOpt)
	res, err := uc.BulkOptimize(context.Background(), []string{validURL, secondURL}, model.ModeSEO)

	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.False(t, res.Results[0].Success)
	assert.True(t, res.Results[1].Success)
	assert.Equal(t, 1, res.Successful)
}

func TestBulkOptimize_RejectsOversizedBatchBeforeAnyCall(t *testing.T) {
	mockMeta := new(MockMetadataClient)
	mockTr := new(MockTranscriptClient)
	mockOpt := new(MockOptimizer)

	urls := make([]string, 11)
	for i := range urls {
		urls[i] = validURL
	}

	uc := newTestUseCase(mockMeta, mockTr, mockOpt)
	_, err := uc.BulkOptimize(context.Background(), urls, model.ModeSEO)

	require.Error(t, err)
	mockMeta.AssertNotCalled(t, "FetchMetadata", mock.Anything, mock.Anything)
	mockTr.AssertNotCalled(t, "FetchTranscript", mock.Anything, mock.Anything)
	mockOpt.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
}

func TestBulkOptimize_RejectsEmptyList(t *testing.T) {
	uc := newTestUseCase(new(MockMetadataClient), new(MockTranscriptClient), new(MockOptimizer))

	_, err := uc.BulkOptimize(context.Background(), nil, model.ModeSEO)

	require.Error(t, err)
}

func TestTrendingKeywords_DefaultsCategory(t *testing.T) {
	mockOpt := new(MockOptimizer)
	mockOpt.On("TrendingKeywords", mock.Anything, "cooking", "general").
		Return([]string{"easy recipes", "meal prep"}, nil).
		Once()

	uc := newTestUseCase(new(MockMetadataClient), new(MockTranscriptClient), mockOpt)
	res, err := uc.TrendingKeywords(context.Background(), "cooking", "")

	require.NoError(t, err)
	assert.Equal(t, "cooking", res.Topic)
	assert.Equal(t, "general", res.Category)
	assert.Equal(t, []string{"easy recipes", "meal prep"}, res.Keywords)
	mockOpt.AssertExpectations(t)
}

func TestTrendingKeywords_RequiresTopic(t *testing.T) {
	uc := newTestUseCase(new(MockMetadataClient), new(MockTranscriptClient), new(MockOptimizer))

	_, err := uc.TrendingKeywords(context.Background(), "", "general")

	require.Error(t, err)
}
