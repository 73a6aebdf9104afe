package usecase

import (
	"fmt"
	"strings"

	"tubeboost/domain/model"
	"tubeboost/infrastructure/utils"
)

const systemRole = "You are a YouTube SEO expert. Respond with valid JSON only, no markdown fences."

// ModeSpec describes one optimization mode: the output keys the template
// declares, the transcript truncation limit (0 means full transcript), the
// generation budget and the template itself.
type ModeSpec struct {
	Keys            []string
	TranscriptLimit int
	MaxTokens       int32
	Temperature     float32
	build           func(meta *model.VideoMetadata, transcript string) string
}

// modeRegistry maps each mode to its template and output contract. Adding a
// mode means adding an entry here, nothing else.
var modeRegistry = map[model.OptimizationMode]ModeSpec{
	model.ModeSEO: {
		Keys:            []string{"optimizedTitle", "optimizedDescription", "tags", "chapters", "keywords", "thumbnailText"},
		TranscriptLimit: 3000,
		MaxTokens:       1500,
		Temperature:     0.7,
		build:           buildSEOPrompt,
	},
	model.ModeSummary: {
		Keys:            []string{"executiveSummary", "keyPoints", "topics", "targetAudience", "callToAction"},
		TranscriptLimit: 0,
		MaxTokens:       1000,
		Temperature:     0.7,
		build:           buildSummaryPrompt,
	},
	model.ModeHashtags: {
		Keys:            []string{"primary", "secondary", "trending"},
		TranscriptLimit: 2000,
		MaxTokens:       800,
		Temperature:     0.7,
		build:           buildHashtagsPrompt,
	},
}

// ModeKeys returns the output key set a mode's template declares.
func ModeKeys(mode model.OptimizationMode) ([]string, bool) {
	spec, ok := modeRegistry[mode]
	if !ok {
		return nil, false
	}
	return spec.Keys, true
}

// ComposePrompt selects the template for mode, fills it with the metadata and
// the (possibly truncated) transcript and returns the instruction together
// with its generation budget. An unknown mode is an explicit error, not
// undefined behavior.
func ComposePrompt(mode model.OptimizationMode, meta *model.VideoMetadata, transcript *model.Transcript) (*model.Prompt, error) {
	spec, ok := modeRegistry[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnsupportedMode, mode)
	}

	// Truncation bounds outbound token cost on content-heavy modes; summary
	// keeps the full transcript because fidelity matters more there.
	text := utils.Truncate(transcript.Text, spec.TranscriptLimit)

	return &model.Prompt{
		Instruction: spec.build(meta, text),
		SystemRole:  systemRole,
		MaxTokens:   spec.MaxTokens,
		Temperature: spec.Temperature,
	}, nil
}

func buildSEOPrompt(meta *model.VideoMetadata, transcript string) string {
	return fmt.Sprintf(`Optimize this YouTube video for search and click-through.

CURRENT METADATA:
Title: %s
Channel: %s
Description: %s
Tags: %s
Views: %s

TRANSCRIPT (may be truncated):
%s

Provide:
1. An improved title (60 characters or less)
2. An optimized description (around 125 words)
3. 10-15 SEO tags
4. 5 chapter timestamps with labels
5. Trending keywords relevant to the content
6. Short thumbnail text (3-5 words)

Respond in the following JSON format:
{
  "optimizedTitle": "...",
  "optimizedDescription": "...",
  "tags": ["..."],
  "chapters": [{"timestamp": "00:00", "title": "..."}],
  "keywords": ["..."],
  "thumbnailText": "..."
}`,
		meta.Title,
		meta.ChannelName,
		meta.Description,
		strings.Join(meta.Tags, ", "),
		meta.ViewCount,
		transcript,
	)
}

func buildSummaryPrompt(meta *model.VideoMetadata, transcript string) string {
	return fmt.Sprintf(`Summarize this YouTube video for a professional audience.

Title: %s
Channel: %s

FULL TRANSCRIPT:
%s

Provide an executive summary, 5-7 key points, the main topics covered, the
target audience and a call-to-action suggestion.

Respond in the following JSON format:
{
  "executiveSummary": "...",
  "keyPoints": ["..."],
  "topics": ["..."],
  "targetAudience": "...",
  "callToAction": "..."
}`,
		meta.Title,
		meta.ChannelName,
		transcript,
	)
}

func buildHashtagsPrompt(meta *model.VideoMetadata, transcript string) string {
	return fmt.Sprintf(`Generate exactly 20 hashtags for this YouTube video, split into
5 primary (broad reach), 10 secondary (niche) and 5 trending ones.

Title: %s
Tags: %s

TRANSCRIPT (may be truncated):
%s

Respond in the following JSON format:
{
  "primary": ["#..."],
  "secondary": ["#..."],
  "trending": ["#..."]
}`,
		meta.Title,
		strings.Join(meta.Tags, ", "),
		transcript,
	)
}
