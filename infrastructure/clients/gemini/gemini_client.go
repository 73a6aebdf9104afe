package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"tubeboost/domain/model"
	"tubeboost/domain/repository"

	"google.golang.org/genai"
)

const trendingTemperature = 0.8

// Client sends composed prompts to the Gemini API and parses the structured
// responses. Read-only after construction; safe for concurrent reuse.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini client for the given API key and model name.
func NewClient(ctx context.Context, apiKey, modelName string) (repository.IOptimizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{client: client, model: modelName}, nil
}

// Optimize sends the composed instruction to the model and parses its text
// response as a structured record. A malformed response yields
// model.ErrResponseParse and is not retried; provider failures propagate
// with their message intact.
func (c *Client) Optimize(ctx context.Context, prompt *model.Prompt) (model.OptimizationResult, error) {
	text, err := c.generate(ctx, prompt.Instruction, prompt.SystemRole, prompt.MaxTokens, prompt.Temperature)
	if err != nil {
		return nil, err
	}

	var result model.OptimizationResult
	if err := unmarshalResponse(text, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// TrendingKeywords is a sibling operation outside the optimization modes,
// invoked directly by its own endpoint. It runs hotter than the mode
// templates to favor variety.
func (c *Client) TrendingKeywords(ctx context.Context, topic, category string) ([]string, error) {
	instruction := fmt.Sprintf(`Generate 15 trending search keywords for YouTube videos about "%s" in the %s category.
Focus on terms viewers actually type into YouTube search right now.

Respond in the following JSON format:
{"keywords": ["keyword 1", "keyword 2", ...]}`, topic, category)

	text, err := c.generate(ctx, instruction, "You are a YouTube search trend expert. Respond with valid JSON.", 800, trendingTemperature)
	if err != nil {
		return nil, err
	}

	var result struct {
		Keywords []string `json:"keywords"`
	}
	if err := unmarshalResponse(text, &result); err != nil {
		return nil, err
	}
	return result.Keywords, nil
}

func (c *Client) generate(ctx context.Context, instruction, systemRole string, maxTokens int32, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(temperature),
		MaxOutputTokens:   maxTokens,
		SystemInstruction: genai.NewContentFromText(systemRole, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	contents := []*genai.Content{
		genai.NewContentFromText(instruction, genai.RoleUser),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", model.ErrResponseParse)
	}
	return text, nil
}

// unmarshalResponse extracts the outermost JSON object from the model's text
// response and decodes it into v. Models occasionally wrap JSON in prose or
// code fences even when asked not to.
func unmarshalResponse(response string, v interface{}) error {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")
	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return fmt.Errorf("%w: no JSON object in response", model.ErrResponseParse)
	}

	if err := json.Unmarshal([]byte(response[startIdx:endIdx+1]), v); err != nil {
		return fmt.Errorf("%w: %v", model.ErrResponseParse, err)
	}
	return nil
}
