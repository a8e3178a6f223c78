package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"sitegen_ai_server/internal/utils"
)

const textSystemPrompt = "You are a helpful AI assistant that fills website " +
	"content placeholders based on a business description and strict formatting instructions."

// Generator wraps the hosted generation capabilities consumed by the
// placeholder pipeline: one text model and one image model behind a single
// OpenAI client.
type Generator struct {
	client     *openai.Client
	textModel  string
	imageModel string
	log        *zap.Logger
}

func NewGenerator(apiKey, textModel, imageModel string, log *zap.Logger) *Generator {
	return &Generator{
		client:     openai.NewClient(apiKey),
		textModel:  textModel,
		imageModel: imageModel,
		log:        log,
	}
}

// GenerateText sends a single contextual prompt and returns the raw model
// output. The caller is responsible for parsing; this layer only retries
// transient failures once and rejects empty responses.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: g.textModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: textSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.3,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		g.log.Warn("text generation failed, retrying once", zap.Error(err))
		time.Sleep(2 * time.Second)
		resp, err = g.client.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		g.log.Warn("openai returned empty completion", zap.Any("usage", resp.Usage))
		return "", errors.New("openai returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage requests a single hosted image for the given prompt and
// returns its URL.
func (g *Generator) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	req := openai.ImageRequest{
		Model:          g.imageModel,
		Prompt:         prompt,
		Size:           size,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil && utils.ShouldRetry(err) {
		g.log.Warn("image generation failed, retrying once", zap.Error(err))
		time.Sleep(1 * time.Second)
		resp, err = g.client.CreateImage(ctx, req)
	}
	if err != nil {
		return "", fmt.Errorf("openai image generation failed: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", errors.New("openai returned no image data")
	}
	return resp.Data[0].URL, nil
}
