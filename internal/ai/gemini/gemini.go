package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	Client     *genai.Client
	FlashModel *genai.GenerativeModel
}

// NewGenAIClient builds a client whose flash model is pinned to the farming
// advice system instruction and JSON response schema.
func NewGenAIClient(ctx context.Context, apiKey, flashModelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("genai client init failed: %w", err)
	}

	model := client.GenerativeModel(flashModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(AdvisorSystemInstruction)},
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = FarmingAdviceSchema()

	return &GeminiClient{
		Client:     client,
		FlashModel: model,
	}, nil
}

// Generate sends a single prompt and returns the first text part as is.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.FlashModel.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no content returned from AI")
	}
	textPart, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("response part is not text, received %T", resp.Candidates[0].Content.Parts[0])
	}

	slog.Debug("Gemini response received", "length", len(textPart))
	return string(textPart), nil
}

func (g *GeminiClient) Close() error {
	return g.Client.Close()
}

var fencePattern = regexp.MustCompile("(?i)^```(?:json)?\\s*|\\s*```\\s*$")

// TrimJSONFence removes a surrounding markdown code fence, which the model
// sometimes adds even when asked for raw JSON.
func TrimJSONFence(s string) string {
	return strings.TrimSpace(fencePattern.ReplaceAllString(strings.TrimSpace(s), ""))
}
