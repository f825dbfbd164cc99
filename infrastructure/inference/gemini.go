package inference

import (
	"context"
	"fmt"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/errors"
	"strings"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-2.0-flash"

var _ contract.SummaryService = (*GeminiClient)(nil)

// GeminiClient asks a Gemini model for a deterministic summary.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates the client. baseURL is only set to reach a non-default endpoint.
func NewGeminiClient(ctx context.Context, apiKey, model, baseURL string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	config := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Summarize(ctx context.Context, text string, opts domain.SummaryOptions) (string, error) {
	config := &genai.GenerateContentConfig{}
	if !opts.Sample {
		config.Temperature = genai.Ptr[float32](0)
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(Prompt(text, opts)), config)
	if err != nil {
		return "", err
	}

	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return "", fmt.Errorf("%w: empty response", errors.ErrSummaryFailed)
	}
	return capRunes(summary, opts.MaxLength), nil
}

// Prompt builds the instruction sent to the model for one article.
func Prompt(text string, opts domain.SummaryOptions) string {
	return fmt.Sprintf(
		"Summarize the following article in plain text, between %d and %d characters. "+
			"Do not add information that is not in the article.\n\n%s",
		opts.MinLength, opts.MaxLength, text)
}

func capRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max]))
}
