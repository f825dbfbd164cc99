package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/errors"
	"strings"
)

const DefaultHuggingFaceURL = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

var _ contract.SummaryService = (*HuggingFaceClient)(nil)

// HuggingFaceClient calls a summarization model through the Hugging Face Inference API.
type HuggingFaceClient struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewHuggingFaceClient(endpoint, token string, client *http.Client) *HuggingFaceClient {
	if endpoint == "" {
		endpoint = DefaultHuggingFaceURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HuggingFaceClient{endpoint: endpoint, token: token, client: client}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

func (c *HuggingFaceClient) Summarize(ctx context.Context, text string, opts domain.SummaryOptions) (string, error) {
	payload, err := json.Marshal(hfRequest{
		Inputs: text,
		Parameters: hfParameters{
			MaxLength: opts.MaxLength,
			MinLength: opts.MinLength,
			DoSample:  opts.Sample,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("%w: HTTP %d: %s", errors.ErrSummaryFailed, resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("%w: HTTP %d: %s", errors.ErrSummaryFailed, resp.StatusCode, resp.Status)
	}

	var summaries []hfSummary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return "", fmt.Errorf("%w: decoding response: %w", errors.ErrSummaryFailed, err)
	}
	if len(summaries) == 0 || strings.TrimSpace(summaries[0].SummaryText) == "" {
		return "", fmt.Errorf("%w: empty response", errors.ErrSummaryFailed)
	}
	return strings.TrimSpace(summaries[0].SummaryText), nil
}
