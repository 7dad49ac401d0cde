// Package genai provides the client for the Google Gemini generateContent
// API. Each call is a single attempt: no retry, no partial results. A missing
// API key fails before any network I/O.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/clinical-docs-server/internal/domain"
)

// Client handles interactions with the Gemini generation service
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	rateLimit  *rate.Limiter
}

// NewClient creates a new Gemini API client from configuration. Defaults are
// applied for anything unset; the API key is validated per call, not here,
// so the service can start without a credential and fail only when asked to
// generate.
func NewClient(config domain.GenAIConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if config.Model == "" {
		config.Model = "gemini-2.5-flash"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2
	}

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		model:   config.Model,
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimit: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}
}

// generateContentRequest is the generateContent wire request
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType,omitempty"`
	ResponseSchema   *domain.ResponseSchema `json:"responseSchema,omitempty"`
}

// generateContentResponse is the generateContent wire response
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason,omitempty"`
	} `json:"candidates"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GenerateStructured sends a structured-mode request. The declared schema is
// passed to the service so it constrains its own output, and the response
// body is returned as raw JSON for the caller to decode. Any transport,
// non-2xx, or malformed-response failure surfaces as a generation failure.
func (c *Client) GenerateStructured(ctx context.Context, promptText string, schema *domain.ResponseSchema) (json.RawMessage, error) {
	text, err := c.generate(ctx, promptText, &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, err
	}

	if !json.Valid([]byte(text)) {
		return nil, domain.NewGenerationFailure("generation service returned invalid JSON",
			fmt.Errorf("response is not valid JSON"))
	}

	return json.RawMessage(text), nil
}

// GenerateText sends a free-text request and returns the response unmodified
func (c *Client) GenerateText(ctx context.Context, promptText string) (string, error) {
	return c.generate(ctx, promptText, nil)
}

// generate performs exactly one generateContent call
func (c *Client) generate(ctx context.Context, promptText string, genConfig *generationConfig) (string, error) {
	// Credential precondition, checked before any network I/O
	if c.apiKey == "" {
		return "", domain.NewConfigurationError("API key is missing; set the GENAI_API_KEY environment variable")
	}

	if err := c.rateLimit.Wait(ctx); err != nil {
		return "", domain.NewGenerationFailure("rate limit wait interrupted", err)
	}

	reqBody := generateContentRequest{
		Contents:         []content{{Parts: []part{{Text: promptText}}}},
		GenerationConfig: genConfig,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", domain.NewGenerationFailure("failed to encode generation request", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", domain.NewGenerationFailure("failed to create generation request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewGenerationFailure("failed to reach generation service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewGenerationFailure("failed to read generation response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewGenerationFailure(
			fmt.Sprintf("generation service returned status %d", resp.StatusCode),
			fmt.Errorf("%s", strings.TrimSpace(string(body))))
	}

	var genResp generateContentResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", domain.NewGenerationFailure("failed to parse generation response", err)
	}
	if genResp.Error != nil {
		return "", domain.NewGenerationFailure("generation service reported an error",
			fmt.Errorf("%s: %s", genResp.Error.Status, genResp.Error.Message))
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.NewGenerationFailure("generation service returned no candidates", nil)
	}

	var text strings.Builder
	for _, p := range genResp.Candidates[0].Content.Parts {
		text.WriteString(p.Text)
	}

	return text.String(), nil
}
