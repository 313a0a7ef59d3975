package spacelabel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Ollama defaults.
const (
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llava"

	ollamaTimeout       = 120 * time.Second // first call loads the model
	ollamaDefaultPrompt = "Describe this image."
	maxErrorBody        = 512
)

// OllamaCaptioner captions images with a vision model served by Ollama's
// /api/generate endpoint.
type OllamaCaptioner struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOllamaCaptioner creates a captioner for the model at baseURL. Empty
// arguments select DefaultOllamaURL and DefaultOllamaModel. A nil client gets
// a 120s timeout.
func NewOllamaCaptioner(baseURL, model string, client *http.Client) *OllamaCaptioner {
	if baseURL == "" {
		baseURL = DefaultOllamaURL
	}
	if model == "" {
		model = DefaultOllamaModel
	}
	if client == nil {
		client = &http.Client{Timeout: ollamaTimeout}
	}
	return &OllamaCaptioner{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: client,
	}
}

// generateRequest is the Ollama /api/generate request body.
type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Images  []string       `json:"images,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

// generateResponse is the Ollama /api/generate response.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Caption implements Captioner.
func (c *OllamaCaptioner) Caption(ctx context.Context, img ImageInput, prompt string, maxTokens int) (string, error) {
	if prompt == "" {
		prompt = ollamaDefaultPrompt
	}
	body := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Images: []string{EncodeBase64(img.Data)},
		Stream: false,
	}
	if maxTokens > 0 {
		body.Options = map[string]any{"num_predict": maxTokens}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode, strings.TrimSpace(string(bodyBytes)))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	return strings.TrimSpace(result.Response), nil
}

// Model returns the configured model name.
func (c *OllamaCaptioner) Model() string {
	return c.model
}
