package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/s21platform/chat-gateway/internal/config"
	"github.com/s21platform/chat-gateway/internal/model"
)

// rateLimitPenalty extends a room's cooldown after the API reports quota
// exhaustion.
const rateLimitPenalty = 120 * time.Second

const defaultModel = "models/gemini-2.5-flash"

// preferredModels is tried in order against the models the API advertises.
var preferredModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-2.5-pro",
	"gemini-pro-latest",
	"gemini-pro",
}

var fallbackReplies = []string{
	"Hi there! Nice to hear from you.",
	"How is your day going?",
	"That's interesting, tell me more!",
	"Got it, makes sense.",
	"Have a great day!",
}

type Client struct {
	baseURL    string
	apiKey     string
	cooldown   time.Duration
	httpClient *http.Client

	mu          sync.Mutex
	cachedModel string
	nextAllowed map[string]time.Time

	now  func() time.Time
	pick func(n int) int
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:  cfg.Gemini.BaseURL,
		apiKey:   cfg.Gemini.APIKey,
		cooldown: cfg.Gemini.Cooldown,
		httpClient: &http.Client{
			Timeout: cfg.Gemini.Timeout,
		},
		nextAllowed: make(map[string]time.Time),
		now:         time.Now,
		pick:        rand.Intn,
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) fallback() string {
	return fallbackReplies[c.pick(len(fallbackReplies))]
}

// GenerateReply produces a chatbot reply for a user message. It never fails
// outward: missing key, cooldown, auth errors, quota exhaustion and empty
// candidates all degrade to a locally generated fallback phrase. Each room
// has a minimum window between real API calls.
func (c *Client) GenerateReply(ctx context.Context, userMessage, roomName, roomID string) string {
	if c.apiKey == "" {
		return c.fallback()
	}

	now := c.now()
	c.mu.Lock()
	if now.Before(c.nextAllowed[roomID]) {
		c.mu.Unlock()
		return c.fallback()
	}
	c.nextAllowed[roomID] = now.Add(c.cooldown)
	c.mu.Unlock()

	prompt := fmt.Sprintf(
		"You are the friendly AI chatbot of the %q chat room. Keep the conversation natural and fun.\n\nUser message: %s",
		roomName, userMessage)

	reply, err := c.generateWithRetry(ctx, prompt, roomID)
	if err != nil || reply == "" {
		return c.fallback()
	}

	return reply
}

// Summarize condenses a room transcript. Unlike GenerateReply, failures
// surface to the caller.
func (c *Client) Summarize(ctx context.Context, messages model.MessageList, roomName string) (string, error) {
	if c.apiKey == "" {
		return "", model.NewAppError(model.CodePermissionDenied, fmt.Errorf("generative API key not configured"))
	}

	var transcript strings.Builder
	for _, message := range messages {
		fmt.Fprintf(&transcript, "[%s] %s: %s\n",
			message.CreatedAt.Format("15:04"), message.UserName, message.BodyText())
	}

	prompt := fmt.Sprintf(
		"The following is the conversation of the %q chat room. Summarize it concisely and clearly, covering the main topics, key information and any decisions.\n\nConversation:\n%s",
		roomName, transcript.String())

	summary, err := c.generateWithRetry(ctx, prompt, "")
	if err != nil {
		return "", err
	}
	if summary == "" {
		return "", model.NewAppError(model.CodeTransport, fmt.Errorf("empty generation response"))
	}

	return summary, nil
}

// generateWithRetry resolves a model lazily and retries exactly once with a
// freshly resolved model when the cached one has disappeared.
func (c *Client) generateWithRetry(ctx context.Context, prompt, roomID string) (string, error) {
	modelName, err := c.resolveModel(ctx)
	if err != nil {
		modelName = defaultModel
	}

	text, status, err := c.generate(ctx, modelName, prompt)
	if err != nil {
		return "", err
	}

	switch status {
	case http.StatusOK:
		return text, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", model.NewAppError(model.CodePermissionDenied, fmt.Errorf("generative API rejected credentials: %d", status))
	case http.StatusNotFound:
		c.mu.Lock()
		c.cachedModel = ""
		c.mu.Unlock()

		freshModel, resolveErr := c.resolveModel(ctx)
		if resolveErr != nil || freshModel == modelName {
			return "", model.NewAppError(model.CodeNotFound, fmt.Errorf("no usable generation model"))
		}

		text, status, err = c.generate(ctx, freshModel, prompt)
		if err != nil {
			return "", err
		}
		if status != http.StatusOK {
			return "", model.NewAppError(model.CodeNotFound, fmt.Errorf("fallback model failed: %d", status))
		}
		return text, nil
	case http.StatusTooManyRequests:
		if roomID != "" {
			c.mu.Lock()
			c.nextAllowed[roomID] = c.now().Add(rateLimitPenalty)
			c.mu.Unlock()
		}
		return "", model.NewAppError(model.CodeRateLimited, fmt.Errorf("generative API quota exceeded"))
	default:
		return "", model.NewAppError(model.CodeTransport, fmt.Errorf("generative API error: %d", status))
	}
}

type listModelsResponse struct {
	Models []struct {
		Name                       string   `json:"name"`
		DisplayName                string   `json:"displayName"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

func (c *Client) resolveModel(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.cachedModel != "" {
		cached := c.cachedModel
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models?key="+c.apiKey, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to list models: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var listing listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return "", fmt.Errorf("failed to decode models listing: %w", err)
	}

	resolved := ""
	for _, preferred := range preferredModels {
		for _, m := range listing.Models {
			if strings.Contains(m.Name, preferred) && supportsGenerate(m.SupportedGenerationMethods) {
				resolved = m.Name
				break
			}
		}
		if resolved != "" {
			break
		}
	}

	if resolved == "" {
		for _, m := range listing.Models {
			if supportsGenerate(m.SupportedGenerationMethods) {
				resolved = m.Name
				break
			}
		}
	}

	if resolved == "" {
		resolved = defaultModel
	}

	c.mu.Lock()
	c.cachedModel = resolved
	c.mu.Unlock()

	return resolved, nil
}

func supportsGenerate(methods []string) bool {
	for _, m := range methods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateCandidate struct {
	Content      generateContent `json:"content"`
	FinishReason string          `json:"finishReason"`
}

type generateResponse struct {
	Candidates []generateCandidate `json:"candidates"`
}

// generate performs one generateContent call. Non-2xx statuses are returned
// for the caller to classify, not treated as transport errors.
func (c *Client) generate(ctx context.Context, modelName, prompt string) (string, int, error) {
	payload := generateRequest{
		Contents: []generateContent{
			{Parts: []generatePart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 8192,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, modelName, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, nil
	}

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(response.Candidates) == 0 {
		return "", resp.StatusCode, nil
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return strings.TrimSpace(text.String()), resp.StatusCode, nil
}
