package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/s21platform/chat-gateway/internal/config"
	"github.com/s21platform/chat-gateway/internal/model"
)

type Client struct {
	baseURL    string
	apiKey     string
	bucket     string
	httpClient *http.Client

	now func() time.Time
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Storage.BaseURL,
		apiKey:  cfg.Storage.APIKey,
		bucket:  cfg.Storage.Bucket,
		httpClient: &http.Client{
			Timeout: cfg.Storage.Timeout,
		},
		now: time.Now,
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// FileKind maps a MIME type to the message attachment type. Anything outside
// the image and video families is rejected.
func FileKind(contentType string) (string, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return model.FileTypeImage, nil
	case strings.HasPrefix(contentType, "video/"):
		return model.FileTypeVideo, nil
	default:
		return "", model.NewAppError(model.CodeUnsupportedFormat, fmt.Errorf("unsupported content type: %s", contentType))
	}
}

// ObjectPath builds the bucket key for an attachment. The timestamp prefix
// keeps same-named uploads from colliding.
func (c *Client) ObjectPath(roomID, fileName string) string {
	return fmt.Sprintf("%s/%d_%s", roomID, c.now().UnixMilli(), fileName)
}

// Upload streams an attachment into the bucket and returns its public URL.
func (c *Client) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	uploadURL := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", model.NewAppError(model.CodeTransport, fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", model.NewAppError(model.CodeTransport, fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	return c.PublicURL(path), nil
}

// PublicURL returns the browser-reachable address of a stored object.
func (c *Client) PublicURL(path string) string {
	escaped := make([]string, 0, 4)
	for _, segment := range strings.Split(path, "/") {
		escaped = append(escaped, url.PathEscape(segment))
	}
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, strings.Join(escaped, "/"))
}
