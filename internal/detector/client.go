// Package detector proxies uploaded images to the external barcode/OCR
// detection service and relays its JSON response unchanged. No decoding
// happens in-process.
package detector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"medicinna/internal/platform/config"
	dErrors "medicinna/pkg/domain-errors"
)

// Client calls the hosted detection model.
type Client struct {
	httpClient *http.Client
	baseURL    string
	modelID    string
	apiKey     string
}

// NewClient builds a detector client from config.
func NewClient(cfg config.DetectorConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		modelID:    cfg.ModelID,
		apiKey:     cfg.APIKey,
	}
}

// Detect forwards the image bytes verbatim and returns the raw JSON verdict.
// Any transport or non-2xx failure surfaces as an internal-error condition;
// this boundary has no business outcomes of its own.
func (c *Client) Detect(ctx context.Context, filename string, image []byte) (json.RawMessage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("write multipart part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	query := url.Values{
		"api_key":    {c.apiKey},
		"confidence": {"40"},
		"overlap":    {"30"},
		"format":     {"json"},
	}
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, c.modelID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("build detector request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "detector service unavailable", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "detector response unreadable", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "detector service error",
			fmt.Errorf("detector returned status %d", resp.StatusCode))
	}
	return json.RawMessage(payload), nil
}
