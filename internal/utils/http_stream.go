package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// maxErrorBodySize caps how much of a failed response body is read for the
// error message, preventing unbounded allocation on rogue responses.
const maxErrorBodySize int64 = 1 * 1024 * 1024

// HeaderOption is a single request header to apply to the outgoing call.
type HeaderOption struct {
	Key   string
	Value string
}

// DoPostStream performs an HTTP POST with a JSON body and returns the
// response with its body left open for SSE reading; the caller owns closing
// it. On non-2xx responses the body is read (bounded), made readable, and
// returned as an error with the body already closed.
func DoPostStream(ctx context.Context, client *http.Client, url string, body any, headers ...HeaderOption) (*http.Response, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	for _, header := range headers {
		req.Header.Set(header.Key, header.Value)
	}

	response, err := httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("error sending stream request: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		defer CloseWithLog(response.Body)
		errorBody, readErr := io.ReadAll(io.LimitReader(response.Body, maxErrorBodySize))
		if readErr != nil {
			return response, fmt.Errorf("non-2xx status %d (failed to read body: %v)", response.StatusCode, readErr)
		}
		return response, fmt.Errorf("non-2xx status %d: %s", response.StatusCode, readableErrorBody(response.Header.Get("Content-Type"), errorBody))
	}

	return response, nil
}

// readableErrorBody turns a failed response body into something fit for a
// log line. Gateways and proxies in front of provider APIs answer with HTML
// error pages; those are converted to markdown so the diagnostic survives,
// and everything is truncated to a sane length.
func readableErrorBody(contentType string, body []byte) string {
	text := string(body)
	if strings.Contains(contentType, "text/html") || strings.HasPrefix(strings.TrimSpace(text), "<") {
		if markdown, err := htmltomarkdown.ConvertString(text); err == nil {
			text = markdown
		}
	}
	return TruncateString(strings.TrimSpace(text), DefaultMaxStringLength)
}

// CloseWithLog closes the given closer and logs a warning on failure. Used
// where a close error must not override the primary result.
func CloseWithLog(closer io.Closer) {
	if err := closer.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err.Error())
	}
}
