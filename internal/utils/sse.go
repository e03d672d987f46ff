package utils

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxSSELineSize is the maximum size of a single SSE line (1 MB). The
// default bufio.Scanner limit of 64 KiB is too small for large events such
// as long completions; lines beyond this limit surface as a wrapped
// bufio.ErrTooLong from Next.
const maxSSELineSize = 1 * 1024 * 1024

// SSEScanner reads Server-Sent Events from an io.Reader. It joins
// multi-line data fields, skips comments and empty lines, and treats the
// [DONE] sentinel used by OpenAI-compatible APIs as end of stream.
type SSEScanner struct {
	scanner *bufio.Scanner
}

// NewSSEScanner creates a scanner over reader.
func NewSSEScanner(reader io.Reader) *SSEScanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxSSELineSize)
	return &SSEScanner{scanner: scanner}
}

// Next returns the next SSE data payload. Multiple consecutive data lines
// of one event are joined with newlines. Returns io.EOF at end of stream
// and on the [DONE] sentinel.
func (sseScanner *SSEScanner) Next() (string, error) {
	var dataLines []string

	for sseScanner.scanner.Scan() {
		line := sseScanner.scanner.Text()

		// Empty line terminates an event; flush accumulated data lines.
		if line == "" {
			if len(dataLines) > 0 {
				return strings.Join(dataLines, "\n"), nil
			}
			continue
		}

		// SSE comment.
		if strings.HasPrefix(line, ":") {
			continue
		}

		if strings.HasPrefix(line, "data:") {
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "[DONE]" {
				return "", io.EOF
			}
			dataLines = append(dataLines, data)
			continue
		}

		// Other SSE fields (event:, id:, retry:) are ignored.
	}

	if err := sseScanner.scanner.Err(); err != nil {
		return "", fmt.Errorf("SSE scanner error: %w", err)
	}

	// Flush a trailing event that was not terminated by a blank line.
	if len(dataLines) > 0 {
		return strings.Join(dataLines, "\n"), nil
	}

	return "", io.EOF
}
