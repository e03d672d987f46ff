// Package client drives a full streamed chat request through a provider
// adapter: credential verification, model check, payload preparation, the
// HTTP call per the adapter's transport configuration, fragment parsing into
// text deltas, and the exit-time error inspection for providers that report
// errors in the response body.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/freelancelance17/parrot/internal/utils"
	"github.com/freelancelance17/parrot/providers/ai"
)

// Option configures a Stream call.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the HTTP client used for the request. Defaults to
// http.DefaultClient.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// Stream dispatches payload through provider and returns a TextStream of
// content deltas. Pre-stream failures (invalid credential, unsupported
// model, connection or status errors) are returned as a normal error;
// mid-stream failures are yielded through the iterator.
//
// Stream performs verify, model check, SetModel, PreparePayload and the
// dispatch as one sequence. For vendors whose endpoint depends on the
// current model this whole call is the critical section: callers running
// concurrent requests must serialize Stream calls per provider instance or
// construct one instance per request — the adapter performs no locking.
func Stream(ctx context.Context, provider ai.Provider, payload ai.Payload, opts ...Option) (*TextStream, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !provider.VerifyCredential() {
		return nil, fmt.Errorf("%s: credential verification failed", provider.Name())
	}

	if spec, ok := modelSpecFromPayload(payload); ok {
		if !provider.CheckModel(spec) {
			name, _ := spec.Resolve()
			return nil, fmt.Errorf("%s: unsupported model %q", provider.Name(), name)
		}
		provider.SetModel(spec)
	}

	prepared := provider.PreparePayload(payload)
	transport := provider.TransportConfig()

	headers := make([]utils.HeaderOption, len(transport.Headers))
	for i, header := range transport.Headers {
		headers[i] = utils.HeaderOption{Key: header.Key, Value: header.Value}
	}

	response, err := utils.DoPostStream(ctx, o.httpClient, transport.URL, prepared, headers...)
	if err != nil {
		return nil, err
	}

	exitObserver, _ := provider.(ai.ExitObserver)
	sseScanner := utils.NewSSEScanner(response.Body)

	iterator := func(yield func(string, error) bool) {
		defer utils.CloseWithLog(response.Body)

		// Raw fragments are accumulated for the exit-time inspection,
		// which fires exactly once, after the last fragment.
		var rawBody []byte
		if exitObserver != nil {
			defer func() {
				exitObserver.OnRequestExit(rawBody)
			}()
		}

		for {
			if ctx.Err() != nil {
				yield("", ctx.Err())
				return
			}

			fragment, sseErr := sseScanner.Next()
			if sseErr == io.EOF {
				return
			}
			if sseErr != nil {
				yield("", fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			if exitObserver != nil {
				rawBody = append(rawBody, fragment...)
				rawBody = append(rawBody, '\n')
			}

			// Malformed fragments are skipped like non-content ones: the
			// stream favors continuing over surfacing parse noise.
			if delta := provider.ParseFragment(fragment); delta.HasContent() {
				if !yield(delta.Text, nil) {
					return
				}
			}
		}
	}

	return NewTextStream(iterator), nil
}

// modelSpecFromPayload extracts the requested model from the payload's
// "model" field, accepting both the bare-name and structured forms.
func modelSpecFromPayload(payload ai.Payload) (ai.ModelSpec, bool) {
	switch model := payload["model"].(type) {
	case string:
		return ai.ModelName(model), true
	case ai.Payload:
		return ai.ModelParams(model), true
	case map[string]any:
		return ai.ModelParams(model), true
	default:
		return ai.ModelSpec{}, false
	}
}
