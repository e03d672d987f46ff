package gemini

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/freelancelance17/parrot/providers/ai"
)

const (
	// ProviderName is the registry key for this adapter.
	ProviderName = "gemini"

	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/"
)

func init() {
	ai.Register(ProviderName, func(endpoint string, credential ai.Credential) ai.Provider {
		return New(endpoint, credential)
	})
}

// GeminiProvider implements ai.Provider for the Gemini API. The endpoint
// path depends on the current model, so the model set via SetModel is the
// one piece of state mutated between requests; callers running concurrent
// requests through one instance must serialize SetModel with dispatch.
type GeminiProvider struct {
	endpoint     string
	credential   ai.Credential
	currentModel string
	logger       *slog.Logger
}

// New creates an adapter for the given endpoint and credential. An empty
// endpoint selects Google's API; a non-empty endpoint must end where the
// model name can be appended.
func New(endpoint string, credential ai.Credential) *GeminiProvider {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &GeminiProvider{
		endpoint:   endpoint,
		credential: credential,
		logger:     slog.Default(),
	}
}

// WithLogger sets the logger that receives credential diagnostics and
// exit-time error envelopes.
func (provider *GeminiProvider) WithLogger(logger *slog.Logger) *GeminiProvider {
	provider.logger = logger
	return provider
}

// Name implements ai.Provider.
func (provider *GeminiProvider) Name() string {
	return ProviderName
}

// SetModel implements ai.Provider. The resolved model name becomes part of
// the request URL, so it is recorded here. Unresolvable specs leave the
// current model unchanged.
func (provider *GeminiProvider) SetModel(spec ai.ModelSpec) {
	if name, ok := spec.Resolve(); ok {
		provider.currentModel = name
	}
}

// TransportConfig implements ai.Provider. The URL splices the current model
// into the path and selects the SSE streaming endpoint.
func (provider *GeminiProvider) TransportConfig() ai.TransportConfig {
	return ai.TransportConfig{
		URL: provider.endpoint + provider.currentModel + ":streamGenerateContent?alt=sse",
		Headers: []ai.Header{
			{Key: "x-goog-api-key", Value: provider.credential.Value()},
		},
	}
}

// VerifyCredential implements ai.Provider.
func (provider *GeminiProvider) VerifyCredential() bool {
	return ai.VerifyCredential(ProviderName, provider.credential, provider.logger)
}

// ParseFragment implements ai.Provider. Each streamed fragment is a full
// response document; the text lives at candidates[0].content.parts[0].text.
// Empty input, fragments that fail to decode, and fragments missing any
// level of that path yield no text.
func (provider *GeminiProvider) ParseFragment(fragment string) ai.Delta {
	if fragment == "" {
		return ai.NoDelta()
	}

	var response streamResponse
	if err := json.Unmarshal([]byte(fragment), &response); err != nil {
		return ai.MalformedDelta()
	}
	if len(response.Candidates) == 0 {
		return ai.NoDelta()
	}
	content := response.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0].Text == nil {
		return ai.NoDelta()
	}
	return ai.ContentDelta(*content.Parts[0].Text)
}

// OnRequestExit implements ai.ExitObserver. The accumulated response body is
// decoded and, when it carries an error envelope, the code, message and
// status are logged. A body that does not decode is indistinguishable from a
// body without an envelope: both are treated as no error, a deliberate
// tolerance of non-JSON and partial bodies.
func (provider *GeminiProvider) OnRequestExit(body []byte) {
	apiError, status := inspectExitBody(body)
	if status != exitErrorEnvelope {
		return
	}
	provider.logger.Error(fmt.Sprintf(
		"%s - code: %d message:%s status:%s",
		strings.ToUpper(ProviderName),
		apiError.Code,
		apiError.Message,
		apiError.Status,
	))
}

// exitStatus classifies the exit-time body so the undecodable and no-error
// cases stay distinguishable internally even though both are silent.
type exitStatus int

const (
	exitNoError exitStatus = iota
	exitErrorEnvelope
	exitUndecodable
)

func inspectExitBody(body []byte) (*apiError, exitStatus) {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, exitUndecodable
	}
	if envelope.Error == nil {
		return nil, exitNoError
	}
	return envelope.Error, exitErrorEnvelope
}

// CheckModel implements ai.Provider.
func (provider *GeminiProvider) CheckModel(spec ai.ModelSpec) bool {
	return modelSet.CheckModel(spec)
}

var (
	_ ai.Provider     = (*GeminiProvider)(nil)
	_ ai.ExitObserver = (*GeminiProvider)(nil)
)
