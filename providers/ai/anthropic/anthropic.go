package anthropic

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/freelancelance17/parrot/providers/ai"
)

const (
	// ProviderName is the registry key for this adapter.
	ProviderName = "anthropic"

	defaultEndpoint  = "https://api.anthropic.com/v1/messages"
	anthropicVersion = "2023-06-01"
)

// availableParams is the fixed set of request fields the messages API
// accepts. PreparePayload drops everything else.
var availableParams = []string{
	"messages",
	"model",
	"system",
	"max_tokens",
	"metadata",
	"stop_sequences",
	"stream",
	"temperature",
	"top_k",
	"top_p",
	"tools",
	"tool_choice",
	"thinking",
}

func init() {
	ai.Register(ProviderName, func(endpoint string, credential ai.Credential) ai.Provider {
		return New(endpoint, credential)
	})
}

// AnthropicProvider implements ai.Provider for the Anthropic messages API.
type AnthropicProvider struct {
	endpoint   string
	credential ai.Credential
	logger     *slog.Logger
}

// New creates an adapter for the given endpoint and credential. An empty
// endpoint selects the official API URL.
func New(endpoint string, credential ai.Credential) *AnthropicProvider {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &AnthropicProvider{
		endpoint:   endpoint,
		credential: credential,
		logger:     slog.Default(),
	}
}

// WithLogger sets the logger that receives credential diagnostics.
func (provider *AnthropicProvider) WithLogger(logger *slog.Logger) *AnthropicProvider {
	provider.logger = logger
	return provider
}

// Name implements ai.Provider.
func (provider *AnthropicProvider) Name() string {
	return ProviderName
}

// SetModel implements ai.Provider. The model travels inside the payload
// body, so there is nothing to record.
func (provider *AnthropicProvider) SetModel(ai.ModelSpec) {}

// PreparePayload implements ai.Provider. Message content is trimmed, a
// leading system-role message is lifted into the top-level "system" field,
// and the payload is filtered through the vendor allow-list. The input
// payload is not mutated.
func (provider *AnthropicProvider) PreparePayload(payload ai.Payload) ai.Payload {
	prepared := payload.Clone()

	if messages := payload.Messages(); messages != nil {
		trimmed := make([]ai.Message, len(messages))
		for i, message := range messages {
			trimmed[i] = ai.Message{
				Role:    message.Role,
				Content: strings.TrimSpace(message.Content),
			}
		}
		if len(trimmed) > 0 && trimmed[0].Role == ai.RoleSystem {
			prepared["system"] = trimmed[0].Content
			trimmed = trimmed[1:]
		}
		prepared["messages"] = trimmed
	}

	return ai.FilterParams(availableParams, prepared)
}

// TransportConfig implements ai.Provider.
func (provider *AnthropicProvider) TransportConfig() ai.TransportConfig {
	return ai.TransportConfig{
		URL: provider.endpoint,
		Headers: []ai.Header{
			{Key: "x-api-key", Value: provider.credential.Value()},
			{Key: "anthropic-version", Value: anthropicVersion},
		},
	}
}

// VerifyCredential implements ai.Provider.
func (provider *AnthropicProvider) VerifyCredential() bool {
	return ai.VerifyCredential(ProviderName, provider.credential, provider.logger)
}

// ParseFragment implements ai.Provider. Streamed text arrives in
// content_block_delta events whose delta.text carries the increment. Other
// event types (message_start, ping, content_block_stop, ...) and fragments
// that fail to decode yield no text.
func (provider *AnthropicProvider) ParseFragment(fragment string) ai.Delta {
	if !strings.Contains(fragment, "content_block_delta") {
		return ai.NoDelta()
	}

	var event streamEvent
	if err := json.Unmarshal([]byte(fragment), &event); err != nil {
		return ai.MalformedDelta()
	}
	if event.Delta == nil || event.Delta.Text == nil {
		return ai.NoDelta()
	}
	return ai.ContentDelta(*event.Delta.Text)
}

// CheckModel implements ai.Provider.
func (provider *AnthropicProvider) CheckModel(spec ai.ModelSpec) bool {
	return modelSet.CheckModel(spec)
}

var _ ai.Provider = (*AnthropicProvider)(nil)
