package openai

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/freelancelance17/parrot/providers/ai"
)

const (
	// ProviderName is the registry key for this adapter.
	ProviderName = "openai"

	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
)

// availableParams is the fixed set of request fields the chat completions
// API accepts. PreparePayload drops everything else.
var availableParams = []string{
	"messages",
	"model",
	"frequency_penalty",
	"logit_bias",
	"logprobs",
	"top_logprobs",
	"max_tokens",
	"max_completion_tokens",
	"n",
	"presence_penalty",
	"seed",
	"stop",
	"stream",
	"temperature",
	"top_p",
	"tools",
	"tool_choice",
}

func init() {
	ai.Register(ProviderName, func(endpoint string, credential ai.Credential) ai.Provider {
		return New(endpoint, credential)
	})
}

// OpenAIProvider implements ai.Provider for the OpenAI chat completions API.
type OpenAIProvider struct {
	endpoint   string
	credential ai.Credential
	logger     *slog.Logger
}

// New creates an adapter for the given endpoint and credential. An empty
// endpoint selects the official API URL.
func New(endpoint string, credential ai.Credential) *OpenAIProvider {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &OpenAIProvider{
		endpoint:   endpoint,
		credential: credential,
		logger:     slog.Default(),
	}
}

// WithLogger sets the logger that receives credential diagnostics.
func (provider *OpenAIProvider) WithLogger(logger *slog.Logger) *OpenAIProvider {
	provider.logger = logger
	return provider
}

// Name implements ai.Provider.
func (provider *OpenAIProvider) Name() string {
	return ProviderName
}

// SetModel implements ai.Provider. The model is carried inside the payload
// body, so there is nothing to record.
func (provider *OpenAIProvider) SetModel(ai.ModelSpec) {}

// PreparePayload implements ai.Provider. Message content is trimmed of
// leading and trailing whitespace, then the payload is filtered through the
// vendor allow-list. The input payload is not mutated.
func (provider *OpenAIProvider) PreparePayload(payload ai.Payload) ai.Payload {
	prepared := payload.Clone()

	if messages := payload.Messages(); messages != nil {
		trimmed := make([]ai.Message, len(messages))
		for i, message := range messages {
			trimmed[i] = ai.Message{
				Role:    message.Role,
				Content: strings.TrimSpace(message.Content),
			}
		}
		prepared["messages"] = trimmed
	}

	return ai.FilterParams(availableParams, prepared)
}

// TransportConfig implements ai.Provider.
func (provider *OpenAIProvider) TransportConfig() ai.TransportConfig {
	return ai.TransportConfig{
		URL: provider.endpoint,
		Headers: []ai.Header{
			{Key: "Authorization", Value: "Bearer " + provider.credential.Value()},
		},
	}
}

// VerifyCredential implements ai.Provider.
func (provider *OpenAIProvider) VerifyCredential() bool {
	return ai.VerifyCredential(ProviderName, provider.credential, provider.logger)
}

// ParseFragment implements ai.Provider. Fragments are matched on the
// streaming-chunk or completion object marker, then decoded and drilled to
// the first choice's delta content. Anything else, including fragments that
// fail to decode, yields no text.
func (provider *OpenAIProvider) ParseFragment(fragment string) ai.Delta {
	if !strings.Contains(fragment, "chat.completion.chunk") && !strings.Contains(fragment, "chat.completion") {
		return ai.NoDelta()
	}

	var chunk streamChunk
	if err := json.Unmarshal([]byte(fragment), &chunk); err != nil {
		return ai.MalformedDelta()
	}
	if len(chunk.Choices) == 0 || chunk.Choices[0].Delta.Content == nil {
		return ai.NoDelta()
	}
	return ai.ContentDelta(*chunk.Choices[0].Delta.Content)
}

// CheckModel implements ai.Provider.
func (provider *OpenAIProvider) CheckModel(spec ai.ModelSpec) bool {
	return modelSet.CheckModel(spec)
}

var _ ai.Provider = (*OpenAIProvider)(nil)
