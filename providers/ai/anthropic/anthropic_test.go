package anthropic

import (
	"testing"

	"github.com/freelancelance17/parrot/providers/ai"
)

func newTestProvider() *AnthropicProvider {
	return New("", ai.CredentialValue("sk-ant-test"))
}

func TestPreparePayload_SystemLift(t *testing.T) {
	provider := newTestProvider()

	prepared := provider.PreparePayload(ai.Payload{
		"model": "claude-3-5-sonnet-20241022",
		"messages": []ai.Message{
			{Role: ai.RoleSystem, Content: "  You are terse.  "},
			{Role: ai.RoleUser, Content: " Hello "},
		},
	})

	if prepared["system"] != "You are terse." {
		t.Errorf("expected lifted system prompt, got %v", prepared["system"])
	}

	messages := prepared.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected the system message to be removed, got %v", messages)
	}
	if messages[0].Role != ai.RoleUser || messages[0].Content != "Hello" {
		t.Errorf("unexpected remaining message %+v", messages[0])
	}
}

func TestPreparePayload_NoLeadingSystem(t *testing.T) {
	provider := newTestProvider()

	prepared := provider.PreparePayload(ai.Payload{
		"messages": []ai.Message{
			{Role: ai.RoleUser, Content: "Hello"},
		},
	})

	if _, ok := prepared["system"]; ok {
		t.Error("system field must be absent without a leading system message")
	}
	if len(prepared.Messages()) != 1 {
		t.Errorf("message list altered: %v", prepared.Messages())
	}
}

func TestPreparePayload_Filters(t *testing.T) {
	provider := newTestProvider()

	prepared := provider.PreparePayload(ai.Payload{
		"model":      "claude-3-5-sonnet-20241022",
		"messages":   []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		"max_tokens": 1024,
		"provider":   "anthropic",
	})

	if _, ok := prepared["provider"]; ok {
		t.Error("application-internal field survived filtering")
	}
	if prepared["max_tokens"] != 1024 {
		t.Errorf("allowed field missing: %v", prepared)
	}
}

func TestTransportConfig(t *testing.T) {
	transport := newTestProvider().TransportConfig()

	if transport.URL != defaultEndpoint {
		t.Errorf("unexpected URL %q", transport.URL)
	}
	if len(transport.Headers) != 2 {
		t.Fatalf("expected two headers, got %v", transport.Headers)
	}
	if transport.Headers[0].Key != "x-api-key" || transport.Headers[0].Value != "sk-ant-test" {
		t.Errorf("unexpected auth header %+v", transport.Headers[0])
	}
	if transport.Headers[1].Key != "anthropic-version" || transport.Headers[1].Value != anthropicVersion {
		t.Errorf("unexpected version header %+v", transport.Headers[1])
	}
}

func TestParseFragment(t *testing.T) {
	provider := newTestProvider()

	delta := provider.ParseFragment(`{"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Hi"}}`)
	if !delta.HasContent() || delta.Text != "Hi" {
		t.Errorf("expected content %q, got %+v", "Hi", delta)
	}
}

func TestParseFragment_Degenerate(t *testing.T) {
	provider := newTestProvider()

	cases := []struct {
		name     string
		fragment string
	}{
		{"empty string", ""},
		{"plain text", "hello"},
		{"other event type", `{"type":"message_start","message":{}}`},
		{"stop event", `{"type":"content_block_stop","index":0}`},
		{"delta without text", `{"type":"content_block_delta","delta":{"type":"input_json_delta","partial_json":"{"}}`},
		{"malformed", `{"type":"content_block_delta","delta":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if delta := provider.ParseFragment(tc.fragment); delta.HasContent() {
				t.Errorf("expected no content, got %+v", delta)
			}
		})
	}
}

func TestCheckModel(t *testing.T) {
	provider := newTestProvider()

	if !provider.CheckModel(ai.ModelName("claude-3-5-sonnet-20241022")) {
		t.Error("expected claude-3-5-sonnet-20241022 to be recognized")
	}
	if provider.CheckModel(ai.ModelName("not-a-model")) {
		t.Error("unknown model accepted")
	}
}
