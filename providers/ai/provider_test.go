package ai

import (
	"slices"
	"testing"
)

// stubProvider is a minimal Provider used to exercise the registry.
type stubProvider struct {
	name       string
	endpoint   string
	credential Credential
}

func (p *stubProvider) Name() string                     { return p.name }
func (p *stubProvider) SetModel(ModelSpec)               {}
func (p *stubProvider) PreparePayload(v Payload) Payload { return v }
func (p *stubProvider) TransportConfig() TransportConfig { return TransportConfig{URL: p.endpoint} }
func (p *stubProvider) VerifyCredential() bool           { return true }
func (p *stubProvider) ParseFragment(string) Delta       { return NoDelta() }
func (p *stubProvider) CheckModel(ModelSpec) bool        { return false }

func TestRegistry(t *testing.T) {
	Register("stub-vendor", func(endpoint string, credential Credential) Provider {
		return &stubProvider{name: "stub-vendor", endpoint: endpoint, credential: credential}
	})

	provider, err := New("stub-vendor", "https://example.test", CredentialValue("key"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if provider.Name() != "stub-vendor" {
		t.Errorf("unexpected provider name %q", provider.Name())
	}
	if provider.TransportConfig().URL != "https://example.test" {
		t.Errorf("endpoint was not passed through: %q", provider.TransportConfig().URL)
	}

	if !slices.Contains(Names(), "stub-vendor") {
		t.Errorf("Names() is missing the registered provider: %v", Names())
	}
}

func TestRegistry_UnknownProvider(t *testing.T) {
	if _, err := New("no-such-vendor", "", CredentialValue("key")); err == nil {
		t.Error("expected an error for an unknown provider name")
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	Register("dup-vendor", func(string, Credential) Provider { return nil })
	Register("dup-vendor", func(string, Credential) Provider { return nil })
}
