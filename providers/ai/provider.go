package ai

import (
	"fmt"
	"sort"
	"sync"
)

// Provider is the contract every vendor adapter must satisfy. It covers the
// full lifecycle of a single streamed chat request: credential validation,
// model selection, payload normalization, transport configuration, and
// fragment parsing.
//
// A Provider instance is constructed once per endpoint+credential pair and
// reused across requests. The only state mutated after construction is the
// current model (see [Provider.SetModel]); adapters perform no locking, so
// callers running concurrent requests against a model-in-path vendor must
// either serialize SetModel+PreparePayload+dispatch per instance or use one
// instance per request.
type Provider interface {
	// Name returns the vendor identifier this adapter was registered under.
	Name() string

	// SetModel records the model for the next request. Vendors that carry
	// the model inside the request body implement this as a no-op; vendors
	// with model-dependent endpoints (Gemini) store it for TransportConfig.
	SetModel(spec ModelSpec)

	// PreparePayload normalizes a generic payload into the vendor's wire
	// shape. It never mutates its input.
	PreparePayload(payload Payload) Payload

	// TransportConfig returns the endpoint URL and headers for the next
	// request. Pure, no I/O.
	TransportConfig() TransportConfig

	// VerifyCredential reports whether the adapter's credential is usable.
	// On failure a human-readable diagnostic is sent to the adapter's
	// logger; the request must not be dispatched.
	VerifyCredential() bool

	// ParseFragment parses one unit of streamed transport output into a
	// text [Delta]. It never fails loudly: fragments that carry no content
	// or do not decode yield a non-content Delta.
	ParseFragment(fragment string) Delta

	// CheckModel reports whether the resolved model name is present in the
	// vendor's recognized-model set. Unknown models are rejected.
	CheckModel(spec ModelSpec) bool
}

// ExitObserver is an optional capability for providers that report API
// errors through an envelope in the full response body rather than through
// per-fragment errors. OnRequestExit is invoked at most once per request,
// after the last fragment.
type ExitObserver interface {
	// OnRequestExit inspects the accumulated response body. Bodies that do
	// not decode, or that decode without an error envelope, are ignored.
	OnRequestExit(body []byte)
}

// Header is a single transport header.
type Header struct {
	Key   string
	Value string
}

// TransportConfig carries everything the transport needs to perform the
// vendor call: the (possibly model-dependent) endpoint URL and the required
// headers, in order.
type TransportConfig struct {
	URL     string
	Headers []Header
}

// Factory constructs a provider instance for a configured endpoint and
// credential. An empty endpoint selects the vendor's default.
type Factory func(endpoint string, credential Credential) Provider

var (
	factoriesMu sync.RWMutex
	factories   = map[string]Factory{}
)

// Register makes a provider factory available under the given name. Vendor
// packages call this from init; registering the same name twice panics.
func Register(name string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if _, dup := factories[name]; dup {
		panic("ai: Register called twice for provider " + name)
	}
	factories[name] = factory
}

// New constructs the provider registered under name. Returns an error for
// unknown names so callers can surface configuration mistakes early.
func New(name, endpoint string, credential Credential) (Provider, error) {
	factoriesMu.RLock()
	factory, ok := factories[name]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	return factory(endpoint, credential), nil
}

// Names returns the sorted names of all registered providers.
func Names() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
