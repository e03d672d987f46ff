// Package ai defines the vendor-neutral provider abstraction used to talk to
// structurally different LLM chat-completion APIs behind one contract.
//
// The central type is [Provider]: each vendor package (openai, gemini,
// anthropic) implements it by normalizing an outbound [Payload] into its wire
// shape, supplying transport configuration (endpoint + headers), validating
// its [Credential], and parsing streamed response fragments into plain text
// [Delta] values. Providers that expose an error envelope at request exit
// additionally implement [ExitObserver].
//
// Construction goes through a registry keyed on provider name: vendor
// packages call [Register] from init, and callers obtain instances with
// [New]. Model capability checks are data-driven through [ModelSet], loaded
// from embedded JSON per vendor so recognized-model lists can be updated
// without touching adapter code.
package ai
