// Package anthropic implements the [ai.Provider] interface for Anthropic's
// messages API.
//
// The wire shape is close to the OpenAI one with two differences: the system
// prompt is a top-level "system" field rather than a system-role message,
// and streamed text arrives as content_block_delta events carrying
// delta.text. Authentication uses the x-api-key and anthropic-version
// headers instead of a bearer token.
package anthropic
