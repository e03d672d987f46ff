// Package openai implements the [ai.Provider] interface for OpenAI's chat
// completions API and for the many OpenAI-compatible endpoints that share
// its wire format.
//
// The model travels inside the request body, so [OpenAIProvider.SetModel] is
// a no-op. Payload preparation trims message content and filters the payload
// through the vendor's parameter allow-list. Streamed fragments are matched
// on the "chat.completion.chunk"/"chat.completion" object markers and
// drilled to choices[0].delta.content.
package openai
