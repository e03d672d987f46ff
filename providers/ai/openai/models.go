package openai

import (
	_ "embed"

	"github.com/freelancelance17/parrot/providers/ai"
)

//go:embed models.json
var modelsData []byte

// modelSet is the recognized-model registry, loaded from the embedded
// models.json so the list can be refreshed without touching adapter code.
var modelSet = ai.MustLoadModelSet(modelsData)

/*
	CHAT COMPLETIONS STREAMING API - RESPONSE TYPES

	These types model the SSE chunks returned by the chat completions
	endpoint when stream=true. Only the fields this adapter drills into are
	declared; everything else in a chunk is ignored.
*/

// streamChunk represents a single streamed chunk (object
// "chat.completion.chunk") or a non-streamed completion envelope.
type streamChunk struct {
	Object  string         `json:"object"`
	Choices []streamChoice `json:"choices"`
}

// streamChoice carries the incremental delta for one choice.
type streamChoice struct {
	Index int         `json:"index"`
	Delta streamDelta `json:"delta"`
}

// streamDelta holds the incremental message content. Content is a pointer
// so an explicit empty-string delta stays distinguishable from an absent
// field.
type streamDelta struct {
	Role    string  `json:"role,omitempty"`
	Content *string `json:"content,omitempty"`
}
