package anthropic

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
	MESSAGES STREAMING API - RESPONSE TYPES

	Only the fields the adapter drills into are declared.
*/

// streamEvent is one SSE event from the streaming messages endpoint. Text
// increments arrive with type "content_block_delta".
type streamEvent struct {
	Type  string      `json:"type"`
	Delta *eventDelta `json:"delta"`
	Index *int        `json:"index"`
}

// eventDelta carries the text increment of a content_block_delta event.
// Text is a pointer so an absent field stays distinguishable from an
// explicit empty string.
type eventDelta struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
}
