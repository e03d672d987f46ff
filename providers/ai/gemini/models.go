package gemini

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
	GEMINI API - REQUEST TYPES
*/

// part is a single text block inside a content entry or system instruction.
type part struct {
	Text string `json:"text"`
}

// systemInstruction carries the system prompt. The API accepts a single
// part object here, matching the upstream wire shape.
type systemInstruction struct {
	Parts part `json:"parts"`
}

// content is one conversation turn: role "user" or "model" plus its parts.
type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

/*
	GEMINI API - RESPONSE TYPES

	Only the fields the adapter drills into are declared. Streamed fragments
	are full response documents, not deltas.
*/

// streamResponse is one streamed fragment of a generateContent response.
type streamResponse struct {
	Candidates []candidate `json:"candidates"`
}

// candidate is one response candidate.
type candidate struct {
	Content *candidateContent `json:"content"`
}

// candidateContent holds the generated parts for a candidate.
type candidateContent struct {
	Parts []responsePart `json:"parts"`
}

// responsePart is a generated text block. Text is a pointer so an absent
// field stays distinguishable from an explicit empty string.
type responsePart struct {
	Text *string `json:"text"`
}

// errorEnvelope is the error document the API returns in the response body
// on failed requests, inspected at request exit.
type errorEnvelope struct {
	Error *apiError `json:"error"`
}

// apiError carries the vendor's error details.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
