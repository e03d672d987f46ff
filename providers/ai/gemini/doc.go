// Package gemini implements the [ai.Provider] and [ai.ExitObserver]
// interfaces for Google's Gemini generative language API.
//
// Gemini differs structurally from the OpenAI-shaped vendors: the model is
// part of the endpoint path (so [GeminiProvider.SetModel] records state used
// by TransportConfig), and the request body is not a filtered passthrough but
// a restructured document — system messages move into systemInstruction and
// the remaining conversation becomes a contents array with the assistant
// role renamed to "model". API errors arrive in an envelope inside the full
// response body and are reported at request exit, not per fragment.
package gemini
