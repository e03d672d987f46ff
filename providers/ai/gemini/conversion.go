package gemini

import (
	"github.com/freelancelance17/parrot/providers/ai"
)

// PreparePayload implements ai.Provider. Unlike the pass-through vendors,
// Gemini needs the conversation restructured: any system-role message
// becomes the single systemInstruction (last one wins if several are
// present), and the remaining messages become an ordered contents array
// where the assistant role is renamed to "model" and each content string is
// nested under parts. The input payload is not mutated.
func (provider *GeminiProvider) PreparePayload(payload ai.Payload) ai.Payload {
	var instruction *systemInstruction
	var contents []content

	for _, message := range payload.Messages() {
		if message.Role == ai.RoleSystem {
			instruction = &systemInstruction{Parts: part{Text: message.Content}}
			continue
		}

		role := string(message.Role)
		if message.Role == ai.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []part{{Text: message.Content}},
		})
	}

	prepared := ai.Payload{"contents": contents}
	if instruction != nil {
		prepared["systemInstruction"] = instruction
	}
	return prepared
}
