// Package parse provides lenient JSON decoding helpers. When a document
// fails to unmarshal, it is run through jsonrepair (fixing unquoted keys,
// single quotes, trailing commas and similar damage) and decoded again, so
// hand-edited data files still load.
package parse

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// DecodeLenient unmarshals data into T, repairing the document and retrying
// once if the first attempt fails.
func DecodeLenient[T any](data []byte) (T, error) {
	var result T

	err := json.Unmarshal(data, &result)
	if err == nil {
		return result, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(data))
	if repairErr != nil {
		return result, fmt.Errorf("failed to decode as %T and failed to repair JSON: decode error: %w, repair error: %v", result, err, repairErr)
	}

	if err = json.Unmarshal([]byte(repaired), &result); err != nil {
		return result, fmt.Errorf("failed to decode repaired JSON as %T: %w", result, err)
	}
	return result, nil
}
