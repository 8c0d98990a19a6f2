package intent

import "fmt"

// intentExplanations maps well-known intents to friendly descriptions.
var intentExplanations = map[string]string{
	"data_processing":   "You're working with data - I can help clean, transform, or process it.",
	"api_request":       "You want to make an API call - I'll help with the request.",
	"code_generation":   "You need code written - I'll generate it for you.",
	"testing":           "You want to test something - I'll help create tests.",
	"debugging":         "You're fixing a bug - I'll help debug it.",
	"file_manipulation": "You're working with files - I'll help manage them.",
}

// Explain renders a human-readable explanation of a predicted intent,
// prefixed by a confidence band.
func Explain(intent string, confidence float64) string {
	explanation, ok := intentExplanations[intent]
	if !ok {
		explanation = fmt.Sprintf("Detected intent: %s", intent)
	}

	switch {
	case confidence >= 0.8:
		return "HIGH CONFIDENCE: " + explanation
	case confidence >= 0.5:
		return "LIKELY: " + explanation
	default:
		return "POSSIBLE: " + explanation
	}
}
