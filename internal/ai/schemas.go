package ai

// JSON schemas for structured model responses. Responses are validated before
// being decoded so malformed model output surfaces as a typed error instead of
// a partial struct.

const suggestedSkillsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"category": {"type": "string", "enum": ["technical", "soft", "language", "tool"]},
			"reason": {"type": "string"}
		},
		"required": ["name", "category"]
	}
}`

const resumeAnalysisSchema = `{
	"type": "object",
	"properties": {
		"strengths": {"type": "array", "items": {"type": "string"}},
		"improvements": {"type": "array", "items": {"type": "string"}},
		"tips": {"type": "array", "items": {"type": "string"}},
		"overallFeedback": {"type": "string"}
	},
	"required": ["strengths", "improvements", "tips", "overallFeedback"]
}`
