package score

// Tone is the UI color token associated with a classification band.
type Tone string

// Known classification tones.
const (
	ToneSuccess Tone = "success"
	TonePrimary Tone = "primary"
	ToneWarning Tone = "warning"
	ToneError   Tone = "error"
)

// Classification is the user-facing feedback band for a total score.
type Classification struct {
	Label       string `json:"label"`
	Tone        Tone   `json:"tone"`
	Description string `json:"description"`
}

// Classify maps a total score to its feedback band. Bands are evaluated high to
// low and the first match wins; no clamping is applied, so out-of-range inputs
// map through the same thresholds.
func Classify(total int) Classification {
	if total >= 80 {
		return Classification{
			Label:       "Excellent",
			Tone:        ToneSuccess,
			Description: "Your resume is very well prepared!",
		}
	}
	if total >= 60 {
		return Classification{
			Label:       "Good",
			Tone:        TonePrimary,
			Description: "Good resume! A few improvements can make it stand out even more.",
		}
	}
	if total >= 40 {
		return Classification{
			Label:       "Fair",
			Tone:        ToneWarning,
			Description: "Basic resume. Follow the suggestions to improve it.",
		}
	}
	return Classification{
		Label:       "Needs improvement",
		Tone:        ToneError,
		Description: "Complete more sections to build a competitive resume.",
	}
}
