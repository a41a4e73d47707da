// Package score implements the résumé scoring engine: six weighted section
// scorers, an aggregator producing a 0-100 total with per-section breakdown and
// improvement suggestions, and a classification of the total into feedback bands.
package score

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/primeirocv/resume-builder/internal/types"
)

// Section weights. Each bounds its section's sub-score; the six sum to 100.
const (
	MaxPersonalData   = 15.0
	MaxObjective      = 20.0
	MaxEducation      = 15.0
	MaxExperience     = 25.0
	MaxSkills         = 15.0
	MaxAdditionalInfo = 10.0
)

// maxSuggestions caps the aggregated suggestion list. Suggestions are kept in
// fixed section order and truncated, not re-ranked by severity.
const maxSuggestions = 5

// SectionScore is the result of scoring a single résumé section.
type SectionScore struct {
	Score       float64
	MaxScore    float64
	Percentage  int
	Suggestions []string
}

// newSectionScore clamps a raw score to the section maximum and derives the
// percentage. A non-positive max yields percentage 0 rather than dividing by zero.
func newSectionScore(raw, max float64, suggestions []string) SectionScore {
	score := math.Min(raw, max)
	percentage := 0
	if max > 0 {
		percentage = int(math.Round(score / max * 100))
	}
	return SectionScore{
		Score:       score,
		MaxScore:    max,
		Percentage:  percentage,
		Suggestions: suggestions,
	}
}

// countDigits returns the number of decimal digits in s, ignoring everything else.
func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}

// scorePersonalData scores contact information (max 15).
// Each core field earns fixed points; a professional-network link earns a bonus
// that can push the raw sum past the max, which is then clamped.
func scorePersonalData(data types.PersonalData) SectionScore {
	var suggestions []string
	raw := 0.0

	if utf8.RuneCountInString(strings.TrimSpace(data.FullName)) >= 5 {
		raw += 4
	} else {
		suggestions = append(suggestions, "Add your full name")
	}

	if data.Email != "" && strings.Contains(data.Email, "@") {
		raw += 4
	} else {
		suggestions = append(suggestions, "Add a valid email address")
	}

	if countDigits(data.Phone) >= 10 {
		raw += 4
	} else {
		suggestions = append(suggestions, "Add a valid phone number")
	}

	if utf8.RuneCountInString(strings.TrimSpace(data.City)) >= 2 {
		raw += 3
	} else {
		suggestions = append(suggestions, "Fill in your city")
	}

	if utf8.RuneCountInString(data.State) == 2 {
		raw += 3
	} else {
		suggestions = append(suggestions, "Select your state")
	}

	// Bonus field: the suggestion fires whenever the link is absent, even if
	// the section already reached its maximum through the other fields.
	if data.LinkedIn != "" {
		raw += 2
	} else {
		suggestions = append(suggestions, "Add your LinkedIn to highlight your profile")
	}

	return newSectionScore(raw, MaxPersonalData, suggestions)
}

// scoreObjective scores the professional objective by trimmed text length
// (max 20). A stated target position earns a bonus without generating a
// suggestion of its own.
func scoreObjective(data types.ProfessionalObjective) SectionScore {
	var suggestions []string
	raw := 0.0

	textLength := utf8.RuneCountInString(strings.TrimSpace(data.Text))
	switch {
	case textLength == 0:
		suggestions = append(suggestions, "Write your professional objective")
	case textLength < 50:
		raw += 5
		suggestions = append(suggestions, "Objective is too short. Aim for at least 50 characters")
	case textLength < 100:
		raw += 10
		suggestions = append(suggestions, "Good objective, but it could be more detailed")
	case textLength <= 300:
		raw += 15
	default:
		raw += 12
		suggestions = append(suggestions, "Objective is too long. Try to keep it under 300 characters")
	}

	if data.TargetPosition != "" {
		raw += 2
	}

	return newSectionScore(raw, MaxObjective, suggestions)
}

// scoreEducation scores the education list (max 15): a flat base for having any
// entry plus completeness points per entry, capped at 2.5 each.
func scoreEducation(entries []types.Education) SectionScore {
	if len(entries) == 0 {
		return newSectionScore(0, MaxEducation, []string{"Add your education"})
	}

	var suggestions []string
	raw := 10.0

	for _, edu := range entries {
		entryScore := 0.0
		if edu.Institution != "" {
			entryScore++
		}
		if edu.Course != "" {
			entryScore++
		}
		if edu.StartDate != "" {
			entryScore++
		}
		if edu.EndDate != "" || edu.Current {
			entryScore++
		}
		raw += math.Min(entryScore, 2.5)
	}

	if len(entries) == 1 {
		suggestions = append(suggestions, "Consider adding complementary courses")
	}

	return newSectionScore(raw, MaxEducation, suggestions)
}

// minDescriptionLength is the description length (in characters) below which an
// experience entry is considered underdocumented.
const minDescriptionLength = 30

// scoreExperience scores the experience list (max 25). An empty list still
// earns a floor of 5 points so that entry-level candidates without formal
// experience are not heavily penalized.
func scoreExperience(entries []types.Experience) SectionScore {
	if len(entries) == 0 {
		return newSectionScore(5, MaxExperience,
			[]string{"Add personal projects, volunteering, or informal work experience"})
	}

	var suggestions []string
	raw := 8.0
	described := 0

	for _, exp := range entries {
		entryScore := 0.0
		if exp.Title != "" {
			entryScore++
		}
		if utf8.RuneCountInString(exp.Description) >= minDescriptionLength {
			entryScore += 2
			described++
		}
		if exp.StartDate != "" {
			entryScore += 0.5
		}
		raw += math.Min(entryScore, 3)
	}

	if described < len(entries) {
		suggestions = append(suggestions, "Add detailed descriptions to your experiences")
	}

	return newSectionScore(raw, MaxExperience, suggestions)
}

// scoreSkills scores the skill list (max 15): a base for having any skill,
// quantity points, and a diversity bonus for distinct categories.
func scoreSkills(entries []types.Skill) SectionScore {
	if len(entries) == 0 {
		return newSectionScore(0, MaxSkills, []string{"Add your skills"})
	}

	var suggestions []string
	raw := 5.0
	raw += math.Min(float64(len(entries))*1.5, 6)

	categories := make(map[types.SkillCategory]struct{})
	for _, s := range entries {
		categories[s.Category] = struct{}{}
	}
	raw += math.Min(float64(len(categories))*2, 4)

	if len(entries) < 5 {
		suggestions = append(suggestions, "Add more skills (recommended: 5-10)")
	}
	if len(categories) < 2 {
		suggestions = append(suggestions, "Diversify: add both technical and soft skills")
	}

	return newSectionScore(raw, MaxSkills, suggestions)
}

// scoreAdditionalInfo scores the additional-info list (max 10). The section is
// optional, so an empty list earns a floor of 3 points.
func scoreAdditionalInfo(entries []types.AdditionalInfo) SectionScore {
	if len(entries) == 0 {
		return newSectionScore(3, MaxAdditionalInfo,
			[]string{"Courses and certifications can make your resume stand out"})
	}

	raw := 5.0
	raw += math.Min(float64(len(entries))*2.5, 5)

	return newSectionScore(raw, MaxAdditionalInfo, nil)
}

// CalculateResumeScore scores all six sections of a résumé and aggregates them
// into a ScoreDetails. The breakdown keeps the unrounded section scores; only
// the total is rounded (half away from zero). Suggestions are concatenated in
// fixed section order (personal data, objective, education, experience, skills,
// additional info) and truncated to the first five.
func CalculateResumeScore(sections types.ResumeSections) types.ScoreDetails {
	personalData := scorePersonalData(sections.PersonalData)
	objective := scoreObjective(sections.Objective)
	education := scoreEducation(sections.Education)
	experience := scoreExperience(sections.Experiences)
	skills := scoreSkills(sections.Skills)
	additionalInfo := scoreAdditionalInfo(sections.AdditionalInfo)

	total := personalData.Score + objective.Score + education.Score +
		experience.Score + skills.Score + additionalInfo.Score

	suggestions := make([]string, 0, maxSuggestions)
	for _, section := range []SectionScore{personalData, objective, education, experience, skills, additionalInfo} {
		suggestions = append(suggestions, section.Suggestions...)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return types.ScoreDetails{
		Total: int(math.Round(total)),
		Breakdown: types.ScoreBreakdown{
			PersonalData:   personalData.Score,
			Objective:      objective.Score,
			Education:      education.Score,
			Experience:     experience.Score,
			Skills:         skills.Score,
			AdditionalInfo: additionalInfo.Score,
		},
		Suggestions: suggestions,
	}
}
