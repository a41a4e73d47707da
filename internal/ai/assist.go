package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/primeirocv/resume-builder/internal/schemas"
	"github.com/primeirocv/resume-builder/internal/types"
)

// maxSuggestedSkills caps the suggestion list regardless of how many items the
// model returns.
const maxSuggestedSkills = 5

// SuggestedSkill is one skill recommendation from the model.
type SuggestedSkill struct {
	Name     string              `json:"name"`
	Category types.SkillCategory `json:"category"`
	Reason   string              `json:"reason,omitempty"`
}

// ResumeAnalysis is the structured feedback from a full resume review.
type ResumeAnalysis struct {
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Tips            []string `json:"tips"`
	OverallFeedback string   `json:"overallFeedback"`
}

// Assistant exposes the resume-assistance operations on top of a Client.
type Assistant struct {
	client Client
}

// NewAssistant creates an Assistant backed by the given client.
func NewAssistant(client Client) *Assistant {
	return &Assistant{client: client}
}

// GenerateObjective drafts a professional objective from the resume's context.
func (a *Assistant) GenerateObjective(ctx context.Context, sections types.ResumeSections, targetPosition string) (string, error) {
	text, err := a.client.GenerateText(ctx, buildObjectivePrompt(sections, targetPosition))
	if err != nil {
		return "", fmt.Errorf("failed to generate objective: %w", err)
	}
	// Models occasionally wrap short answers in quotes
	return strings.Trim(strings.TrimSpace(text), `"'`), nil
}

// ImproveExperienceDescription rewrites one experience entry's description.
func (a *Assistant) ImproveExperienceDescription(ctx context.Context, exp types.Experience) (string, error) {
	if exp.Title == "" {
		return "", fmt.Errorf("experience title is required")
	}
	text, err := a.client.GenerateText(ctx, buildImproveDescriptionPrompt(exp))
	if err != nil {
		return "", fmt.Errorf("failed to improve description: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SuggestSkills asks the model for skills the candidate should add. Skills the
// resume already lists are filtered out case-insensitively and the result is
// capped at five entries.
func (a *Assistant) SuggestSkills(ctx context.Context, sections types.ResumeSections, targetPosition string) ([]SuggestedSkill, error) {
	raw, err := a.client.GenerateJSON(ctx, buildSuggestSkillsPrompt(sections, targetPosition))
	if err != nil {
		return nil, fmt.Errorf("failed to suggest skills: %w", err)
	}

	if err := schemas.ValidateJSONString(suggestedSkillsSchema, raw); err != nil {
		return nil, fmt.Errorf("invalid skill suggestions from model: %w", err)
	}

	var suggestions []SuggestedSkill
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode skill suggestions: %w", err)
	}

	existing := make(map[string]bool, len(sections.Skills))
	for _, s := range sections.Skills {
		existing[strings.ToLower(s.Name)] = true
	}

	filtered := make([]SuggestedSkill, 0, maxSuggestedSkills)
	for _, s := range suggestions {
		if existing[strings.ToLower(s.Name)] {
			continue
		}
		filtered = append(filtered, s)
		if len(filtered) == maxSuggestedSkills {
			break
		}
	}
	return filtered, nil
}

// AnalyzeResume asks the model for a structured review of the whole resume.
func (a *Assistant) AnalyzeResume(ctx context.Context, sections types.ResumeSections) (*ResumeAnalysis, error) {
	raw, err := a.client.GenerateJSON(ctx, buildAnalyzePrompt(sections))
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	if err := schemas.ValidateJSONString(resumeAnalysisSchema, raw); err != nil {
		return nil, fmt.Errorf("invalid analysis from model: %w", err)
	}

	var analysis ResumeAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &analysis, nil
}

// GenerateCoverLetter writes a cover letter tailored to a specific opening.
func (a *Assistant) GenerateCoverLetter(ctx context.Context, sections types.ResumeSections, jobTitle, companyName, jobDescription string) (string, error) {
	if jobTitle == "" || companyName == "" {
		return "", fmt.Errorf("job title and company name are required")
	}
	text, err := a.client.GenerateText(ctx, buildCoverLetterPrompt(sections, jobTitle, companyName, jobDescription))
	if err != nil {
		return "", fmt.Errorf("failed to generate cover letter: %w", err)
	}
	return strings.TrimSpace(text), nil
}
