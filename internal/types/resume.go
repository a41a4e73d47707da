// Package types provides type definitions for résumé documents, user accounts,
// and plans used throughout the resume-builder system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// DegreeLevel is the level of an education entry.
type DegreeLevel string

// Known degree levels.
const (
	DegreeSecondary     DegreeLevel = "secondary"
	DegreeTechnical     DegreeLevel = "technical"
	DegreeUndergraduate DegreeLevel = "undergraduate"
	DegreePostgraduate  DegreeLevel = "postgraduate"
	DegreeOther         DegreeLevel = "other"
)

// ExperienceType is the kind of an experience entry.
type ExperienceType string

// Known experience types.
const (
	ExperienceJob        ExperienceType = "job"
	ExperienceInternship ExperienceType = "internship"
	ExperienceProject    ExperienceType = "project"
	ExperienceVolunteer  ExperienceType = "volunteer"
)

// SkillLevel is the proficiency level of a skill.
type SkillLevel string

// Known skill levels.
const (
	SkillBasic        SkillLevel = "basic"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// SkillCategory is the category of a skill.
type SkillCategory string

// Known skill categories.
const (
	SkillTechnical SkillCategory = "technical"
	SkillSoft      SkillCategory = "soft"
	SkillLanguage  SkillCategory = "language"
	SkillTool      SkillCategory = "tool"
)

// AdditionalInfoType is the category of an additional-info entry.
type AdditionalInfoType string

// Known additional-info types.
const (
	InfoCourse        AdditionalInfoType = "course"
	InfoCertification AdditionalInfoType = "certification"
	InfoAward         AdditionalInfoType = "award"
	InfoLanguage      AdditionalInfoType = "language"
	InfoOther         AdditionalInfoType = "other"
)

// PersonalData holds the candidate's contact information.
// Optional string fields use the empty string for "not provided".
type PersonalData struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	State     string `json:"state"` // two-letter state code
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// ProfessionalObjective is the free-text objective of the résumé.
type ProfessionalObjective struct {
	Text           string `json:"text"`
	GeneratedByAI  bool   `json:"generated_by_ai"`
	TargetPosition string `json:"target_position,omitempty"`
}

// Education is a single education entry.
type Education struct {
	ID          string      `json:"id"`
	Institution string      `json:"institution"`
	Course      string      `json:"course"`
	Degree      DegreeLevel `json:"degree"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date,omitempty"`
	Current     bool        `json:"current"`
	Description string      `json:"description,omitempty"`
}

// Experience is a single experience entry (job, internship, project or volunteering).
type Experience struct {
	ID          string         `json:"id"`
	Type        ExperienceType `json:"type"`
	Title       string         `json:"title"`
	Company     string         `json:"company,omitempty"`
	Description string         `json:"description"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date,omitempty"`
	Current     bool           `json:"current"`
	Highlights  []string       `json:"highlights,omitempty"`
}

// Skill is a single skill entry.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Level    SkillLevel    `json:"level"`
	Category SkillCategory `json:"category"`
}

// AdditionalInfo is a single extra entry (course, certification, award, language).
type AdditionalInfo struct {
	ID          string             `json:"id"`
	Type        AdditionalInfoType `json:"type"`
	Title       string             `json:"title"`
	Institution string             `json:"institution,omitempty"`
	Date        string             `json:"date,omitempty"`
	Description string             `json:"description,omitempty"`
}

// ResumeSections groups the six scored sections of a résumé.
// All list fields may be empty; the scoring engine treats missing and empty
// values the same way.
type ResumeSections struct {
	PersonalData   PersonalData          `json:"personal_data"`
	Objective      ProfessionalObjective `json:"objective"`
	Education      []Education           `json:"education"`
	Experiences    []Experience          `json:"experiences"`
	Skills         []Skill               `json:"skills"`
	AdditionalInfo []AdditionalInfo      `json:"additional_info"`
}

// Resume is a persisted résumé document owned by a user.
// Score and ScoreDetails are derived from the sections and recomputed on every
// write; the sections are the source of truth.
type Resume struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	IsBase         bool           `json:"is_base"`
	TargetJobURL   string         `json:"target_job_url,omitempty"`
	TargetJobTitle string         `json:"target_job_title,omitempty"`
	Sections       ResumeSections `json:"sections"`
	Score          int            `json:"score"`
	ScoreDetails   ScoreDetails   `json:"score_details"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
