package ai

import (
	"fmt"
	"strings"

	"github.com/primeirocv/resume-builder/internal/types"
)

// systemContext frames every prompt. The product targets entry-level
// candidates, so the assistant is steered toward first-job advice.
const systemContext = `You are a human resources and recruiting expert who helps
young candidates land their first job. You understand entry-level hiring:
apprenticeships, internships, and first jobs.

IMPORTANT RULES:
- Use professional but approachable language
- Focus on highlighting potential and willingness to learn
- Avoid excessive corporate jargon
- Be concise and direct
- Never invent information that was not provided`

var experienceTypeLabels = map[types.ExperienceType]string{
	types.ExperienceJob:        "job",
	types.ExperienceInternship: "internship",
	types.ExperienceProject:    "project",
	types.ExperienceVolunteer:  "volunteer work",
}

// buildObjectivePrompt assembles the prompt for drafting a professional
// objective from whatever candidate context is available.
func buildObjectivePrompt(sections types.ResumeSections, targetPosition string) string {
	var context strings.Builder

	name := sections.PersonalData.FullName
	if name == "" {
		name = "Candidate"
	}
	fmt.Fprintf(&context, "Name: %s", name)

	if sections.PersonalData.City != "" && sections.PersonalData.State != "" {
		fmt.Fprintf(&context, "\nLocation: %s - %s", sections.PersonalData.City, sections.PersonalData.State)
	}
	if targetPosition != "" {
		fmt.Fprintf(&context, "\nDesired position: %s", targetPosition)
	}
	if len(sections.Education) > 0 {
		edu := sections.Education[0]
		fmt.Fprintf(&context, "\nEducation: %s at %s", edu.Course, edu.Institution)
		if edu.Current {
			context.WriteString(" (in progress)")
		}
	}
	if len(sections.Experiences) > 0 {
		titles := make([]string, 0, len(sections.Experiences))
		for _, exp := range sections.Experiences {
			titles = append(titles, exp.Title)
		}
		fmt.Fprintf(&context, "\nExperience: %s", strings.Join(titles, ", "))
	}
	if len(sections.Skills) > 0 {
		names := make([]string, 0, 5)
		for _, s := range sections.Skills {
			names = append(names, s.Name)
			if len(names) == 5 {
				break
			}
		}
		fmt.Fprintf(&context, "\nSkills: %s", strings.Join(names, ", "))
	}

	experienceLine := "Focus on potential and willingness to learn"
	if len(sections.Experiences) > 0 {
		experienceLine = "Briefly mention the experience"
	}
	positionLine := "Keep it generic but professional"
	if targetPosition != "" {
		positionLine = fmt.Sprintf("Mention interest in the %s area", targetPosition)
	}

	return fmt.Sprintf(`%s

TASK: Write a professional objective for this person's resume.

CANDIDATE INFORMATION:
%s

REQUIREMENTS:
- Between 50 and 150 words
- Highlight motivation and willingness to learn
- %s
- %s
- First person (I am looking for..., I am interested in..., etc)
- Do NOT overuse cliches like "dynamic" or "proactive"
- Be authentic and human

Reply ONLY with the objective text, no extra explanation.`,
		systemContext, context.String(), experienceLine, positionLine)
}

// buildImproveDescriptionPrompt assembles the prompt for rewriting one
// experience entry's description.
func buildImproveDescriptionPrompt(exp types.Experience) string {
	typeLabel := experienceTypeLabels[exp.Type]
	if typeLabel == "" {
		typeLabel = "experience"
	}

	companyLine := ""
	if exp.Company != "" {
		companyLine = fmt.Sprintf("- Company/Place: %s\n", exp.Company)
	}

	return fmt.Sprintf(`%s

TASK: Improve the description of this professional experience for a resume.

INFORMATION:
- Type: %s
- Title: %s
%s- Current description: %q

REQUIREMENTS:
- Keep it between 50 and 100 words
- Use action verbs in the past or present tense
- Highlight responsibilities and achievements
- Be specific but do not invent information
- Keep a professional tone
- If the original description is very short, expand it with reasonable assumptions for the role

Reply ONLY with the improved description, no explanation.`,
		systemContext, typeLabel, exp.Title, companyLine, exp.Description)
}

// buildSuggestSkillsPrompt assembles the prompt for suggesting skills the
// candidate has not listed yet. The model replies with a JSON array.
func buildSuggestSkillsPrompt(sections types.ResumeSections, targetPosition string) string {
	var context strings.Builder

	if targetPosition != "" {
		fmt.Fprintf(&context, "Desired position: %s\n", targetPosition)
	}
	if len(sections.Education) > 0 {
		courses := make([]string, 0, len(sections.Education))
		for _, edu := range sections.Education {
			courses = append(courses, edu.Course)
		}
		fmt.Fprintf(&context, "Education: %s\n", strings.Join(courses, ", "))
	}
	if len(sections.Experiences) > 0 {
		titles := make([]string, 0, len(sections.Experiences))
		for _, exp := range sections.Experiences {
			titles = append(titles, exp.Title)
		}
		fmt.Fprintf(&context, "Experience: %s\n", strings.Join(titles, ", "))
	}
	if len(sections.Skills) > 0 {
		names := make([]string, 0, len(sections.Skills))
		for _, s := range sections.Skills {
			names = append(names, strings.ToLower(s.Name))
		}
		fmt.Fprintf(&context, "Current skills: %s\n", strings.Join(names, ", "))
	}

	candidateContext := context.String()
	if candidateContext == "" {
		candidateContext = "Young candidate looking for a first job"
	}

	return fmt.Sprintf(`%s

TASK: Suggest 5 relevant skills for this candidate to add to their resume.

CANDIDATE CONTEXT:
%s

REQUIREMENTS:
- Only suggest skills NOT already in the current list
- Include a mix of technical and soft skills
- Focus on skills valued for entry-level positions
- Be specific (e.g. "Intermediate Excel" instead of "computers")

Reply in JSON format like this:
[
  {"name": "Skill Name", "category": "technical|soft|language|tool", "reason": "Brief reason"}
]

Only the JSON, no explanation.`, systemContext, candidateContext)
}

// buildAnalyzePrompt assembles the prompt for a full resume review. The model
// replies with a JSON object of strengths, improvements, tips, and feedback.
func buildAnalyzePrompt(sections types.ResumeSections) string {
	orBlank := func(s string) string {
		if s == "" {
			return "Not provided"
		}
		return s
	}

	location := "Not provided"
	if sections.PersonalData.City != "" && sections.PersonalData.State != "" {
		location = fmt.Sprintf("%s - %s", sections.PersonalData.City, sections.PersonalData.State)
	}

	educationList := "No education entries"
	if len(sections.Education) > 0 {
		lines := make([]string, 0, len(sections.Education))
		for _, edu := range sections.Education {
			lines = append(lines, fmt.Sprintf("- %s at %s", edu.Course, edu.Institution))
		}
		educationList = strings.Join(lines, "\n")
	}

	experienceList := "No experience entries"
	if len(sections.Experiences) > 0 {
		lines := make([]string, 0, len(sections.Experiences))
		for _, exp := range sections.Experiences {
			line := "- " + exp.Title
			if exp.Company != "" {
				line += " at " + exp.Company
			}
			lines = append(lines, line)
		}
		experienceList = strings.Join(lines, "\n")
	}

	skillList := "No skills listed"
	if len(sections.Skills) > 0 {
		names := make([]string, 0, len(sections.Skills))
		for _, s := range sections.Skills {
			names = append(names, s.Name)
		}
		skillList = strings.Join(names, ", ")
	}

	resumeContent := fmt.Sprintf(`PERSONAL DATA:
- Name: %s
- Email: %s
- Phone: %s
- Location: %s
- LinkedIn: %s

OBJECTIVE:
%s

EDUCATION (%d):
%s

EXPERIENCE (%d):
%s

SKILLS (%d):
%s`,
		orBlank(sections.PersonalData.FullName),
		orBlank(sections.PersonalData.Email),
		orBlank(sections.PersonalData.Phone),
		location,
		orBlank(sections.PersonalData.LinkedIn),
		orBlank(sections.Objective.Text),
		len(sections.Education), educationList,
		len(sections.Experiences), experienceList,
		len(sections.Skills), skillList)

	return fmt.Sprintf(`%s

TASK: Review this resume from a young candidate looking for a first job and give constructive feedback.

%s

REQUIREMENTS:
- Be encouraging but honest
- Focus on practical improvements
- Remember this is an entry-level candidate
- Give concrete, actionable tips

Reply in JSON format like this:
{
  "strengths": ["Strength 1", "Strength 2", "Strength 3"],
  "improvements": ["Improvement 1", "Improvement 2", "Improvement 3"],
  "tips": ["Practical tip 1", "Practical tip 2"],
  "overallFeedback": "Encouraging overall feedback in 2-3 sentences"
}

Only the JSON, no explanation.`, systemContext, resumeContent)
}

// buildCoverLetterPrompt assembles the prompt for a tailored cover letter.
func buildCoverLetterPrompt(sections types.ResumeSections, jobTitle, companyName, jobDescription string) string {
	objective := sections.Objective.Text
	if objective == "" {
		objective = "Looking for a first job"
	}

	education := "High school"
	if len(sections.Education) > 0 {
		education = sections.Education[0].Course
	}

	experience := "No prior experience"
	if len(sections.Experiences) > 0 {
		titles := make([]string, 0, len(sections.Experiences))
		for _, exp := range sections.Experiences {
			titles = append(titles, exp.Title)
		}
		experience = strings.Join(titles, ", ")
	}

	skillNames := make([]string, 0, 5)
	for _, s := range sections.Skills {
		skillNames = append(skillNames, s.Name)
		if len(skillNames) == 5 {
			break
		}
	}

	descriptionLine := ""
	if jobDescription != "" {
		descriptionLine = fmt.Sprintf("- Description: %s\n", jobDescription)
	}

	return fmt.Sprintf(`%s

TASK: Write a professional cover letter for this application.

CANDIDATE:
- Name: %s
- Objective: %s
- Education: %s
- Experience: %s
- Skills: %s

POSITION:
- Title: %s
- Company: %s
%s
REQUIREMENTS:
- Between 150 and 250 words
- Professional but authentic tone
- Show enthusiasm for the opportunity
- Connect skills and experience to the position
- If there is no experience, focus on potential and willingness to learn
- Structure: greeting, introduction, body, closing
- Do NOT use "To whom it may concern" - address the %s recruiting team directly

Reply ONLY with the letter, no explanation.`,
		systemContext,
		sections.PersonalData.FullName,
		objective,
		education,
		experience,
		strings.Join(skillNames, ", "),
		jobTitle,
		companyName,
		descriptionLine,
		companyName)
}
