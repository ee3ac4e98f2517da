package analyzer

import (
	"fmt"
	"strings"

	"arigatoo-utils/pkg/models"
	"arigatoo-utils/pkg/utils"
)

// promptTextLimit caps how much raw text from each document is embedded in
// the prompt
const promptTextLimit = 2000

const analysisSystemPrompt = "You are an expert career advisor analyzing resumes against job descriptions. Respond in JSON format."

// buildAnalysisPrompt builds the prompt pair for a compatibility analysis.
// The user prompt embeds both documents' key fields plus a strict JSON
// response schema so the reply can be parsed into an AnalysisResult.
func buildAnalysisPrompt(resume *models.ParsedResume, job *models.JobDescription) (systemPrompt, userPrompt string) {
	userPrompt = fmt.Sprintf(`Analyze this resume against the job description and provide a detailed assessment.

RESUME:
Name: %s
Skills: %s
Keywords: %s

Full Text:
%s

JOB DESCRIPTION:
Title: %s
Company: %s
Required Skills: %s
Requirements: %s

Full Text:
%s

Respond in JSON format with:
{
  "overallScore": <0-100>,
  "skillsScore": <0-100>,
  "experienceScore": <0-100>,
  "keywordsScore": <0-100>,
  "matchedKeywords": ["keyword1", "keyword2"],
  "missingKeywords": ["keyword1", "keyword2"],
  "suggestions": [
    {
      "category": "skills|experience|keywords|formatting|other",
      "priority": "high|medium|low",
      "title": "Short title",
      "description": "Detailed suggestion",
      "action": "Specific action to take"
    }
  ]
}`,
		utils.GetStringOrDefault(resume.Name, "Not provided"),
		joinOrDefault(resume.Skills, "Not extracted"),
		joinOrDefault(resume.Keywords, "Not extracted"),
		utils.GetStringOrDefault(utils.Truncate(resume.RawText, promptTextLimit), "No text provided"),
		utils.GetStringOrDefault(job.Title, "Not provided"),
		utils.GetStringOrDefault(job.Company, "Not provided"),
		joinOrDefault(job.Skills, "Not extracted"),
		joinSemicolonOrDefault(job.Requirements, "Not extracted"),
		utils.GetStringOrDefault(utils.Truncate(job.RawText, promptTextLimit), "No text provided"),
	)

	return analysisSystemPrompt, userPrompt
}

func joinOrDefault(items []string, defaultValue string) string {
	if len(items) == 0 {
		return defaultValue
	}
	return strings.Join(items, ", ")
}

func joinSemicolonOrDefault(items []string, defaultValue string) string {
	if len(items) == 0 {
		return defaultValue
	}
	return strings.Join(items, "; ")
}
