package services

import "strings"

const cvEnhancementTemplate = `
You are an expert CV/resume optimization assistant. Your task is to enhance the given CV 
to better match the job description by:

1. Identifying key skills, technologies, and qualifications from the job description
2. Highlighting relevant experience in the CV that matches these requirements
3. Adding appropriate keywords from the job description to the CV
4. Improving the formatting and structure to make the CV more readable
5. Making sure the enhanced CV maintains truthfulness and doesn't fabricate experience
6. Introdction paragraph is must
7. Please use some mixed color, and font for headers and contents.
8. Use bullet points for key skills which is matching with job description
9. Maximum 2 pages CV

Job Description:
{job_description}

Original CV:
{cv}

Please provide the enhanced CV in clean HTML format that's ready to be rendered and converted to PDF.
Focus on professional formatting with appropriate headers, bullet points, and emphasis on key skills.
`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCVEnhancementPrompt creates the prompt for CV enhancement.
// Inputs are inserted as-is in a single pass, so placeholder text inside them stays literal.
func (pb *PromptBuilder) BuildCVEnhancementPrompt(jobDescription, cv string) string {
	return strings.NewReplacer(
		"{job_description}", jobDescription,
		"{cv}", cv,
	).Replace(cvEnhancementTemplate)
}
