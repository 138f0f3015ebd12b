package services

import (
	"strings"
	"testing"
)

var templateInstructions = []string{
	"You are an expert CV/resume optimization assistant.",
	"1. Identifying key skills, technologies, and qualifications from the job description",
	"2. Highlighting relevant experience in the CV that matches these requirements",
	"3. Adding appropriate keywords from the job description to the CV",
	"4. Improving the formatting and structure to make the CV more readable",
	"5. Making sure the enhanced CV maintains truthfulness and doesn't fabricate experience",
	"6. Introdction paragraph is must",
	"7. Please use some mixed color, and font for headers and contents.",
	"8. Use bullet points for key skills which is matching with job description",
	"9. Maximum 2 pages CV",
	"Please provide the enhanced CV in clean HTML format that's ready to be rendered and converted to PDF.",
	"Focus on professional formatting with appropriate headers, bullet points, and emphasis on key skills.",
}

func TestBuildCVEnhancementPrompt_ContainsInputsAndInstructions(t *testing.T) {
	pb := NewPromptBuilder()
	job := "Python developer with AWS experience"
	cv := "Jane Doe, software engineer, 5 years Java"

	got := pb.BuildCVEnhancementPrompt(job, cv)

	if !strings.Contains(got, "Job Description:\n"+job+"\n\nOriginal CV:\n"+cv+"\n\n") {
		t.Errorf("inputs not at their slots:\n%s", got)
	}
	for _, line := range templateInstructions {
		if !strings.Contains(got, line) {
			t.Errorf("prompt missing instruction %q", line)
		}
	}
	if strings.Contains(got, "{job_description}") || strings.Contains(got, "{cv}") {
		t.Error("prompt still contains placeholders")
	}
}

func TestBuildCVEnhancementPrompt_EmptyInputs(t *testing.T) {
	got := NewPromptBuilder().BuildCVEnhancementPrompt("", "")

	if !strings.Contains(got, "Job Description:\n\n\nOriginal CV:\n\n\n") {
		t.Errorf("unexpected layout for empty inputs:\n%s", got)
	}
}

func TestBuildCVEnhancementPrompt_SpecialCharactersAreLiteral(t *testing.T) {
	job := "Needs {cv} and {{braces}} and %s %d"
	cv := "<b>Bold</b> {job_description} $1 \\n"

	got := NewPromptBuilder().BuildCVEnhancementPrompt(job, cv)

	if !strings.Contains(got, "Job Description:\n"+job+"\n") {
		t.Errorf("job description not inserted literally:\n%s", got)
	}
	if !strings.Contains(got, "Original CV:\n"+cv+"\n") {
		t.Errorf("cv not inserted literally:\n%s", got)
	}
}

func TestBuildCVEnhancementPrompt_MatchesTemplateExactly(t *testing.T) {
	got := NewPromptBuilder().BuildCVEnhancementPrompt("JD", "CV")

	if !strings.HasPrefix(got, "\nYou are an expert CV/resume optimization assistant. Your task is to enhance the given CV \nto better match") {
		t.Errorf("unexpected prompt prefix:\n%q", got[:120])
	}
	if !strings.HasSuffix(got, "emphasis on key skills.\n") {
		t.Errorf("unexpected prompt suffix")
	}
	if want := len(cvEnhancementTemplate) - len("{job_description}") - len("{cv}") + 4; len(got) != want {
		t.Errorf("len = %d, want %d", len(got), want)
	}
}
