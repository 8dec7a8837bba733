package llm

import "fmt"

// Prompt builders are pure functions: output is determined solely by the
// inputs, no state or network access.

const improveTemplate = `You are a semiconductor equipment support expert. The following solution was submitted by a knowledgeable Equipment Engineer and is correct.

Your task is to refine this solution to enhance:
- Clarity and readability without changing the technical meaning.
- Professional tone suitable for an engineering audience.
- Precise and consistent use of technical terminology.
- Formatting that makes it easy to understand and reference, such as bullet points or numbered steps where appropriate.

Solution:
%q

Provide the improved solution only, preserving the original intent and correctness.`

const answerWithMatchTemplate = `You are an AI assistant specializing in semiconductor equipment troubleshooting. The user asked:

%q

A correct solution was previously submitted by an Equipment Engineer:
%q

Rephrase and expand this solution to improve clarity, provide additional context, and ensure it's technically accurate and professional. Your response should be helpful to other equipment or process engineers. Use Markdown formatting:
- **bold** for key technical terms
- *italics* for emphasis
- Bullet points for steps or structured lists where appropriate.`

const answerDirectTemplate = `You are an expert in semiconductor troubleshooting. Respond clearly and concisely to the following query:

%q

Solution must be step by step.
Use Markdown formatting:
- **bold** for technical terms
- *italics* for emphasis
- Bullet points for clear step-by-step guidance`

// BuildImprovePrompt embeds a user-submitted solution into the refinement
// template.
func BuildImprovePrompt(solution string) string {
	return fmt.Sprintf(improveTemplate, solution)
}

// BuildAnswerPrompt builds the main answer prompt. When matchedSolution is
// non-empty the prompt asks for a rephrase/expansion of that solution;
// otherwise it asks for a direct step-by-step answer.
func BuildAnswerPrompt(query, matchedSolution string) string {
	if matchedSolution != "" {
		return fmt.Sprintf(answerWithMatchTemplate, query, matchedSolution)
	}
	return fmt.Sprintf(answerDirectTemplate, query)
}
