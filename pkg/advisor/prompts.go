package advisor

import (
	_ "embed"
)

//go:embed prompts/advisor_prompt.md
var systemPrompt string

// GetSystemPrompt returns the system prompt used for remediation advice
func GetSystemPrompt() string {
	return systemPrompt
}
