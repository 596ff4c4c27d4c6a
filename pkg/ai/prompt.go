package ai

import (
	"fmt"
	"strings"
)

// TaskSummary is the slice of an existing task shown to the oracle as
// dedup context.
type TaskSummary struct {
	Title       string
	Description string
}

const systemPromptBase = `You are a project management assistant. You read raw meeting notes and extract concrete, actionable tasks from them.

For every task you propose you MUST include these exact fields:
- "originalText": a verbatim quote of the excerpt from the notes that motivated the task
- "suggestedTask": a concise task title that starts with an action verb
- "suggestedDescription": 2-4 sentences describing what needs to be done, why, and how
- "confidenceScore": a number between 0 and 1 expressing how confident you are that this is a real task

Respond with ONLY a JSON object of the form {"suggestions": [ ... ]}. No markdown, no commentary.`

const dedupDirective = `

The project already contains existing tasks, listed in the user message. Compare every candidate task against them by semantic intent, not literal wording. Do NOT propose a task whose purpose duplicates an existing one, even if it is phrased differently.`

// BuildPrompt composes the system and user instructions for the oracle from
// meeting notes and, when supplied, the existing tasks of the owning project.
// It is a pure function of its inputs.
func BuildPrompt(notes string, existing []TaskSummary) (system, user string) {
	var sys strings.Builder
	sys.WriteString(systemPromptBase)

	var usr strings.Builder
	usr.WriteString("Meeting notes:\n\n")
	usr.WriteString(notes)

	if len(existing) == 0 {
		usr.WriteString("\n\nExtract at least 3 actionable tasks from these notes.")
		return sys.String(), usr.String()
	}

	sys.WriteString(dedupDirective)

	usr.WriteString("\n\nExisting tasks in this project:\n")
	for i, t := range existing {
		if t.Description != "" {
			usr.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, t.Title, t.Description))
		} else {
			usr.WriteString(fmt.Sprintf("%d. %s\n", i+1, t.Title))
		}
	}
	usr.WriteString("\nExtract the actionable tasks from these notes that are not already covered by the existing tasks above.")

	return sys.String(), usr.String()
}
