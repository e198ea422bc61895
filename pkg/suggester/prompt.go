package suggester

import (
	"fmt"
	"strings"
)

const suggestionPromptTemplate = `You are a grocery shopping assistant. The user's current grocery list contains:
%s

Suggest 3 to 5 complementary grocery items that go well with this list.

Respond with ONLY a JSON array in this exact format, no other text:
[{"name": "item name", "category": "produce|dairy|meat|pantry|beverages|snacks|other", "reason": "why this fits the list", "priority": "low|medium|high", "quantity": 1, "unit": "pcs"}]

Rules:
- category MUST be one of: produce, dairy, meat, pantry, beverages, snacks, other
- priority MUST be one of: low, medium, high
- quantity is optional but if present MUST be at least 1
- do not suggest items already on the list`

func buildSuggestionPrompt(itemNames []string) string {
	if len(itemNames) == 0 {
		return fmt.Sprintf(suggestionPromptTemplate, "(empty list)")
	}

	var sb strings.Builder
	for _, name := range itemNames {
		sb.WriteString("- ")
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	return fmt.Sprintf(suggestionPromptTemplate, strings.TrimRight(sb.String(), "\n"))
}
