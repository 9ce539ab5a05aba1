// services/chat_suggestions.go - Canned follow-up prompts
package services

const maxSuggestions = 5

// QuickSuggestions derives a short list of example questions from the
// snapshot: three canonical prompts, plus one naming the first club and one
// naming the first event when they exist. Deterministic, no state.
func QuickSuggestions(snap Snapshot) []string {
	suggestions := []string{
		"What clubs are recruiting?",
		"Show me upcoming events",
		"Tell me about technical clubs",
	}

	if len(snap.Clubs) > 0 {
		suggestions = append(suggestions, "Tell me about "+snap.Clubs[0].Name)
	}
	if len(snap.Events) > 0 {
		suggestions = append(suggestions, "When is "+snap.Events[0].Title+"?")
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
