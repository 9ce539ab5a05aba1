// services/chat_prompt.go - System prompt construction
package services

import (
	"fmt"
	"strings"
)

// At most this many clubs/events are rendered verbatim into the prompt to
// keep it inside the model's context budget. The aggregate counts still
// cover the whole catalogue.
const (
	maxPromptClubs  = 10
	maxPromptEvents = 10
)

// BuildSystemPrompt maps a snapshot to the system instruction. Pure and
// deterministic; an empty snapshot produces a well-formed prompt with zero
// counts and no list lines.
func BuildSystemPrompt(snap Snapshot) string {
	var b strings.Builder

	b.WriteString("You are a helpful assistant for the campus Student Club Portal.\n")
	b.WriteString("You help students find information about clubs, events, and campus activities.\n\n")
	b.WriteString("CURRENT CAMPUS INFORMATION:\n\n")

	fmt.Fprintf(&b, "CLUBS (%d total):\n", snap.Stats.TotalClubs)
	clubs := snap.Clubs
	if len(clubs) > maxPromptClubs {
		clubs = clubs[:maxPromptClubs]
	}
	for _, club := range clubs {
		status := "Not recruiting"
		if club.IsRecruiting {
			status = "Recruiting"
		}
		fmt.Fprintf(&b, "- %s: %s (%s, %d members)", club.Name, club.Description, status, club.MembersCount)
		if club.ApplicationLink != "" {
			fmt.Fprintf(&b, ", apply at %s", club.ApplicationLink)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nUPCOMING EVENTS (%d total):\n", snap.Stats.TotalEvents)
	events := snap.Events
	if len(events) > maxPromptEvents {
		events = events[:maxPromptEvents]
	}
	for _, event := range events {
		fmt.Fprintf(&b, "- %s (%s): %s on %s at %s in %s, organized by %s\n",
			event.Title, event.Category, event.Description,
			event.Date, event.Time, event.Location, event.Organizer)
	}

	b.WriteString("\nSTATISTICS:\n")
	fmt.Fprintf(&b, "- Total Clubs: %d\n", snap.Stats.TotalClubs)
	fmt.Fprintf(&b, "- Total Members: %d\n", snap.Stats.TotalMembers)
	fmt.Fprintf(&b, "- Recruiting Clubs: %d\n", snap.Stats.RecruitingClubs)
	fmt.Fprintf(&b, "- Total Events: %d\n", snap.Stats.TotalEvents)

	b.WriteString(`
Guidelines:
1. Be friendly, concise, and helpful
2. Provide specific information from the data above
3. If asked about a club or event not in the data, say you don't have that information
4. Encourage students to join clubs and attend events
5. Keep responses under 200 words
6. Use emojis occasionally to be friendly 😊

Answer the student's question based on the information provided above.`)

	return b.String()
}
