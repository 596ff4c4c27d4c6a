package ai

// The canned drafts served when the oracle is unconfigured or unreachable.
// They are deterministic so that persistence, review and approval flows are
// exercised identically with or without a working reasoning service.
var fallbackTitles = [3]string{
	"Create project plan document based on meeting discussion",
	"Schedule follow-up meeting to review progress",
	"Send meeting summary email to all participants",
}

var fallbackDescriptions = [3]string{
	"Draft a project plan capturing the scope, owners and milestones that were discussed. Circulate it to the attendees for review before work starts.",
	"Book a follow-up session within the next two weeks to check progress on the agreed items. Reuse the same attendee list and attach the notes.",
	"Write a short summary of the key points and decisions and email it to everyone who attended. Include any deadlines that were mentioned.",
}

var fallbackConfidences = [3]float64{0.85, 0.78, 0.92}

const fallbackExcerpt = "General meeting discussion"

// FallbackDrafts returns the three deterministic drafts derived from fixed
// character offsets into the notes text (0-100, 100-200, 200-300).
func FallbackDrafts(notes string) []Draft {
	runes := []rune(notes)
	drafts := make([]Draft, 0, 3)
	for i := 0; i < 3; i++ {
		excerpt := sliceNotes(runes, i*excerptLimit, (i+1)*excerptLimit)
		if excerpt == "" {
			excerpt = fallbackExcerpt
		}
		drafts = append(drafts, Draft{
			OriginalText:         excerpt,
			SuggestedTask:        fallbackTitles[i],
			SuggestedDescription: fallbackDescriptions[i],
			ConfidenceScore:      fallbackConfidences[i],
		})
	}
	return drafts
}

// sliceNotes cuts a character window out of the notes, never splitting a rune
func sliceNotes(notes []rune, start, end int) string {
	if start >= len(notes) {
		return ""
	}
	if end > len(notes) {
		end = len(notes)
	}
	return string(notes[start:end])
}
