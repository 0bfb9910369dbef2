package intent

import "strings"

// Intent labels the purpose of a user message.
type Intent string

const (
	IntentBooking         Intent = "booking"
	IntentCancellation    Intent = "cancellation"
	IntentViewAppointment Intent = "view_appointment"
	IntentGreeting        Intent = "greeting"
	IntentFallback        Intent = "fallback"
)

// intentRule pairs a predicate with the intent it yields. Rules are
// evaluated in order and the first match wins, so precedence between
// overlapping keyword sets stays explicit.
type intentRule struct {
	matches func(string) bool
	intent  Intent
}

var viewKeywords = []string{
	"view", "show", "see", "my appointments", "already booked",
	"appointments list", "check appointment", "current appointment",
}

var bookingKeywords = []string{
	"book", "appointment", "slot", "schedule", "reserve", "meeting", "consultation",
}

var cancellationKeywords = []string{
	"cancel", "remove", "delete", "rescind", "abort", "stop appointment",
}

var greetingKeywords = []string{
	"hi", "hello", "hey", "good morning", "good evening", "greetings",
}

// rules is ordered: the view guard runs before booking so messages like
// "show appointment" classify as view_appointment even though they also
// contain the booking keyword "appointment". Cancellation likewise runs
// before booking so "cancel my meeting" is not swallowed by the booking
// keyword "meeting".
var rules = []intentRule{
	{matches: isViewRequest, intent: IntentViewAppointment},
	{matches: containsAny(cancellationKeywords), intent: IntentCancellation},
	{matches: containsAny(bookingKeywords), intent: IntentBooking},
	{matches: containsAny(greetingKeywords), intent: IntentGreeting},
}

// Detect classifies a free-text message by case-insensitive keyword
// containment. It is total: unrecognized input yields IntentFallback.
func Detect(message string) Intent {
	msg := strings.ToLower(message)
	for _, rule := range rules {
		if rule.matches(msg) {
			return rule.intent
		}
	}
	return IntentFallback
}

// isViewRequest requires both a view keyword and a mention of
// "appointment"; a bare "show" falls through to the later rules.
func isViewRequest(msg string) bool {
	if !containsAny(viewKeywords)(msg) {
		return false
	}
	return strings.Contains(msg, "appointment") || strings.Contains(msg, "appointments")
}

func containsAny(keywords []string) func(string) bool {
	return func(msg string) bool {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				return true
			}
		}
		return false
	}
}
