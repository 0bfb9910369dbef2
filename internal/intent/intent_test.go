package intent

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		{"book a slot", IntentBooking},
		{"I need an appointment with Dr Smith", IntentBooking},
		{"can I reserve a consultation", IntentBooking},
		{"Schedule me for tomorrow", IntentBooking},
		{"cancel my meeting", IntentCancellation},
		{"please remove my booking", IntentCancellation},
		{"delete it", IntentCancellation},
		{"hello", IntentGreeting},
		{"Good morning!", IntentGreeting},
		{"hey there", IntentGreeting},
		{"view my appointments", IntentViewAppointment},
		{"check appointment status", IntentViewAppointment},
		{"what have I already booked? any appointments?", IntentViewAppointment},
		{"xyz", IntentFallback},
		{"what's the weather like", IntentFallback},
		{"", IntentFallback},
	}

	for _, tt := range tests {
		if got := Detect(tt.message); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.message, got, tt.want)
		}
	}
}

// "show appointment" matches both the view guard and the booking keyword
// "appointment"; the view rule is evaluated first and must win.
func TestDetectViewBeforeBooking(t *testing.T) {
	if got := Detect("show appointment"); got != IntentViewAppointment {
		t.Fatalf("Detect(\"show appointment\") = %q, want %q", got, IntentViewAppointment)
	}
	if got := Detect("see my appointments list"); got != IntentViewAppointment {
		t.Fatalf("got %q, want %q", got, IntentViewAppointment)
	}
}

// "cancel my meeting" contains the booking keyword "meeting"; the
// cancellation rule runs first and must win.
func TestDetectCancellationBeforeBooking(t *testing.T) {
	if got := Detect("cancel my meeting"); got != IntentCancellation {
		t.Fatalf("Detect(\"cancel my meeting\") = %q, want %q", got, IntentCancellation)
	}
	if got := Detect("abort the consultation"); got != IntentCancellation {
		t.Fatalf("got %q, want %q", got, IntentCancellation)
	}
}

// A view keyword without any mention of appointments is not a view request.
func TestDetectViewGuardNeedsAppointment(t *testing.T) {
	// "show" alone carries no appointment mention and no booking keyword
	if got := Detect("show me the menu"); got != IntentFallback {
		t.Fatalf("Detect(\"show me the menu\") = %q, want %q", got, IntentFallback)
	}
	// "see the slot" skips the view guard but hits the booking keyword "slot"
	if got := Detect("see the slot"); got != IntentBooking {
		t.Fatalf("Detect(\"see the slot\") = %q, want %q", got, IntentBooking)
	}
}

func TestDetectCaseInsensitive(t *testing.T) {
	if got := Detect("BOOK AN APPOINTMENT"); got != IntentBooking {
		t.Fatalf("got %q, want %q", got, IntentBooking)
	}
	if got := Detect("HeLLo"); got != IntentGreeting {
		t.Fatalf("got %q, want %q", got, IntentGreeting)
	}
}
