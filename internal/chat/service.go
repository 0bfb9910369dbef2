package chat

import (
	"context"
	"time"

	"clinicbot/internal/booking"
	"clinicbot/internal/intent"
	"clinicbot/internal/observability/metrics"
	"clinicbot/pkg/logging"
)

// Actions a chat turn can ask the UI to take, mirroring the web client's
// contract: show the booking form, or show the appointment list.
const (
	ActionShowForm         = "show_form"
	ActionShowAppointments = "show_appointments"
)

// Turn is the result of handling one user message.
type Turn struct {
	Intent intent.Intent   `json:"intent"`
	Fields *booking.Fields `json:"fields,omitempty"`
	Reply  string          `json:"reply"`
	Action string          `json:"action,omitempty"`
}

// Service runs a chat turn: classify the message, extract booking fields
// when the intent is booking, and record the exchange in session history.
type Service struct {
	parser  *booking.Parser
	history *HistoryStore
	logger  *logging.Logger
	metrics *metrics.ChatMetrics
	now     func() time.Time
}

// NewService creates a chat service. history may be nil, in which case
// transcripts are not kept.
func NewService(parser *booking.Parser, history *HistoryStore, logger *logging.Logger, m *metrics.ChatMetrics) *Service {
	if parser == nil {
		parser = booking.NewParser()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		parser:  parser,
		history: history,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// HandleMessage classifies one message and builds the bot's turn. History
// failures are logged and swallowed: a chat turn never fails because the
// transcript store is down.
func (s *Service) HandleMessage(ctx context.Context, sessionID, text string) Turn {
	detected := intent.Detect(text)
	s.metrics.ObserveTurn(string(detected))

	turn := Turn{Intent: detected}
	switch detected {
	case intent.IntentBooking:
		fields := s.parser.ParseCommand(text)
		s.metrics.ObserveExtraction("doctor", fields.Doctor != "")
		s.metrics.ObserveExtraction("date", fields.Date != "")
		s.metrics.ObserveExtraction("time", fields.Time != "")
		turn.Fields = &fields
		turn.Action = ActionShowForm
		turn.Reply = "Let's get you booked in."
	case intent.IntentViewAppointment:
		turn.Action = ActionShowAppointments
		turn.Reply = "Here are your booked appointments."
	case intent.IntentCancellation:
		turn.Reply = "I can help with that. Which appointment would you like to cancel?"
	case intent.IntentGreeting:
		turn.Reply = "Hello! I can help you book, view, or cancel an appointment."
	default:
		turn.Reply = "Sorry, I didn't catch that. You can ask me to book, view, or cancel an appointment."
	}

	s.record(ctx, sessionID, text, turn.Reply)
	return turn
}

// History returns the transcript for a session; store failures degrade to
// an empty transcript.
func (s *Service) History(ctx context.Context, sessionID string) []Message {
	if s.history == nil || sessionID == "" {
		return nil
	}
	history, err := s.history.Load(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to load chat history", "error", err, "session_id", sessionID)
		return nil
	}
	return history
}

func (s *Service) record(ctx context.Context, sessionID, userText, reply string) {
	if s.history == nil || sessionID == "" {
		return
	}
	at := s.now()
	err := s.history.Append(ctx, sessionID,
		Message{Role: RoleUser, Content: userText, At: at},
		Message{Role: RoleBot, Content: reply, At: at},
	)
	if err != nil {
		s.logger.Error("failed to record chat history", "error", err, "session_id", sessionID)
	}
}
