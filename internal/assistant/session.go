package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/DanielWang2002/KanseiTabi/internal/model"
)

// User-facing fixed strings. The transport error behind a failure is never
// surfaced structurally, only as ErrorFallback text in the transcript.
const (
	Greeting           = "こんにちは (Konnichiwa)! I am your AI travel companion. Ask me for translations, restaurant ideas, or etiquette tips!"
	EmptyReplyFallback = "Sorry, I couldn't understand that."
	ErrorFallback      = "申し訳ありません (I'm sorry), I'm having trouble connecting to the travel network right now."
)

// Turn is one role/text pair of conversation history sent to the service.
type Turn struct {
	Role model.Role
	Text string
}

// Completer is the assistant service boundary: given the prior transcript
// and the new user message, return the reply text. Implementations own
// host, auth and transport; the session only sees text or an error.
type Completer interface {
	Complete(ctx context.Context, history []Turn, message string) (string, error)
}

// Reply is the outcome of one request, already mapped to transcript text.
type Reply struct {
	Text string
}

// Session is the conversation state machine. It is either idle or has
// exactly one request in flight; Submit while busy is a no-op. The
// transcript lives only in memory and always starts with the greeting.
type Session struct {
	completer Completer
	timeout   time.Duration

	messages []model.ChatMessage
	inflight bool
	cancel   context.CancelFunc
}

// NewSession returns an idle session seeded with the greeting message.
// A non-positive timeout disables the request deadline.
func NewSession(c Completer, timeout time.Duration) *Session {
	return &Session{
		completer: c,
		timeout:   timeout,
		messages: []model.ChatMessage{
			{ID: "welcome", Role: model.RoleModel, Text: Greeting},
		},
	}
}

// Messages returns the transcript in order.
func (s *Session) Messages() []model.ChatMessage { return s.messages }

// Busy reports whether a request is in flight (input should be disabled).
func (s *Session) Busy() bool { return s.inflight }

// Submit appends the user message and opens a request carrying the full
// prior transcript. It returns false without side effects when the text is
// blank or another request is already in flight. The returned call performs
// the exchange (it blocks, so run it off the UI loop) and its Reply must be
// handed back to Finish.
func (s *Session) Submit(text string) (func() Reply, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.inflight {
		return nil, false
	}

	history := lo.Map(s.messages, func(m model.ChatMessage, _ int) Turn {
		return Turn{Role: m.Role, Text: m.Text}
	})
	s.messages = append(s.messages, model.ChatMessage{
		ID:   uuid.NewString(),
		Role: model.RoleUser,
		Text: text,
	})
	s.inflight = true

	ctx := context.Background()
	cancel := context.CancelFunc(func() {})
	if s.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
	}
	s.cancel = cancel

	completer := s.completer
	return func() Reply {
		defer cancel()
		reply, err := completer.Complete(ctx, history, text)
		if err != nil {
			return Reply{Text: ErrorFallback}
		}
		if strings.TrimSpace(reply) == "" {
			return Reply{Text: EmptyReplyFallback}
		}
		return Reply{Text: reply}
	}, true
}

// Finish appends the model reply and returns the session to idle. Prior
// transcript is always preserved, including on the failure path.
func (s *Session) Finish(r Reply) {
	s.messages = append(s.messages, model.ChatMessage{
		ID:   uuid.NewString(),
		Role: model.RoleModel,
		Text: r.Text,
	})
	s.inflight = false
	s.cancel = nil
}

// Cancel aborts the in-flight request, if any. The aborted call still
// resolves (to the error fallback), so the Submit/Finish pairing holds.
func (s *Session) Cancel() {
	if s.cancel != nil {
		s.cancel()
	}
}
