package chat

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// KeyEnter is the key name that submits the input.
	KeyEnter = "enter"

	// ErrorMarker prefixes every error shown as a bot message.
	ErrorMarker = "❌ Error: "
	// ConnectFailureText is shown when the request never completed.
	ConnectFailureText = ErrorMarker + "Failed to connect to the server"
)

// ErrMissingElement is returned by NewWidget when a UI element is nil.
var ErrMissingElement = errors.New("missing ui element")

func errMissingElement(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingElement, name)
}

// Widget renders the conversation and runs one request per user message.
//
// It models a single UI thread: every method except Pending.Do must be
// called from the same goroutine, which is the front end's event loop.
type Widget struct {
	el     Elements
	client ChatClient
	logger *zap.Logger
	now    func() time.Time

	loading  bool
	messages []Message
}

// NewWidget binds a widget to its UI elements and chat client.
// A nil logger is replaced with a no-op one.
func NewWidget(el Elements, client ChatClient, logger *zap.Logger) (*Widget, error) {
	if err := el.validate(); err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("chat client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Widget{
		el:     el,
		client: client,
		logger: logger,
		now:    time.Now,
	}, nil
}

// AddMessage appends a message to the panel and scrolls to it.
func (w *Widget) AddMessage(text string, isUser bool) {
	origin := OriginBot
	if isUser {
		origin = OriginUser
	}
	msg := Message{
		ID:        uuid.New(),
		Text:      text,
		Origin:    origin,
		Timestamp: w.now(),
	}
	w.messages = append(w.messages, msg)
	w.el.Panel.Append(msg)
	w.el.Panel.ScrollToBottom()
}

// ShowLoading toggles the loading indicator and locks or unlocks the
// input and send controls with it.
func (w *Widget) ShowLoading(show bool) {
	w.loading = show
	w.el.Loading.SetVisible(show)
	w.el.Send.SetDisabled(show)
	w.el.Input.SetDisabled(show)
}

// Loading reports whether a request is outstanding.
func (w *Widget) Loading() bool {
	return w.loading
}

// Messages returns a copy of everything rendered so far, oldest first.
func (w *Widget) Messages() []Message {
	return slices.Clone(w.messages)
}

// OnKeyPress is the input's key handler. Only Enter does anything.
func (w *Widget) OnKeyPress(ctx context.Context, key string) {
	if key == KeyEnter {
		w.SendMessage(ctx)
	}
}

// SendMessage runs a whole interaction cycle on the calling goroutine,
// blocking while the request is outstanding.
func (w *Widget) SendMessage(ctx context.Context) {
	p := w.StartSend()
	if p == nil {
		return
	}
	defer w.ShowLoading(false)
	w.render(p.Do(ctx))
}

// Pending is a send that has been accepted and is waiting on the network.
type Pending struct {
	// Message is the trimmed text that will be posted.
	Message string

	client ChatClient
}

// Reply is the outcome of a Pending request.
type Reply struct {
	Response *ChatResponse
	Err      error
}

// Do performs the request. It does not touch the UI, so an event loop
// can run it on another goroutine and hand the Reply back to Complete.
func (p *Pending) Do(ctx context.Context) Reply {
	resp, err := p.client.Send(ctx, p.Message)
	return Reply{Response: resp, Err: err}
}

// StartSend reads and trims the input, renders it as a user message,
// clears the input and engages loading. It returns nil, with nothing
// changed, when the input is blank or a request is already in flight.
func (w *Widget) StartSend() *Pending {
	if w.loading {
		w.logger.Debug("send ignored, request already in flight")
		return nil
	}
	text := strings.TrimSpace(w.el.Input.Value())
	if text == "" {
		return nil
	}

	w.AddMessage(text, true)
	w.el.Input.SetValue("")
	w.ShowLoading(true)

	w.logger.Debug("sending chat message", zap.Int("length", len(text)))
	return &Pending{Message: text, client: w.client}
}

// Complete renders the reply for the in-flight request and always
// releases the loading state.
func (w *Widget) Complete(r Reply) {
	defer w.ShowLoading(false)
	w.render(r)
}

func (w *Widget) render(r Reply) {
	switch {
	case r.Err != nil:
		w.logger.Warn("chat request failed", zap.Error(r.Err))
		w.AddMessage(ConnectFailureText, false)
	case r.Response == nil:
		w.logger.Warn("chat client returned no response and no error")
		w.AddMessage(ConnectFailureText, false)
	case r.Response.Response != "":
		w.AddMessage(r.Response.Response, false)
	case r.Response.Error != "":
		w.logger.Info("chat endpoint reported an error", zap.String("error", r.Response.Error))
		w.AddMessage(ErrorMarker+r.Response.Error, false)
	default:
		w.logger.Warn("chat response carried neither a response nor an error")
	}
}
