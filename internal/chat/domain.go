package chat

import (
	"time"

	"github.com/google/uuid"
)

// Origin says who a message came from.
type Origin string

const (
	// OriginUser is a message typed by the local user.
	OriginUser Origin = "user"
	// OriginBot is a message that came back from the server.
	OriginBot Origin = "bot"
)

// Message represents a single rendered entry in the message panel.
type Message struct {
	// ID is assigned when the message is created.
	ID uuid.UUID `json:"id"`
	// Text is what gets shown, verbatim.
	Text string `json:"text"`
	// Origin is either user or bot.
	Origin Origin `json:"origin"`
	// Timestamp is when the message was added.
	Timestamp time.Time `json:"timestamp"`
}

// IsUser reports whether the message was typed by the user.
func (m Message) IsUser() bool {
	return m.Origin == OriginUser
}

// ChatRequest is the body POSTed to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is what the chat endpoint sends back.
// The server is expected to fill in exactly one of the two fields.
type ChatResponse struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}
