package assistant

// These pass data to and from the /api/chat endpoint.

// ChatRequest is what the widget posts.
type ChatRequest struct {
	// Message is the user's text.
	Message string `json:"message"`
}

// ChatReply is the success payload.
type ChatReply struct {
	// Response is the generated text.
	Response string `json:"response"`
	// Model names the responder that produced it.
	Model string `json:"model"`
}
