package assistant

//go:generate mockgen -destination=./service_mock_test.go -package=assistant -source=service.go Service

import (
	"context"
	"fmt"
	"strings"
)

// fallbackReply is sent when the responder produced nothing beyond the prompt.
const fallbackReply = "I generated a response!"

// Service defines the business logic behind /api/chat.
type Service interface {
	// Reply generates the answer to a single user message.
	Reply(ctx context.Context, message string) (*ChatReply, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	responder Responder
}

// NewService is the constructor for the chat endpoint service.
func NewService(responder Responder) Service {
	return &service{
		responder: responder,
	}
}

// Reply implements the Service interface.
func (s *service) Reply(ctx context.Context, message string) (*ChatReply, error) {
	text, err := s.responder.Generate(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("responder failed: %w", err)
	}

	// Generative models echo the prompt; only the continuation is the reply.
	if strings.HasPrefix(text, message) {
		text = strings.TrimSpace(text[len(message):])
	}
	if text == "" {
		text = fallbackReply
	}

	return &ChatReply{Response: text, Model: s.responder.Model()}, nil
}
