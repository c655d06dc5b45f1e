package assistant

//go:generate mockgen -destination=./clients_mock_test.go -package=assistant -source=clients.go

import (
	"context"
	"fmt"
	"strings"
)

// Responder defines the contract for whatever generates the reply text.
type Responder interface {
	// Generate takes a prompt and returns the model's continuation.
	Generate(ctx context.Context, prompt string) (string, error)
	// Model is the name reported back to the client.
	Model() string
}

// echoResponder is a fake Responder that parrots the prompt back.
type echoResponder struct {
	name string
}

// NewEchoResponder creates a fake responder.
func NewEchoResponder(name string) Responder {
	if name == "" {
		name = "echo"
	}
	return &echoResponder{name: name}
}

// Generate behaves like a causal language model: the output starts with
// the prompt and continues from there.
func (e *echoResponder) Generate(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	return fmt.Sprintf("%s ... you said %q.", prompt, prompt), nil
}

func (e *echoResponder) Model() string {
	return e.name
}
