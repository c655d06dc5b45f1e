package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"chat-widget/internal/assistant"
	"chat-widget/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// main is the entry point for the stub chat endpoint.
// It answers POST /api/chat so the widget can be run without a model server.
func main() {
	cfg := config.Load()

	port := flag.String("port", cfg.Port, "Port to listen on")
	model := flag.String("model", cfg.StubModel, "Model name reported in replies")
	flag.Parse()

	// We'll use the echo responder; a real model client slots in here.
	responder := assistant.NewEchoResponder(*model)

	// Inject the responder into the service
	chatService := assistant.NewService(responder)

	// Inject service into the handler
	chatHandler := assistant.NewHandler(chatService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ChatStub OK"))
	})

	// Register all the API routes from the handler
	chatHandler.RegisterRoutes(r)

	log.Printf("ChatStub starting on port %s", *port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", *port), r); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
