package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// chatRouter is the conversational core behind the /chat endpoints.
type chatRouter interface {
	Handle(ctx context.Context, sessionID, query string) (string, error)
	OneShot(ctx context.Context, query string) (string, error)
}

// indexProxy relays the SET realtime endpoint.
type indexProxy interface {
	Realtime(ctx context.Context) (body []byte, status int, err error)
}

type server struct {
	chat  chatRouter
	index indexProxy
}

func newServer(chat chatRouter, index indexProxy) *server {
	return &server{chat: chat, index: index}
}

func routes(s *server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors)
	r.Use(limitBody)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.handleWelcome)
	r.Get("/chat", s.handleChatGet)
	r.Post("/chat", s.handleChatPost)
	r.Get("/realtime_index", s.handleRealtimeIndex)
	return r
}

// chatError is the body of a logical chat failure. The /chat endpoints
// answer 200 even then; the error travels in the body, not the status code.
type chatError struct {
	Error string `json:"error"`
}

// proxyError relays a non-200 upstream answer from the SET endpoint.
type proxyError struct {
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func (s *server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Thai Stock Market Chatbot (Gemini)!",
	})
}

func (s *server) handleChatGet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if strings.TrimSpace(query) == "" {
		http.Error(w, "missing query param", http.StatusBadRequest)
		return
	}

	text, err := s.chat.OneShot(r.Context(), query)
	if err != nil {
		writeJSON(w, http.StatusOK, chatError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": text})
}

type chatPostBody struct {
	Query string `json:"query"`
}

func (s *server) handleChatPost(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		// Clients that do not manage their own ids get a fresh one back
		// in the response and can keep sending it.
		sessionID = uuid.NewString()
	}

	var b chatPostBody
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(b.Query) == "" {
		http.Error(w, "query cannot be empty", http.StatusBadRequest)
		return
	}

	text, err := s.chat.Handle(r.Context(), sessionID, b.Query)
	if err != nil {
		writeJSON(w, http.StatusOK, chatError{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"session_id": sessionID,
		"response":   text,
	})
}

func (s *server) handleRealtimeIndex(w http.ResponseWriter, r *http.Request) {
	body, status, err := s.index.Realtime(r.Context())
	if err != nil {
		log.Printf("realtime_index: %v", err)
		http.Error(w, "upstream request failed", http.StatusBadGateway)
		return
	}
	if status == http.StatusOK {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
		return
	}
	writeJSON(w, http.StatusOK, proxyError{Error: status, Message: string(body)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
