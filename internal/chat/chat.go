// Package chat routes each user utterance either to a deterministic quote
// lookup or to the completion model with the session transcript as context.
package chat

import (
	"context"
	"fmt"
	"log"

	"stockchat/internal/extract"
	"stockchat/internal/session"
)

// Completer produces a text completion for a flattened prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Quoter answers a ticker symbol with user-facing text and never fails.
type Quoter interface {
	Answer(ctx context.Context, symbol string) string
}

// Router is the stateful entry point for conversational turns. All
// collaborators are injected; the router owns no global state.
type Router struct {
	completer Completer
	quoter    Quoter
	sessions  session.Store
	system    string
}

func NewRouter(completer Completer, quoter Quoter, sessions session.Store, system string) *Router {
	return &Router{
		completer: completer,
		quoter:    quoter,
		sessions:  sessions,
		system:    system,
	}
}

// Handle runs one conversational turn for a session.
//
// A query with price intent short-circuits to the quoter: the model is not
// consulted and the transcript is left untouched, so price lookups leave no
// trace in the conversation. Everything else goes to the completion model
// with the session transcript (or a fresh one) as context; the exchange is
// stored only after the completion succeeds.
func (r *Router) Handle(ctx context.Context, sessionID, query string) (string, error) {
	if symbol, ok := extract.Symbol(query); ok {
		return r.quoter.Answer(ctx, symbol), nil
	}

	transcript, ok := r.sessions.Get(sessionID)
	if !ok {
		transcript = session.New(r.system)
	}

	text, err := r.completer.Complete(ctx, transcript.Prompt(query))
	if err != nil {
		log.Printf("chat: session %s: %v", sessionID, err)
		return "", fmt.Errorf("completing turn: %w", err)
	}

	r.sessions.Put(sessionID, transcript.WithExchange(query, text))
	return text, nil
}

// OneShot answers a single query with no session, no extractor and no
// stored state: just the system instruction plus the query.
func (r *Router) OneShot(ctx context.Context, query string) (string, error) {
	text, err := r.completer.Complete(ctx, session.New(r.system).Prompt(query))
	if err != nil {
		log.Printf("chat: one-shot: %v", err)
		return "", fmt.Errorf("completing turn: %w", err)
	}
	return text, nil
}
