// Package session holds per-session conversation transcripts for the chat
// router. Transcripts live in memory only and are dropped when the process
// exits.
package session

import (
	"strings"
	"sync"
)

// Role tags one side of a conversation turn.
type Role string

const (
	RoleUser      Role = "User"
	RoleAssistant Role = "Assistant"
)

// Turn is a single utterance in a transcript.
type Turn struct {
	Role Role
	Text string
}

// Transcript is the accumulated record of a session: a fixed system
// instruction followed by role-tagged turns in order. Turns are only ever
// appended; nothing truncates or summarizes a transcript.
//
// The structured form is what gets stored. It is flattened to a single text
// blob only at the moment a prompt is sent to the completion API, so the
// stored state stays provider-agnostic.
type Transcript struct {
	System string
	Turns  []Turn
}

// New returns an empty transcript seeded with the system instruction.
func New(system string) Transcript {
	return Transcript{System: system}
}

// Prompt flattens the transcript and appends an open turn for query:
//
//	<system>\nUser: <q1>\nAssistant: <a1>...\nUser: <query>\nAssistant:
//
// The trailing marker is left unterminated for the model to complete.
func (t Transcript) Prompt(query string) string {
	var b strings.Builder
	b.WriteString(t.flatten())
	b.WriteString("\nUser: ")
	b.WriteString(query)
	b.WriteString("\nAssistant:")
	return b.String()
}

// WithExchange returns a copy of the transcript with one completed
// user/assistant exchange appended. The receiver is not modified; callers
// store the returned value.
func (t Transcript) WithExchange(query, answer string) Transcript {
	turns := make([]Turn, 0, len(t.Turns)+2)
	turns = append(turns, t.Turns...)
	turns = append(turns,
		Turn{Role: RoleUser, Text: query},
		Turn{Role: RoleAssistant, Text: answer},
	)
	return Transcript{System: t.System, Turns: turns}
}

// Len reports the number of stored turns.
func (t Transcript) Len() int { return len(t.Turns) }

func (t Transcript) flatten() string {
	var b strings.Builder
	b.WriteString(t.System)
	for _, turn := range t.Turns {
		b.WriteString("\n")
		b.WriteString(string(turn.Role))
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}
	return b.String()
}

// Store maps opaque session ids to transcripts.
//
// Get and Put are individually safe for concurrent use, but a chat turn is a
// Get, an outbound completion call, then a Put. That read-modify-write spans
// the network call and is deliberately not serialized: two overlapping turns
// on the same session id both complete and the later Put wins, silently
// dropping the other exchange. Last write wins is the documented contract;
// see the store tests.
type Store interface {
	Get(id string) (Transcript, bool)
	Put(id string, t Transcript)
}

// MemoryStore is the in-process Store used by the server.
type MemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string]Transcript
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{transcripts: make(map[string]Transcript)}
}

func (s *MemoryStore) Get(id string) (Transcript, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transcripts[id]
	return t, ok
}

func (s *MemoryStore) Put(id string, t Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[id] = t
}

// Len reports the number of tracked sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.transcripts)
}
