// Package session owns the mutable player cursor and serializes access to it.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/muddyrogue/engine/internal/game/minimap"
	"github.com/muddyrogue/engine/internal/game/nav"
	"github.com/muddyrogue/engine/internal/game/world"
)

// Session holds a single player's position in the world. The graph it reads
// is immutable; the cursor is the only mutable state, and one mutex covers
// the move write and every derived read so a move and a concurrent map query
// never observe a torn state.
type Session struct {
	id     string
	engine *nav.Engine
	graph  *world.Graph

	mu     sync.Mutex
	cursor world.Location
}

// New creates a Session starting at the given location.
//
// Precondition: start should exist in the graph; a stale cursor surfaces as
// ErrCurrentRoomMissing on the next move.
func New(graph *world.Graph, engine *nav.Engine, start world.Location) *Session {
	return &Session{
		id:     uuid.NewString(),
		engine: engine,
		graph:  graph,
		cursor: start,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Location returns the current cursor position.
func (s *Session) Location() world.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Move resolves a movement command and advances the cursor on success,
// returning the destination's display lines. The cursor is unchanged on any
// error.
func (s *Session) Move(raw string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dest, lines, err := s.engine.AttemptMove(s.cursor, raw)
	if err != nil {
		return nil, err
	}
	s.cursor = dest
	return lines, nil
}

// Look returns the display lines for the current room.
func (s *Session) Look() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.RoomDisplay(s.cursor)
}

// Minimap lays out the local map around the cursor.
func (s *Session) Minimap(maxDistance int) []minimap.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return minimap.Layout(s.cursor, s.graph, maxDistance)
}
