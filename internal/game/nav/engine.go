// Package nav resolves player movement commands against the room graph.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/muddyrogue/engine/internal/game/text"
	"github.com/muddyrogue/engine/internal/game/world"
)

// ErrNoSuchExit is the expected user-facing failure: the current room has no
// exit in the requested direction. Callers present it as "you can't go that
// way" rather than as a data problem.
var ErrNoSuchExit = errors.New("no exit in that direction")

// ErrCurrentRoomMissing indicates the cursor points at a canonical key absent
// from the graph. This is a data-integrity fault, recoverable only by
// resetting the cursor.
var ErrCurrentRoomMissing = errors.New("current room not found")

// DestinationMissingError indicates a dangling exit reference: the exit
// names a room absent from the graph. Key is the offending canonical key,
// kept for content debugging.
type DestinationMissingError struct {
	Key string
}

func (e *DestinationMissingError) Error() string {
	return fmt.Sprintf("destination room not found (%s)", e.Key)
}

// Engine resolves movement against a read-only room graph. It never owns or
// mutates the player cursor; that stays with the caller.
type Engine struct {
	graph  *world.Graph
	logger *zap.Logger
}

// NewEngine creates an Engine over the given graph. A nil logger is replaced
// with a no-op logger.
func NewEngine(graph *world.Graph, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{graph: graph, logger: logger}
}

// AttemptMove resolves a raw movement command from the current location.
//
// The command is normalized through the abbreviation table, looked up in the
// current room's exits, and the exit reference is resolved against the
// current room's owning zone. On success it returns the destination and its
// display lines. On any error the returned Location equals current, so a
// caller that assigns the result unconditionally still never moves.
func (e *Engine) AttemptMove(current world.Location, raw string) (world.Location, []string, error) {
	dir := world.Expand(strings.ToLower(strings.TrimSpace(raw)))

	room, zone, ok := e.graph.Lookup(current.Key())
	if !ok {
		return current, nil, ErrCurrentRoomMissing
	}

	ref, ok := room.Exits[dir]
	if !ok {
		return current, nil, ErrNoSuchExit
	}

	dest, wellFormed := world.ParseExitRef(ref, zone)
	if !wellFormed {
		// Tolerated content quirk: the bad segment resolved to room 0.
		e.logger.Warn("malformed room id in exit reference",
			zap.String("from", current.Key()),
			zap.String("direction", string(dir)),
			zap.String("ref", ref),
		)
	}

	if !e.graph.Contains(dest.Key()) {
		return current, nil, &DestinationMissingError{Key: dest.Key()}
	}

	return dest, e.RoomDisplay(dest), nil
}

// RoomDisplay returns the display lines for a room: emphasized name,
// description, and the exit sentence separated by a blank line. A location
// absent from the graph yields no lines.
func (e *Engine) RoomDisplay(loc world.Location) []string {
	room, _, ok := e.graph.Lookup(loc.Key())
	if !ok {
		return nil
	}

	lines := []string{text.Emphasize(room.Name), room.Description}
	if len(room.Exits) > 0 {
		lines = append(lines, "", text.FormatExits(room.Exits))
	}
	return lines
}
