package world

import (
	"go.uber.org/zap"
)

// entry pairs a room with the ID of the zone that owns it.
type entry struct {
	room *Room
	zone string
}

// Graph is the complete read-only index of rooms across all zones, keyed by
// canonical location key. It is built once at startup; because it is never
// mutated afterwards it may be shared across goroutines without locking.
type Graph struct {
	rooms     map[string]entry
	zoneCount int
}

// BuildGraph assembles the room graph from a zone configuration and a set of
// pre-decoded room-list documents keyed by file ID.
//
// A zone whose backing document is absent is skipped; partial content sets
// still load, and a move targeting the missing zone surfaces later as a
// destination-not-found error. A document that fails to parse aborts the
// build with ErrMalformedContent and no partial graph. Duplicate canonical
// keys follow last-wins in declaration order; this is a documented policy,
// not a defect.
//
// Postcondition: Returns the graph and the configured initial Location, or a
// non-nil error.
func BuildGraph(cfg *ZoneConfig, documents map[string]string, logger *zap.Logger) (*Graph, Location, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Graph{rooms: make(map[string]entry)}
	for _, zi := range cfg.Zones {
		doc, ok := documents[zi.File]
		if !ok {
			logger.Info("zone content missing, skipping zone",
				zap.String("zone", zi.ID),
				zap.String("file", zi.File),
			)
			continue
		}

		rooms, err := ParseRoomList([]byte(doc))
		if err != nil {
			return nil, Location{}, err
		}
		for _, room := range rooms {
			key := Location{Zone: zi.ID, Room: room.ID}.Key()
			g.rooms[key] = entry{room: room, zone: zi.ID}
		}
		g.zoneCount++
	}

	return g, cfg.InitialLocation(), nil
}

// Lookup returns the room stored under the given canonical key together with
// its owning zone ID.
//
// Postcondition: Returns (room, zone, true) if found, or (nil, "", false).
func (g *Graph) Lookup(key string) (*Room, string, bool) {
	e, ok := g.rooms[key]
	if !ok {
		return nil, "", false
	}
	return e.room, e.zone, true
}

// Contains reports whether a room exists under the given canonical key.
func (g *Graph) Contains(key string) bool {
	_, ok := g.rooms[key]
	return ok
}

// Len returns the total number of rooms in the graph.
func (g *Graph) Len() int {
	return len(g.rooms)
}

// ZoneCount returns the number of zones whose content was actually loaded.
func (g *Graph) ZoneCount() int {
	return g.zoneCount
}
