// Package minimap assigns 2-D grid coordinates to rooms near an origin by a
// bounded breadth-first walk over the eight compass directions.
package minimap

import (
	"github.com/muddyrogue/engine/internal/game/world"
)

// Node is one visible room on the minimap grid.
type Node struct {
	// X and Y are grid coordinates relative to the origin, north +y, east +x.
	X, Y int
	// Key is the room's canonical location key.
	Key string
	// RoomName is the room's display name.
	RoomName string
	// IsOrigin marks the room the walk started from.
	IsOrigin bool
	// Connections lists canonical keys of compass-adjacent rooms that lie
	// within the distance bound.
	Connections []string
}

type coord struct {
	x, y int
}

type queueItem struct {
	key string
	at  coord
}

// Layout walks outward from origin and places each reachable room on the
// grid. Only the eight compass directions contribute: up, down, and custom
// exits have no spatial representation. Unqualified exit references resolve
// against the owning zone of the room being expanded, not the origin's zone.
//
// A room reachable by several paths keeps the coordinate of whichever path
// discovers it first in BFS order. Both axes of every placed room lie within
// [-maxDistance, +maxDistance], which together with the visited set bounds
// the walk even on cyclic maps.
func Layout(origin world.Location, g *world.Graph, maxDistance int) []Node {
	originKey := origin.Key()

	visited := map[string]coord{originKey: {}}
	queue := []queueItem{{key: originKey}}

	var nodes []Node
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		room, zone, ok := g.Lookup(cur.key)
		if !ok {
			// Only validated keys are enqueued, so this is defensive.
			continue
		}

		var connections []string
		for _, dir := range world.CompassDirections {
			ref, ok := room.Exits[dir]
			if !ok {
				continue
			}

			next, _ := world.ParseExitRef(ref, zone)
			nextKey := next.Key()
			if !g.Contains(nextKey) {
				continue
			}

			dx, dy, _ := dir.Offset()
			candidate := coord{x: cur.at.x + dx, y: cur.at.y + dy}
			if abs(candidate.x) > maxDistance || abs(candidate.y) > maxDistance {
				continue
			}

			connections = append(connections, nextKey)
			if _, seen := visited[nextKey]; !seen {
				visited[nextKey] = candidate
				queue = append(queue, queueItem{key: nextKey, at: candidate})
			}
		}

		nodes = append(nodes, Node{
			X:           cur.at.x,
			Y:           cur.at.y,
			Key:         cur.key,
			RoomName:    room.Name,
			IsOrigin:    cur.key == originKey,
			Connections: connections,
		})
	}

	return nodes
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
