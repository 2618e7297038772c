// Package world provides the room graph: zones, rooms, locations, and directions.
package world

// Direction represents a compass direction or a free-form named exit.
type Direction string

// Standard compass directions and vertical movements.
const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
)

// CompassDirections are the eight directions that can be placed on a 2-D
// grid. Up, down, and custom exits carry no grid offset and are excluded
// from spatial layout.
var CompassDirections = []Direction{
	North, South, East, West,
	Northeast, Northwest, Southeast, Southwest,
}

// abbreviations maps the short movement tokens to full direction names.
// This is a fixed, closed table.
var abbreviations = map[string]Direction{
	"n":  North,
	"s":  South,
	"e":  East,
	"w":  West,
	"ne": Northeast,
	"nw": Northwest,
	"se": Southeast,
	"sw": Southwest,
	"u":  Up,
	"d":  Down,
}

// Expand resolves a movement abbreviation to its full direction name. Any
// token that is not a known abbreviation passes through unchanged, so full
// names and custom exit words both survive. Expand is idempotent.
func Expand(token string) Direction {
	if full, ok := abbreviations[token]; ok {
		return full
	}
	return Direction(token)
}

// Offset returns the unit grid offset for a compass direction, with north
// as +y and east as +x. ok is false for up, down, and custom directions,
// which have no spatial representation.
func (d Direction) Offset() (dx, dy int, ok bool) {
	switch d {
	case North:
		return 0, 1, true
	case South:
		return 0, -1, true
	case East:
		return 1, 0, true
	case West:
		return -1, 0, true
	case Northeast:
		return 1, 1, true
	case Northwest:
		return -1, 1, true
	case Southeast:
		return 1, -1, true
	case Southwest:
		return -1, -1, true
	default:
		return 0, 0, false
	}
}

// Room is a static content node in the world. Rooms are immutable after load.
type Room struct {
	// ID is the room's numeric ID, unique within its zone.
	ID uint32
	// Name is the short display name of the room.
	Name string
	// Description is the room description shown to players.
	Description string
	// Exits maps direction names to exit reference strings. Keys are
	// free-form: custom directions beyond the standard ten are legal.
	Exits map[Direction]string
	// Objects lists IDs of objects present in the room. The IDs are
	// opaque to the engine.
	Objects []uint32
}
