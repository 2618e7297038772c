package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Location identifies a room uniquely across zones by its zone ID and
// numeric room ID.
type Location struct {
	// Zone is the owning zone's identifier.
	Zone string
	// Room is the room's numeric ID within the zone.
	Room uint32
}

// Key returns the canonical "zone:room" string used for graph lookups.
// Two Locations are equal exactly when their keys are equal.
func (l Location) Key() string {
	return fmt.Sprintf("%s:%d", l.Zone, l.Room)
}

// ParseExitRef resolves an exit reference string into a Location. A
// reference containing the zone separator ("harbor:12") names a room in
// another zone; a bare reference ("12") stays in currentZone.
//
// A room-id segment that does not parse as an unsigned integer resolves to
// room 0 rather than failing. This matches long-standing content semantics
// and may mask authoring mistakes, so the returned bool is false in that
// case and callers should log the offending reference.
func ParseExitRef(ref, currentZone string) (Location, bool) {
	zone := currentZone
	roomStr := ref
	if z, r, found := strings.Cut(ref, ":"); found {
		zone = z
		roomStr = r
	}

	id, err := strconv.ParseUint(roomStr, 10, 32)
	if err != nil {
		return Location{Zone: zone, Room: 0}, false
	}
	return Location{Zone: zone, Room: uint32(id)}, true
}
