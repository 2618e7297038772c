package world

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedContent indicates a content document that could not be parsed
// into valid records. A present-but-corrupt document is a hard load failure,
// unlike a missing one.
var ErrMalformedContent = errors.New("malformed content document")

// ZoneInfo declares one zone and the content document backing it.
type ZoneInfo struct {
	// ID uniquely identifies the zone and prefixes its canonical room keys.
	ID string `yaml:"id"`
	// Name is the zone's display name.
	Name string `yaml:"name"`
	// File is the ID of the room-list document backing this zone.
	File string `yaml:"file"`
}

// ZoneConfig is the top-level zone configuration document.
type ZoneConfig struct {
	Zones       []ZoneInfo `yaml:"zones"`
	InitialZone string     `yaml:"initial_zone"`
	InitialRoom uint32     `yaml:"initial_room"`
}

// InitialLocation returns the configured starting position.
func (c *ZoneConfig) InitialLocation() Location {
	return Location{Zone: c.InitialZone, Room: c.InitialRoom}
}

// yamlRoom is the document representation of a room.
type yamlRoom struct {
	ID          uint32            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits"`
	Objects     []uint32          `yaml:"objects"`
}

// ParseZoneConfig parses a zone configuration document.
//
// Postcondition: Returns a ZoneConfig or an error wrapping ErrMalformedContent.
func ParseZoneConfig(data []byte) (*ZoneConfig, error) {
	var cfg ZoneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: zone config: %v", ErrMalformedContent, err)
	}
	if cfg.InitialZone == "" {
		return nil, fmt.Errorf("%w: zone config: initial_zone must not be empty", ErrMalformedContent)
	}
	return &cfg, nil
}

// ParseRoomList parses a room-list document into Room records. The document
// is an ordered sequence of rooms; order matters because duplicate canonical
// keys follow last-wins during graph construction.
//
// Postcondition: Returns the parsed rooms or an error wrapping ErrMalformedContent.
func ParseRoomList(data []byte) ([]*Room, error) {
	var raw []yamlRoom
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: room list: %v", ErrMalformedContent, err)
	}

	rooms := make([]*Room, 0, len(raw))
	for _, yr := range raw {
		room := &Room{
			ID:          yr.ID,
			Name:        yr.Name,
			Description: strings.TrimSpace(yr.Description),
			Exits:       make(map[Direction]string, len(yr.Exits)),
			Objects:     yr.Objects,
		}
		for dir, ref := range yr.Exits {
			room.Exits[Direction(dir)] = ref
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
