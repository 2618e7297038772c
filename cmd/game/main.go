// Package main provides the console game client: it loads the world content,
// builds the room graph, and runs an interactive command loop over a single
// player session.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/muddyrogue/engine/internal/config"
	"github.com/muddyrogue/engine/internal/game/command"
	"github.com/muddyrogue/engine/internal/game/nav"
	"github.com/muddyrogue/engine/internal/game/session"
	"github.com/muddyrogue/engine/internal/game/text"
	"github.com/muddyrogue/engine/internal/game/world"
	"github.com/muddyrogue/engine/internal/observability"
	"github.com/muddyrogue/engine/internal/settings"
)

var helpText = []string{
	"Available commands:",
	"  Movement: n, s, e, w, ne, nw, se, sw, u, d (or full direction names)",
	"  Other: help, look, map, time, wrap, quit",
}

func main() {
	configPath := flag.String("config", "", "path to configuration file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	g, err := newGame(cfg, logger)
	if err != nil {
		logger.Fatal("initializing game", zap.Error(err))
	}

	g.run(os.Stdin, os.Stdout)
}

// game wires the session, command registry, and display preferences for one
// interactive run.
type game struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *command.Registry
	sess     *session.Session
	prefs    settings.Settings
}

func newGame(cfg config.Config, logger *zap.Logger) (*game, error) {
	start := time.Now()

	zoneCfgPath := filepath.Join(cfg.Content.Dir, cfg.Content.ZoneConfig)
	raw, err := os.ReadFile(zoneCfgPath)
	if err != nil {
		return nil, fmt.Errorf("reading zone config %s: %w", zoneCfgPath, err)
	}
	zoneCfg, err := world.ParseZoneConfig(raw)
	if err != nil {
		return nil, err
	}

	documents, err := loadDocuments(cfg.Content.Dir, cfg.Content.ZoneConfig)
	if err != nil {
		return nil, err
	}

	graph, startLoc, err := world.BuildGraph(zoneCfg, documents, logger)
	if err != nil {
		return nil, err
	}

	sess := session.New(graph, nav.NewEngine(graph, logger), startLoc)
	logger.Info("world loaded",
		zap.Int("zones", graph.ZoneCount()),
		zap.Int("rooms", graph.Len()),
		zap.String("start", startLoc.Key()),
		zap.String("session", sess.ID()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &game{
		cfg:      cfg,
		logger:   logger,
		registry: command.DefaultRegistry(),
		sess:     sess,
		prefs:    settings.Load(cfg.Display.SettingsFile),
	}, nil
}

// loadDocuments reads every content document in dir except the zone config
// itself, keyed by file name.
func loadDocuments(dir, zoneConfigName string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}

	documents := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == zoneConfigName {
			continue
		}
		switch filepath.Ext(name) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading content file %s: %w", name, err)
		}
		documents[name] = string(data)
	}
	return documents, nil
}

func (g *game) run(in io.Reader, out io.Writer) {
	g.printLines(out, []string{"=== Welcome to Muddy Rogue ===", "Type 'help' for available commands.", ""})
	g.printLines(out, g.sess.Look())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			break
		}

		lines, quit := g.dispatch(scanner.Text())
		if quit {
			break
		}
		g.printLines(out, lines)
	}
}

// dispatch routes one input line to its handler and returns the lines to
// display plus whether the loop should end.
func (g *game) dispatch(line string) ([]string, bool) {
	parsed := command.Parse(line)
	if parsed.Command == "" {
		return nil, false
	}

	cmd, ok := g.registry.Resolve(parsed.Command)
	if !ok {
		// Custom exit words are legal content: try them as movement
		// before giving up.
		if lines, err := g.sess.Move(parsed.Command); err == nil {
			return lines, false
		}
		return []string{fmt.Sprintf("Unknown command: '%s'. Type 'help' for available commands.", parsed.Command)}, false
	}

	switch cmd.Handler {
	case command.HandlerMove:
		lines, err := g.sess.Move(cmd.Name)
		if err != nil {
			return []string{g.moveError(err)}, false
		}
		return lines, false
	case command.HandlerLook:
		return g.sess.Look(), false
	case command.HandlerMap:
		return renderMinimap(g.sess.Minimap(g.cfg.Display.MinimapDistance), g.cfg.Display.MinimapDistance), false
	case command.HandlerTime:
		return []string{"Current time: " + time.Now().Format("15:04:05")}, false
	case command.HandlerHelp:
		return helpText, false
	case command.HandlerWrap:
		return g.handleWrap(parsed.Args), false
	case command.HandlerQuit:
		return nil, true
	default:
		return []string{fmt.Sprintf("Unknown command: '%s'. Type 'help' for available commands.", parsed.Command)}, false
	}
}

// moveError maps a navigation failure to its player-facing message. The
// integrity faults also go to the log; NoSuchExit is ordinary play.
func (g *game) moveError(err error) string {
	var dm *nav.DestinationMissingError
	switch {
	case errors.Is(err, nav.ErrNoSuchExit):
		return "You can't go that way."
	case errors.Is(err, nav.ErrCurrentRoomMissing):
		g.logger.Error("cursor points at a missing room", zap.String("location", g.sess.Location().Key()))
		return "Error: Current room not found."
	case errors.As(err, &dm):
		g.logger.Error("dangling exit reference", zap.String("destination", dm.Key))
		return fmt.Sprintf("Error: Destination room not found (%s)", dm.Key)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func (g *game) handleWrap(args []string) []string {
	if len(args) == 0 {
		state := "off"
		if g.prefs.WordWrapEnabled {
			state = fmt.Sprintf("on at %d columns", g.prefs.WordWrapLength)
		}
		return []string{"Word wrap is " + state + "."}
	}

	switch args[0] {
	case "on":
		g.prefs.WordWrapEnabled = true
	case "off":
		g.prefs.WordWrapEnabled = false
	default:
		width, err := strconv.Atoi(args[0])
		if err != nil || width < 1 {
			return []string{"Usage: wrap [on|off|<width>]"}
		}
		g.prefs.WordWrapEnabled = true
		g.prefs.WordWrapLength = width
	}

	if err := g.prefs.Save(g.cfg.Display.SettingsFile); err != nil {
		g.logger.Warn("saving settings", zap.Error(err))
	}
	return []string{"Word wrap updated."}
}

// printLines renders display lines to out, applying word wrap and emphasis
// styling.
func (g *game) printLines(out io.Writer, lines []string) {
	for _, line := range lines {
		if g.prefs.WordWrapEnabled {
			for _, wrapped := range text.Wrap(line, g.prefs.WordWrapLength) {
				fmt.Fprintln(out, renderLine(wrapped))
			}
			continue
		}
		fmt.Fprintln(out, renderLine(line))
	}
}
