// Package registry maps app IDs to game factories. Games register themselves
// from init(), so the desktop and the CLI discover them without importing
// each one by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/retro-desk/internal/core"
)

// Game is what the desktop runs inside a window. Implementations hold pure
// logic; the platform owns keys, timing and terminal output.
type Game interface {
	// ID is the stable identifier used by shortcuts and the CLI.
	ID() string

	// Title is the window caption.
	Title() string

	// Reset starts over with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	// State summarizes score and lifecycle for the platform.
	State() core.GameState
}

// Resizer is implemented by games that can follow a window resize without
// restarting. Games without it are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// Scoreless is implemented by apps that never keep a score, such as the
// calculator. The scoreboard leaves them out.
type Scoreless interface {
	Scoreless()
}

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Scored bool
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a game factory. It panics on an empty or duplicate ID, both
// of which are programming errors caught at startup.
func Register(id string, f Factory) {
	id = strings.TrimSpace(id)
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	g := f()
	_, scoreless := g.(Scoreless)
	factories[id] = f
	infos[id] = GameInfo{ID: id, Title: g.Title(), Scored: !scoreless}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for _, info := range infos {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Scored returns the registered games that keep a score, sorted by ID.
func Scored() []GameInfo {
	var out []GameInfo
	for _, info := range List() {
		if info.Scored {
			out = append(out, info)
		}
	}
	return out
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the caption of a registered game, or "" if unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	return infos[id].Title
}
