// Package desktop turns the configured shortcuts into validated desktop
// entries: apps that run a registered game, and links handed to the host.
package desktop

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/vovakirdan/retro-desk/internal/config"
	"github.com/vovakirdan/retro-desk/internal/registry"
)

// Kind says what activating an entry does.
type Kind int

const (
	KindApp Kind = iota
	KindLink
)

func (k Kind) String() string {
	if k == KindApp {
		return "app"
	}
	return "link"
}

// Entry is one validated desktop icon or start-menu item.
type Entry struct {
	Title  string
	Kind   Kind
	Target string // game id for apps, URL for links
}

// Desktop is the validated layout shown by the menu.
type Desktop struct {
	Owner     string
	Shortcuts []Entry
	StartMenu []Entry
}

var (
	ErrNoTitle     = errors.New("shortcut has no title")
	ErrNoTarget    = errors.New("shortcut needs an app or a url")
	ErrBothTargets = errors.New("shortcut has both an app and a url")
	ErrUnknownApp  = errors.New("unknown app")
	ErrInvalidURL  = errors.New("invalid url")
	ErrNoShortcuts = errors.New("desktop has no shortcuts")
)

// New validates cfg against the registered games. Every bad shortcut is
// reported, not just the first.
func New(cfg config.DesktopConfig) (*Desktop, error) {
	if len(cfg.Shortcuts) == 0 {
		return nil, ErrNoShortcuts
	}

	var errs []error
	shortcuts := entries("shortcuts", cfg.Shortcuts, &errs)
	startMenu := entries("start_menu", cfg.StartMenu, &errs)
	if len(errs) > 0 {
		return nil, fmt.Errorf("desktop: %w", errors.Join(errs...))
	}

	return &Desktop{
		Owner:     cfg.Owner,
		Shortcuts: shortcuts,
		StartMenu: startMenu,
	}, nil
}

func entries(section string, in []config.Shortcut, errs *[]error) []Entry {
	out := make([]Entry, 0, len(in))
	for i, s := range in {
		e, err := Validate(s)
		if err != nil {
			*errs = append(*errs, fmt.Errorf("%s[%d] %q: %w", section, i, s.Title, err))
			continue
		}
		out = append(out, e)
	}
	return out
}

// Validate checks a single shortcut and converts it to an Entry.
func Validate(s config.Shortcut) (Entry, error) {
	title := strings.TrimSpace(s.Title)
	app := strings.TrimSpace(s.App)
	link := strings.TrimSpace(s.URL)

	switch {
	case title == "":
		return Entry{}, ErrNoTitle
	case app != "" && link != "":
		return Entry{}, ErrBothTargets
	case app == "" && link == "":
		return Entry{}, ErrNoTarget
	}

	if app != "" {
		if !registry.Exists(app) {
			return Entry{}, fmt.Errorf("%w %q", ErrUnknownApp, app)
		}
		return Entry{Title: title, Kind: KindApp, Target: app}, nil
	}

	if err := checkURL(link); err != nil {
		return Entry{}, err
	}
	return Entry{Title: title, Kind: KindLink, Target: link}, nil
}

// checkURL accepts absolute http(s) URLs and site-relative paths.
func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, "/") {
		return nil
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w %q", ErrInvalidURL, raw)
	}
	return nil
}

// Apps returns the shortcuts that launch games.
func (d *Desktop) Apps() []Entry {
	return filter(d.Shortcuts, KindApp)
}

// Links returns every link on the desktop and in the start menu, without
// duplicate targets.
func (d *Desktop) Links() []Entry {
	seen := make(map[string]bool)
	var out []Entry
	for _, e := range append(filter(d.Shortcuts, KindLink), filter(d.StartMenu, KindLink)...) {
		if seen[e.Target] {
			continue
		}
		seen[e.Target] = true
		out = append(out, e)
	}
	return out
}

func filter(in []Entry, k Kind) []Entry {
	var out []Entry
	for _, e := range in {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// OpenMessage is the status line shown when a link is activated. The
// terminal cannot open a browser tab, so it tells the user where to go.
func OpenMessage(e Entry) string {
	return fmt.Sprintf("%s: %s", e.Title, e.Target)
}
