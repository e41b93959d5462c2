// Package page defines the pages the browser can show.
package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ytgrid/ytgrid/internal/domain/video"
)

// Kind is the page family.
type Kind int

const (
	MainMenu Kind = iota
	Search
	ItemDisplay
	Channel
)

// Tab is a main menu tab.
type Tab int

const (
	Trending Tab = iota
	Popular
	History
)

// Tabs lists the main menu tabs in order.
var Tabs = []Tab{Trending, Popular, History}

// String returns the tab label.
func (t Tab) String() string {
	switch t {
	case Popular:
		return "Popular"
	case History:
		return "History"
	default:
		return "Trending"
	}
}

// Page identifies one screen. Pages are comparable values; the same Page
// always maps to the same grid template.
type Page struct {
	Kind Kind

	Tab Tab

	Query   string
	Filters video.SearchFilters

	// Item is the displayed kind on ItemDisplay pages.
	Item    video.Kind
	ID      string
	Section video.ChannelSection
}

// NewMainMenu returns the main menu on tab.
func NewMainMenu(tab Tab) Page {
	return Page{Kind: MainMenu, Tab: tab}
}

// NewSearch returns a search results page.
func NewSearch(query string, filters video.SearchFilters) Page {
	return Page{Kind: Search, Query: strings.TrimSpace(query), Filters: filters.Normalize()}
}

// NewVideo returns the display page of a video.
func NewVideo(id string) Page {
	return Page{Kind: ItemDisplay, Item: video.KindVideo, ID: id}
}

// NewPlaylist returns the display page of a playlist.
func NewPlaylist(id string) Page {
	return Page{Kind: ItemDisplay, Item: video.KindPlaylist, ID: id}
}

// NewChannel returns a channel page on section.
func NewChannel(id string, section video.ChannelSection) Page {
	return Page{Kind: Channel, ID: id, Section: section}
}

// ForItem returns the page that displays item.
func ForItem(item video.Item) Page {
	switch item.Kind {
	case video.KindPlaylist:
		return NewPlaylist(item.ID)
	case video.KindChannel:
		return NewChannel(item.ID, video.ChannelHome)
	default:
		return NewVideo(item.ID)
	}
}

// Default is the page shown when no initial command is given.
func Default() Page {
	return NewMainMenu(Trending)
}

func (p Page) String() string {
	switch p.Kind {
	case MainMenu:
		return "main menu: " + p.Tab.String()
	case Search:
		return fmt.Sprintf("search: %q", p.Query)
	case ItemDisplay:
		return fmt.Sprintf("%s %s", p.Item, p.ID)
	case Channel:
		return fmt.Sprintf("channel %s (%s)", p.ID, p.Section)
	default:
		return "unknown page"
	}
}

// ErrInvalidCommand is returned for unparseable initial commands.
var ErrInvalidCommand = errors.New("invalid command")

// ParseCommand parses an initial command such as "loadpage video <id>".
// An empty command selects the default page.
func ParseCommand(args []string) (Page, error) {
	if len(args) == 0 {
		return Default(), nil
	}
	if args[0] != "loadpage" {
		return Page{}, fmt.Errorf("%w: unknown command %q", ErrInvalidCommand, args[0])
	}
	if len(args) < 2 {
		return Page{}, fmt.Errorf("%w: loadpage needs a page name", ErrInvalidCommand)
	}

	name, rest := strings.ToLower(args[1]), args[2:]
	needID := func() (string, error) {
		if len(rest) == 0 || strings.TrimSpace(rest[0]) == "" {
			return "", fmt.Errorf("%w: %s needs an id", ErrInvalidCommand, name)
		}
		return strings.TrimSpace(rest[0]), nil
	}

	switch name {
	case "trending":
		return NewMainMenu(Trending), nil
	case "popular":
		return NewMainMenu(Popular), nil
	case "history":
		return NewMainMenu(History), nil
	case "search":
		query := strings.TrimSpace(strings.Join(rest, " "))
		if query == "" {
			return Page{}, fmt.Errorf("%w: search needs a query", ErrInvalidCommand)
		}
		return NewSearch(query, video.DefaultFilters()), nil
	case "video":
		id, err := needID()
		if err != nil {
			return Page{}, err
		}
		return NewVideo(id), nil
	case "playlist":
		id, err := needID()
		if err != nil {
			return Page{}, err
		}
		return NewPlaylist(id), nil
	case "channel":
		id, err := needID()
		if err != nil {
			return Page{}, err
		}
		section := video.ChannelHome
		if len(rest) > 1 {
			var ok bool
			if section, ok = video.ParseChannelSection(rest[1]); !ok {
				return Page{}, fmt.Errorf("%w: unknown channel section %q", ErrInvalidCommand, rest[1])
			}
		}
		return NewChannel(id, section), nil
	default:
		return Page{}, fmt.Errorf("%w: unknown page %q", ErrInvalidCommand, name)
	}
}
