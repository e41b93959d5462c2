// Package templates maps every page to the grid it is shown in.
package templates

import (
	"fmt"

	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// frame is the border width around a cell.
const frame = 2

// Template is the unloaded grid of a page plus its page-level settings.
type Template struct {
	Grid grid.Grid

	DefaultSelection grid.Coord
	HasDefault       bool

	LoadingMessage string
	MinWidth       int
	MinHeight      int
}

// Build returns the template of p. It is pure: the same page always yields
// an equivalent template.
func Build(p page.Page) Template {
	switch p.Kind {
	case page.Search:
		return searchTemplate(p)
	case page.ItemDisplay:
		if p.Item == video.KindPlaylist {
			return playlistTemplate(p)
		}
		return videoTemplate(p)
	case page.Channel:
		return channelTemplate(p)
	default:
		return mainMenuTemplate(p)
	}
}

func single(w widget.Widget, width, height grid.Constraint) grid.Row {
	return grid.Row{Cells: []grid.Cell{{Widget: w, Width: width}}, Height: height}
}

func centered(w widget.Widget, width, height grid.Constraint) grid.Row {
	row := single(w, width, height)
	row.Centered = true
	return row
}

func searchRow(p page.Page, center bool) grid.Row {
	input := widget.NewSearchInput(p.Query, p.Filters)
	if center {
		return centered(input, grid.Percentage(60), grid.Length(1+frame))
	}
	return single(input, grid.Percentage(100), grid.Length(1+frame))
}

func messageRow() grid.Row {
	return single(widget.NewMessageBar(), grid.Percentage(100), grid.Length(1))
}

func mainMenuTemplate(p page.Page) Template {
	source := widget.SourceTrending
	switch p.Tab {
	case page.Popular:
		source = widget.SourcePopular
	case page.History:
		source = widget.SourceHistory
	}
	return Template{
		Grid: grid.Grid{Rows: []grid.Row{
			searchRow(page.NewSearch("", video.DefaultFilters()), true),
			centered(widget.NewMainMenuTabs(p.Tab), grid.Length(widget.MainMenuTabsWidth()+frame+2), grid.Length(1+frame)),
			single(widget.NewItemList(source), grid.Percentage(100), grid.Min(2+frame)),
			messageRow(),
		}},
		DefaultSelection: grid.Coord{X: 0, Y: 2},
		HasDefault:       true,
		LoadingMessage:   fmt.Sprintf("Loading %s...", p.Tab),
		MinWidth:         40,
		MinHeight:        12,
	}
}

func searchTemplate(p page.Page) Template {
	return Template{
		Grid: grid.Grid{Rows: []grid.Row{
			searchRow(p, true),
			centered(widget.NewSearchFilters(p.Query, p.Filters), grid.Length(widget.SearchFiltersWidth()+frame), grid.Length(1+frame)),
			single(widget.NewItemList(widget.SourceSearch), grid.Percentage(100), grid.Min(2+frame)),
			messageRow(),
		}},
		DefaultSelection: grid.Coord{X: 0, Y: 2},
		HasDefault:       true,
		LoadingMessage:   fmt.Sprintf("Searching for %s...", p.Query),
		MinWidth:         40,
		MinHeight:        14,
	}
}

func detailRow(kind video.Kind, id string, height grid.Constraint) grid.Row {
	return grid.Row{
		Cells: []grid.Cell{
			{Widget: widget.NewItemDetail(kind, id), Width: grid.Min(20)},
			{Widget: widget.NewItemActions(kind, id), Width: grid.Length(28)},
		},
		Height: height,
	}
}

func videoTemplate(p page.Page) Template {
	return Template{
		Grid: grid.Grid{Rows: []grid.Row{
			searchRow(page.NewSearch("", video.DefaultFilters()), false),
			detailRow(video.KindVideo, p.ID, grid.Min(4+frame)),
			messageRow(),
		}},
		DefaultSelection: grid.Coord{X: 1, Y: 1},
		HasDefault:       true,
		LoadingMessage:   "Loading video...",
		MinWidth:         50,
		MinHeight:        14,
	}
}

func playlistTemplate(p page.Page) Template {
	return Template{
		Grid: grid.Grid{Rows: []grid.Row{
			searchRow(page.NewSearch("", video.DefaultFilters()), false),
			detailRow(video.KindPlaylist, p.ID, grid.Percentage(40)),
			single(widget.NewItemList(widget.SourcePlaylistVideos), grid.Percentage(100), grid.Min(2+frame)),
			messageRow(),
		}},
		DefaultSelection: grid.Coord{X: 1, Y: 1},
		HasDefault:       true,
		LoadingMessage:   "Loading playlist...",
		MinWidth:         50,
		MinHeight:        18,
	}
}

func channelTemplate(p page.Page) Template {
	var body widget.Widget
	selection := grid.Coord{X: 0, Y: 2}
	switch p.Section {
	case video.ChannelVideos:
		body = widget.NewItemList(widget.SourceChannelUploads)
	case video.ChannelPlaylists:
		body = widget.NewItemList(widget.SourceChannelPlaylists)
	default:
		body = widget.NewItemDetail(video.KindChannel, p.ID)
		selection = grid.Coord{X: 0, Y: 1}
	}
	return Template{
		Grid: grid.Grid{Rows: []grid.Row{
			searchRow(page.NewSearch("", video.DefaultFilters()), false),
			centered(widget.NewChannelTabs(p.ID, p.Section), grid.Length(widget.ChannelTabsWidth()+frame+2), grid.Length(1+frame)),
			single(body, grid.Percentage(100), grid.Min(2+frame)),
			messageRow(),
		}},
		DefaultSelection: selection,
		HasDefault:       true,
		LoadingMessage:   "Loading channel...",
		MinWidth:         40,
		MinHeight:        14,
	}
}
