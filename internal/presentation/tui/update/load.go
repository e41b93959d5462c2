package update

import (
	"context"
	"fmt"
	"sync"

	"github.com/ytgrid/ytgrid/internal/application/usecase"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/logger"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// CellError is the load failure of one cell.
type CellError struct {
	Coord grid.Coord
	Err   error
}

func (e CellError) Error() string {
	return fmt.Sprintf("cell (%d, %d): %v", e.Coord.X, e.Coord.Y, e.Err)
}

func (e CellError) Unwrap() error { return e.Err }

// RunLoads loads every cell of g in row order. A loaded widget replaces its
// placeholder; a failed one keeps it and the error is returned. One cell's
// failure never stops its siblings.
func RunLoads(g grid.Grid, lc widget.LoadContext) []CellError {
	var coords []grid.Coord
	g.Each(func(c grid.Coord, _ widget.Widget) {
		coords = append(coords, c)
	})

	var errs []CellError
	for _, c := range coords {
		w, ok := g.At(c)
		if !ok || w == nil {
			continue
		}
		loaded, err := safeLoad(w, lc)
		if err != nil {
			logger.Warn("load %s cell (%d, %d) failed: %v", lc.Page, c.X, c.Y, err)
			errs = append(errs, CellError{Coord: c, Err: err})
			continue
		}
		g.Set(c, loaded)
	}
	return errs
}

func safeLoad(w widget.Widget, lc widget.LoadContext) (loaded widget.Widget, err error) {
	defer func() {
		if r := recover(); r != nil {
			loaded = nil
			err = fmt.Errorf("widget load panicked: %v", r)
		}
	}()
	loaded, err = w.Load(lc)
	if err == nil && loaded == nil {
		err = fmt.Errorf("widget load returned nothing")
	}
	return loaded, err
}

// memoProvider shares provider results between the cells of one page load,
// so the detail and the actions of an item fetch it once.
type memoProvider struct {
	next usecase.ContentProvider

	mu      sync.Mutex
	results map[string]memoResult
}

type memoResult struct {
	value any
	err   error
}

func newMemoProvider(next usecase.ContentProvider) *memoProvider {
	return &memoProvider{next: next, results: map[string]memoResult{}}
}

func (m *memoProvider) do(key string, fetch func() (any, error)) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.results[key]; ok {
		return r.value, r.err
	}
	value, err := fetch()
	m.results[key] = memoResult{value: value, err: err}
	return value, err
}

func (m *memoProvider) Trending(ctx context.Context) ([]video.Item, error) {
	v, err := m.do("trending", func() (any, error) { return m.next.Trending(ctx) })
	items, _ := v.([]video.Item)
	return items, err
}

func (m *memoProvider) Popular(ctx context.Context) ([]video.Item, error) {
	v, err := m.do("popular", func() (any, error) { return m.next.Popular(ctx) })
	items, _ := v.([]video.Item)
	return items, err
}

func (m *memoProvider) Search(ctx context.Context, query string, filters video.SearchFilters) ([]video.Item, error) {
	key := fmt.Sprintf("search:%q:%v", query, filters)
	v, err := m.do(key, func() (any, error) { return m.next.Search(ctx, query, filters) })
	items, _ := v.([]video.Item)
	return items, err
}

func (m *memoProvider) Video(ctx context.Context, id string) (*video.Video, error) {
	v, err := m.do("video:"+id, func() (any, error) { return m.next.Video(ctx, id) })
	out, _ := v.(*video.Video)
	return out, err
}

func (m *memoProvider) Playlist(ctx context.Context, id string) (*video.Playlist, error) {
	v, err := m.do("playlist:"+id, func() (any, error) { return m.next.Playlist(ctx, id) })
	out, _ := v.(*video.Playlist)
	return out, err
}

func (m *memoProvider) Channel(ctx context.Context, id string, section video.ChannelSection) (*video.Channel, error) {
	key := fmt.Sprintf("channel:%s:%v", id, section)
	v, err := m.do(key, func() (any, error) { return m.next.Channel(ctx, id, section) })
	out, _ := v.(*video.Channel)
	return out, err
}
