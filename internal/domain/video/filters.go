package video

// SearchFilters narrows a search query.
type SearchFilters struct {
	Sort     string
	Date     string
	Duration string
	Type     string
}

// FilterField describes one editable search filter.
type FilterField int

const (
	FilterSort FilterField = iota
	FilterDate
	FilterDuration
	FilterType
)

// FilterFields lists the fields in display order.
var FilterFields = []FilterField{FilterSort, FilterDate, FilterDuration, FilterType}

var filterOptions = map[FilterField][]string{
	FilterSort:     {"relevance", "rating", "upload_date", "view_count"},
	FilterDate:     {"any", "hour", "today", "week", "month", "year"},
	FilterDuration: {"any", "short", "long"},
	FilterType:     {"all", "video", "playlist", "channel"},
}

// Label returns the display name of the field.
func (f FilterField) Label() string {
	switch f {
	case FilterSort:
		return "Sort"
	case FilterDate:
		return "Date"
	case FilterDuration:
		return "Duration"
	case FilterType:
		return "Type"
	default:
		return ""
	}
}

// Options returns the allowed values of the field, default first.
func (f FilterField) Options() []string {
	return filterOptions[f]
}

// DefaultFilters returns filters that do not narrow anything.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Sort:     filterOptions[FilterSort][0],
		Date:     filterOptions[FilterDate][0],
		Duration: filterOptions[FilterDuration][0],
		Type:     filterOptions[FilterType][0],
	}
}

// Normalize replaces unknown or empty values with the defaults.
func (f SearchFilters) Normalize() SearchFilters {
	for _, field := range FilterFields {
		if indexOf(field.Options(), f.Get(field)) < 0 {
			f = f.With(field, field.Options()[0])
		}
	}
	return f
}

// Get returns the value of field.
func (f SearchFilters) Get(field FilterField) string {
	switch field {
	case FilterSort:
		return f.Sort
	case FilterDate:
		return f.Date
	case FilterDuration:
		return f.Duration
	case FilterType:
		return f.Type
	default:
		return ""
	}
}

// With returns a copy with field set to value.
func (f SearchFilters) With(field FilterField, value string) SearchFilters {
	switch field {
	case FilterSort:
		f.Sort = value
	case FilterDate:
		f.Date = value
	case FilterDuration:
		f.Duration = value
	case FilterType:
		f.Type = value
	}
	return f
}

// Cycle moves field to the next (delta > 0) or previous option, wrapping around.
func (f SearchFilters) Cycle(field FilterField, delta int) SearchFilters {
	opts := field.Options()
	if len(opts) == 0 {
		return f
	}
	idx := indexOf(opts, f.Get(field))
	if idx < 0 {
		idx = 0
	}
	idx = ((idx+delta)%len(opts) + len(opts)) % len(opts)
	return f.With(field, opts[idx])
}

// IsDefault reports whether no filter narrows the search.
func (f SearchFilters) IsDefault() bool {
	return f.Normalize() == DefaultFilters()
}

func indexOf(values []string, v string) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}
	return -1
}
