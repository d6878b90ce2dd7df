package view

import (
	"net/url"
	"sort"
	"strings"

	"github.com/mwhitaker/punchlist/internal/model"
)

// Mode selects one of the three presentation layouts.
type Mode string

const (
	ModeList    Mode = "list"
	ModeCard    Mode = "card"
	ModeCompact Mode = "compact"
)

// State is the UI state that shapes what the page shows. It round-trips
// through the query string so every link and redirect preserves it; nothing
// here is persisted.
type State struct {
	Mode          Mode
	Search        string
	ShowCompleted bool
}

// StateFromQuery parses UI state from query parameters. Unknown view modes
// fall back to the list layout.
func StateFromQuery(q url.Values) State {
	mode := Mode(q.Get("view"))
	switch mode {
	case ModeList, ModeCard, ModeCompact:
	default:
		mode = ModeList
	}
	return State{
		Mode:          mode,
		Search:        q.Get("search"),
		ShowCompleted: q.Get("show_completed") == "1",
	}
}

// Query serializes the state back to query parameters.
func (s State) Query() url.Values {
	q := url.Values{}
	if s.Mode != ModeList {
		q.Set("view", string(s.Mode))
	}
	if s.Search != "" {
		q.Set("search", s.Search)
	}
	if s.ShowCompleted {
		q.Set("show_completed", "1")
	}
	return q
}

// Encode returns the state as a query string, without a leading "?".
func (s State) Encode() string {
	return s.Query().Encode()
}

// Visible computes the projection of todos the page shows: completed items
// are dropped unless ShowCompleted, a non-blank search keeps only items
// with a case-insensitive substring match in title, description, notes, or
// contractor name, and the result is ordered by sort_order ascending with
// input order preserved on ties. The input slice is never mutated.
func Visible(todos []model.Todo, s State) []model.Todo {
	search := strings.ToLower(strings.TrimSpace(s.Search))

	visible := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if t.Completed && !s.ShowCompleted {
			continue
		}
		if search != "" && !matches(t, search) {
			continue
		}
		visible = append(visible, t)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].SortOrder < visible[j].SortOrder
	})
	return visible
}

func matches(t model.Todo, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) {
		return true
	}
	for _, f := range []*string{t.Description, t.Notes, t.ContractorName} {
		if f != nil && strings.Contains(strings.ToLower(*f), search) {
			return true
		}
	}
	return false
}
