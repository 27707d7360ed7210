// Package listing holds the filter/paginate view state for the news page.
// Everything operates over the single snapshot taken at Load time: changing
// filters or pages never triggers another fetch, which bounds remote query
// cost to one call per listing session at the price of only ever seeing the
// most recent posts.
package listing

import (
	"fmt"
	"strings"

	"github.com/ErosMello/jornalescolar/models"
)

const DefaultPageSize = 9

// State is owned by the caller and mutated through its methods only.
type State struct {
	Page     int
	PageSize int
	Query    string
	Category string

	posts []models.Post
}

func NewState() *State {
	return &State{Page: 1, PageSize: DefaultPageSize}
}

// Load replaces the snapshot. Filters and page position are left alone;
// callers pass nil on fetch failure so rendering falls back to the empty
// state instead of stale data.
func (s *State) Load(posts []models.Post) {
	s.posts = posts
}

// ApplyFilters normalizes the query (trimmed, lowercased), sets the
// category and rewinds to the first page.
func (s *State) ApplyFilters(query, category string) {
	s.Query = strings.ToLower(strings.TrimSpace(query))
	s.Category = category
	s.Page = 1
}

// SetPageSize rewinds to the first page. Non-positive sizes are ignored.
func (s *State) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	s.PageSize = n
	s.Page = 1
}

func (s *State) NextPage() {
	if s.Page < s.LastPage() {
		s.Page++
	}
}

func (s *State) PrevPage() {
	if s.Page > 1 {
		s.Page--
	}
}

// Matches returns the snapshot entries passing the current filters: the
// query must be a substring of the lowercased title+content+author and the
// category, when set, must match exactly.
func (s *State) Matches() []models.Post {
	var out []models.Post
	for _, p := range s.posts {
		if s.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *State) matches(p models.Post) bool {
	if s.Category != "" && p.Category != s.Category {
		return false
	}
	if s.Query == "" {
		return true
	}
	hay := strings.ToLower(p.Title + " " + p.Content + " " + p.Author)
	return strings.Contains(hay, s.Query)
}

// Visible returns the slice of matches for the current page.
func (s *State) Visible() []models.Post {
	matches := s.Matches()
	start := (s.Page - 1) * s.PageSize
	if start >= len(matches) {
		return nil
	}
	end := start + s.PageSize
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end]
}

func (s *State) TotalMatches() int {
	return len(s.Matches())
}

// LastPage is never below 1, even with zero matches.
func (s *State) LastPage() int {
	total := s.TotalMatches()
	last := (total + s.PageSize - 1) / s.PageSize
	if last < 1 {
		return 1
	}
	return last
}

func (s *State) PageLabel() string {
	return fmt.Sprintf("page %d of %d", s.Page, s.LastPage())
}
