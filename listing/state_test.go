package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ErosMello/jornalescolar/models"
)

func postsWithTitles(titles ...string) []models.Post {
	out := make([]models.Post, len(titles))
	for i, title := range titles {
		out[i] = models.Post{Title: title, Author: "prof@prof.educacao.sp.gov.br"}
	}
	return out
}

func TestApplyFilters(t *testing.T) {
	t.Run("case-insensitive substring over title content author", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles("Feira de Ciências", "Reunião de Pais"))

		s.ApplyFilters("feira", "")
		matches := s.Matches()
		require.Len(t, matches, 1)
		require.Equal(t, "Feira de Ciências", matches[0].Title)
	})

	t.Run("query is trimmed and lowercased", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles("Feira de Ciências"))

		s.ApplyFilters("  FEIRA  ", "")
		require.Equal(t, "feira", s.Query)
		require.Len(t, s.Matches(), 1)
	})

	t.Run("category must match exactly", func(t *testing.T) {
		s := NewState()
		s.Load([]models.Post{
			{Title: "a", Category: "esportes"},
			{Title: "b", Category: "eventos"},
		})

		s.ApplyFilters("", "esportes")
		matches := s.Matches()
		require.Len(t, matches, 1)
		require.Equal(t, "a", matches[0].Title)

		s.ApplyFilters("", "esporte")
		require.Empty(t, s.Matches())
	})

	t.Run("query matches content and author too", func(t *testing.T) {
		s := NewState()
		s.Load([]models.Post{{Title: "x", Content: "gincana amanhã", Author: "maria@prof.educacao.sp.gov.br"}})

		s.ApplyFilters("gincana", "")
		require.Len(t, s.Matches(), 1)

		s.ApplyFilters("maria", "")
		require.Len(t, s.Matches(), 1)
	})

	t.Run("changing filters rewinds to page one", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles(manyTitles(20)...))
		s.NextPage()
		require.Equal(t, 2, s.Page)

		s.ApplyFilters("", "")
		require.Equal(t, 1, s.Page)
	})
}

func manyTitles(n int) []string {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = fmt.Sprintf("post %02d", i)
	}
	return titles
}

func TestPagination(t *testing.T) {
	t.Run("ten matches at page size nine give two pages", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles(manyTitles(10)...))

		require.Equal(t, 2, s.LastPage())
		require.Len(t, s.Visible(), 9)

		s.NextPage()
		require.Equal(t, 2, s.Page)
		require.Len(t, s.Visible(), 1)

		// clamped at the last page
		s.NextPage()
		require.Equal(t, 2, s.Page)
	})

	t.Run("prev page never goes below one", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles(manyTitles(3)...))

		s.PrevPage()
		require.Equal(t, 1, s.Page)
	})

	t.Run("zero matches still report one page", func(t *testing.T) {
		s := NewState()
		s.Load(nil)

		require.Equal(t, 1, s.LastPage())
		require.Empty(t, s.Visible())
		require.Equal(t, "page 1 of 1", s.PageLabel())
	})

	t.Run("page size change rewinds to page one", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles(manyTitles(20)...))
		s.NextPage()

		s.SetPageSize(5)
		require.Equal(t, 1, s.Page)
		require.Equal(t, 4, s.LastPage())
		require.Len(t, s.Visible(), 5)
	})

	t.Run("non-positive page size is ignored", func(t *testing.T) {
		s := NewState()
		s.SetPageSize(0)
		require.Equal(t, DefaultPageSize, s.PageSize)
		s.SetPageSize(-3)
		require.Equal(t, DefaultPageSize, s.PageSize)
	})

	t.Run("label reflects position", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles(manyTitles(10)...))
		s.NextPage()
		require.Equal(t, "page 2 of 2", s.PageLabel())
	})
}

func TestLoad(t *testing.T) {
	t.Run("load replaces the snapshot without touching filters", func(t *testing.T) {
		s := NewState()
		s.ApplyFilters("feira", "eventos")
		s.Load(postsWithTitles("Feira de Ciências"))

		require.Equal(t, "feira", s.Query)
		require.Equal(t, "eventos", s.Category)
	})

	t.Run("nil load falls back to the empty state", func(t *testing.T) {
		s := NewState()
		s.Load(postsWithTitles("a"))
		s.Load(nil)

		require.Zero(t, s.TotalMatches())
	})
}
