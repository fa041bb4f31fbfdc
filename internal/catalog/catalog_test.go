package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 20)

	assert.Equal(t, "snake-classic", all[0].Slug)
	assert.Equal(t, "endless-road", all[len(all)-1].Slug)

	for _, e := range all {
		assert.NotEmpty(t, e.Description, e.Slug)
		assert.NotEmpty(t, e.Image, e.Slug)
		assert.NotEmpty(t, e.Controls, e.Slug)
		assert.True(t, e.Category.Valid(), e.Slug)
	}
}

func TestBySlug(t *testing.T) {
	e, ok := BySlug("2048")
	require.True(t, ok)
	assert.Equal(t, "2048", e.Title)
	assert.Equal(t, CategoryPuzzle, e.Category)

	_, ok = BySlug("pong")
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	counts := map[Category]int{}
	for _, c := range Categories() {
		counts[c] = len(ByCategory(c))
	}

	assert.Equal(t, map[Category]int{
		CategoryArcade: 3,
		CategoryPuzzle: 5,
		CategoryAction: 3,
		CategoryModern: 9,
	}, counts)

	grouped := Grouped()
	require.Len(t, grouped, 20)
	assert.Equal(t, CategoryArcade, grouped[0].Category)
	assert.Equal(t, CategoryModern, grouped[19].Category)
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Title = "changed"
	assert.Equal(t, "Snake Classic", All()[0].Title)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"empty", "games: []", "no games"},
		{"missing slug", "games:\n  - title: X\n    category: Arcade", "no slug"},
		{"duplicate", "games:\n  - {slug: a, title: A, category: Arcade}\n  - {slug: a, title: B, category: Arcade}", "duplicate"},
		{"bad category", "games:\n  - {slug: a, title: A, category: Racing}", "unknown category"},
		{"not yaml", "games: [", "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestMarkdownCard(t *testing.T) {
	e, ok := BySlug("minefield")
	require.True(t, ok)

	md := e.Markdown()
	assert.True(t, strings.HasPrefix(md, "# Minefield\n"))
	assert.Contains(t, md, "## Controls")
	assert.Contains(t, md, "- F: flag")
	assert.Contains(t, md, "[warning sign](")

	rendered := RenderCard(e, 60)
	assert.Contains(t, rendered, "Minefield")
}
