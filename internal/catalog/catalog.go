// Package catalog holds the static metadata of every game in the arcade:
// slug, title, description, category, cover image and controls.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category groups games in menus.
type Category string

const (
	CategoryArcade Category = "Arcade"
	CategoryPuzzle Category = "Puzzle"
	CategoryAction Category = "Action"
	CategoryModern Category = "Modern"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryArcade, CategoryPuzzle, CategoryAction, CategoryModern}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Entry describes one playable game.
type Entry struct {
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    Category `yaml:"category"`
	Image       string   `yaml:"image"`
	ImageHint   string   `yaml:"image_hint"`
	Controls    []string `yaml:"controls"`
}

//go:embed games.yaml
var gamesYAML []byte

var (
	loadOnce sync.Once
	entries  []Entry
	bySlug   map[string]int
)

// Parse decodes and validates a catalog document.
func Parse(data []byte) ([]Entry, error) {
	var doc struct {
		Games []Entry `yaml:"games"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	if len(doc.Games) == 0 {
		return nil, errors.New("catalog: no games defined")
	}

	seen := make(map[string]bool, len(doc.Games))
	for i, e := range doc.Games {
		switch {
		case e.Slug == "":
			return nil, fmt.Errorf("catalog: entry %d has no slug", i)
		case seen[e.Slug]:
			return nil, fmt.Errorf("catalog: duplicate slug %q", e.Slug)
		case e.Title == "":
			return nil, fmt.Errorf("catalog: %q has no title", e.Slug)
		case !e.Category.Valid():
			return nil, fmt.Errorf("catalog: %q has unknown category %q", e.Slug, e.Category)
		}
		seen[e.Slug] = true
	}
	return doc.Games, nil
}

func load() {
	loadOnce.Do(func() {
		parsed, err := Parse(gamesYAML)
		if err != nil {
			panic(err)
		}
		entries = parsed
		bySlug = make(map[string]int, len(parsed))
		for i, e := range parsed {
			bySlug[e.Slug] = i
		}
	})
}

// All returns every catalog entry in display order.
func All() []Entry {
	load()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// BySlug looks up a single entry.
func BySlug(slug string) (Entry, bool) {
	load()
	i, ok := bySlug[slug]
	if !ok {
		return Entry{}, false
	}
	return entries[i], true
}

// ByCategory returns the entries of one category in display order.
func ByCategory(c Category) []Entry {
	load()
	var out []Entry
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Grouped returns all entries ordered by category, then display order.
func Grouped() []Entry {
	var out []Entry
	for _, c := range Categories() {
		out = append(out, ByCategory(c)...)
	}
	return out
}
