package all

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retrovault/internal/catalog"
	"github.com/vovakirdan/retrovault/internal/config"
	"github.com/vovakirdan/retrovault/internal/core"
	"github.com/vovakirdan/retrovault/internal/registry"
)

func TestCatalogMatchesRegistry(t *testing.T) {
	registered := map[string]bool{}
	for _, info := range registry.List() {
		registered[info.ID] = true
	}
	for _, e := range catalog.All() {
		assert.True(t, registered[e.Slug], "catalog game %q is not registered", e.Slug)
	}
	for id := range registered {
		_, ok := catalog.BySlug(id)
		assert.True(t, ok, "registered game %q is missing from the catalog", id)
	}
	assert.Len(t, catalog.All(), 20)
}

func TestEveryGameRuns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(config.ResetOverrides)

	for _, e := range catalog.All() {
		t.Run(e.Slug, func(t *testing.T) {
			g, err := registry.Create(e.Slug)
			require.NoError(t, err)
			assert.Equal(t, e.Slug, g.ID())
			assert.Equal(t, e.Title, g.Title())

			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
			scr := core.NewScreen(80, 24)
			actions := []core.Action{core.ActionNone, core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionUp, core.ActionDown}
			for i := 0; i < 300; i++ {
				g.Step(core.Frame(actions[i%len(actions)]))
			}
			scr.Clear()
			g.Render(scr)
			assert.GreaterOrEqual(t, g.State().Score, 0)
		})
	}
}
