package stage

import (
	"math"
	"testing"

	"agrifusion/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRedirects(t *testing.T) {
	redirects := map[string]string{}
	for _, s := range Catalog() {
		redirects[s.Key] = s.Redirect
	}
	assert.Equal(t, map[string]string{
		"soil":       "",
		"seed":       "seed_selection.html",
		"irrigation": "irrigation.html",
		"disease":    "disease.html",
		"fertilizer": "",
		"harvest":    "",
		"storage":    "fertiliser.html",
		"next":       "next_crop.html",
	}, redirects)

	keys := make([]string, 0)
	for _, s := range Catalog() {
		keys = append(keys, s.Key)
	}
	assert.Equal(t, []string{"soil", "seed", "irrigation", "disease", "fertilizer", "harvest", "storage", "next"}, keys)
}

func TestLayout(t *testing.T) {
	pos, err := Layout(domain.LayoutRequest{Width: 400, Height: 400, ElementWidth: 80, ElementHeight: 80})
	require.NoError(t, err)
	require.Len(t, pos, 8)

	// first element sits on the positive x axis
	assert.InDelta(t, 200+150-40, pos[0].Left, 1e-9)
	assert.InDelta(t, 200-40, pos[0].Top, 1e-9)
	// fifth is opposite
	assert.InDelta(t, 200-150-40, pos[4].Left, 1e-9)
	assert.InDelta(t, 200-40, pos[4].Top, 1e-9)

	for _, p := range pos {
		dx := p.Left + 40 - 200
		dy := p.Top + 40 - 200
		assert.InDelta(t, 150, math.Hypot(dx, dy), 1e-9)
	}

	_, err = Layout(domain.LayoutRequest{Width: 0, Height: 400})
	assert.ErrorIs(t, err, domain.ErrInvalidLayout)
}

func TestSelect(t *testing.T) {
	sel, err := Select("seed")
	require.NoError(t, err)
	assert.Equal(t, domain.StageSelection{Active: "seed", Stage: sel.Stage, Redirect: "seed_selection.html"}, sel)
	assert.Equal(t, "Seed Selection", sel.Stage.Title)

	sel, err = Select("harvest")
	require.NoError(t, err)
	assert.Equal(t, "harvest", sel.Active)
	assert.Empty(t, sel.Redirect)

	_, err = Select("weeding")
	assert.ErrorIs(t, err, domain.ErrUnknownStage)
}
