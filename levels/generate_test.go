package levels

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
	"github.com/milk9111/slopescroller/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// surfaceRows returns the first non-empty row of every column, ignoring
// clouds.
func surfaceRows(lvl *Level) []int {
	tops := make([]int, lvl.Columns())
	for x := range tops {
		tops[x] = lvl.RowCount()
		for y, row := range lvl.Rows {
			g := []rune(row)[x]
			if g != Empty && g != '=' {
				tops[x] = y
				break
			}
		}
	}
	return tops
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(DefaultTerrain(7))
	require.NoError(t, err)
	b, err := Generate(DefaultTerrain(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "terrain-7", a.Name)

	c, err := Generate(DefaultTerrain(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Rows, c.Rows)
}

func TestGenerateShape(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42} {
		terrain := DefaultTerrain(seed)
		lvl, err := Generate(terrain)
		require.NoError(t, err)
		require.Equal(t, terrain.Columns, lvl.Columns())
		require.Equal(t, terrain.Rows, lvl.RowCount())

		for y, row := range lvl.Rows {
			assert.Equal(t, '#', []rune(row)[0], "left wall row %d", y)
			assert.Equal(t, '#', []rune(row)[terrain.Columns-1], "right wall row %d", y)
		}

		tops := surfaceRows(lvl)
		for x := 2; x < terrain.Columns-1; x++ {
			step := tops[x] - tops[x-1]
			assert.LessOrEqual(t, step, 1, "seed %d column %d", seed, x)
			assert.GreaterOrEqual(t, step, -1, "seed %d column %d", seed, x)

			g := []rune(lvl.Rows[tops[x]])[x]
			switch {
			case step < 0:
				assert.Equal(t, '/', g, "seed %d column %d", seed, x)
			case x+1 < terrain.Columns-1 && tops[x+1] > tops[x]:
				assert.Equal(t, '\\', g, "seed %d column %d", seed, x)
			default:
				assert.Equal(t, '#', g, "seed %d column %d", seed, x)
			}
		}
		assert.GreaterOrEqual(t, minInt(tops[1:terrain.Columns-1]), terrain.Rows-3-terrain.Amplitude)
	}
}

func minInt(v []int) int {
	m := v[0]
	for _, x := range v[1:] {
		m = min(m, x)
	}
	return m
}

func TestGenerateRejectsTinyTerrain(t *testing.T) {
	_, err := Generate(Terrain{Seed: 1, Columns: 4, Rows: 16, Amplitude: 2})
	assert.ErrorIs(t, err, ErrInvalidLayout)
	_, err = Generate(Terrain{Seed: 1, Columns: 40, Rows: 6, Amplitude: 4})
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestGeneratedTerrainIsWalkable(t *testing.T) {
	lvl, err := Generate(DefaultTerrain(3))
	require.NoError(t, err)
	s, err := Build(lvl, nil, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s.Name(), "terrain-"))

	a := physics.NewActor(s.Spawn())
	m := physics.NewObstacleMap()
	for i := 0; i < 60; i++ {
		s.FillMap(m, cp.NewBBForExtents(a.Position(), 64, 64))
		a.Update(m, common.TickDuration)
	}
	assert.False(t, a.IsInTheAir())
}
