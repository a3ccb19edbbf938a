package levels

import (
	"fmt"
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/milk9111/slopescroller/common"
)

// Terrain describes a generated rolling landscape.
type Terrain struct {
	Seed    int64
	Columns int
	Rows    int
	// Amplitude is the largest rise above the base line, in tiles.
	Amplitude int
}

func DefaultTerrain(seed int64) Terrain {
	return Terrain{Seed: seed, Columns: 120, Rows: 16, Amplitude: 5}
}

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	noiseStep    = 0.083
	noiseOffset  = 0.37
	cloudEvery   = 12
)

// Generate builds a level whose ground follows 1D Perlin noise. The
// surface climbs at most one tile per column using 45 degree slopes and
// never turns from rising to falling without a flat tile in between.
func Generate(t Terrain) (*Level, error) {
	if t.Columns < 8 || t.Rows < t.Amplitude+5 {
		return nil, fmt.Errorf("%w: terrain %dx%d too small for amplitude %d", ErrInvalidLayout, t.Columns, t.Rows, t.Amplitude)
	}

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, t.Seed)
	base := t.Rows - 3
	highest := base - t.Amplitude

	tops := make([]int, t.Columns)
	tops[0] = base
	last := 0
	for x := 1; x < t.Columns; x++ {
		n := noise.Noise1D(float64(x)*noiseStep + noiseOffset)
		target := common.ClampInt(base-int(math.Round(n*2*float64(t.Amplitude))), highest, base)

		delta := common.ClampInt(target-tops[x-1], -1, 1)
		if delta != 0 && last != 0 && delta != last {
			delta = 0
		}
		if x == 1 || x >= t.Columns-2 {
			delta = 0
		}
		tops[x] = tops[x-1] + delta
		last = delta
	}

	grid := make([][]rune, t.Rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(Empty), t.Columns))
	}
	for x, top := range tops {
		for y := top; y < t.Rows; y++ {
			grid[y][x] = '#'
		}
		switch {
		case x > 0 && top < tops[x-1]:
			grid[top][x] = '/'
		case x < t.Columns-1 && top < tops[x+1]:
			grid[top][x] = '\\'
		}
		if x%cloudEvery == cloudEvery/2 && top-4 >= 1 && x+2 < t.Columns-1 {
			for c := x; c < x+3; c++ {
				grid[top-4][c] = '='
			}
		}
	}
	for y := range grid {
		grid[y][0] = '#'
		grid[y][t.Columns-1] = '#'
	}

	lvl := &Level{
		Name: fmt.Sprintf("terrain-%d", t.Seed),
		Rows: make([]string, t.Rows),
		Entities: []Entity{{
			Type: EntitySpawn,
			X:    2*common.TileSize + common.TileSize/2,
			Y:    tops[2]*common.TileSize - 40,
		}},
	}
	for y, row := range grid {
		lvl.Rows[y] = string(row)
	}
	return lvl, lvl.Validate()
}
