package levels

import (
	"image"
	"image/color"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
	"github.com/milk9111/slopescroller/physics"
)

// Empty is the glyph of a tile with no brick.
const Empty = '.'

const cloudThickness = 8

// Brick is a reusable tile: a collision mask with its surface angle.
type Brick struct {
	Glyph rune
	Name  string
	Angle int
	Solid bool
	Mask  *physics.CollisionMask
}

// Obstacle places a copy of the brick with its top-left corner at pos.
func (b *Brick) Obstacle(x, y float64) *physics.Obstacle {
	pos := cp.Vector{X: x, Y: y}
	if b.Solid {
		return physics.NewSolidObstacle(b.Mask, b.Angle, pos)
	}
	return physics.NewOneWayObstacle(b.Mask, b.Angle, pos)
}

type Palette struct {
	cache  *physics.MaskCache
	bricks map[rune]*Brick
}

// NewPalette builds the standard brick set. Masks are interned in cache
// so equal shapes share height maps.
func NewPalette(cache *physics.MaskCache) *Palette {
	if cache == nil {
		cache = physics.NewMaskCache()
	}
	p := &Palette{
		cache:  cache,
		bricks: make(map[rune]*Brick),
	}

	const s = common.TileSize
	gentle := common.DegreesOf(s/2, s)

	p.add('#', "block", 0, true, rampImage(s, s, s, false))
	p.add('/', "slope_up", 45, true, rampImage(s, 0, s, false))
	p.add('\\', "slope_down", 315, true, rampImage(s, 0, s, true))
	p.add('a', "gentle_up_low", gentle, true, rampImage(s, 0, s/2, false))
	p.add('b', "gentle_up_high", gentle, true, rampImage(s, s/2, s, false))
	p.add('c', "gentle_down_high", 360-gentle, true, rampImage(s, s/2, s, true))
	p.add('d', "gentle_down_low", 360-gentle, true, rampImage(s, 0, s/2, true))
	p.add('=', "cloud", 0, false, slabImage(s, cloudThickness))
	p.add('-', "ledge", 0, true, slabImage(s, s/2))
	return p
}

func (p *Palette) add(glyph rune, name string, angle int, solid bool, img image.Image) {
	p.bricks[glyph] = &Brick{
		Glyph: glyph,
		Name:  name,
		Angle: angle,
		Solid: solid,
		Mask:  p.cache.FromImage(img),
	}
}

func (p *Palette) Brick(glyph rune) (*Brick, bool) {
	b, ok := p.bricks[glyph]
	return b, ok
}

// Bricks returns every brick sorted by glyph.
func (p *Palette) Bricks() []*Brick {
	out := make([]*Brick, 0, len(p.bricks))
	for _, b := range p.bricks {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Glyph < out[j].Glyph })
	return out
}

func (p *Palette) Cache() *physics.MaskCache { return p.cache }

// rampImage fills each column up to a height growing linearly from
// from to to across the tile, mirrored when descending.
func rampImage(size, from, to int, mirror bool) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	for x := 0; x < size; x++ {
		h := from + ((to-from)*(x+1)+size/2)/size
		col := x
		if mirror {
			col = size - 1 - x
		}
		for y := size - h; y < size; y++ {
			img.SetAlpha(col, y, color.Alpha{A: 0xff})
		}
	}
	return img
}

// slabImage is a full-width strip of the given thickness at the top.
func slabImage(size, thickness int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, size, thickness))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}
