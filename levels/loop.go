package levels

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/physics"
)

const (
	defaultLoopRadius    = 96
	defaultLoopThickness = 16
	defaultLoopSegments  = 32
	defaultLoopGapFrom   = 270
	defaultLoopGapTo     = 360
)

// Loop is a ring of solid segments centred on a point. The inner face
// is the running surface: the segment at arc position phi has surface
// angle phi, so phi 0 is the floor at the bottom and 180 the ceiling.
type Loop struct {
	Center    cp.Vector
	Radius    int
	Thickness int
	Segments  int
	// GapFrom and GapTo leave an opening so the ring can be entered.
	GapFrom, GapTo float64
}

func loopFromEntity(e Entity) (Loop, error) {
	l := Loop{Center: cp.Vector{X: float64(e.X), Y: float64(e.Y)}}
	var radius, thickness, segments float64
	fields := []struct {
		key string
		def float64
		dst *float64
	}{
		{"radius", defaultLoopRadius, &radius},
		{"thickness", defaultLoopThickness, &thickness},
		{"segments", defaultLoopSegments, &segments},
		{"gap_from", defaultLoopGapFrom, &l.GapFrom},
		{"gap_to", defaultLoopGapTo, &l.GapTo},
	}
	for _, f := range fields {
		v, err := e.Float(f.key, f.def)
		if err != nil {
			return Loop{}, err
		}
		*f.dst = v
	}
	l.Radius, l.Thickness, l.Segments = int(radius), int(thickness), int(segments)

	if l.Radius <= 0 || l.Thickness <= 0 || l.Segments < 4 {
		return Loop{}, fmt.Errorf("%w: loop at (%d, %d) needs radius, thickness > 0 and 4+ segments", ErrInvalidLayout, e.X, e.Y)
	}
	return l, nil
}

// arc is the position of the pixel centre (dx, dy) around the ring, in
// [0, 360), measured from straight down towards the right.
func arc(dx, dy float64) float64 {
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

func (l Loop) inGap(phi float64) bool {
	return phi >= l.GapFrom && phi < l.GapTo
}

// Obstacles cuts the ring into one obstacle per segment. Segment masks
// go through cache; mirrored loops of the same size share most of them.
func (l Loop) Obstacles(cache *physics.MaskCache) []*physics.Obstacle {
	outer := l.Radius + l.Thickness
	step := 360 / float64(l.Segments)
	cx := int(math.Floor(l.Center.X))
	cy := int(math.Floor(l.Center.Y))

	type span struct {
		minX, minY, maxX, maxY int
		pixels                 [][2]int
	}
	spans := make([]span, l.Segments)
	for i := range spans {
		spans[i] = span{minX: math.MaxInt, minY: math.MaxInt, maxX: math.MinInt, maxY: math.MinInt}
	}

	r2in := float64(l.Radius * l.Radius)
	r2out := float64(outer * outer)
	for y := -outer; y < outer; y++ {
		for x := -outer; x < outer; x++ {
			dx, dy := float64(x)+0.5, float64(y)+0.5
			d2 := dx*dx + dy*dy
			if d2 < r2in || d2 >= r2out {
				continue
			}
			phi := arc(dx, dy)
			if l.inGap(phi) {
				continue
			}
			i := min(int(phi/step), l.Segments-1)
			s := &spans[i]
			s.minX, s.maxX = min(s.minX, x), max(s.maxX, x)
			s.minY, s.maxY = min(s.minY, y), max(s.maxY, y)
			s.pixels = append(s.pixels, [2]int{x, y})
		}
	}

	var out []*physics.Obstacle
	for i, s := range spans {
		if len(s.pixels) == 0 {
			continue
		}
		img := image.NewAlpha(image.Rect(0, 0, s.maxX-s.minX+1, s.maxY-s.minY+1))
		for _, p := range s.pixels {
			img.SetAlpha(p[0]-s.minX, p[1]-s.minY, color.Alpha{A: 0xff})
		}
		angle := int(math.Round((float64(i) + 0.5) * step))
		pos := cp.Vector{X: float64(cx + s.minX), Y: float64(cy + s.minY)}
		out = append(out, physics.NewSolidObstacle(cache.FromImage(img), angle, pos))
	}
	return out
}
