package levels

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
	"github.com/milk9111/slopescroller/physics"
)

const platformThickness = 16

// Platform is a brick travelling on an ellipse around its spawn point:
//
//	x = x0 + round(rx cos(sx t + phase))
//	y = y0 + round(ry sin(sy t + phase))
//
// Speeds are in radians per second.
type Platform struct {
	obstacle *physics.Obstacle
	origin   cp.Vector
	rx, ry   float64
	sx, sy   float64
	phase    float64
	delta    cp.Vector
}

func platformFromEntity(e Entity, cache *physics.MaskCache) (*Platform, error) {
	vals := map[string]float64{}
	defaults := []struct {
		key string
		def float64
	}{
		{"width", 3},
		{"rx", 0},
		{"ry", 0},
		{"speed_x", 1},
		{"speed_y", 1},
		{"phase", 0},
	}
	for _, d := range defaults {
		v, err := e.Float(d.key, d.def)
		if err != nil {
			return nil, err
		}
		vals[d.key] = v
	}
	oneWay, err := e.Bool("cloud", false)
	if err != nil {
		return nil, err
	}

	tiles := int(vals["width"])
	if tiles <= 0 {
		return nil, fmt.Errorf("%w: platform at (%d, %d) has width %d", ErrInvalidLayout, e.X, e.Y, tiles)
	}

	thickness := platformThickness
	if oneWay {
		thickness = cloudThickness
	}
	mask := cache.FromImage(slabImage(tiles*common.TileSize, thickness))

	origin := cp.Vector{X: float64(e.X), Y: float64(e.Y)}
	p := &Platform{
		origin: origin,
		rx:     vals["rx"],
		ry:     vals["ry"],
		sx:     vals["speed_x"],
		sy:     vals["speed_y"],
		phase:  vals["phase"],
	}
	if oneWay {
		p.obstacle = physics.NewOneWayObstacle(mask, 0, origin)
	} else {
		p.obstacle = physics.NewSolidObstacle(mask, 0, origin)
	}
	p.obstacle.MoveTo(p.At(0))
	return p, nil
}

// At is the top-left corner at time t seconds.
func (p *Platform) At(t float64) cp.Vector {
	return cp.Vector{
		X: p.origin.X + math.Round(p.rx*math.Cos(p.sx*t+p.phase)),
		Y: p.origin.Y + math.Round(p.ry*math.Sin(p.sy*t+p.phase)),
	}
}

// Advance moves the platform to its position at time t and records the
// displacement since the previous position.
func (p *Platform) Advance(t float64) cp.Vector {
	prev := p.obstacle.Position()
	next := p.At(t)
	p.obstacle.MoveTo(next)
	p.delta = next.Sub(prev)
	return p.delta
}

// Delta is the displacement of the last Advance.
func (p *Platform) Delta() cp.Vector { return p.delta }

func (p *Platform) Obstacle() *physics.Obstacle { return p.obstacle }
