package levels

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/common"
	"github.com/milk9111/slopescroller/physics"
	"go.uber.org/zap"
)

// Stage is a built level: static bricks indexed in a chipmunk space for
// area queries, plus moving platforms.
type Stage struct {
	name      string
	logger    *zap.Logger
	width     int
	height    int
	spawn     cp.Vector
	space     *cp.Space
	static    []*physics.Obstacle
	platforms []*Platform
	loops     []Loop
	elapsed   float64
}

// Load reads an embedded level and builds it.
func Load(name string, palette *Palette, logger *zap.Logger) (*Stage, error) {
	lvl, err := LoadLevelFromFS(name)
	if err != nil {
		return nil, err
	}
	return Build(lvl, palette, logger)
}

// Build turns a validated level into obstacles.
func Build(lvl *Level, palette *Palette, logger *zap.Logger) (*Stage, error) {
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: %s: %w", lvl.Name, err)
	}
	if palette == nil {
		palette = NewPalette(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Stage{
		name:   lvl.Name,
		logger: logger.With(zap.String("level", lvl.Name)),
		width:  lvl.Columns() * common.TileSize,
		height: lvl.RowCount() * common.TileSize,
		space:  cp.NewSpace(),
	}

	for ty, row := range lvl.Rows {
		for tx, glyph := range []rune(row) {
			if glyph == Empty || glyph == ' ' {
				continue
			}
			brick, ok := palette.Brick(glyph)
			if !ok {
				return nil, fmt.Errorf("levels: %s: %w: unknown brick %q at (%d, %d)", lvl.Name, ErrInvalidLayout, glyph, tx, ty)
			}
			s.addStatic(brick.Obstacle(float64(tx*common.TileSize), float64(ty*common.TileSize)))
		}
	}

	for _, e := range lvl.Entities {
		switch e.Type {
		case EntitySpawn:
			s.spawn = cp.Vector{X: float64(e.X), Y: float64(e.Y)}
		case EntityLoop:
			loop, err := loopFromEntity(e)
			if err != nil {
				return nil, fmt.Errorf("levels: %s: %w", lvl.Name, err)
			}
			for _, o := range loop.Obstacles(palette.Cache()) {
				s.addStatic(o)
			}
			s.loops = append(s.loops, loop)
		case EntityPlatform:
			p, err := platformFromEntity(e, palette.Cache())
			if err != nil {
				return nil, fmt.Errorf("levels: %s: %w", lvl.Name, err)
			}
			s.platforms = append(s.platforms, p)
		}
	}

	s.logger.Info("level built",
		zap.Int("width", s.width),
		zap.Int("height", s.height),
		zap.Int("obstacles", len(s.static)),
		zap.Int("platforms", len(s.platforms)),
		zap.Int("loops", len(s.loops)),
		zap.Int("masks", palette.Cache().Len()),
	)
	return s, nil
}

func (s *Stage) addStatic(o *physics.Obstacle) {
	shape := cp.NewBox2(s.space.StaticBody, o.Bounds(), 0)
	shape.UserData = o
	s.space.AddShape(shape)
	s.static = append(s.static, o)
}

func (s *Stage) Name() string     { return s.name }
func (s *Stage) Spawn() cp.Vector { return s.spawn }

// Bounds is the pixel extent of the tile grid.
func (s *Stage) Bounds() cp.BB {
	return cp.BB{L: 0, B: 0, R: float64(s.width), T: float64(s.height)}
}

func (s *Stage) Space() *cp.Space            { return s.space }
func (s *Stage) Platforms() []*Platform      { return s.platforms }
func (s *Stage) Loops() []Loop               { return s.loops }
func (s *Stage) Static() []*physics.Obstacle { return s.static }
func (s *Stage) Elapsed() float64            { return s.elapsed }

// Update advances the moving platforms by dt seconds.
func (s *Stage) Update(dt float64) {
	if dt <= 0 {
		return
	}
	s.elapsed += dt
	for _, p := range s.platforms {
		p.Advance(s.elapsed)
	}
}

// FillMap resets m and adds every obstacle whose bounds touch area.
func (s *Stage) FillMap(m *physics.ObstacleMap, area cp.BB) {
	m.Reset()
	s.space.BBQuery(area, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if o, ok := shape.UserData.(*physics.Obstacle); ok {
			m.AddObstacle(o)
		}
	}, nil)
	for _, p := range s.platforms {
		if p.obstacle.Bounds().Intersects(area) {
			m.AddObstacle(p.obstacle)
		}
	}
}
