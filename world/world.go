package world

import (
	"context"
	"math"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/slopescroller/levels"
	"github.com/milk9111/slopescroller/physics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// queryMargin pads the area searched for obstacles around an actor;
	// it covers the longest sensor plus a frame of travel at rest.
	queryMargin = 64.0
	// fallLimit is how far below the stage an actor may drop before it
	// is respawned.
	fallLimit = 256.0
)

// World steps a set of actors over one stage.
type World struct {
	logger   *zap.Logger
	stage    *levels.Stage
	parallel bool
	metrics  *Metrics

	actors []*physics.Actor
	maps   map[uuid.UUID]*physics.ObstacleMap
}

type Option func(*World)

func WithLogger(logger *zap.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithParallel updates actors concurrently. Obstacle maps are still
// filled one actor at a time.
func WithParallel(parallel bool) Option {
	return func(w *World) { w.parallel = parallel }
}

func WithMetrics(m *Metrics) Option {
	return func(w *World) { w.metrics = m }
}

func New(stage *levels.Stage, opts ...Option) *World {
	w := &World{
		logger: zap.NewNop(),
		stage:  stage,
		maps:   make(map[uuid.UUID]*physics.ObstacleMap),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) Stage() *levels.Stage { return w.stage }

// Spawn creates an actor at the stage spawn point.
func (w *World) Spawn(opts ...physics.ActorOption) *physics.Actor {
	a := physics.NewActor(w.stage.Spawn(), opts...)
	w.Add(a)
	return a
}

func (w *World) Add(a *physics.Actor) {
	if _, ok := w.maps[a.ID()]; ok {
		return
	}
	w.actors = append(w.actors, a)
	w.maps[a.ID()] = physics.NewObstacleMap()
	w.logger.Info("actor added", zap.Stringer("actor", a.ID()))
}

func (w *World) Remove(id uuid.UUID) bool {
	if _, ok := w.maps[id]; !ok {
		return false
	}
	delete(w.maps, id)
	for i, a := range w.actors {
		if a.ID() == id {
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			break
		}
	}
	w.logger.Info("actor removed", zap.Stringer("actor", id))
	return true
}

func (w *World) Actor(id uuid.UUID) (*physics.Actor, bool) {
	for _, a := range w.actors {
		if a.ID() == id {
			return a, true
		}
	}
	return nil, false
}

func (w *World) Actors() []*physics.Actor { return w.actors }

// ObstacleMap is the map the actor was last updated against.
func (w *World) ObstacleMap(id uuid.UUID) *physics.ObstacleMap {
	return w.maps[id]
}

// Step advances platforms, carries the actors riding them, then updates
// every actor against a map of the obstacles around it.
func (w *World) Step(ctx context.Context, dt float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	w.movePlatforms(dt)

	for _, a := range w.actors {
		m := w.maps[a.ID()]
		w.stage.FillMap(m, w.area(a, dt))
		w.metrics.observeMap(m.Len())
	}

	if w.parallel && len(w.actors) > 1 {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, a := range w.actors {
			m := w.maps[a.ID()]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				a.Update(m, dt)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	} else {
		for _, a := range w.actors {
			a.Update(w.maps[a.ID()], dt)
		}
	}

	w.respawnFallen()
	w.metrics.observeStep(start, len(w.actors))
	return nil
}

func (w *World) movePlatforms(dt float64) {
	platforms := w.stage.Platforms()
	if len(platforms) == 0 || dt <= 0 {
		return
	}

	riders := make([][]*physics.Actor, len(platforms))
	for i, p := range platforms {
		for _, a := range w.actors {
			if a.IsStandingOn(p.Obstacle()) {
				riders[i] = append(riders[i], a)
			}
		}
	}

	w.stage.Update(dt)

	for i, p := range platforms {
		delta := p.Delta()
		for _, a := range riders[i] {
			a.SetPosition(a.Position().Add(delta))
		}
	}
}

func (w *World) area(a *physics.Actor, dt float64) cp.BB {
	reach := queryMargin + math.Hypot(a.Xsp(), a.Ysp())*max(dt, 0)
	return cp.NewBBForExtents(a.Position(), reach, reach)
}

func (w *World) respawnFallen() {
	limit := w.stage.Bounds().T + fallLimit
	for _, a := range w.actors {
		if a.Position().Y > limit {
			w.logger.Info("actor respawned",
				zap.Stringer("actor", a.ID()),
				zap.Float64("y", a.Position().Y),
			)
			a.Respawn(w.stage.Spawn())
			w.metrics.observeRespawn()
		}
	}
}
