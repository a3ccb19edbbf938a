package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slopescroller/common"
	"github.com/milk9111/slopescroller/debugdraw"
	"github.com/milk9111/slopescroller/levels"
	"github.com/milk9111/slopescroller/physics"
	"github.com/milk9111/slopescroller/prefabs"
	"github.com/milk9111/slopescroller/world"
	"go.uber.org/zap"
)

var errQuit = errors.New("quit")

var background = color.NRGBA{R: 0x18, G: 0x1c, B: 0x2c, A: 0xff}

type Config struct {
	Level     string
	Character string
	Debug     bool
	Watch     bool
	Parallel  bool
	Seed      int64
	Metrics   *world.Metrics
}

// randomLevel selects a generated terrain instead of an embedded level.
const randomLevel = "random"

func loadStage(cfg Config, palette *levels.Palette, logger *zap.Logger) (*levels.Stage, error) {
	if cfg.Level != randomLevel {
		return levels.Load(cfg.Level, palette, logger)
	}
	lvl, err := levels.Generate(levels.DefaultTerrain(cfg.Seed))
	if err != nil {
		return nil, err
	}
	return levels.Build(lvl, palette, logger)
}

type Game struct {
	frames int
	debug  bool

	logger   *zap.Logger
	world    *world.World
	player   *physics.Actor
	camera   *world.Camera
	input    *Input
	renderer *debugdraw.Renderer

	roster     *prefabs.Roster
	characters []string
	character  int
	spec       *prefabs.CharacterSpec
	watcher    *prefabs.Watcher
}

func NewGame(cfg Config, logger *zap.Logger) (*Game, error) {
	stage, err := loadStage(cfg, levels.NewPalette(physics.NewMaskCache()), logger)
	if err != nil {
		return nil, err
	}

	w := world.New(stage,
		world.WithLogger(logger),
		world.WithParallel(cfg.Parallel),
		world.WithMetrics(cfg.Metrics),
	)

	g := &Game{
		debug:      cfg.Debug,
		logger:     logger,
		world:      w,
		camera:     world.NewCamera(common.BaseWidth, common.BaseHeight),
		input:      NewInput(),
		renderer:   debugdraw.NewRenderer(),
		roster:     prefabs.NewRoster(logger),
		characters: prefabs.Names(),
	}
	g.camera.SetBounds(stage.Bounds())

	for i, name := range g.characters {
		if name == cfg.Character {
			g.character = i
		}
	}
	g.spec, err = g.roster.Get(cfg.Character)
	if err != nil {
		return nil, err
	}

	g.player = g.world.Spawn(
		physics.WithTuning(g.spec.Tuning(physics.DefaultTuning())),
		physics.WithLogger(logger),
	)
	g.camera.SnapTo(g.player.Position())

	if cfg.Watch {
		g.watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.Warn("character hot reload disabled", zap.Error(err))
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.reloadCharacters()

	g.input.Update()
	if g.input.QuitPressed {
		return errQuit
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.RespawnPressed {
		g.player.Respawn(g.world.Stage().Spawn())
	}
	if g.input.CharacterPressed && len(g.characters) > 0 {
		g.character = (g.character + 1) % len(g.characters)
		if err := g.switchCharacter(g.characters[g.character]); err != nil {
			g.logger.Error("switch character", zap.Error(err))
		}
	}

	g.input.Apply(g.player)
	if err := g.world.Step(context.Background(), common.TickDuration); err != nil {
		return err
	}
	g.camera.Follow(g.player.Position())
	return nil
}

func (g *Game) switchCharacter(name string) error {
	spec, err := g.roster.Get(name)
	if err != nil {
		return err
	}
	g.spec = spec
	g.player.SetTuning(spec.Tuning(physics.DefaultTuning()))
	return nil
}

// reloadCharacters applies edited character files without blocking.
func (g *Game) reloadCharacters() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			spec, err := g.roster.ReloadFile(path)
			if err != nil {
				g.logger.Warn("reload character", zap.String("path", path), zap.Error(err))
				continue
			}
			if spec.Name == g.spec.Name {
				g.spec = spec
				g.player.SetTuning(spec.Tuning(physics.DefaultTuning()))
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watch characters", zap.Error(err))
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cam := g.camera.Center()
	g.renderer.DrawStage(screen, g.world.Stage(), cam)
	if g.debug {
		debugdraw.DrawSpace(screen, g.world.Stage().Space(), cam)
	}
	g.renderer.DrawActor(screen, g.player, cam, g.spec.BodyColor())

	if g.debug {
		debugdraw.DrawHUD(screen, g.player, fmt.Sprintf("Character: %s\nFrames: %d  FPS: %.2f", g.spec.Name, g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
