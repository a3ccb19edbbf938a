package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/slopescroller/common"
	"github.com/milk9111/slopescroller/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	levelName := flag.String("level", "hills", "level name in levels/ (basename, .yaml optional), or \"random\"")
	seed := flag.Int64("seed", 0, "terrain seed for -level random (0 picks one from the clock)")
	character := flag.String("character", "surge", "character spec in prefabs/")
	debug := flag.Bool("debug", false, "draw sensors, obstacle boxes and the state HUD")
	watch := flag.Bool("watch", false, "reload character specs from prefabs/ when they change")
	parallel := flag.Bool("parallel", false, "update actors concurrently")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	metricsAddr := flag.String("metrics", "", "serve prometheus metrics on this address, e.g. :2112")
	flag.Parse()

	logger, err := newLogger(*logLevel, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	var metrics *world.Metrics
	if *metricsAddr != "" {
		metrics = world.NewMetrics(prometheus.DefaultRegisterer)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("serving metrics", zap.String("addr", *metricsAddr))
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Error("metrics server", zap.Error(err))
			}
		}()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("slopescroller")
	ebiten.SetTPS(common.TicksPerSecond)

	game, err := NewGame(Config{
		Level:     *levelName,
		Character: *character,
		Debug:     *debug,
		Watch:     *watch,
		Parallel:  *parallel,
		Seed:      *seed,
		Metrics:   metrics,
	}, logger)
	if err != nil {
		logger.Fatal("start", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		logger.Fatal("run", zap.Error(err))
	}
}

func newLogger(level string, development bool) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	return cfg.Build()
}
