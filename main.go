package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/meghashyamc/optics2d/config"
	"github.com/meghashyamc/optics2d/game"
	"github.com/meghashyamc/optics2d/logger"
	"github.com/meghashyamc/optics2d/render"
	"github.com/meghashyamc/optics2d/scene"
	"github.com/meghashyamc/optics2d/scenefile"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}

	if cfg.GetHeadless() {
		if err := snapshot(cfg); err != nil {
			slog.Error("error writing snapshot", "err", err)
			os.Exit(1)
		}
		return
	}

	g, err := game.NewGame(cfg)
	if err != nil {
		slog.Error("error creating game", "err", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		slog.Error("error running game", "err", err)
		os.Exit(1)
	}
}

// snapshot traces the configured scene once and writes it as a PNG.
func snapshot(cfg *config.Config) error {
	log := logger.NewWithLevel(cfg.GetLogLevel())

	doc, err := scenefile.Open(cfg.GetSceneFile())
	if err != nil {
		return err
	}
	s := scene.New(scene.WithLogger(log), scene.WithMaxExtensions(cfg.GetMaxExtensions()))
	if err := doc.Populate(s); err != nil {
		return err
	}

	report := s.TraceAll()
	log.Info("scene traced", append([]interface{}{
		"scene", doc.Name,
		"target_hits", len(report.TargetHits),
		"collisions", len(report.Collisions),
		"runaway", len(report.Runaway),
		"events", s.Stats().Total(),
	}, s.Stats().KeyVals()...)...)

	r, err := render.New(cfg.GetWindowWidth(), cfg.GetWindowHeight())
	if err != nil {
		return err
	}
	path := cfg.GetSnapshotFile()
	if err := r.SavePNG(s, path); err != nil {
		return err
	}
	log.Info("snapshot saved", "path", path)
	return nil
}
