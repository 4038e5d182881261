package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"mc-skinview/internal/config"
	"mc-skinview/internal/logger"
	"mc-skinview/pkg/skin"
	"mc-skinview/pkg/skinmodel"

	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	fs := flag.NewFlagSet("skinview", flag.ExitOnError)
	flags := config.RegisterFlags(fs)
	exportPath := fs.String("export", "", "Write the model as OBJ to this path and exit")
	savePath := fs.String("save-config", "", "Write the effective config as YAML to this path and exit")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *savePath != "" {
		if err := config.Save(cfg, *savePath); err != nil {
			logger.Fatal("could not save config", zap.String("path", *savePath), zap.Error(err))
		}
		logger.Info("saved config", zap.String("path", *savePath))
		return
	}

	s, err := loadSkin(cfg.Skin)
	if err != nil {
		logger.Fatal("could not load skin", zap.String("path", cfg.Skin.Path), zap.Error(err))
	}

	if *exportPath != "" {
		if err := exportOBJ(*exportPath, skinmodel.NewPlayer(s.Type.IsSlim())); err != nil {
			logger.Fatal("export failed", zap.Error(err))
		}
		logger.Info("exported model", zap.String("path", *exportPath), zap.Stringer("model", s.Type))
		return
	}

	config.ApplyView(cfg)
	if err := run(cfg, s); err != nil {
		logger.Fatal("viewer stopped", zap.Error(err))
	}
}

// loadSkin loads the configured skin and applies the arm model override.
// An empty path gives the built-in placeholder skin.
func loadSkin(sc config.SkinConfig) (*skin.Skin, error) {
	log := logger.Named("skin")
	override, ok := skin.ParseType(sc.Model)
	if !ok && sc.Model != "" && sc.Model != "auto" {
		log.Warn("unknown arm model, using detected one", zap.String("model", sc.Model))
	}

	if sc.Path == "" {
		log.Info("no skin configured, using placeholder")
		return skin.Placeholder(override), nil
	}

	s, err := skin.Load(sc.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded skin",
		zap.String("path", sc.Path),
		zap.Stringer("detected", s.Type),
		zap.Bool("legacy", s.Legacy),
	)

	if ok {
		s.Type = override
	}
	return s, nil
}

func exportOBJ(path string, p *skinmodel.Player) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := skinmodel.WriteOBJ(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
