package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"planarmirror/internal/config"
	"planarmirror/internal/game"
)

func main() {
	configPath := flag.String("config", "config/mirror.yaml", "settings file")
	scenePath := flag.String("scene", "", "scene file, overrides the config")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if _, err := os.Stat(filepath.Join(execDir, "assets")); err == nil {
				os.Chdir(execDir)
			}
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *scenePath != "" {
		cfg.Scene = *scenePath
	}

	if err := game.New(cfg).Run(); err != nil {
		log.Fatalf("Mirror demo: %v", err)
	}
}
