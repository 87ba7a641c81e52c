package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/michellecaii/Mood-tracker/internal/config"
	"github.com/michellecaii/Mood-tracker/internal/database"
	"github.com/michellecaii/Mood-tracker/internal/insight"
	"github.com/michellecaii/Mood-tracker/internal/router"
	"github.com/michellecaii/Mood-tracker/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	// .env holds GEMINI_API_KEY in development
	_ = godotenv.Load()

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if cfg.Log.File != "" {
		if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
			log.Fatalf("create log dir: %v", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	st := store.New(db)
	generator := insight.NewGeminiClient(
		cfg.AI.APIKey,
		cfg.AI.Model,
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second,
	)
	if cfg.AI.APIKey == "" {
		log.Println("no Gemini API key configured, insights will use the fallback payload")
	}

	// setup router
	r := router.SetupRouter(cfg, st, generator)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
