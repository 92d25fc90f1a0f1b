package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jask/storefront/internal/auth"
	"github.com/jask/storefront/internal/config"
	"github.com/jask/storefront/internal/httpx"
	"github.com/jask/storefront/internal/nav"
	"github.com/jask/storefront/internal/products"
	"github.com/jask/storefront/internal/router"
	"github.com/jask/storefront/internal/runtime"
	"github.com/jask/storefront/internal/screens/login"
	"github.com/jask/storefront/internal/screens/productdetail"
	pscreen "github.com/jask/storefront/internal/screens/products"
	"github.com/jask/storefront/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := openLogger(cfg.Log)

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer store.Close()

	client := httpx.New(cfg.API.BaseURL, logger)
	authAPI := &auth.API{Client: client}
	productsAPI := &products.API{Client: client}

	recorder := &nav.Recorder{}
	handle := &nav.Handle{}
	handle.Bind(recorder)

	app := &router.App{
		Auth:         authAPI,
		Login:        login.Program{API: authAPI},
		Products:     pscreen.Program{API: productsAPI},
		Detail:       productdetail.Program{API: productsAPI},
		Store:        store,
		Nav:          handle,
		RefreshEvery: cfg.Refresh.Interval,
	}

	p := tea.NewProgram(runtime.New(app, recorder), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// openLogger writes to a file so log lines never tear the alt screen. A
// failed open degrades to a disabled logger rather than aborting the app.
func openLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return zerolog.Nop()
	}
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).Level(level).With().Timestamp().Logger()
}
