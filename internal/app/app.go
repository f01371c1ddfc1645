package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/config"
	"github.com/mwhitby/chalk/internal/prefs"
	"github.com/mwhitby/chalk/internal/session"
	"github.com/mwhitby/chalk/internal/state"
	"github.com/mwhitby/chalk/internal/ui"
)

// Options configure the chalk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/chalk/prefs.toml
	APIURL     string // overrides config when set
	PollEvery  int    // seconds; zero uses default
}

// Run boots the chalk TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	if userPrefs.PageSize > 0 {
		cfg.PageSize = userPrefs.PageSize
	}

	client, err := api.NewClient(cfg.APIURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	sess := session.New()
	store := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Dashboard refresh runs in the background; it is a no-op until the
	// user signs in.
	StartPoller(ctx, store, client, sess, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Session:   sess,
		Store:     store,
		PageSize:  cfg.PageSize,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// setupLogging points slog at the configured file. The terminal itself
// belongs to the TUI, so without a log file all logging is discarded.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(file, nil)))
	return func() { _ = file.Close() }, nil
}
