package app

import (
	"context"
	"fmt"
	"time"

	"bookdesk/internal/actions"
	"bookdesk/internal/bookrental"
	"bookdesk/internal/config"
	"bookdesk/internal/prefs"
	"bookdesk/internal/state"
	"bookdesk/internal/ui"
)

// Options configure the bookdesk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/bookdesk/prefs.toml
	APIBase    string // overrides the configured API base when set
	PollEvery  int    // seconds between background refreshes; zero disables
}

// Run boots the bookdesk TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	apiBase := cfg.APIBase
	if opts.APIBase != "" {
		apiBase = opts.APIBase
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := bookrental.NewClientWithTimeout(apiBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := &state.Store{}
	coord := actions.New(client, store)

	if opts.PollEvery > 0 {
		StartRefresher(ctx, coord, time.Duration(opts.PollEvery)*time.Second)
	}

	uiOpts := ui.Options{
		Context:     ctx,
		Coordinator: coord,
		Store:       store,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
