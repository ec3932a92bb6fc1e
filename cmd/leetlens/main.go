// Command leetlens matches problem statements against a LeetCode-style catalog.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	catalogfile "github.com/custodia-labs/leetlens/internal/adapters/driven/catalog/file"
	"github.com/custodia-labs/leetlens/internal/adapters/driven/catalog/github"
	configfile "github.com/custodia-labs/leetlens/internal/adapters/driven/config/file"
	"github.com/custodia-labs/leetlens/internal/adapters/driven/scraper/rod"
	"github.com/custodia-labs/leetlens/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/leetlens/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/leetlens/internal/adapters/driven/watcher/fsnotify"
	"github.com/custodia-labs/leetlens/internal/adapters/driving/cli"
	"github.com/custodia-labs/leetlens/internal/core/ports/driven"
	"github.com/custodia-labs/leetlens/internal/core/services"
	"github.com/custodia-labs/leetlens/internal/logger"
)

// Config keys read at startup. Settings keys live with the settings service.
const (
	keyCatalogPath  = "catalog.path"
	keyGitHubOwner  = "catalog.github.owner"
	keyGitHubRepo   = "catalog.github.repo"
	keyGitHubPath   = "catalog.github.path"
	keyGitHubRef    = "catalog.github.ref"
	keyGitHubToken  = "catalog.github.token"
	keyTitleSel     = "scraper.title_selector"
	keyDescSel      = "scraper.description_selector"
	keyConstrSel    = "scraper.constraints_selector"
	keyBrowserBin   = "scraper.browser_bin"
	keyControlURL   = "scraper.control_url"
	defaultDataPath = "problems.json"
)

// version is set at build time.
var version = ""

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Without a writable home directory, settings and the catalog cache
	// live in memory for this run.
	var cfg driven.ConfigStore
	fileCfg, err := configfile.NewConfigStore("")
	if err != nil {
		logger.Warn("Config unavailable, using defaults for this run: %v", err)
		cfg = memory.NewConfigStore()
	} else {
		cfg = fileCfg
	}

	var catalogStore driven.CatalogStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("Catalog cache unavailable, keeping it in memory: %v", err)
		catalogStore = memory.NewCatalogStore()
	} else {
		defer store.Close() //nolint:errcheck
		catalogStore = store.CatalogStore()
	}

	sources, err := catalogSources(ctx, cfg)
	if err != nil {
		return err
	}

	catalogService := services.NewCatalogService(catalogStore, sources...)
	settingsService := services.NewSettingsService(cfg)
	matchService := services.NewMatchService(catalogService, settingsService)

	scraper := rod.New(rod.Config{
		Selectors: rod.Selectors{
			Title:       cfg.GetString(keyTitleSel),
			Description: cfg.GetString(keyDescSel),
			Constraints: cfg.GetString(keyConstrSel),
		},
		BrowserBin: cfg.GetString(keyBrowserBin),
		ControlURL: cfg.GetString(keyControlURL),
	})
	defer scraper.Close() //nolint:errcheck
	matchService.SetScraper(scraper)

	cli.SetServices(cli.Services{
		Match:       matchService,
		Catalog:     catalogService,
		Settings:    settingsService,
		NewWatcher:  newWatcher,
		CatalogPath: cfg.GetString(keyCatalogPath),
	})
	cli.SetVersion(version)

	return cli.Execute(ctx)
}

// catalogSources builds the fallback chain used when the cache is empty:
// a local file first, then a GitHub repository.
func catalogSources(ctx context.Context, cfg driven.ConfigStore) ([]driven.CatalogSource, error) {
	var sources []driven.CatalogSource

	if path := cfg.GetString(keyCatalogPath); path != "" {
		sources = append(sources, catalogfile.NewSource(path))
	}

	owner, repo := cfg.GetString(keyGitHubOwner), cfg.GetString(keyGitHubRepo)
	if owner != "" && repo != "" {
		path := cfg.GetString(keyGitHubPath)
		if path == "" {
			path = defaultDataPath
		}
		src, err := github.NewSource(ctx, github.Config{
			Owner: owner,
			Repo:  repo,
			Path:  path,
			Ref:   cfg.GetString(keyGitHubRef),
			Token: cfg.GetString(keyGitHubToken),
		})
		if err != nil {
			return nil, fmt.Errorf("configuring github catalog: %w", err)
		}
		sources = append(sources, src)
	}

	return sources, nil
}

// newWatcher is handed to the CLI so only `catalog watch` opens one.
func newWatcher() (driven.Watcher, error) {
	w, err := fsnotify.NewWatcher(fsnotify.DefaultDebounce)
	if err != nil {
		return nil, err
	}
	return w, nil
}
