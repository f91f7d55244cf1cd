package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playerstyle/internal/config"
	"github.com/alexisbeaulieu97/playerstyle/internal/content"
	"github.com/alexisbeaulieu97/playerstyle/internal/logger"
	"github.com/alexisbeaulieu97/playerstyle/internal/media"
	"github.com/alexisbeaulieu97/playerstyle/internal/snippet"
	"github.com/alexisbeaulieu97/playerstyle/internal/themepage"
	pserrors "github.com/alexisbeaulieu97/playerstyle/pkg/errors"
)

// AppContext bundles the services a command needs, built once per run
// from settings and persistent flags.
type AppContext struct {
	Settings *config.Settings
	Log      *logger.Logger
	Catalog  *media.Catalog
	Content  *content.CachedRepository
	Renderer *snippet.Renderer
	Pages    *themepage.Service
}

type rootFlags struct {
	configPath  string
	contentDir  string
	catalogPath string
	logLevel    string
	verbose     bool

	app *AppContext
}

// appContext builds the AppContext on first use. Flags override settings.
func (f *rootFlags) appContext(cmd *cobra.Command) (*AppContext, error) {
	if f.app != nil {
		return f.app, nil
	}

	settings, err := config.Load(config.Options{Path: f.configPath})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading settings", err, "Fix the config file or the PLAYERSTYLE_* environment variables.")
	}
	if f.contentDir != "" {
		settings.ContentDir = f.contentDir
	}
	if f.catalogPath != "" {
		settings.CatalogFile = f.catalogPath
	}
	if f.logLevel != "" {
		settings.LogLevel = f.logLevel
	}
	if f.verbose {
		settings.LogLevel = "debug"
		settings.HumanLogs = true
	}

	log, err := logger.New(logger.Options{
		Level:         settings.LogLevel,
		HumanReadable: settings.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of trace, debug, info, warn, error or disabled for --log-level.")
	}

	catalog, err := loadCatalog(settings.CatalogFile)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading media catalog", err, "Check the catalog file against 'playerstyle media list --json'.")
	}

	repo, err := loadContent(settings.ContentDir)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "opening content directory", err, "Point --content-dir at a directory with themes/, frameworks/ and players/.")
	}

	renderer := &snippet.Renderer{CDNBase: settings.CDNBase, Versions: settings.Versions}
	cached := content.NewCachedRepository(repo)

	f.app = &AppContext{
		Settings: settings,
		Log:      log,
		Catalog:  catalog,
		Content:  cached,
		Renderer: renderer,
		Pages:    themepage.NewService(cached, catalog, renderer, log),
	}

	log.WithFields(map[string]any{
		"command":     cmd.Name(),
		"media_count": catalog.Len(),
		"content_dir": settings.ContentDir,
	}).Debug("application context ready")

	return f.app, nil
}

func loadCatalog(path string) (*media.Catalog, error) {
	if path == "" {
		return media.Builtin(), nil
	}
	defs, err := media.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return media.Builtin().Extend(defs...)
}

func loadContent(dir string) (content.Repository, error) {
	if dir == "" {
		return content.Seed(), nil
	}
	return content.NewFileRepository(dir)
}

// notFoundSuggestion names the command that lists what does exist.
func notFoundSuggestion(err error) string {
	var nf *pserrors.NotFoundError
	if errors.As(err, &nf) {
		return "Run 'playerstyle " + nf.Collection + "' to list what is available."
	}
	return "Check the content directory and try again."
}
