package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"moviegrid/internal/catalog"
	"moviegrid/internal/config"
	"moviegrid/internal/eventbus"
	"moviegrid/internal/favorites"
	"moviegrid/internal/logging"
	"moviegrid/internal/ui"
)

// readyEnv makes the program announce start-up for the e2e driver
const readyEnv = "MOVIEGRID_E2E_TEST"

type options struct {
	configPath  string
	catalogPath string
	logFile     string
	logLevel    string
	noMouse     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "moviegrid",
		Short: "Browse, search and favorite movies from the terminal",
		Long: `moviegrid is a keyboard driven movie browser.

Arrow keys (or h/j/k/l) move between the tab bar and the movie grids,
Enter opens a movie, Escape returns to the tabs. Press ? for all keys.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/moviegrid/config.toml)")
	bindRunFlags(cmd.Flags(), opts)

	cmd.AddCommand(newSchemaCmd(), newKeysCmd(opts))
	return cmd
}

// bindRunFlags registers the flags that only apply to the interactive program
func bindRunFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.catalogPath, "catalog", "", "YAML catalog file, overrides [catalog] path")
	flags.StringVar(&opts.logFile, "log-file", "", "log file, overrides [log] file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(opts *options) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigService(opts.configPath)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}
	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	cfg.Validate()
	return cfg, svc, nil
}

func openCatalog(cfg *config.Config) (*catalog.Memory, error) {
	copts := []catalog.Option{
		catalog.WithPageSize(cfg.Catalog.PageSize),
		catalog.WithMinQueryLength(cfg.Search.MinQueryLength),
	}
	if cfg.Catalog.Path == "" {
		return catalog.Builtin(copts...)
	}
	return catalog.Load(cfg.Catalog.Path, copts...)
}

func run(ctx context.Context, opts *options) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("moviegrid needs an interactive terminal")
	}

	cfg, svc, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return err
	}

	logger, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
	}
	defer closer.Close()

	bus := eventbus.New(logger)
	defer bus.Close()

	cat, err := openCatalog(cfg)
	if err != nil {
		logger.WithError(err).Error("failed to open catalog")
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		return err
	}
	favs, err := favorites.Open(cfg.Favorites.Path, bus)
	if err != nil {
		logger.WithError(err).Error("failed to open favorites")
		fmt.Fprintf(os.Stderr, "Error opening favorites: %v\n", err)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(ui.Options{
		Config:    cfg,
		Catalog:   cat,
		Favorites: favs,
		Bus:       bus,
		Logger:    logger,
	})
	defer model.Close()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if !opts.noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	forward := forwardEvents(bus, p, logger)
	defer forward()
	bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path()})

	if os.Getenv(readyEnv) == "1" {
		fmt.Println("__READY__")
	}

	logger.WithFields(logrus.Fields{
		"catalog": cfg.Catalog.Path,
		"theme":   cfg.UI.Theme,
	}).Info("starting UI")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.WithError(err).Error("program failed")
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return err
	}
	logger.Info("UI exited normally")
	return nil
}

// forwardEvents hands bus events the UI reacts to to the program. Events are
// dropped rather than blocking the bus when the program falls behind.
func forwardEvents(bus eventbus.EventBus, p *tea.Program, logger logrus.FieldLogger) func() {
	events := make(chan eventbus.DomainEvent, 100)
	quit := make(chan struct{})
	forward := func(e eventbus.DomainEvent) {
		select {
		case events <- e:
		case <-quit:
		default:
			logger.WithField("event", e.Type()).Warn("event channel full, dropping event")
		}
	}

	var unsubscribe []func()
	for _, t := range []eventbus.EventType{eventbus.EventFavoriteToggled, eventbus.EventConfigLoaded} {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, forward))
	}
	for _, t := range []eventbus.EventType{eventbus.EventViewChanged, eventbus.EventMovieOpened, eventbus.EventPageLoaded} {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logger.WithField("event", e.Type()).Debugf("%+v", e)
		}))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case e := <-events:
				p.Send(ui.EventMsg{Event: e})
			case <-quit:
				return
			}
		}
	}()

	return func() {
		for _, u := range unsubscribe {
			u()
		}
		close(quit)
		<-done
	}
}
