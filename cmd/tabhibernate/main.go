package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/sivaratrisrinivas/tabHibernate/pkg/alarm"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/browser"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/config"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/repository"
	"github.com/sivaratrisrinivas/tabHibernate/pkg/scheduler"
	"github.com/sivaratrisrinivas/tabHibernate/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, built-in defaults if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	CDPURL string `long:"cdp-url" env:"CDP_URL" description:"browser DevTools endpoint, overrides config"`
	DSN    string `long:"dsn" env:"DSN" description:"database connection string, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	log.Printf("[INFO] starting tabhibernate version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires storage, browser, alarms, scheduler and the HTTP API, blocks until ctx is done
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	applyOverrides(cfg, opts)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	alarms := alarm.New()
	defer alarms.Stop()

	client := browser.New(browser.Config{
		CDPURL:           cfg.Browser.CDPURL,
		ConnectTimeout:   cfg.Browser.ConnectTimeout,
		CommandTimeout:   cfg.Browser.CommandTimeout,
		ActivityDebounce: cfg.Browser.ActivityDebounce,
	})
	if err := client.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer client.Close()

	sched := scheduler.NewScheduler(scheduler.Params{
		Host:             client,
		Messenger:        client,
		Storage:          repos.KV,
		Alarms:           alarms,
		Defaults:         cfg.DefaultSettings(),
		CheckInterval:    cfg.Schedule.CheckInterval,
		AnalysisInterval: cfg.Schedule.AnalysisInterval,
		PersistDelay:     cfg.Schedule.PersistDelay,
		ManualThreshold:  cfg.Schedule.ManualThreshold,
	})
	repos.KV.Watch(storageListener(ctx, sched))
	alarms.SetHandler(sched.HandleAlarm)

	if err := sched.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	srv := server.New(cfg, sched, revision, opts.Debug)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return client.Listen(gctx, sched) })
	g.Go(func() error { return srv.Run(gctx) })
	return g.Wait()
}

// applyOverrides sets command line values over the loaded config
func applyOverrides(cfg *config.Config, opts Opts) {
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.CDPURL != "" {
		cfg.Browser.CDPURL = opts.CDPURL
	}
	if opts.DSN != "" {
		cfg.Database.DSN = opts.DSN
	}
}

// changeHandler receives storage changes
type changeHandler interface {
	HandleStorageChange(ctx context.Context, changes map[string]scheduler.StorageChange, area string)
}

// storageListener forwards committed storage changes to the scheduler
func storageListener(ctx context.Context, h changeHandler) repository.ChangeListener {
	return func(changes map[string]repository.Change, area string) {
		res := make(map[string]scheduler.StorageChange, len(changes))
		for k, c := range changes {
			res[k] = scheduler.StorageChange{OldValue: c.OldValue, NewValue: c.NewValue}
		}
		h.HandleStorageChange(ctx, res, area)
	}
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
