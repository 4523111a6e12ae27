package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/dusk-app/dusk/app/server"
	sig "github.com/dusk-app/dusk/app/signal"
	"github.com/dusk-app/dusk/app/store"
	"github.com/dusk-app/dusk/app/theme"
)

var opts struct {
	DB string `short:"d" long:"db" env:"DUSK_DB" default:"dusk.db" description:"database URL (sqlite file or postgres://...)"`

	Server struct {
		Address     string `long:"address" env:"ADDRESS" default:":8480" description:"server listen address"`
		ReadTimeout int    `long:"read-timeout" env:"READ_TIMEOUT" default:"5" description:"read timeout in seconds"`
		BaseURL     string `long:"base-url" env:"BASE_URL" description:"base URL path when served behind a reverse proxy"`
	} `group:"server" namespace:"server" env-namespace:"DUSK_SERVER"`

	Signal struct {
		Source   string `long:"source" env:"SOURCE" default:"auto" choice:"auto" choice:"portal" choice:"probe" choice:"file" choice:"off" description:"system color-scheme source"`
		File     string `long:"file" env:"FILE" description:"path for the file source"`
		Interval int    `long:"interval" env:"INTERVAL" default:"30" description:"poll interval for the probe source in seconds"`
	} `group:"signal" namespace:"signal" env-namespace:"DUSK_SIGNAL"`

	CacheKeys int `long:"cache-keys" env:"DUSK_CACHE_KEYS" default:"16" description:"max entries in the preference cache"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("dusk %s\n", revision)

	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs()

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	log.Printf("[INFO] starting dusk server on %s", opts.Server.Address)

	// initialize storage for the persisted theme choice
	prefStore, err := store.New(opts.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	cached, err := store.NewCached(prefStore, opts.CacheKeys)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	defer cached.Close()

	// system color-scheme source, optional
	src, err := sig.New(sig.Config{
		Source:   opts.Signal.Source,
		File:     opts.Signal.File,
		Interval: time.Duration(opts.Signal.Interval) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize signal source: %w", err)
	}

	ctrl := theme.New(cached, src)
	go ctrl.Run(ctx)

	srv, err := server.New(ctrl, server.Config{
		Address:     opts.Server.Address,
		ReadTimeout: time.Duration(opts.Server.ReadTimeout) * time.Second,
		BaseURL:     opts.Server.BaseURL,
		Version:     revision,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLogs() io.Writer {
	log.Setup(log.Msec)
	if opts.Debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for s := range sigChan {
			switch s {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
