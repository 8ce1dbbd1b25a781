package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ItsNotGoodName/x-howm/internal/api"
	"github.com/ItsNotGoodName/x-howm/internal/app"
	"github.com/ItsNotGoodName/x-howm/internal/build"
	"github.com/ItsNotGoodName/x-howm/internal/bus"
	"github.com/ItsNotGoodName/x-howm/internal/config"
	"github.com/ItsNotGoodName/x-howm/internal/core"
	"github.com/ItsNotGoodName/x-howm/internal/input"
	"github.com/ItsNotGoodName/x-howm/internal/spawn"
	"github.com/ItsNotGoodName/x-howm/internal/wm"
	"github.com/ItsNotGoodName/x-howm/internal/xwm"
	"github.com/ItsNotGoodName/x-howm/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"
	"github.com/spf13/cobra"
)

type Options struct {
	Debug   bool   `doc:"enable debug"`
	Config  string `doc:"config file (.yaml, .json or .toml)"`
	Display string `doc:"X display to manage, defaults to $DISPLAY"`
	Info    bool   `doc:"print status changes to stdout"`
	Control bool   `doc:"enable the HTTP control API"`
	Host    string `doc:"host to listen on" default:"127.0.0.1"`
	Port    int    `doc:"port to listen on" default:"8080"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			return run(ctx, options)
		})
	})

	cli.Root().Use = "x-howm"
	cli.Root().Version = build.Current.Version

	cli.Root().AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Run: humacli.WithOptions(func(cmd *cobra.Command, args []string, options *Options) {
			store, err := openStore(options.Config)
			if err != nil {
				log.Fatal(err)
			}

			cfg, err := store.GetConfig()
			if err != nil {
				log.Fatal(err)
			}

			pp.Println(cfg)
		}),
	})

	cli.Root().AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(build.Current.Version)
			if build.Current.Commit != "" {
				fmt.Println(build.Current.Commit, build.Current.Date)
			}
		},
	})

	cli.Run()
}

func run(ctx context.Context, options *Options) error {
	bus.SetContext(ctx)

	configFilePath, err := configPath(options.Config)
	if err != nil {
		return err
	}

	store, err := openStore(configFilePath)
	if err != nil {
		return err
	}

	if err := config.Normalize(store); err != nil {
		return err
	}

	cfg, err := store.GetConfig()
	if err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	conn, err := xwm.Open(options.Display)
	if err != nil {
		return err
	}
	defer conn.Disconnect()

	manager := wm.New(conn, spawn.Spawner{}, conn.Screen(), settings)
	machine := input.NewMachine(manager, input.DefaultBindings(cfg.Terminal, settings.Workspaces))
	loop := app.New(conn, manager, machine)

	if options.Info {
		app.PrintInfo(os.Stdout)
	}

	super := sutureext.New("root")
	sutureext.Add(super, xwm.NewReceiver(conn.X, loop.Events()))
	sutureext.Add(super, loop)
	sutureext.Add(super, config.NewWatcher(configFilePath, func(ctx context.Context) error {
		return reload(ctx, store, loop)
	}))
	if options.Control {
		hub := bus.NewHub[wm.Info]().Register()
		sutureext.Add(super, api.NewServer(core.Address(options.Host, options.Port), api.NewRouter(loop, hub)))
	}

	superCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errC := super.ServeBackground(superCtx)

	select {
	case <-loop.Done():
	case err := <-errC:
		return err
	}

	// Closing the connection unblocks the receiver.
	conn.Disconnect()
	cancel()
	<-errC

	if errors.Is(loop.Err(), app.ErrRestart) {
		return restart()
	}

	if code := loop.ExitCode(); code != 0 {
		os.Exit(code)
	}

	return nil
}

func reload(ctx context.Context, store config.Store, loop *app.App) error {
	cfg, err := store.GetConfig()
	if err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	slog.Info("Reloading config")

	return loop.Reload(ctx, settings, input.DefaultBindings(cfg.Terminal, settings.Workspaces))
}

func restart() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	slog.Info("Restarting", "executable", exe)

	return syscall.Exec(exe, os.Args, os.Environ())
}

func configPath(path string) (string, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, "x-howm", "config.yaml")
	}

	return filepath.Abs(path)
}

func openStore(path string) (config.Store, error) {
	path, err := configPath(path)
	if err != nil {
		return config.Store{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return config.Store{}, err
	}

	driver, err := config.NewDriver(path)
	if err != nil {
		return config.Store{}, err
	}

	return config.NewStore(driver)
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
