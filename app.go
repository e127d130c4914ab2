package main

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"ticketdesk/bridge"
	"ticketdesk/window"
)

// appInstance is the singleton app, set by runApp and read by platform callbacks.
var appInstance *App

// App owns the running application state: the platform window host, the
// command router, and the two invocation channels (frontend IPC and
// control socket).
type App struct {
	cfg      *Config
	log      *zap.Logger
	platform Platform
	router   *commandRouter
	windows  *window.Manager
	ipc      *ipcServer
	control  *bridge.Server

	cleanupOnce sync.Once
}

// mainWindowOptions builds the options for the main application window.
func mainWindowOptions(url string, cfg *Config) window.Options {
	return window.Options{
		Label:     "main",
		URL:       url,
		Title:     "ticketdesk",
		Width:     cfg.MainWidth,
		Height:    cfg.MainHeight,
		MinWidth:  window.TicketMinWidth,
		MinHeight: window.TicketMinHeight,
		Center:    true,
	}
}

// runApp wires the application together and blocks on the platform run loop.
func runApp(cfg *Config, log *zap.Logger) error {
	platform := NewPlatform()
	platform.Init()
	log.Debug("platform initialized")

	app := &App{
		cfg:      cfg,
		log:      log,
		platform: platform,
		router:   newCommandRouter(log),
	}
	appInstance = app

	app.ipc = newIPCServer(app.router, log)
	base, err := app.ipc.Start(cfg.Listen)
	if err != nil {
		return fmt.Errorf("start frontend server: %w", err)
	}

	frontURL := base
	if cfg.FrontendURL != "" {
		// External frontend (dev server); it must proxy /ipc to the
		// listen address so the websocket reaches this process.
		frontURL = cfg.FrontendURL
		log.Info("using external frontend", zap.String("url", frontURL))
	}

	app.windows = window.NewManager(platformHost{platform}, frontURL, log)
	registerAppCommands(app.router, app.windows)
	registerHostCommands(app.router, app)

	control, err := bridge.NewServer(app.router)
	if err != nil {
		app.ipc.Close()
		return fmt.Errorf("start control socket: %w", err)
	}
	app.control = control
	go control.Serve()
	log.Debug("control socket listening", zap.String("path", bridge.SocketPath()))

	platform.SetAppIcon(AppIconRGBA())

	// Open the main window from off the main thread: window host calls
	// block until the platform run loop starts draining the main queue.
	mainURL := frontURL + "/?ipc=" + app.ipc.Token()
	go func() {
		if err := app.windows.Show(mainWindowOptions(mainURL, cfg)); err != nil {
			log.Error("open main window", zap.Error(err))
		}
	}()

	platform.Run()
	app.cleanup()
	return nil
}

// registerHostCommands wires commands that act on the host process rather
// than on windows.
func registerHostCommands(r *commandRouter, a *App) {
	r.register("quit", func(json.RawMessage) (any, error) {
		a.log.Info("quit requested")
		// Terminating the run loop must happen on the main thread.
		a.platform.DispatchToMain(a.platform.Quit)
		return nil, nil
	})

	r.register("open_config_dir", func(json.RawMessage) (any, error) {
		a.platform.OpenURL("file://" + configDir())
		return nil, nil
	})
}

func (a *App) cleanup() {
	a.cleanupOnce.Do(func() {
		a.log.Info("shutting down")
		if a.control != nil {
			a.control.Close()
		}
		if a.ipc != nil {
			a.ipc.Close()
		}
		if a.windows != nil {
			a.windows.Close()
		}
	})
}
