package desktop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
)

const DefaultDevUIURL = "http://localhost:5173"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=desktop_test

type backend interface {
	Start(ctx context.Context) error
	Stop() error
	Running() bool
	HealthURL() string
}

type AppParams struct {
	Mode         Mode
	ResourcesDir string
	// DevUIURL is the frontend dev server, used in dev mode.
	DevUIURL       string
	HealthTimeout  time.Duration
	HealthInterval time.Duration
	// OpenURL shows the UI, OpenBrowser when nil.
	OpenURL func(url string) error
}

// App starts the backend, waits for it and shows the UI.
type App struct {
	params  AppParams
	backend backend
	static  *StaticServer
	uiURL   string
}

func NewApp(params AppParams, backend backend) *App {
	if params.DevUIURL == "" {
		params.DevUIURL = DefaultDevUIURL
	}
	if params.OpenURL == nil {
		params.OpenURL = OpenBrowser
	}
	return &App{
		params:  params,
		backend: backend,
	}
}

// Launch brings the backend up and opens the UI. An unhealthy backend only
// degrades the UI, it does not abort the launch.
func (a *App) Launch(ctx context.Context) error {
	if err := a.backend.Start(ctx); err != nil {
		log.Errorf("failed to start backend: %s", err)
	} else if err := WaitHealthy(ctx, a.backend.HealthURL(), a.params.HealthTimeout, a.params.HealthInterval); err != nil {
		if !errors.Is(err, ErrHealthTimeout) {
			return err
		}
		log.Warnf("%s, opening the UI in degraded mode", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uiURL, err := a.UIURL()
	if err != nil {
		return err
	}
	return a.open(uiURL)
}

// LaunchAndRun launches the app and then handles signals until quit. A quit
// signal received while launching aborts the health wait and shuts down.
func (a *App) LaunchAndRun(ctx context.Context, signals <-chan os.Signal) error {
	launchCtx, cancelLaunch := context.WithCancel(ctx)
	defer cancelLaunch()

	quit := make(chan os.Signal, 1)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			case sig := <-signals:
				if sig == syscall.SIGHUP {
					log.Infoln("still launching, ignoring SIGHUP")
					continue
				}
				quit <- sig
				cancelLaunch()
				return
			}
		}
	}()

	err := a.Launch(launchCtx)
	close(stop)
	wg.Wait()

	select {
	case sig := <-quit:
		log.Infof("received signal [%s] while launching, quitting", sig)
		a.Shutdown()
		return nil
	default:
	}
	if err != nil {
		a.Shutdown()
		return fmt.Errorf("launch: %w", err)
	}

	a.Run(ctx, signals)
	return nil
}

// Activate restarts an exited backend and shows the UI again.
func (a *App) Activate(ctx context.Context) error {
	if !a.backend.Running() {
		log.Infoln("backend not running, restarting it")
		if err := a.backend.Start(ctx); err != nil {
			log.Errorf("failed to restart backend: %s", err)
		}
	}

	uiURL, err := a.UIURL()
	if err != nil {
		return err
	}
	return a.open(uiURL)
}

// UIURL resolves the frontend location, starting the static server on first
// use in prod mode.
func (a *App) UIURL() (string, error) {
	if a.uiURL != "" {
		return a.uiURL, nil
	}

	if a.params.Mode == ModeDev {
		a.uiURL = a.params.DevUIURL
		return a.uiURL, nil
	}

	static, err := ServeStatic(filepath.Join(a.params.ResourcesDir, "frontend", "dist"))
	if err != nil {
		return "", fmt.Errorf("serve frontend: %w", err)
	}
	a.static = static
	a.uiURL = static.URL
	return a.uiURL, nil
}

func (a *App) open(url string) error {
	log.Infof("opening UI: %s", url)
	if err := a.params.OpenURL(url); err != nil {
		return fmt.Errorf("open ui: %w", err)
	}
	return nil
}

// Run handles signals until a quit signal or ctx is done: SIGHUP activates,
// anything else shuts down.
func (a *App) Run(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			a.Shutdown()
			return
		case sig := <-signals:
			if sig == syscall.SIGHUP {
				if err := a.Activate(ctx); err != nil {
					log.Errorf("activate: %s", err)
				}
				continue
			}
			log.Infof("received signal [%s], quitting", sig)
			a.Shutdown()
			return
		}
	}
}

// Shutdown stops the backend and the static server.
func (a *App) Shutdown() {
	if err := a.backend.Stop(); err != nil && !errors.Is(err, ErrNotRunning) {
		log.Errorf("stop backend: %s", err)
	}

	if a.static != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := a.static.Shutdown(ctx); err != nil {
			log.Errorf("static server shutdown: %s", err)
		}
		a.static = nil
		a.uiURL = ""
	}
}
