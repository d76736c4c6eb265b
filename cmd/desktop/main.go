package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/2beens/hevystats/internal/desktop"
	"github.com/2beens/hevystats/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	devMode        bool
	backendDir     string
	resourcesDir   string
	uiURL          string
	backendHost    string
	backendPort    int
	healthTimeout  time.Duration
	stopGrace      time.Duration
	logLevel       string
	desktopLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "hevy-desktop",
	Short: "Start the hevy backend and open the dashboard",
	Long: `Starts the backend as a child process, waits for its /health endpoint
and opens the dashboard UI. The UI is opened even when the backend does not
become healthy in time.

Signals:
  SIGHUP          restart the backend if it exited and open the UI again
  SIGINT, SIGTERM stop the backend and quit`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.LoggerSetupParams{
			LogFileName: desktopLogFile,
			LogToStdout: true,
			LogLevel:    logLevel,
		})
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&devMode, "dev", os.Getenv("HEVY_DEV") == "1", "run the backend with `go run` and use the frontend dev server")
	rootCmd.Flags().StringVar(&backendDir, "backend-dir", ".", "module root of the backend (dev mode)")
	rootCmd.Flags().StringVar(&resourcesDir, "resources", defaultResourcesDir(), "directory holding backend/ and frontend/dist (prod mode)")
	rootCmd.Flags().StringVar(&uiURL, "ui-url", envOr("HEVY_UI_URL", desktop.DefaultDevUIURL), "frontend dev server url (dev mode)")
	rootCmd.Flags().StringVar(&backendHost, "host", envOr("HEVY_HOST", desktop.DefaultBackendHost), "backend host")
	rootCmd.Flags().IntVar(&backendPort, "port", envIntOr("HEVY_PORT", 8000), "backend port")
	rootCmd.Flags().DurationVar(&healthTimeout, "health-timeout", desktop.DefaultHealthTimeout, "how long to wait for the backend to become healthy")
	rootCmd.Flags().DurationVar(&stopGrace, "stop-grace", desktop.DefaultStopGracePeriod, "how long the backend gets to exit before it is killed")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.PersistentFlags().StringVar(&desktopLogFile, "log-file", "", "also write logs to this file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	mode := desktop.ModeProd
	if devMode {
		mode = desktop.ModeDev
	}
	log.Infof("starting desktop in [%s] mode", mode)

	supervisor := desktop.NewSupervisor(desktop.SupervisorParams{
		Mode:            mode,
		BackendDir:      backendDir,
		ResourcesDir:    resourcesDir,
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		BackendHost:     backendHost,
		BackendPort:     strconv.Itoa(backendPort),
		StopGracePeriod: stopGrace,
	})

	app := desktop.NewApp(desktop.AppParams{
		Mode:          mode,
		ResourcesDir:  resourcesDir,
		DevUIURL:      uiURL,
		HealthTimeout: healthTimeout,
	}, supervisor)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	if err := app.LaunchAndRun(ctx, signals); err != nil {
		return err
	}
	log.Infoln("bye")
	return nil
}

func defaultResourcesDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "resources"
	}
	return filepath.Join(filepath.Dir(exe), "resources")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
