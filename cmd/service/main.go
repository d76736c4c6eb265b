package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/hevystats/internal"
	"github.com/2beens/hevystats/internal/config"
	"github.com/2beens/hevystats/internal/logging"

	log "github.com/sirupsen/logrus"
)

// set with -ldflags "-X main.version=..."
var version = ""

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	if err := run(*env, *configPath); err != nil {
		log.Errorf("hevy backend: %s", err)
		os.Exit(1)
	}
}

func run(env, configPath string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogToStdout: cfg.LogToStdout,
		LogLevel:    cfg.LogLevel,
	})
	log.Warnf("---->> running in [%s] environment", cfg.Environment)
	log.Debugf("using host: %s, port: %d, time zone: %s", cfg.Host, cfg.Port, cfg.Timezone)

	versionInfo := resolveVersion()
	log.Infof("running version: %s", versionInfo)

	if cfg.TracingEnabled {
		for _, name := range []string{"OTEL_SERVICE_NAME", "HONEYCOMB_API_KEY"} {
			if os.Getenv(name) == "" {
				log.Warnf("%s env var not set", name)
			}
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:      cfg,
		VersionInfo: versionInfo,
	})
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	if err := server.Serve(cfg.Host, cfg.Port); err != nil {
		return closeAfterFailedStart(server, err)
	}

	<-ctx.Done()
	log.Warnln("shutdown signal received ...")
	return server.GracefulShutdown()
}

// closeAfterFailedStart releases what NewServer opened when serving never started.
func closeAfterFailedStart(server *internal.Server, serveErr error) error {
	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("shutdown after failed start: %s", err)
	}
	return serveErr
}

// resolveVersion prefers the ldflags version, then the git commit of the
// working directory, then "dev".
func resolveVersion() string {
	if version != "" {
		return version
	}
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "dev"
	}
	out, err := exec.Command(gitPath, "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		log.Tracef("no git commit hash: %s", err)
		return "dev"
	}
	return strings.TrimSpace(string(out))
}
