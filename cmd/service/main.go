package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/gymready/internal"
	"github.com/2beens/gymready/internal/config"
	"github.com/2beens/gymready/internal/logging"
	"github.com/2beens/gymready/pkg"

	log "github.com/sirupsen/logrus"
)

// envSecrets are the settings that never go into the config file.
type envSecrets struct {
	appSecret        string
	sentryDSN        string
	redisPassword    string
	dbPassword       string
	honeycombEnabled bool
}

func secretsFromEnv() envSecrets {
	return envSecrets{
		appSecret:        os.Getenv("GYMREADY_APP_SECRET"),
		sentryDSN:        os.Getenv("SENTRY_DSN"),
		redisPassword:    os.Getenv("GYMREADY_REDIS_PASS"),
		dbPassword:       os.Getenv("GYMREADY_DB_PASS"),
		honeycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
}

// warnMissing logs the secrets the given config needs but the env does not provide.
func (s envSecrets) warnMissing(cfg *config.Config) {
	if s.appSecret == "" {
		log.Errorln("GYMREADY_APP_SECRET not set, requests are not authenticated")
	}
	if cfg.SentryEnabled && s.sentryDSN == "" {
		log.Warnln("sentry enabled but SENTRY_DSN not set")
	}
	if cfg.RedisHost != "" && s.redisPassword == "" {
		log.Errorln("redis configured but GYMREADY_REDIS_PASS not set")
	}
	if cfg.StoreDriver == config.StoreDriverPostgres && s.dbPassword == "" {
		log.Warnln("GYMREADY_DB_PASS not set, connecting to postgres without a password")
	}
	if s.honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("honeycomb tracing enabled but HONEYCOMB_API_KEY not set")
	}
	if os.Getenv("OTEL_SERVICE_NAME") == "" {
		log.Debugln("OTEL_SERVICE_NAME not set")
	}
}

func main() {
	fmt.Println("starting gymready ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	secrets := secretsFromEnv()
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		LogMaxSizeMB:     cfg.LogMaxSizeMB,
		LogMaxBackups:    cfg.LogMaxBackups,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.sentryDSN,
		SentryServerName: "gymready-service",
	})

	log.Warnf("---->> running in [%s] environment, store [%s]", cfg.Environment, cfg.StoreDriver)
	secrets.warnMissing(cfg)

	if cfg.StoreDriver == config.StoreDriverSQLite {
		if exists, err := pkg.PathExists(cfg.SQLitePath, false); err != nil {
			log.Fatalf("check sqlite db path: %s", err)
		} else if !exists {
			log.Infof("sqlite db [%s] does not exist, it will be created", cfg.SQLitePath)
		}
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		AppSecret:               secrets.appSecret,
		VersionInfo:             versionInfo,
		RedisPassword:           secrets.redisPassword,
		DBPassword:              secrets.dbPassword,
		HoneycombTracingEnabled: secrets.honeycombEnabled,
	})
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, shutting down ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash assumes the binary runs from within the project checkout.
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
