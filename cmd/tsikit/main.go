// Command tsikit is a toolbox for Traktor controller mapping (.tsi) files:
// frame-level inspection, round-trip verification, and indexing mapping
// libraries into a queryable store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/tsitools/tsikit/internal/config"
	"github.com/tsitools/tsikit/internal/logging"
	intotel "github.com/tsitools/tsikit/internal/otel"
)

// Version and BuildDate can be set at build time via ldflags.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

var (
	logManager   *logging.Manager
	logger       *slog.Logger
	otelProvider *intotel.Provider

	sessionStart = time.Now()
)

func main() {
	// .env is optional; it can set TSIKIT_CONFIG_DIR and the db.* keys.
	_ = godotenv.Load()

	configDir := os.Getenv("TSIKIT_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}
	configErr := config.Load(configDir)

	cleanup, err := setupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}
	logger = logManager.Logger()

	if configErr != nil {
		logger.Debug("No config file found, using defaults", "error", configErr)
	}

	code := run(os.Args[1:])
	cleanup()
	os.Exit(code)
}

// setupLogging wires the slog manager: console, session log file, and the
// OTel bridge when enabled. Returns a cleanup func that flushes everything.
func setupLogging() (func(), error) {
	logsDir := viper.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile, err := os.Create(logging.LogFilePath(logsDir, "tsikit", sessionStart))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	var logProvider *sdklog.LoggerProvider
	var otelLogFile *os.File
	if viper.GetBool("otel.enabled") {
		otelLogPath := filepath.Join(logsDir,
			fmt.Sprintf("tsikit.otel.%s.log", sessionStart.Format("20060102_150405")))
		otelLogFile, err = os.Create(otelLogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTel log file: %w", err)
		}

		otelProvider, err = intotel.New(intotel.Config{
			Enabled:      true,
			ServiceName:  "tsikit",
			BatchTimeout: 5 * time.Second,
			LogWriter:    otelLogFile,
			Endpoint:     viper.GetString("otel.endpoint"),
			Insecure:     viper.GetBool("otel.insecure"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set up OTel: %w", err)
		}
		logProvider = otelProvider.LoggerProvider()
	}

	logManager = logging.NewManager()
	logManager.Setup(logFile, viper.GetString("logLevel"), logProvider)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		logManager.Flush(ctx)
		if otelProvider != nil {
			if err := otelProvider.Shutdown(ctx); err != nil {
				fmt.Fprintln(os.Stderr, "OTel shutdown:", err)
			}
		}
		logFile.Close()
		if otelLogFile != nil {
			otelLogFile.Close()
		}
	}
	return cleanup, nil
}
