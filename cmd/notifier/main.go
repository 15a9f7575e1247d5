// Command notifier appends messages to the notification log of a running
// chick-care server.
//
// Usage:
//
//	notifier [-s http://host:8080] [-k api-key] [-t 10s] message...
//	notifier [-s http://host:8080] -health
//
// Messages can also be piped in, one per line, when no arguments are given.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/chick-care/internal/adapter"
	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var buildInfo = models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

func main() {
	log := logger.NewConsoleLogger("chick-care-notifier")

	cfg, messages, err := config.GetNotifierConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Probe {
		runHealth(ctx, client, log)
		return
	}

	if len(messages) == 0 {
		messages = readMessages(os.Stdin)
	}
	if len(messages) == 0 {
		log.Fatal().Msg("no messages given")
	}

	inserted, err := client.InsertNotifications(ctx, messages)
	if err != nil {
		log.Fatal().Err(err).Msg("error sending notifications")
	}
	log.Info().Int("inserted", inserted).Str("server", cfg.ServerURL).Msg("notifications stored")
}

func runHealth(ctx context.Context, client adapter.ServerAdapter, log *logger.Logger) {
	version, err := client.Version(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("version unavailable")
	}

	if err = client.Health(ctx); err != nil {
		fmt.Printf("unhealthy: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ok (server %s, %s, %s; notifier %s)\n",
		version.Version, version.Date, version.Commit, buildInfo.Version())
}

// readMessages returns the non-blank lines of stdin when it is not a terminal.
func readMessages(f *os.File) []string {
	if stat, err := f.Stat(); err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return nil
	}

	var messages []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			messages = append(messages, line)
		}
	}
	return messages
}
