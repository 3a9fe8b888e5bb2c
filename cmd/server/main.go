package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/working-date-service/internal/api"
	"github.com/ignite/working-date-service/internal/config"
	"github.com/ignite/working-date-service/internal/holiday"
	"github.com/ignite/working-date-service/internal/pkg/httpretry"
	"github.com/ignite/working-date-service/internal/pkg/logger"
	"github.com/ignite/working-date-service/internal/schedule"
)

// checkPortAvailable verifies the target port is not already in use, so a
// stale process on the port fails fast instead of surfacing as a confusing
// bind error mid-startup.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v", port, addr, err)
	}
	ln.Close()
	return nil
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if os.Getenv("LOG_LEVEL") == "debug" {
		logger.SetLevel(logger.DEBUG)
	}

	host := cfg.Server.GetHost()
	if err := checkPortAvailable(host, cfg.Server.Port); err != nil {
		logger.Error("pre-flight check failed", "error", err)
		os.Exit(1)
	}

	loc, err := cfg.Calendar.Location()
	if err != nil {
		logger.Error("failed to load timezone", "timezone", cfg.Calendar.Timezone, "error", err)
		os.Exit(1)
	}

	fetcher := holiday.NewFetcher(cfg.Holidays.APIURL,
		httpretry.NewRetryClient(&http.Client{Timeout: cfg.Holidays.Timeout()}, 3))

	// Redis shares one holiday snapshot across instances; without it each
	// process keeps its own in-memory snapshot.
	var source holiday.Source
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("invalid redis url", "error", err)
			os.Exit(1)
		}
		rdb := redis.NewClient(opts)
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, falling back to in-memory cache", "error", err)
			rdb.Close()
		} else {
			source = holiday.NewRedisCache(rdb, fetcher.Fetch, cfg.Holidays.CacheTTL())
			logger.Info("redis holiday cache enabled")
		}
		pingCancel()
	}
	if source == nil {
		source = holiday.NewCache(fetcher.Fetch, cfg.Holidays.CacheTTL(), nil)
	}

	hours := schedule.Hours{
		Start:      cfg.Calendar.StartHour,
		End:        cfg.Calendar.EndHour,
		LunchStart: cfg.Calendar.LunchStartHour,
		LunchEnd:   cfg.Calendar.LunchEndHour,
	}
	engine := schedule.NewEngine(loc, hours, source)
	server := api.NewServer(api.NewHandlers(engine, source, nil))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", host, cfg.Server.Port)
		logger.Info("starting server", "addr", addr, "timezone", cfg.Calendar.Timezone,
			"work_window", fmt.Sprintf("%02d:00-%02d:00", hours.Start, hours.End),
			"lunch", fmt.Sprintf("%02d:00-%02d:00", hours.LunchStart, hours.LunchEnd))
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
