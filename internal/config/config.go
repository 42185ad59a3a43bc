// Package config resolves server settings from flags with environment fallbacks.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr                string
	AllowOrigins        []string
	MatchmakingInterval time.Duration
	WSBufferSize        int
}

// Load parses args (without the program name). Each flag defaults to its
// CHESS_* environment variable, then to a built-in value.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("chess-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addr := fs.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := fs.String("allow-origins", getenv("CHESS_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	interval := fs.String("match-interval", getenv("CHESS_MATCH_INTERVAL", "500ms"), "how often queued players are paired")
	buffer := fs.String("ws-buffer", getenv("CHESS_WS_BUFFER", "1024"), "websocket read/write buffer size in bytes")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := Config{Addr: strings.TrimSpace(*addr)}
	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}

	for _, o := range strings.Split(*origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	if len(cfg.AllowOrigins) == 0 {
		return Config{}, fmt.Errorf("%w: no allowed origins", ErrInvalidConfig)
	}

	d, err := time.ParseDuration(strings.TrimSpace(*interval))
	if err != nil || d <= 0 {
		return Config{}, fmt.Errorf("%w: match interval %q", ErrInvalidConfig, *interval)
	}
	cfg.MatchmakingInterval = d

	n, err := strconv.Atoi(strings.TrimSpace(*buffer))
	if err != nil || n <= 0 {
		return Config{}, fmt.Errorf("%w: websocket buffer %q", ErrInvalidConfig, *buffer)
	}
	cfg.WSBufferSize = n

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
