// Package account parses configuration for and runs the account server.
package account

import (
	"context"
	"flag"
	"strings"

	server "github.com/postitapplications/account-service/internal/services/account/app"
)

// Config holds account command configuration.
type Config struct {
	HTTPAddr string
	DBPath   string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config. Environment variables provide
// defaults; flags override them.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr: envOrDefault(lookup, []string{"ACCOUNT_SERVICE_HTTP_ADDR"}, ":8080"),
		DBPath:   envOrDefault(lookup, []string{"ACCOUNT_SERVICE_DB_PATH"}, "data/account.db"),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The account HTTP server address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The account SQLite database path (empty for in-memory)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the account server.
func Run(ctx context.Context, cfg Config) error {
	return server.Run(ctx, server.Options{
		HTTPAddr: cfg.HTTPAddr,
		DBPath:   cfg.DBPath,
	})
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
