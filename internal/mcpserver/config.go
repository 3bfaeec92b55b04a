package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds configurable MCP server defaults, loaded once at
// startup from environment variables.
type serverConfig struct {
	DefaultMaxRecursionDepth int
	DefaultRegexCacheSize    int
	StrictByDefault          bool
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultMaxRecursionDepth: envInt("JSONPATHKIT_MAX_RECURSION_DEPTH", 100),
		DefaultRegexCacheSize:    envInt("JSONPATHKIT_REGEX_CACHE_SIZE", 300),
		StrictByDefault:          envBool("JSONPATHKIT_STRICT", false),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}
