package profile

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Env is a read-only Profile backed by environment variables.
//
// A key such as "request-logger.slow.threshold" is looked up as
// "<PREFIX>_REQUEST_LOGGER_SLOW_THRESHOLD". Values that fail to parse are
// treated the same as absent values and resolve to the default.
type Env struct {
	prefix string
}

// NewEnv creates an Env profile. The prefix may be empty.
func NewEnv(prefix string) *Env {
	return &Env{prefix: prefix}
}

// GetBool returns the parsed boolean for key, or def when absent or unparseable.
func (e *Env) GetBool(key string, def bool) bool {
	raw, ok := os.LookupEnv(e.envName(key))
	if !ok {
		return def
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// GetDuration returns the parsed duration for key, or def when absent or unparseable.
func (e *Env) GetDuration(key string, def time.Duration) time.Duration {
	raw, ok := os.LookupEnv(e.envName(key))
	if !ok {
		return def
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return v
}

// GetInt returns the parsed integer for key, or def when absent or unparseable.
func (e *Env) GetInt(key string, def int) int {
	raw, ok := os.LookupEnv(e.envName(key))
	if !ok {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// envName converts a dotted configuration key to an environment variable name.
func (e *Env) envName(key string) string {
	name := strings.ToUpper(key)
	name = strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if e.prefix == "" {
		return name
	}
	return strings.ToUpper(e.prefix) + "_" + name
}
