package profile

import "time"

// Profile provides read access to resolved configuration values.
//
// Every lookup is total: a missing key, or a value of the wrong type,
// yields the supplied default instead of an error. Implementations must be
// safe for concurrent readers, since lookups happen on request hot paths.
type Profile interface {
	// GetBool returns the boolean value for key, or def when absent.
	GetBool(key string, def bool) bool

	// GetDuration returns the duration value for key, or def when absent.
	GetDuration(key string, def time.Duration) time.Duration

	// GetInt returns the integer value for key, or def when absent.
	GetInt(key string, def int) int
}
