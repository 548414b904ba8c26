package profile

import "time"

// Overlay layers override values on top of a base profile. Keys present in
// the overrides win; everything else is delegated to the base. Useful for
// per-request or per-session tweaks over shared defaults.
type Overlay struct {
	base      Profile
	overrides *Map
}

// NewOverlay creates an Overlay over base. A nil base behaves as an empty
// profile, so every non-overridden lookup yields its default.
func NewOverlay(base Profile) *Overlay {
	if base == nil {
		base = NewMap()
	}
	return &Overlay{
		base:      base,
		overrides: NewMap(),
	}
}

// Set stores an override value for key.
func (o *Overlay) Set(key string, value any) {
	o.overrides.Set(key, value)
}

// GetBool returns the overridden boolean for key, falling back to the base.
func (o *Overlay) GetBool(key string, def bool) bool {
	return o.overrides.GetBool(key, o.base.GetBool(key, def))
}

// GetDuration returns the overridden duration for key, falling back to the base.
func (o *Overlay) GetDuration(key string, def time.Duration) time.Duration {
	return o.overrides.GetDuration(key, o.base.GetDuration(key, def))
}

// GetInt returns the overridden integer for key, falling back to the base.
func (o *Overlay) GetInt(key string, def int) int {
	return o.overrides.GetInt(key, o.base.GetInt(key, def))
}
