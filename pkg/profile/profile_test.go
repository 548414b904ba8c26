package profile

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_Defaults(t *testing.T) {
	p := NewMap()

	assert.True(t, p.GetBool("missing", true))
	assert.False(t, p.GetBool("missing", false))
	assert.Equal(t, 42, p.GetInt("missing", 42))
	assert.Equal(t, 5*time.Second, p.GetDuration("missing", 5*time.Second))
}

func TestMap_SetAndDelete(t *testing.T) {
	p := NewMap()

	p.Set("enabled", true)
	p.Set("limit", 10)
	p.Set("threshold", 100*time.Millisecond)

	assert.True(t, p.GetBool("enabled", false))
	assert.Equal(t, 10, p.GetInt("limit", 0))
	assert.Equal(t, 100*time.Millisecond, p.GetDuration("threshold", 0))

	p.Delete("enabled")
	assert.False(t, p.GetBool("enabled", false))
}

func TestMap_WrongTypeFallsBackToDefault(t *testing.T) {
	p := NewMap()
	p.Set("limit", "not-an-int")
	p.Set("enabled", 1)

	assert.Equal(t, 7, p.GetInt("limit", 7))
	assert.True(t, p.GetBool("enabled", true))
}

func TestMap_ConcurrentReadersAndWriters(t *testing.T) {
	p := NewMap()
	p.Set("enabled", true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				p.Set("enabled", j%2 == 0)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = p.GetBool("enabled", false)
			}
		}()
	}
	wg.Wait()
}

func TestOverlay(t *testing.T) {
	base := NewMap()
	base.Set("limit", 500)
	base.Set("enabled", true)

	o := NewOverlay(base)
	o.Set("limit", 50)

	assert.Equal(t, 50, o.GetInt("limit", 0), "override wins")
	assert.True(t, o.GetBool("enabled", false), "base value passes through")
	assert.Equal(t, 9, o.GetInt("missing", 9), "default when absent everywhere")
}

func TestOverlay_NilBase(t *testing.T) {
	o := NewOverlay(nil)
	assert.Equal(t, 3, o.GetInt("anything", 3))
}

func TestEnv(t *testing.T) {
	t.Setenv("QT_REQUEST_LOGGER_SUCCESS_ENABLED", "true")
	t.Setenv("QT_REQUEST_LOGGER_SLOW_THRESHOLD", "250ms")
	t.Setenv("QT_REQUEST_LOGGER_MAX_VALUES", "12")
	t.Setenv("QT_REQUEST_LOGGER_MAX_QUERY_LENGTH", "garbage")

	p := NewEnv("qt")

	assert.True(t, p.GetBool("request-logger.success.enabled", false))
	assert.Equal(t, 250*time.Millisecond, p.GetDuration("request-logger.slow.threshold", 0))
	assert.Equal(t, 12, p.GetInt("request-logger.max-values", 0))

	require.Equal(t, 500, p.GetInt("request-logger.max-query-length", 500),
		"unparseable value resolves to the default, never an error")
	assert.Equal(t, 9, p.GetInt("request-logger.unset", 9))
}

func TestEnv_NoPrefix(t *testing.T) {
	t.Setenv("SOME_FLAG", "true")

	p := NewEnv("")
	assert.True(t, p.GetBool("some.flag", false))
}
