package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			log, err := New(level)
			assert.NoError(t, err)
			assert.NotNil(t, log)
			assert.Same(t, Log, log)
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	log, err := New("not-a-level")
	assert.Error(t, err)
	assert.Nil(t, log)
}

func TestLog_DefaultIsNoop(t *testing.T) {
	// The global must be usable even before New is called.
	assert.NotPanics(t, func() {
		Log.Infow("noop logger should not panic", "key", "value")
	})
}
