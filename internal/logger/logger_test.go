package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New("warn").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("loud").GetLevel())
}
