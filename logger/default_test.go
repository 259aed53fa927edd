package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loaderkit/diaglog/config"
	"github.com/loaderkit/diaglog/core"
)

func TestNewWithDefaultsNoKeyword(t *testing.T) {
	t.Setenv(config.EnvVar, "")

	l := NewWithDefaults()

	require.Len(t, l.recorders, 1)
	r := l.recorders[0]
	assert.Equal(t, core.SeverityError, r.Severities())
	assert.Equal(t, core.AllCategories, r.Categories())
}

func TestNewWithDefaultsInfoKeyword(t *testing.T) {
	t.Setenv(config.EnvVar, "info")

	l := NewWithDefaults()

	require.Len(t, l.recorders, 2)
	second := l.recorders[1]
	sev := second.Severities()
	assert.NotZero(t, sev&core.SeverityError)
	assert.NotZero(t, sev&core.SeverityWarning)
	assert.NotZero(t, sev&core.SeverityInfo)
	assert.Zero(t, sev&core.SeverityVerbose, "info keyword must reject VERBOSE-only messages")
	assert.Equal(t, core.AllCategories, second.Categories())
}

func TestNewWithDefaultsUnknownKeyword(t *testing.T) {
	t.Setenv(config.EnvVar, "shouty")

	l := NewWithDefaults()
	assert.Len(t, l.recorders, 1)
}

func TestNewWithDefaultsVerboseKeyword(t *testing.T) {
	t.Setenv(config.EnvVar, "verbose")

	l := NewWithDefaults()
	require.Len(t, l.recorders, 2)
	assert.Equal(t, core.AllSeverities, l.recorders[1].Severities())
}

func TestInstanceConstructedOnce(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Logger, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Instance()
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(got); i++ {
		assert.Same(t, got[0], got[i])
	}
}
