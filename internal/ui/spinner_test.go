package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// captureOutput collects spinner writes safely across goroutines.
type captureOutput struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (c *captureOutput) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.WriteString(s)
}

func (c *captureOutput) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

func TestSpinnerLifecycle(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Probing API")
	s.SetOutput(out.write)

	assert.Equal(t, SpinnerPending, s.State())

	s.Start()
	assert.Equal(t, SpinnerInProgress, s.State())

	s.Success()
	assert.Equal(t, SpinnerSuccess, s.State())

	output := out.String()
	assert.Contains(t, output, "Probing API")
	assert.Contains(t, output, SymbolSuccess)
}

func TestSpinnerFail(t *testing.T) {
	out := &captureOutput{}
	s := NewSpinner("Probing API")
	s.SetOutput(out.write)

	s.Start()
	s.Fail()

	assert.Equal(t, SpinnerFailed, s.State())
	assert.Contains(t, out.String(), SymbolFail)
}

func TestSpinnerStartIdempotent(t *testing.T) {
	s := NewSpinner("x")
	s.SetOutput(func(string) {})

	s.Start()
	s.Start() // second start is a no-op
	s.Stop()
	s.Stop() // second stop is a no-op

	assert.Equal(t, SpinnerInProgress, s.State())
}

func TestSpinnerElapsed(t *testing.T) {
	s := NewSpinner("x")
	assert.Zero(t, s.Elapsed(), "not started yet")

	s.SetOutput(func(string) {})
	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	assert.Greater(t, s.Elapsed(), time.Duration(0))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.05s", formatDuration(50*time.Millisecond))
	assert.Equal(t, "1.2s", formatDuration(1200*time.Millisecond))
}
