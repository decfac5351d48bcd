package dashboard

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name        string
		val, lo, hi float64
		want        float64
	}{
		{"at floor", 0, 0, 20, 0},
		{"at ceiling", 20, 0, 20, 1},
		{"midpoint", 10, 0, 20, 0.5},
		{"below floor clamps", -5, 0, 20, 0},
		{"above ceiling clamps", 35, 0, 20, 1},
		{"degenerate range", 7, 5, 5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizeValue(tt.val, tt.lo, tt.hi), 0.0001)
		})
	}
}

func TestResampleData(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, resampleData(nil, 10))
	})

	t.Run("zero target", func(t *testing.T) {
		assert.Nil(t, resampleData([]float64{1, 2}, 0))
	})

	t.Run("same size passes through", func(t *testing.T) {
		data := []float64{1, 2, 3}
		assert.Equal(t, data, resampleData(data, 3))
	})

	t.Run("downsample preserves peaks", func(t *testing.T) {
		data := []float64{1, 9, 1, 1, 1, 8, 1, 1}
		got := resampleData(data, 4)
		assert.Len(t, got, 4)
		assert.Contains(t, got, 9.0, "the spike must survive downsampling")
		assert.Contains(t, got, 8.0)
	})

	t.Run("upsample repeats neighbors", func(t *testing.T) {
		got := resampleData([]float64{1, 5}, 4)
		assert.Len(t, got, 4)
		assert.Equal(t, 1.0, got[0])
		assert.Equal(t, 5.0, got[3])
	})

	t.Run("single point fills", func(t *testing.T) {
		got := resampleData([]float64{3}, 4)
		assert.Equal(t, []float64{3, 3, 3, 3}, got)
	})
}

func TestRenderSparkline(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, RenderSparkline(nil, 10, 0, 20, ColorHealthy))
	})

	t.Run("zero width", func(t *testing.T) {
		assert.Empty(t, RenderSparkline([]float64{1, 2}, 0, 0, 20, ColorHealthy))
	})

	t.Run("fixed range keeps frames comparable", func(t *testing.T) {
		// The same value must render the same block regardless of what else
		// is in the window, because the range is fixed rather than derived
		// from the data.
		a := RenderSparkline([]float64{10}, 1, 0, 20, ColorHealthy)
		b := RenderSparkline([]float64{10, 10}, 2, 0, 20, ColorHealthy)
		assert.Contains(t, b, stripANSI(a))
	})

	t.Run("extremes map to lowest and highest blocks", func(t *testing.T) {
		out := stripANSI(RenderSparkline([]float64{0, 20}, 2, 0, 20, ColorHealthy))
		assert.Equal(t, "▁█", out)
	})
}

func TestRenderThresholdSparkline(t *testing.T) {
	var sawValue float64
	colorFor := func(v float64) lipgloss.Color {
		sawValue = v
		return ColorWarning
	}

	out := RenderThresholdSparkline([]float64{1, 2, 15}, 3, 0, 20, colorFor)
	assert.NotEmpty(t, out)
	assert.Equal(t, 15.0, sawValue, "color is chosen from the most recent value")

	assert.Empty(t, RenderThresholdSparkline(nil, 3, 0, 20, colorFor))
}

// stripANSI removes escape sequences so tests can compare glyphs.
func stripANSI(s string) string {
	var out []rune
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
