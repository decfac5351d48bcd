package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparklineBlocks are block characters for 8-level vertical resolution
// (lowest to highest).
var sparklineBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// normalizeValue converts a value to 0-1 range given lo/hi bounds.
func normalizeValue(val, lo, hi float64) float64 {
	if hi > lo {
		n := (val - lo) / (hi - lo)
		if n < 0 {
			return 0
		}
		if n > 1 {
			return 1
		}
		return n
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// resampleData resizes a data series to targetSize points.
// Downsampling uses the max within each bucket to preserve peaks;
// upsampling repeats the nearest source point.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}

	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}
			maxVal := data[start]
			for _, v := range data[start:end] {
				if v > maxVal {
					maxVal = v
				}
			}
			result[i] = maxVal
		}
		return result
	}

	// Upsampling: nearest neighbor
	ratio := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		idx := int(float64(i)*ratio + 0.5)
		if idx >= len(data) {
			idx = len(data) - 1
		}
		result[i] = data[idx]
	}
	return result
}

// RenderSparkline renders a single-row sparkline using block characters
// over a fixed [lo, hi] value range, so successive frames of the same
// metric stay visually comparable as the window rotates.
func RenderSparkline(data []float64, width int, lo, hi float64, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	resampled := resampleData(data, width)

	var result strings.Builder
	for _, val := range resampled {
		normalized := normalizeValue(val, lo, hi)
		idx := clampInt(int(normalized*float64(len(sparklineBlocks)-1)), len(sparklineBlocks)-1)
		result.WriteRune(sparklineBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(result.String())
}

// RenderThresholdSparkline renders a sparkline colored by the most recent
// value, using the provided value-to-color mapping.
func RenderThresholdSparkline(data []float64, width int, lo, hi float64, colorFor func(float64) lipgloss.Color) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	last := data[len(data)-1]
	return RenderSparkline(data, width, lo, hi, colorFor(last))
}
