package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSparkline_Empty(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil, 10, 1))
	assert.Empty(t, RenderSparkline([]float64{0.5}, 0, 1))
	assert.Empty(t, RenderSparkline([]float64{0.5}, -1, 1))
}

func TestRenderSparkline_Levels(t *testing.T) {
	tests := []struct {
		name string
		data []float64
		peak float64
		want string
	}{
		{"scaled to peak", []float64{0, 0.5, 1}, 1, "▁▄█"},
		{"clipped above peak", []float64{2, 1}, 1, "██"},
		{"zero peak uses max", []float64{0.1, 0.2, 0.4}, 0, "▂▄█"},
		{"all zero", []float64{0, 0}, 0, "▁▁"},
		{"decay trace", []float64{0.6, 0.45, 0.3, 0.15, 0}, 0.6, "█▆▄▂▁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderSparkline(tt.data, 10, tt.peak)))
		})
	}
}

func TestRenderSparkline_KeepsMostRecent(t *testing.T) {
	data := []float64{1, 1, 1, 0, 0}

	got := stripANSI(RenderSparkline(data, 2, 1))

	assert.Equal(t, "▁▁", got)
}

func TestSpeedColor(t *testing.T) {
	assert.Equal(t, ColorSuccess, speedColor(90))
	assert.Equal(t, ColorWarning, speedColor(30))
	assert.Equal(t, ColorError, speedColor(5))
}
