package sampler

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/animcore/internal/scene"
	"github.com/ivlev/animcore/internal/transform"
	"github.com/ivlev/animcore/internal/value"
)

const sceneYAML = `
version: "1.0"
frame_rate: 4
in_point: 0
out_point: 8
layers:
  - name: slider
    transform:
      position:
        keyframes:
          - {frame: 0, value: [0, 0], out: [0.25, 0.25], in: [0.75, 0.75]}
          - {frame: 8, value: [80, 0]}
    properties:
      - name: opacity
        kind: scalar
        keyframes:
          - {frame: 0, value: 0, out: [0.25, 0.25], in: [0.75, 0.75]}
          - {frame: 4, value: 100}
  - name: still
    transform:
      position:
        keyframes:
          - value: [5, 7]
  - name: spinner
    transform:
      rotation:
        keyframes:
          - {frame: 0, value: 0, out: [0.25, 0.25], in: [0.75, 0.75]}
          - {frame: 8, value: 360}
`

func buildScene(t *testing.T) *scene.Scene {
	t.Helper()
	doc, err := scene.Parse([]byte(sceneYAML))
	require.NoError(t, err)
	s, err := scene.Build(doc)
	require.NoError(t, err)
	return s
}

func TestSampleAllLayers(t *testing.T) {
	s := buildScene(t)

	res, err := Sample(context.Background(), s, Options{From: 0, To: 8, Workers: 2})
	require.NoError(t, err)
	require.Len(t, res.Layers, 3)

	names := []string{res.Layers[0].Name, res.Layers[1].Name, res.Layers[2].Name}
	assert.Equal(t, []string{"slider", "still", "spinner"}, names, "scene order is kept")

	slider := res.Layers[0]
	assert.True(t, slider.Animated)
	require.Len(t, slider.Frames, 9)
	for i, f := range slider.Frames {
		assert.Equal(t, i, f.Frame)
		assert.Equal(t, float64(i)/4, f.Time)
		assert.Equal(t, s.Layers[0].Transform.Compose(i), f.Matrix)
		require.Len(t, f.Properties, 1)
		assert.Equal(t, "opacity", f.Properties[0].Name)
	}
	assert.InDelta(t, 40, slider.Frames[4].Matrix[3], 1e-4)
	assert.InDelta(t, 50, float64(slider.Frames[2].Properties[0].Scalar), 1e-4)
	assert.Equal(t, value.Scalar(100), slider.Frames[6].Properties[0].Scalar)

	still := res.Layers[1]
	assert.False(t, still.Animated)
	for _, f := range still.Frames {
		assert.Equal(t, 5.0, f.Matrix[3])
		assert.Equal(t, 7.0, f.Matrix[7])
		assert.Empty(t, f.Properties)
	}

	// 9 frames: slider 2 evaluations, still 1, spinner 1
	assert.Equal(t, 9*4, res.Evaluations)
}

func TestSampleSelectedLayers(t *testing.T) {
	s := buildScene(t)

	res, err := Sample(context.Background(), s, Options{From: 2, To: 3, Layers: []string{"spinner", "slider"}})
	require.NoError(t, err)
	require.Len(t, res.Layers, 2)
	assert.Equal(t, "slider", res.Layers[0].Name)
	assert.Equal(t, "spinner", res.Layers[1].Name)

	spin := res.Layers[1].Frames[0]
	assert.Equal(t, 2, spin.Frame)
	want := transform.RotationZ(math.Pi / 2)
	for i := range want {
		assert.InDelta(t, want[i], spin.Matrix[i], 1e-6)
	}
}

func TestSampleErrors(t *testing.T) {
	s := buildScene(t)

	_, err := Sample(context.Background(), s, Options{From: 5, To: 4})
	assert.Error(t, err)

	_, err = Sample(context.Background(), s, Options{From: 0, To: 1, Layers: []string{"nope"}})
	assert.ErrorContains(t, err, "nope")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sample(ctx, s, Options{From: 0, To: 100})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSampleAutoOrient(t *testing.T) {
	doc, err := scene.Parse([]byte(`
version: "1.0"
layers:
  - name: car
    transform:
      auto_orient: true
      position:
        keyframes:
          - {frame: 0, value: [0, 0], out: [0.25, 0.25], in: [0.75, 0.75]}
          - {frame: 10, value: [0, 10]}
`))
	require.NoError(t, err)
	s, err := scene.Build(doc)
	require.NoError(t, err)

	res, err := Sample(context.Background(), s, Options{From: 0, To: 10})
	require.NoError(t, err)
	frames := res.Layers[0].Frames
	assert.InDelta(t, 90, frames[0].AutoOrient, 1e-9)
	assert.InDelta(t, 90, frames[9].AutoOrient, 1e-9)
	assert.Equal(t, 0.0, frames[10].AutoOrient)
	assert.Equal(t, 0.0, frames[0].Time, "no frame rate")
}

func TestSampleFrameRangeBounds(t *testing.T) {
	s := buildScene(t)

	_, err := Sample(context.Background(), s, Options{From: math.MinInt, To: math.MaxInt})
	assert.ErrorContains(t, err, "exceeds")

	_, err = Sample(context.Background(), s, Options{From: 0, To: MaxFrames})
	assert.ErrorContains(t, err, "exceeds")

	res, err := Sample(context.Background(), s, Options{From: math.MaxInt - 1, To: math.MaxInt, Layers: []string{"slider"}})
	require.NoError(t, err)
	frames := res.Layers[0].Frames
	require.Len(t, frames, 2)
	assert.Equal(t, math.MaxInt-1, frames[0].Frame)
	assert.Equal(t, math.MaxInt, frames[1].Frame)
	assert.Equal(t, 80.0, frames[1].Matrix[3], "held at the last keyframe")
}
