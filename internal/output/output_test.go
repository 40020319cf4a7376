package output

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/animcore/internal/sampler"
	"github.com/ivlev/animcore/internal/scene"
	"github.com/ivlev/animcore/internal/transform"
	"github.com/ivlev/animcore/internal/value"
)

func fixture() *sampler.Result {
	outline := value.Path{
		Closed:      true,
		Vertices:    []value.Vector2D{value.Vec(0, 0), value.Vec(10, 0), value.Vec(5, 8)},
		InTangents:  []value.Vector2D{value.Origin, value.Origin, value.Origin},
		OutTangents: []value.Vector2D{value.Origin, value.Origin, value.Origin},
	}
	backdrop := transform.Translation(value.Vec(320, 240))
	return &sampler.Result{
		Layers: []sampler.Layer{
			{
				Name:     "ball",
				Animated: true,
				Frames: []sampler.Frame{
					{
						Frame:  0,
						Matrix: f64.Mat4{0.5, 0, 0, 10, 0, 0.5, 0, 20, 0, 0, 1, 0, 0, 0, 0, 1},
						Properties: []scene.Sample{
							{Name: "opacity", Kind: scene.KindScalar, Scalar: 0},
							{Name: "fill", Kind: scene.KindColor, Color: value.RGB(1, 0, 0)},
							{Name: "outline", Kind: scene.KindPath, Path: outline},
						},
					},
					{
						Frame:      1,
						Time:       0.1,
						Matrix:     f64.Mat4{0, -1, 0, 12.5, 1, 0, 0, -0.0001, 0, 0, 1, 0, 0, 0, 0, 1},
						AutoOrient: 90,
						Properties: []scene.Sample{
							{Name: "opacity", Kind: scene.KindScalar, Scalar: 50},
							{Name: "fill", Kind: scene.KindColor, Color: value.RGB(0.5, 0, 0.5)},
							{Name: "outline", Kind: scene.KindPath, Path: outline},
						},
					},
				},
			},
			{
				Name: "backdrop",
				Frames: []sampler.Frame{
					{Frame: 0, Matrix: backdrop},
					{Frame: 1, Time: 0.1, Matrix: backdrop},
				},
			},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTable, fixture()))

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "table", buf.Bytes())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, fixture()))

	var got struct {
		Layers []struct {
			Name     string `yaml:"name"`
			Animated bool   `yaml:"animated"`
			Frames   []struct {
				Frame      int         `yaml:"frame"`
				Time       float64     `yaml:"time"`
				Matrix     [][]float64 `yaml:"matrix"`
				AutoOrient float64     `yaml:"auto_orient"`
				Properties []struct {
					Name  string    `yaml:"name"`
					Kind  string    `yaml:"kind"`
					Value yaml.Node `yaml:"value"`
				} `yaml:"properties"`
			} `yaml:"frames"`
		} `yaml:"layers"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Layers, 2)

	ball := got.Layers[0]
	assert.Equal(t, "ball", ball.Name)
	assert.True(t, ball.Animated)
	require.Len(t, ball.Frames, 2)

	f := ball.Frames[1]
	assert.Equal(t, 1, f.Frame)
	assert.Equal(t, 0.1, f.Time)
	assert.Equal(t, 90.0, f.AutoOrient)
	assert.Equal(t, [][]float64{{0, -1, 0, 12.5}, {1, 0, 0, -0.0001}, {0, 0, 1, 0}, {0, 0, 0, 1}}, f.Matrix)

	require.Len(t, f.Properties, 3)
	assert.Equal(t, "50", f.Properties[0].Value.Value)
	assert.Equal(t, "#800080", f.Properties[1].Value.Value)

	var path scene.PathDoc
	require.NoError(t, f.Properties[2].Value.Decode(&path))
	assert.True(t, path.Closed)
	assert.Equal(t, []scene.Point{{0, 0}, {10, 0}, {5, 8}}, path.Vertices)

	backdrop := got.Layers[1]
	assert.False(t, backdrop.Animated)
	assert.Equal(t, []float64{1, 0, 0, 320}, backdrop.Frames[0].Matrix[0])
	assert.Empty(t, backdrop.Frames[0].Properties)
}

func TestWriteYAMLNoNegativeZero(t *testing.T) {
	res := &sampler.Result{Layers: []sampler.Layer{{
		Name:   "tiny",
		Frames: []sampler.Frame{{Matrix: f64.Mat4{1, 0, 0, -1e-9, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}}},
	}}}
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, res))
	assert.NotContains(t, buf.String(), "-0")
	assert.Contains(t, buf.String(), "[1, 0, 0, 0]")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("table")
	require.NoError(t, err)
	assert.Equal(t, FormatTable, f)

	_, err = ParseFormat("csv")
	assert.ErrorContains(t, err, "csv")

	assert.Error(t, Write(&bytes.Buffer{}, Format("csv"), &sampler.Result{}))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", Number(-0.0001, 3))
	assert.Equal(t, "12.35", Number(12.3456, 2))
	assert.Equal(t, "320", Number(320, 6))
	assert.Equal(t, "-1", Number(-1, 3))
}
