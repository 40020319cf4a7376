package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"github.com/ivlev/animcore/internal/animated"
	"github.com/ivlev/animcore/internal/opt"
	"github.com/ivlev/animcore/internal/value"
)

var (
	linearOut = opt.Some(value.Vec(0.25, 0.25))
	linearIn  = opt.Some(value.Vec(0.75, 0.75))
)

func moving(t *testing.T, points ...value.Vector2D) *Vector {
	t.Helper()
	keys := make([]animated.KeyFrame[value.Vector2D], len(points))
	for i, p := range points {
		keys[i] = animated.KeyFrame[value.Vector2D]{
			Value:      p,
			StartFrame: opt.Some(i * 10),
			EasingOut:  linearOut,
			EasingIn:   linearIn,
		}
	}
	a, err := animated.New(keys, true)
	require.NoError(t, err)
	return a
}

func assertMatrix(t *testing.T, want, got f64.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "element %d: want %v got %v", i, want, got)
	}
}

func TestIdentityTransform(t *testing.T) {
	tr := New()
	tr.Anchor = opt.Some(animated.Static(value.Origin))
	tr.Position = opt.Some(animated.Static(value.Origin))

	for _, frame := range []int{0, 1, 17, 240} {
		assert.Equal(t, Identity(), tr.Compose(frame))
	}
	assert.Equal(t, Identity(), New().Compose(3), "absent anchor and position read as origin")
	assert.False(t, tr.IsAnimated())
}

func TestPureTranslation(t *testing.T) {
	tr := New()
	tr.Position = opt.Some(animated.Static(value.Vec(5, 7)))

	for _, frame := range []int{0, 5, 100} {
		m := tr.Compose(frame)
		assert.Equal(t, 5.0, m[3])
		assert.Equal(t, 7.0, m[7])
		assert.Equal(t, 0.0, m[11])
		m[3], m[7] = 0, 0
		assert.Equal(t, Identity(), m, "no rotation or scale component")
	}
}

func TestComposeOrder(t *testing.T) {
	tr := Transform{
		Anchor:   opt.Some(animated.Static(value.Vec(10, 0))),
		Position: opt.Some(animated.Static(value.Vec(100, 50))),
		Scale:    animated.Static(value.Vec(200, 50)),
		Rotation: animated.Static(value.Scalar(90)),
	}
	m := tr.Compose(0)

	// anchor lands on position
	got := Apply(m, value.Vec(10, 0))
	assert.InDelta(t, 100, got.X, 1e-9)
	assert.InDelta(t, 50, got.Y, 1e-9)

	// (11, 0): one unit right of the anchor, scaled x2 to (2, 0), rotated
	// 90 degrees to (0, 2), moved to position
	got = Apply(m, value.Vec(11, 0))
	assert.InDelta(t, 100, got.X, 1e-9)
	assert.InDelta(t, 52, got.Y, 1e-9)

	want := Multiply(Multiply(Multiply(
		Translation(value.Vec(100, 50)),
		RotationZ(math.Pi/2)),
		Scaling(value.Vec(2, 0.5))),
		Translation(value.Vec(-10, 0)))
	assertMatrix(t, want, m)
}

func TestAnimatedScaleAndRotation(t *testing.T) {
	tr := New()
	tr.Scale = moving(t, value.Vec(100, 100), value.Vec(300, 300))
	tr.Rotation = animated.MustNew([]animated.KeyFrame[value.Scalar]{
		{Value: 0, StartFrame: opt.Some(0), EasingOut: linearOut, EasingIn: linearIn},
		{Value: 180, StartFrame: opt.Some(10)},
	}, true)

	assert.True(t, tr.IsAnimated())
	m := tr.Compose(5)
	// rotation 90, scale 2
	assertMatrix(t, f64.Mat4{
		0, -2, 0, 0,
		2, 0, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}, m)
}

func TestAutoOrient(t *testing.T) {
	tests := []struct {
		name  string
		to    value.Vector2D
		angle float64
	}{
		{"along x", value.Vec(10, 0), 0},
		{"along y", value.Vec(0, 10), 90},
		{"backwards", value.Vec(-10, 0), 180},
		{"diagonal up", value.Vec(10, -10), -45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New()
			tr.AutoOrient = true
			tr.Position = opt.Some(moving(t, value.Origin, tt.to))

			for _, frame := range []int{-5, 0, 3, 9} {
				assert.InDelta(t, tt.angle, tr.AutoOrientAngle(frame), 1e-9, "frame %d", frame)
			}
		})
	}
}

func TestAutoOrientUsesSegmentEndpoints(t *testing.T) {
	tr := New()
	tr.AutoOrient = true
	tr.Position = opt.Some(moving(t, value.Origin, value.Vec(10, 0), value.Vec(10, 10)))

	assert.InDelta(t, 0, tr.AutoOrientAngle(5), 1e-9)
	assert.InDelta(t, 90, tr.AutoOrientAngle(15), 1e-9)
	// clamped onto the last keyframe, which starts no segment
	assert.Equal(t, 0.0, tr.AutoOrientAngle(20))
	assert.Equal(t, 0.0, tr.AutoOrientAngle(500))

	m := tr.Compose(15)
	assertMatrix(t, Multiply(Translation(tr.Position.Or(nil).Value(15)), RotationZ(math.Pi/2)), m)
}

func TestAutoOrientDisabled(t *testing.T) {
	tr := New()
	tr.Position = opt.Some(moving(t, value.Origin, value.Vec(0, 10)))
	assert.Equal(t, 0.0, tr.AutoOrientAngle(5), "flag off")

	tr = New()
	tr.AutoOrient = true
	tr.Position = opt.Some(animated.Static(value.Vec(3, 4)))
	assert.Equal(t, 0.0, tr.AutoOrientAngle(5), "static position")

	tr = New()
	tr.AutoOrient = true
	assert.Equal(t, 0.0, tr.AutoOrientAngle(5), "no position")
}

func TestIsAnimated(t *testing.T) {
	tr := New()
	assert.False(t, tr.IsAnimated())

	tr.Anchor = opt.Some(moving(t, value.Origin, value.Vec(1, 1)))
	assert.True(t, tr.IsAnimated())

	tr = New()
	tr.Position = opt.Some(moving(t, value.Origin, value.Vec(1, 1)))
	assert.True(t, tr.IsAnimated())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New().Validate())
	assert.Error(t, Transform{Rotation: DefaultRotation()}.Validate())
	assert.Error(t, Transform{Scale: DefaultScale()}.Validate())

	tr := New()
	tr.Position = opt.Some[*Vector](nil)
	assert.Error(t, tr.Validate())
}

func TestAffine(t *testing.T) {
	m := Translation(value.Vec(3, 4))
	assert.Equal(t, f64.Aff3{1, 0, 3, 0, 1, 4}, Affine(m))
}
