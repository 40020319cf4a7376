// Package sampler evaluates every layer of a scene over a frame range.
package sampler

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/image/math/f64"
	"golang.org/x/sync/errgroup"

	"github.com/ivlev/animcore/internal/logger"
	"github.com/ivlev/animcore/internal/scene"
)

// MaxFrames bounds the number of frames one Sample call evaluates.
const MaxFrames = 1 << 20

// Options selects what to sample.
type Options struct {
	From, To int      // inclusive frame range
	Layers   []string // layer names, all layers when empty
	Workers  int      // concurrent layers, GOMAXPROCS when <= 0
}

// Frame is one layer evaluated at one frame.
type Frame struct {
	Frame      int
	Time       float64 // seconds, 0 when the scene has no frame rate
	Matrix     f64.Mat4
	AutoOrient float64 // degrees already included in Matrix
	Properties []scene.Sample
}

// Layer holds the frames of one layer in ascending order.
type Layer struct {
	Name     string
	Animated bool
	Frames   []Frame
}

// Result is the output of Sample. Layers keep scene order.
type Result struct {
	Layers      []Layer
	Evaluations int // property evaluations, transforms count as one
	Elapsed     time.Duration
}

// Sample evaluates the selected layers for every frame in [From, To].
// Layers are processed concurrently; evaluation itself never fails, so the
// only errors are bad options and cancellation of ctx.
func Sample(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	if opts.To < opts.From {
		return nil, fmt.Errorf("frame range %d..%d is empty", opts.From, opts.To)
	}
	// the difference wraps for huge spans; as unsigned it is exact
	if uint64(opts.To-opts.From) >= MaxFrames {
		return nil, fmt.Errorf("frame range %d..%d exceeds %d frames", opts.From, opts.To, MaxFrames)
	}
	layers, err := selectLayers(s, opts.Layers)
	if err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	res := &Result{Layers: make([]Layer, len(layers))}
	counts := make([]int, len(layers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, l := range layers {
		i, l := i, l
		g.Go(func() error {
			out, n, err := sampleLayer(ctx, s.FrameRate, l, opts.From, opts.To)
			if err != nil {
				return err
			}
			res.Layers[i] = out
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, n := range counts {
		res.Evaluations += n
	}
	res.Elapsed = time.Since(start)
	logger.Logger().Debug("sampled scene",
		"layers", len(layers),
		"from", opts.From,
		"to", opts.To,
		"workers", workers,
		"evaluations", res.Evaluations,
		"elapsed", res.Elapsed)
	return res, nil
}

func sampleLayer(ctx context.Context, rate float64, l *scene.Layer, from, to int) (Layer, int, error) {
	out := Layer{
		Name:     l.Name,
		Animated: l.IsAnimated(),
		Frames:   make([]Frame, 0, to-from+1),
	}
	n := 0
	for k := 0; k <= to-from; k++ {
		frame := from + k
		if err := ctx.Err(); err != nil {
			return Layer{}, 0, err
		}
		f := Frame{
			Frame:      frame,
			Matrix:     l.Transform.Compose(frame),
			AutoOrient: l.Transform.AutoOrientAngle(frame),
		}
		if rate > 0 {
			f.Time = float64(frame) / rate
		}
		if len(l.Properties) > 0 {
			f.Properties = make([]scene.Sample, len(l.Properties))
			for i, p := range l.Properties {
				f.Properties[i] = p.At(frame)
			}
		}
		n += 1 + len(l.Properties)
		out.Frames = append(out.Frames, f)
	}
	return out, n, nil
}

func selectLayers(s *scene.Scene, names []string) ([]*scene.Layer, error) {
	if len(names) == 0 {
		return s.Layers, nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := s.Layer(name); !ok {
			return nil, fmt.Errorf("unknown layer %q", name)
		}
		want[name] = true
	}
	var out []*scene.Layer
	for _, l := range s.Layers {
		if want[l.Name] {
			out = append(out, l)
		}
	}
	return out, nil
}
