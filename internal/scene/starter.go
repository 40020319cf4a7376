package scene

// Starter returns a small valid document: one layer moving diagonally
// with auto-orient, an opacity that pops in halfway, and a fixed fill.
func Starter(name string) (*Document, error) {
	var firstErr error
	key := func(frame int, v any, eased bool) KeyframeDoc {
		kf, err := NewKeyframe(frame, v)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if eased {
			kf.Out, kf.In = Point{0.25, 0.25}, Point{0.75, 0.75}
		}
		return kf
	}

	hidden := key(0, 0.0, false)
	hidden.Hold = true

	doc := &Document{
		Version:   "1.0",
		Name:      name,
		FrameRate: 24,
		InPoint:   0,
		OutPoint:  24,
		Layers: []LayerDoc{{
			Name: "dot",
			Transform: TransformDoc{
				AutoOrient: true,
				Position: &Track{Keyframes: []KeyframeDoc{
					key(0, []float64{0, 0}, true),
					key(24, []float64{200, 100}, false),
				}},
			},
			Properties: []PropertyDoc{
				{Name: "opacity", Kind: KindScalar, Track: Track{Keyframes: []KeyframeDoc{
					hidden,
					key(12, 100.0, false),
				}}},
				{Name: "fill", Kind: KindColor, Track: Track{Keyframes: []KeyframeDoc{
					key(0, "#ff8000", false),
				}}},
			},
		}},
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return doc, nil
}
