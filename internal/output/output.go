// Package output renders sampled frames as a text table or YAML.
package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/animcore/internal/sampler"
	"github.com/ivlev/animcore/internal/scene"
	"github.com/ivlev/animcore/internal/value"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want table or yaml)", s)
}

// Write renders res to w in format f.
func Write(w io.Writer, f Format, res *sampler.Result) error {
	switch f {
	case FormatTable:
		return WriteTable(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	}
	return fmt.Errorf("unknown output format %q", f)
}

// WriteTable prints one aligned table per layer. Numbers are rounded to
// three decimals.
func WriteTable(w io.Writer, res *sampler.Result) error {
	for i, l := range res.Layers {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		state := "static"
		if l.Animated {
			state = "animated"
		}
		if _, err := fmt.Fprintf(w, "layer %s (%s)\n", l.Name, state); err != nil {
			return err
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		cols := []string{"frame", "time", "tx", "ty", "a", "b", "c", "d", "orient"}
		if len(l.Frames) > 0 {
			for _, p := range l.Frames[0].Properties {
				cols = append(cols, p.Name)
			}
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
		for _, f := range l.Frames {
			m := f.Matrix
			cells := []string{
				strconv.Itoa(f.Frame),
				Number(f.Time, 3),
				Number(m[3], 3),
				Number(m[7], 3),
				Number(m[0], 3),
				Number(m[1], 3),
				Number(m[4], 3),
				Number(m[5], 3),
				Number(f.AutoOrient, 3),
			}
			for _, p := range f.Properties {
				cells = append(cells, cell(p))
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func cell(s scene.Sample) string {
	switch s.Kind {
	case scene.KindScalar:
		return Number(float64(s.Scalar), 3)
	case scene.KindVector:
		return "(" + Number(s.Vector.X, 3) + ", " + Number(s.Vector.Y, 3) + ")"
	case scene.KindColor:
		return s.Color.Hex()
	case scene.KindPath:
		if s.Path.Closed {
			return fmt.Sprintf("path(%d, closed)", len(s.Path.Vertices))
		}
		return fmt.Sprintf("path(%d)", len(s.Path.Vertices))
	}
	return "?"
}

// round rounds v to the given number of decimals and folds negative zero
// into zero.
func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// Number formats v rounded to decimals, without trailing zeros.
func Number(v float64, decimals int) string {
	return strconv.FormatFloat(round(v, decimals), 'f', -1, 64)
}

type documentYAML struct {
	Layers []layerYAML `yaml:"layers"`
}

type layerYAML struct {
	Name     string      `yaml:"name"`
	Animated bool        `yaml:"animated"`
	Frames   []frameYAML `yaml:"frames"`
}

type frameYAML struct {
	Frame      int            `yaml:"frame"`
	Time       float64        `yaml:"time"`
	Matrix     []row          `yaml:"matrix"`
	AutoOrient float64        `yaml:"auto_orient,omitempty"`
	Properties []propertyYAML `yaml:"properties,omitempty"`
}

type propertyYAML struct {
	Name  string     `yaml:"name"`
	Kind  scene.Kind `yaml:"kind"`
	Value any        `yaml:"value"`
}

// row is one matrix row, emitted in flow style.
type row []float64

func (r row) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range r {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}
	return n, nil
}

// WriteYAML encodes res as a YAML document. Numbers are rounded to six
// decimals; matrices are written as four rows.
func WriteYAML(w io.Writer, res *sampler.Result) error {
	doc := documentYAML{Layers: make([]layerYAML, len(res.Layers))}
	for i, l := range res.Layers {
		ly := layerYAML{Name: l.Name, Animated: l.Animated, Frames: make([]frameYAML, len(l.Frames))}
		for j, f := range l.Frames {
			fy := frameYAML{
				Frame:      f.Frame,
				Time:       round(f.Time, 6),
				AutoOrient: round(f.AutoOrient, 6),
				Matrix:     make([]row, 4),
			}
			for r := 0; r < 4; r++ {
				fy.Matrix[r] = make(row, 4)
				for c := 0; c < 4; c++ {
					fy.Matrix[r][c] = round(f.Matrix[r*4+c], 6)
				}
			}
			for _, p := range f.Properties {
				fy.Properties = append(fy.Properties, propertyYAML{Name: p.Name, Kind: p.Kind, Value: sampleValue(p)})
			}
			ly.Frames[j] = fy
		}
		doc.Layers[i] = ly
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode samples: %w", err)
	}
	return enc.Close()
}

func sampleValue(s scene.Sample) any {
	switch s.Kind {
	case scene.KindScalar:
		return round(float64(s.Scalar), 6)
	case scene.KindVector:
		return point(s.Vector)
	case scene.KindColor:
		return s.Color.Hex()
	case scene.KindPath:
		return scene.PathDoc{
			Closed:   s.Path.Closed,
			Vertices: points(s.Path.Vertices),
			In:       points(s.Path.InTangents),
			Out:      points(s.Path.OutTangents),
		}
	}
	return nil
}

func point(v value.Vector2D) row {
	return row{round(v.X, 6), round(v.Y, 6)}
}

func points(vs []value.Vector2D) []scene.Point {
	out := make([]scene.Point, len(vs))
	for i, v := range vs {
		out[i] = scene.Point{round(v.X, 6), round(v.Y, 6)}
	}
	return out
}
