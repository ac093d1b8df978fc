// Package signature captures freehand strokes on a fixed logical surface and
// rasterizes them to a PNG. Capture is plain data (point sequences); rendering
// happens only when a stroke completes, so the exported image always reflects
// the most recently finished stroke sequence.
package signature

import (
	"bytes"
	"encoding/base64"

	"github.com/fogleman/gg"
)

// Native surface size in logical units. Input coordinates are scaled from the
// reported display size so signatures stay crisp regardless of device pixels.
const (
	SurfaceWidth  = 500
	SurfaceHeight = 150
)

const (
	strokeColor = "#1e1e4b"
	strokeWidth = 2
)

// Point is a coordinate on the native surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pad accumulates strokes. Not safe for concurrent use; each pad belongs to a
// single draft session.
type Pad struct {
	strokes  [][]Point
	current  []Point
	drawing  bool
	snapshot []byte
}

func NewPad() *Pad {
	return &Pad{}
}

func scale(x, y, displayW, displayH float64) Point {
	if displayW <= 0 {
		displayW = SurfaceWidth
	}
	if displayH <= 0 {
		displayH = SurfaceHeight
	}
	return Point{
		X: x * SurfaceWidth / displayW,
		Y: y * SurfaceHeight / displayH,
	}
}

// BeginStroke starts a stroke at the given display coordinates. An already
// open stroke is closed first so no unterminated path is left behind.
func (p *Pad) BeginStroke(x, y, displayW, displayH float64) {
	if p.drawing {
		_ = p.EndStroke()
	}
	p.drawing = true
	p.current = []Point{scale(x, y, displayW, displayH)}
}

// AddPoint extends the open stroke. Ignored when no stroke is open.
func (p *Pad) AddPoint(x, y, displayW, displayH float64) {
	if !p.drawing {
		return
	}
	p.current = append(p.current, scale(x, y, displayW, displayH))
}

// EndStroke closes the open stroke and re-rasterizes the exported snapshot
// from all completed strokes. A pointer-down with no movement still counts as
// a completed stroke (a dot).
func (p *Pad) EndStroke() error {
	if !p.drawing {
		return nil
	}
	p.drawing = false
	p.strokes = append(p.strokes, p.current)
	p.current = nil

	img, err := p.rasterize()
	if err != nil {
		return err
	}
	p.snapshot = img
	return nil
}

// AddStroke records one complete stroke in a single call.
func (p *Pad) AddStroke(points []Point, displayW, displayH float64) error {
	if len(points) == 0 {
		return nil
	}
	p.BeginStroke(points[0].X, points[0].Y, displayW, displayH)
	for _, pt := range points[1:] {
		p.AddPoint(pt.X, pt.Y, displayW, displayH)
	}
	return p.EndStroke()
}

// Clear wipes the surface: strokes, any open stroke and the snapshot.
func (p *Pad) Clear() {
	p.strokes = nil
	p.current = nil
	p.drawing = false
	p.snapshot = nil
}

// HasSignature reports whether at least one stroke was completed.
func (p *Pad) HasSignature() bool {
	return len(p.strokes) > 0
}

// ExportPNG returns a self-contained copy of the PNG produced when the last
// stroke finished, or nil when nothing was drawn.
func (p *Pad) ExportPNG() []byte {
	if p.snapshot == nil {
		return nil
	}
	out := make([]byte, len(p.snapshot))
	copy(out, p.snapshot)
	return out
}

// DataURI renders the snapshot as a data URI string for persistence.
func (p *Pad) DataURI() string {
	if p.snapshot == nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(p.snapshot)
}

func (p *Pad) rasterize() ([]byte, error) {
	dc := gg.NewContext(SurfaceWidth, SurfaceHeight)
	dc.SetHexColor(strokeColor)
	dc.SetLineWidth(strokeWidth)
	dc.SetLineCapRound()

	for _, stroke := range p.strokes {
		if len(stroke) == 0 {
			continue
		}
		dc.MoveTo(stroke[0].X, stroke[0].Y)
		if len(stroke) == 1 {
			dc.LineTo(stroke[0].X, stroke[0].Y)
		}
		for _, pt := range stroke[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
