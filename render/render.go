// Package render draws handtrace session views as raster diagrams.
//
// The output mirrors the capture UI: a light grid, faint per-hand stroke
// trails, filled dots for live contacts, hollow circles for recorded pose
// points (blue start, red finish), dashed motion vectors with arrowheads
// between matching slots, numbered slot labels, and a highlight ring
// around the point being dragged.
//
// All drawing happens on a software gg context, so rendering works
// headless; no window or GPU is required.
package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/handlab/handtrace"
)

// Marker geometry in surface units.
const (
	touchRadius  = 8
	poseRadius   = 10
	selectRadius = 15
	arrowLength  = 9
	arrowFlare   = 0.45
	labelOffset  = 16
)

// The palette follows the capture UI: blue start pose, red finish pose,
// hand-tinted trails.
var (
	colorBackground = gg.White
	colorGrid       = gg.RGB(0.92, 0.92, 0.92)
	colorTouch      = gg.RGB(0.15, 0.15, 0.15)
	colorStart      = gg.RGB(0.13, 0.38, 0.92)
	colorFinish     = gg.RGB(0.86, 0.20, 0.18)
	colorVector     = gg.RGB(0.45, 0.45, 0.45)
	colorSelection  = gg.RGB(0.98, 0.72, 0.07)
	colorLabel      = gg.RGB(0.25, 0.25, 0.25)

	trailColors = [handtrace.HandCount]gg.RGBA{
		handtrace.HandLeft:  gg.RGBA2(0.13, 0.38, 0.92, 0.35),
		handtrace.HandRight: gg.RGBA2(0.86, 0.20, 0.18, 0.35),
	}
)

// Renderer draws session views at a fixed surface size. A Renderer is
// stateless between frames and can be reused; it is not safe for
// concurrent use because each Render builds on its own context but
// shares the parsed label face.
type Renderer struct {
	width  int
	height int
	opts   options
	face   text.Face
}

// NewRenderer returns a renderer for a width-by-height surface. Unless
// labels are disabled, the bundled Go Regular face is parsed once here;
// the only error is that parse failing.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &Renderer{width: width, height: height, opts: cfg}
	if cfg.labels {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("render: parse label font: %w", err)
		}
		r.face = src.Face(cfg.labelSize)
	}
	return r, nil
}

// Render draws the view and returns the finished image.
func (r *Renderer) Render(v handtrace.View) (image.Image, error) {
	dc, err := r.render(v)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG renders the view and writes it as PNG to w.
func (r *Renderer) EncodePNG(w io.Writer, v handtrace.View) error {
	dc, err := r.render(v)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG renders the view and writes it as PNG to path.
func (r *Renderer) SavePNG(path string, v handtrace.View) error {
	dc, err := r.render(v)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

func (r *Renderer) render(v handtrace.View) (*gg.Context, error) {
	handtrace.Logger().Debug("render: frame",
		"width", r.width, "height", r.height, "touches", len(v.Touches))

	dc := gg.NewContext(r.width, r.height)
	dc.ClearWithColor(colorBackground)
	if r.face != nil {
		dc.SetFont(r.face)
	}

	if err := r.drawGrid(dc); err != nil {
		return nil, err
	}
	if err := r.drawStrokes(dc, v); err != nil {
		return nil, err
	}
	if err := r.drawTouches(dc, v); err != nil {
		return nil, err
	}
	for h := handtrace.Hand(0); h < handtrace.HandCount; h++ {
		if err := r.drawHandData(dc, v, h); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

func (r *Renderer) drawGrid(dc *gg.Context) error {
	step := r.opts.gridStep
	if step <= 0 {
		return nil
	}
	dc.SetColor(colorGrid.Color())
	dc.SetLineWidth(1)
	w, h := float64(r.width), float64(r.height)
	for x := step; x < w; x += step {
		dc.DrawLine(x, 0, x, h)
	}
	for y := step; y < h; y += step {
		dc.DrawLine(0, y, w, y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: grid: %w", err)
	}
	return nil
}

// drawStrokes draws the archived paths as faint trails, tinted per hand.
func (r *Renderer) drawStrokes(dc *gg.Context, v handtrace.View) error {
	dc.SetLineWidth(2)
	for h := handtrace.Hand(0); h < handtrace.HandCount; h++ {
		strokes := v.Strokes[h]
		if len(strokes) == 0 {
			continue
		}
		dc.SetColor(trailColors[h].Color())
		for _, s := range strokes {
			polyline(dc, s.Points)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("render: %s-hand trails: %w", h, err)
		}
	}
	return nil
}

// drawTouches draws each live contact: its path so far and a filled dot
// at the current position.
func (r *Renderer) drawTouches(dc *gg.Context, v handtrace.View) error {
	for _, tp := range v.Touches {
		if len(tp.Path) > 1 {
			dc.SetColor(trailColors[tp.Hand].Color())
			dc.SetLineWidth(2)
			polyline(dc, tp.Path)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("render: touch path: %w", err)
			}
		}
		dc.SetColor(colorTouch.Color())
		dc.DrawCircle(tp.Pos.X, tp.Pos.Y, touchRadius)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: touch dot: %w", err)
		}
	}
	return nil
}

func (r *Renderer) drawHandData(dc *gg.Context, v handtrace.View, h handtrace.Hand) error {
	d := v.Hands[h]
	if d.Empty() {
		return nil
	}
	start, hasStart := d.Pose(handtrace.PoseStart)
	finish, hasFinish := d.Pose(handtrace.PoseFinish)

	// Vectors go down first so the markers sit on top of them.
	if hasStart && hasFinish {
		if err := r.drawVectors(dc, start, finish); err != nil {
			return err
		}
	}
	if hasStart {
		if err := r.drawPose(dc, start, colorStart); err != nil {
			return err
		}
	}
	if hasFinish {
		if err := r.drawPose(dc, finish, colorFinish); err != nil {
			return err
		}
	}
	if r.face != nil && hasStart {
		r.drawLabels(dc, start)
	}
	if v.Selection != nil && h == v.ActiveHand {
		if err := r.drawSelection(dc, d, *v.Selection); err != nil {
			return err
		}
	}
	return nil
}

// drawVectors draws a dashed line with an arrowhead from each start
// point to the finish point in the same slot, for slots present in both
// poses.
func (r *Renderer) drawVectors(dc *gg.Context, start, finish handtrace.Pose) error {
	dc.SetColor(colorVector.Color())
	dc.SetLineWidth(1.5)

	dc.SetDash(5, 4)
	for _, slot := range start.Slots() {
		from, _ := start.At(slot)
		to, ok := finish.At(slot)
		if !ok || from == to {
			continue
		}
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: vectors: %w", err)
	}
	dc.ClearDash()

	for _, slot := range start.Slots() {
		from, _ := start.At(slot)
		to, ok := finish.At(slot)
		if !ok || from == to {
			continue
		}
		dir := to.Sub(from).Normalize()
		left := dir.Rotate(math.Pi - arrowFlare).Mul(arrowLength)
		right := dir.Rotate(arrowFlare - math.Pi).Mul(arrowLength)
		dc.MoveTo(to.X+left.X, to.Y+left.Y)
		dc.LineTo(to.X, to.Y)
		dc.LineTo(to.X+right.X, to.Y+right.Y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: arrowheads: %w", err)
	}
	return nil
}

// drawPose draws a hollow circle at every occupied slot.
func (r *Renderer) drawPose(dc *gg.Context, pose handtrace.Pose, col gg.RGBA) error {
	dc.SetColor(col.Color())
	dc.SetLineWidth(2.5)
	for _, slot := range pose.Slots() {
		pt, _ := pose.At(slot)
		dc.DrawCircle(pt.X, pt.Y, poseRadius)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: pose markers: %w", err)
	}
	return nil
}

// drawLabels writes the 1-based slot number above each start point.
func (r *Renderer) drawLabels(dc *gg.Context, pose handtrace.Pose) {
	dc.SetColor(colorLabel.Color())
	for _, slot := range pose.Slots() {
		pt, _ := pose.At(slot)
		dc.DrawStringAnchored(fmt.Sprintf("%d", slot+1), pt.X, pt.Y-labelOffset, 0.5, 0.5)
	}
}

// drawSelection rings the point being dragged.
func (r *Renderer) drawSelection(dc *gg.Context, d handtrace.HandData, hit handtrace.Hit) error {
	pose, ok := d.Pose(hit.Kind)
	if !ok {
		return nil
	}
	pt, ok := pose.At(hit.Slot)
	if !ok {
		return nil
	}
	dc.SetColor(colorSelection.Color())
	dc.SetLineWidth(3)
	dc.DrawCircle(pt.X, pt.Y, selectRadius)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: selection ring: %w", err)
	}
	return nil
}

// polyline appends points as one open subpath.
func polyline(dc *gg.Context, pts []handtrace.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
}
