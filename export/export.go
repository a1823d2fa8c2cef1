// Package export writes recorded hand poses as printable PDF sheets.
//
// A sheet is one A4 landscape page: a title, a diagram of both hands'
// recorded poses with motion vectors (fitted to the page, aspect ratio
// preserved), and a per-hand coordinate table listing each slot's start
// point, finish point, and reach.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/handlab/handtrace"
)

// Page layout in millimeters (A4 landscape is 297 x 210).
const (
	pageMargin = 12.0
	diagramX   = 12.0
	diagramY   = 28.0
	diagramW   = 150.0
	diagramH   = 160.0
	tableX     = diagramX + diagramW + 12
	tableW     = 297 - tableX - pageMargin
	markerR    = 2.2
	rowH       = 6.0
)

// WritePDF renders the pose sheet for v to w.
func WritePDF(w io.Writer, v handtrace.View, opts ...Option) error {
	pdf := buildSheet(v, opts...)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

// SavePDF renders the pose sheet for v to path.
func SavePDF(path string, v handtrace.View, opts ...Option) error {
	pdf := buildSheet(v, opts...)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: save pdf: %w", err)
	}
	return nil
}

func buildSheet(v handtrace.View, opts ...Option) *gofpdf.Fpdf {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	recorded := 0
	for h := handtrace.Hand(0); h < handtrace.HandCount; h++ {
		if !v.Hands[h].Empty() {
			recorded++
		}
	}
	handtrace.Logger().Debug("export: pose sheet", "hands", recorded)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(cfg.title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(0, 10, cfg.title, "", 0, "L", false, 0, "")

	drawDiagram(pdf, v)
	drawTables(pdf, v)
	return pdf
}

// projection maps surface coordinates onto the diagram box, preserving
// aspect ratio and centering the content.
type projection struct {
	scale float64
	offX  float64
	offY  float64
}

// newProjection fits every recorded point of both hands into the diagram
// box. ok is false when there is nothing to fit.
func newProjection(v handtrace.View) (projection, bool) {
	var pts []handtrace.Point
	for h := handtrace.Hand(0); h < handtrace.HandCount; h++ {
		pts = append(pts, v.Hands[h].Points()...)
	}
	if len(pts) == 0 {
		return projection{}, false
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	// Breathing room so markers and labels stay inside the frame.
	const pad = 30
	minX -= pad
	maxX += pad
	minY -= pad
	maxY += pad

	p := projection{
		scale: math.Min(diagramW/(maxX-minX), diagramH/(maxY-minY)),
	}
	p.offX = diagramX + (diagramW-(maxX-minX)*p.scale)/2 - minX*p.scale
	p.offY = diagramY + (diagramH-(maxY-minY)*p.scale)/2 - minY*p.scale
	return p, true
}

func (p projection) point(pt handtrace.Point) (float64, float64) {
	return p.offX + pt.X*p.scale, p.offY + pt.Y*p.scale
}

func drawDiagram(pdf *gofpdf.Fpdf, v handtrace.View) {
	proj, ok := newProjection(v)
	if !ok {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.SetTextColor(120, 120, 120)
		pdf.SetXY(diagramX, diagramY)
		pdf.CellFormat(diagramW, 8, "No recorded poses", "", 0, "L", false, 0, "")
		return
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.2)
	pdf.Rect(diagramX, diagramY, diagramW, diagramH, "D")

	for h := handtrace.Hand(0); h < handtrace.HandCount; h++ {
		d := v.Hands[h]
		start, hasStart := d.Pose(handtrace.PoseStart)
		finish, hasFinish := d.Pose(handtrace.PoseFinish)

		if hasStart && hasFinish {
			pdf.SetDrawColor(115, 115, 115)
			pdf.SetLineWidth(0.25)
			for _, slot := range start.Slots() {
				from, _ := start.At(slot)
				to, ok := finish.At(slot)
				if !ok {
					continue
				}
				x1, y1 := proj.point(from)
				x2, y2 := proj.point(to)
				pdf.Line(x1, y1, x2, y2)
			}
		}
		if hasStart {
			drawPoseMarkers(pdf, proj, start, 33, 97, 235, true)
		}
		if hasFinish {
			drawPoseMarkers(pdf, proj, finish, 219, 51, 46, false)
		}
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(diagramX, diagramY+diagramH+2)
	footer := fmt.Sprintf("scale %.2f, rotation %.2f rad", v.Scale, v.Rotation)
	pdf.CellFormat(diagramW, 5, footer, "", 0, "L", false, 0, "")
}

// drawPoseMarkers draws a hollow circle per occupied slot; start markers
// also get the 1-based slot number.
func drawPoseMarkers(pdf *gofpdf.Fpdf, proj projection, pose handtrace.Pose, r, g, b int, label bool) {
	pdf.SetDrawColor(r, g, b)
	pdf.SetLineWidth(0.4)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(60, 60, 60)
	for _, slot := range pose.Slots() {
		pt, _ := pose.At(slot)
		x, y := proj.point(pt)
		pdf.Circle(x, y, markerR, "D")
		if label {
			pdf.Text(x+markerR+0.8, y-markerR-0.3, fmt.Sprintf("%d", slot+1))
		}
	}
}

func drawTables(pdf *gofpdf.Fpdf, v handtrace.View) {
	y := diagramY
	for h := handtrace.Hand(0); h < handtrace.HandCount; h++ {
		if v.Hands[h].Empty() {
			continue
		}
		y = drawHandTable(pdf, v.Hands[h], h, y) + 8
	}
}

// drawHandTable writes the coordinate table for one hand starting at y
// and returns the y coordinate just below it.
func drawHandTable(pdf *gofpdf.Fpdf, d handtrace.HandData, h handtrace.Hand, y float64) float64 {
	widths := [4]float64{14, 30, 30, 20}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(tableX, y)
	pdf.CellFormat(tableW, 7, handLabel(h), "", 0, "L", false, 0, "")
	y += 8

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetLineWidth(0.2)
	pdf.SetXY(tableX, y)
	for i, head := range [4]string{"Slot", "Start", "Finish", "Reach"} {
		pdf.CellFormat(widths[i], rowH, head, "1", 0, "C", true, 0, "")
	}
	y += rowH

	start, _ := d.Pose(handtrace.PoseStart)
	finish, _ := d.Pose(handtrace.PoseFinish)

	pdf.SetFont("Helvetica", "", 9)
	for slot := 0; slot < handtrace.SlotCount; slot++ {
		from, hasFrom := start.At(slot)
		to, hasTo := finish.At(slot)
		if !hasFrom && !hasTo {
			continue
		}
		cells := [4]string{fmt.Sprintf("%d", slot+1), "-", "-", "-"}
		if hasFrom {
			cells[1] = fmtPoint(from)
		}
		if hasTo {
			cells[2] = fmtPoint(to)
		}
		if hasFrom && hasTo {
			cells[3] = fmt.Sprintf("%.1f", from.Distance(to))
		}
		pdf.SetXY(tableX, y)
		for i, cell := range cells {
			pdf.CellFormat(widths[i], rowH, cell, "1", 0, "C", false, 0, "")
		}
		y += rowH
	}
	return y
}

func fmtPoint(p handtrace.Point) string {
	return fmt.Sprintf("%.0f, %.0f", p.X, p.Y)
}

func handLabel(h handtrace.Hand) string {
	switch h {
	case handtrace.HandLeft:
		return "Left hand"
	case handtrace.HandRight:
		return "Right hand"
	}
	return "Unknown hand"
}
