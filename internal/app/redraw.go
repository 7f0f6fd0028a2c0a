package app

import (
	"fmt"
	"image/color"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/palette"
	"github.com/irfansharif/kurs/internal/raster"
	"github.com/irfansharif/kurs/internal/shape"
)

const (
	controlPointWidth = 5
	pickWidth         = 3
	highlightWidth    = 3
	statusMargin      = 6
)

// Redraw clears the display buffer, paints the scene and then the editor
// overlays on top of it. Any set operation result on display is replaced.
func (a *App) Redraw() {
	a.buf.Clear(raster.Background)
	a.Scene.Render(a.buf)

	for i, obj := range a.picks {
		a.drawSkeleton(obj.Shape, palette.SetOpPick(i), pickWidth)
	}
	if sel := a.selected; sel != nil && len(a.picks) == 0 {
		a.drawSkeleton(sel.Shape, palette.Selection, highlightWidth)
		if ctrl := shape.ControlPoints(sel.Shape); ctrl != nil {
			a.drawControls(ctrl)
		}
		a.buf.DrawMarker(sel.Shape.Center(), palette.Centroid)
	}
	a.drawPending()
	if a.pivot != nil {
		a.buf.DrawMarker(*a.pivot, palette.Pivot)
	}
	if a.mirrorX != nil {
		a.buf.DrawVerticalGuide(*a.mirrorX, palette.Guide)
	}
	a.drawStatus()
	a.dirty = true
}

func (a *App) drawSkeleton(s shape.Shape, c color.RGBA, width int) {
	pts, closed := shape.Skeleton(s)
	if closed {
		a.buf.DrawClosed(pts, c, width)
		return
	}
	a.buf.DrawPolyline(pts, c, width)
}

func (a *App) drawControls(ctrl []geom.Point) {
	a.buf.DrawPolyline(ctrl, palette.Preview, 1)
	for _, p := range ctrl {
		a.buf.PutPixel(p.X, p.Y, palette.ControlHint, controlPointWidth)
	}
}

// drawPending shows the geometry of the object being drawn: clicked points
// and, for a curve, the control polygon and a live preview through the
// cursor.
func (a *App) drawPending() {
	if len(a.pending) == 0 {
		return
	}
	if a.mode != ModeDrawBezier {
		for _, p := range a.pending {
			a.buf.PutPixel(p.X, p.Y, palette.Preview, controlPointWidth)
		}
		return
	}
	ctrl := a.pending
	if a.cursor != nil {
		ctrl = append(ctrl[:len(ctrl):len(ctrl)], *a.cursor)
	}
	a.drawControls(ctrl)
	if len(ctrl) >= shape.MinControlPoints {
		a.buf.DrawPolyline(shape.Sample(ctrl, a.opts.BezierSegments), palette.Preview, 1)
	}
}

func (a *App) drawStatus() {
	line := fmt.Sprintf("mode: %s  objects: %d  outline %s  fill %s",
		a.mode, a.Scene.Len(), palette.Hex(a.outline), palette.Hex(a.fill))
	h := a.buf.Height()
	a.buf.DrawText(statusMargin, h-statusMargin, line, palette.Black)
	if a.status != "" {
		x := a.buf.Width() - raster.TextWidth(a.status) - statusMargin
		a.buf.DrawText(max(x, statusMargin), h-statusMargin, a.status, palette.Warning)
	}
}
