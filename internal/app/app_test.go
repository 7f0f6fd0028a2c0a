package app

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/palette"
	"github.com/irfansharif/kurs/internal/raster"
	"github.com/irfansharif/kurs/internal/setop"
	"github.com/irfansharif/kurs/internal/shape"
)

type fakePrompter struct {
	angle    float64
	angleOK  bool
	color    color.RGBA
	colorOK  bool
	confirm  bool
	warnings []string
	infos    []string
	asked    []string
}

func (f *fakePrompter) Angle() (float64, bool) { return f.angle, f.angleOK }

func (f *fakePrompter) Color(title string) (color.RGBA, bool) {
	f.asked = append(f.asked, title)
	return f.color, f.colorOK
}

func (f *fakePrompter) Confirm(q string) bool {
	f.asked = append(f.asked, q)
	return f.confirm
}

func (f *fakePrompter) Warn(msg string) { f.warnings = append(f.warnings, msg) }
func (f *fakePrompter) Info(msg string) { f.infos = append(f.infos, msg) }

var (
	black = color.RGBA{A: 255}
	blue  = color.RGBA{G: 3, B: 0xAE, A: 255}
)

func newTestApp(t *testing.T) (*App, *fakePrompter) {
	t.Helper()
	p := &fakePrompter{}
	a := NewApp(Options{
		Width: 300, Height: 200,
		Outline: black, Fill: blue,
		StrokeWidth: 1, BezierSegments: 20, HitTolerance: 5,
	}, p)
	return a, p
}

func click(a *App, x, y int) {
	a.Press(geom.Pt(x, y))
	a.Release(geom.Pt(x, y))
}

func drawCross(t *testing.T, a *App, cx, cy, r int) *Object {
	t.Helper()
	a.StartDrawing(ModeDrawCross)
	click(a, cx, cy)
	click(a, cx+r, cy)
	require.NotNil(t, a.Selected())
	return a.Selected()
}

func TestDrawLine(t *testing.T) {
	a, _ := newTestApp(t)
	a.StartDrawing(ModeDrawLine)
	assert.Equal(t, ModeDrawLine, a.Mode())

	click(a, 10, 10)
	assert.Equal(t, 0, a.Scene.Len())
	click(a, 50, 10)

	require.Equal(t, 1, a.Scene.Len())
	assert.Equal(t, ModeSelect, a.Mode())
	obj := a.Selected()
	require.NotNil(t, obj)
	assert.Equal(t, shape.KindLine, obj.Shape.Kind())
	assert.True(t, a.Dirty())
}

func TestDrawCrossAndFlag(t *testing.T) {
	a, _ := newTestApp(t)
	cross := drawCross(t, a, 100, 100, 20)
	assert.Equal(t, "cross", cross.Shape.Name())
	assert.Equal(t, geom.Pt(100, 100), cross.Shape.Center())
	// Away from the centroid marker, inside the top arm.
	assert.Equal(t, blue, a.Buffer().At(100, 88))
	assert.Equal(t, palette.Centroid, a.Buffer().At(100, 95))

	a.StartDrawing(ModeDrawFlag)
	click(a, 200, 50)
	click(a, 260, 90)
	require.Equal(t, 2, a.Scene.Len())
	assert.Equal(t, "flag", a.Selected().Shape.Name())
}

func TestDegenerateCrossIsRejected(t *testing.T) {
	a, p := newTestApp(t)
	a.StartDrawing(ModeDrawCross)
	click(a, 50, 50)
	click(a, 50, 50)
	assert.Equal(t, 0, a.Scene.Len())
	assert.Len(t, p.warnings, 1)
	assert.Equal(t, ModeSelect, a.Mode())
}

func TestDrawBezier(t *testing.T) {
	a, p := newTestApp(t)
	a.StartDrawing(ModeDrawBezier)
	assert.Len(t, p.infos, 1)

	click(a, 10, 100)
	a.Hover(geom.Pt(40, 20))
	click(a, 50, 10)
	click(a, 90, 100)
	a.SecondaryPress(geom.Pt(0, 0))

	require.Equal(t, 1, a.Scene.Len())
	b, ok := a.Selected().Shape.(*shape.Bezier)
	require.True(t, ok)
	assert.Equal(t, []geom.Point{{X: 10, Y: 100}, {X: 50, Y: 10}, {X: 90, Y: 100}}, b.ControlPoints())
	assert.Len(t, b.Points(), 21)
}

func TestBezierNeedsTwoPoints(t *testing.T) {
	a, p := newTestApp(t)
	a.StartDrawing(ModeDrawBezier)
	click(a, 10, 10)
	a.SecondaryPress(geom.Pt(0, 0))
	assert.Equal(t, 0, a.Scene.Len())
	assert.Len(t, p.warnings, 1)
}

func TestBezierStopsAtMaxControlPoints(t *testing.T) {
	a, p := newTestApp(t)
	a.StartDrawing(ModeDrawBezier)
	for i := 0; i < shape.MaxControlPoints; i++ {
		click(a, 10+5*i, 10+(i%2)*50)
	}
	assert.Equal(t, 0, a.Scene.Len())

	click(a, 250, 150)
	require.Equal(t, 1, a.Scene.Len())
	assert.Len(t, p.warnings, 1)
	b := a.Selected().Shape.(*shape.Bezier)
	assert.Len(t, b.ControlPoints(), shape.MaxControlPoints)
}

func TestSelectTopmost(t *testing.T) {
	a, _ := newTestApp(t)
	first := drawCross(t, a, 100, 100, 20)
	second := drawCross(t, a, 110, 100, 20)

	a.SelectMode()
	click(a, 110, 100)
	assert.Equal(t, second, a.Selected())

	click(a, 82, 100)
	assert.Equal(t, first, a.Selected())

	click(a, 250, 10)
	assert.Nil(t, a.Selected())
}

func TestTransformsNeedSelection(t *testing.T) {
	a, p := newTestApp(t)
	assert.ErrorIs(t, a.StartTranslation(), ErrNoSelection)
	assert.ErrorIs(t, a.StartRotation(), ErrNoSelection)
	assert.ErrorIs(t, a.StartMirrorVertical(), ErrNoSelection)
	assert.ErrorIs(t, a.MirrorSelected(), ErrNoSelection)
	assert.Len(t, p.warnings, 4)
	assert.Equal(t, ModeSelect, a.Mode())
}

func TestTranslateByDrag(t *testing.T) {
	a, _ := newTestApp(t)
	obj := drawCross(t, a, 100, 100, 20)

	require.NoError(t, a.StartTranslation())
	a.Press(geom.Pt(100, 100))
	a.Drag(geom.Pt(110, 105))
	a.Drag(geom.Pt(130, 120))
	a.Release(geom.Pt(130, 120))

	assert.Equal(t, geom.Pt(130, 120), obj.Shape.Center())
	assert.Equal(t, ModeSelect, a.Mode())
	assert.Equal(t, blue, a.Buffer().At(130, 107))
	assert.Equal(t, raster.Background, a.Buffer().At(100, 85))
}

func TestRotateAroundPivot(t *testing.T) {
	a, p := newTestApp(t)
	a.StartDrawing(ModeDrawLine)
	click(a, 100, 100)
	click(a, 150, 100)
	obj := a.Selected()

	p.angle, p.angleOK = 90, true
	require.NoError(t, a.StartRotation())
	a.Press(geom.Pt(100, 100))

	assert.Equal(t, []geom.Point{{X: 100, Y: 100}, {X: 100, Y: 150}}, obj.Shape.Points())
	assert.Equal(t, ModeSelect, a.Mode())
}

func TestRotateCancelled(t *testing.T) {
	a, _ := newTestApp(t)
	obj := drawCross(t, a, 100, 100, 20)
	before := obj.Shape.Points()

	require.NoError(t, a.StartRotation())
	a.Press(geom.Pt(0, 0))
	assert.Equal(t, before, obj.Shape.Points())
}

func TestMirrorAcrossVerticalLine(t *testing.T) {
	a, _ := newTestApp(t)
	obj := drawCross(t, a, 100, 100, 20)

	require.NoError(t, a.StartMirrorVertical())
	a.Hover(geom.Pt(150, 10))
	assert.Equal(t, palette.Guide, a.Buffer().At(150, 10))
	a.Press(geom.Pt(150, 10))

	assert.Equal(t, geom.Pt(200, 100), obj.Shape.Center())
}

func TestMirrorSelectedTwiceRestores(t *testing.T) {
	a, _ := newTestApp(t)
	a.StartDrawing(ModeDrawFlag)
	click(a, 20, 20)
	click(a, 81, 57)
	obj := a.Selected()
	before := obj.Shape.Points()

	require.NoError(t, a.MirrorSelected())
	assert.NotEqual(t, before, obj.Shape.Points())
	require.NoError(t, a.MirrorSelected())
	assert.Equal(t, before, obj.Shape.Points())
}

func TestSetOperations(t *testing.T) {
	tests := []struct {
		op        setop.Op
		confirm   bool
		probe     geom.Point
		want      color.RGBA
		emptyAtXY geom.Point
	}{
		{setop.Intersection, false, geom.Pt(110, 100), color.RGBA{G: 255, A: 255}, geom.Pt(85, 100)},
		{setop.Union, false, geom.Pt(85, 100), color.RGBA{R: 128, B: 128, A: 255}, geom.Pt(60, 100)},
		{setop.Difference, true, geom.Pt(85, 100), color.RGBA{R: 255, G: 165, A: 255}, geom.Pt(110, 100)},
		{setop.Difference, false, geom.Pt(135, 100), color.RGBA{R: 255, G: 165, A: 255}, geom.Pt(85, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			a, p := newTestApp(t)
			drawCross(t, a, 100, 100, 20)
			drawCross(t, a, 120, 100, 20)

			a.StartSetOpSelection()
			click(a, 85, 100)
			click(a, 135, 100)
			require.Len(t, a.Picks(), 2)

			p.confirm = tt.confirm
			require.NoError(t, a.SetOp(tt.op))
			assert.Equal(t, tt.want, a.Buffer().At(tt.probe.X, tt.probe.Y))
			assert.Equal(t, raster.Background, a.Buffer().At(tt.emptyAtXY.X, tt.emptyAtXY.Y))
			assert.Empty(t, a.Picks())

			// The next redraw brings the scene back.
			a.Redraw()
			assert.Equal(t, blue, a.Buffer().At(85, 100))
		})
	}
}

func TestSetOpRejectsUnsupported(t *testing.T) {
	a, p := newTestApp(t)
	drawCross(t, a, 100, 100, 20)
	a.StartDrawing(ModeDrawLine)
	click(a, 200, 50)
	click(a, 250, 50)

	a.StartSetOpSelection()
	click(a, 100, 100)
	click(a, 220, 50)
	require.Len(t, a.Picks(), 2)

	err := a.SetOp(setop.Union)
	assert.ErrorIs(t, err, setop.ErrUnsupported)
	assert.NotEmpty(t, p.warnings)
	assert.Empty(t, a.Picks())
	assert.Equal(t, blue, a.Buffer().At(100, 100))
}

func TestSetOpNeedsTwoPicks(t *testing.T) {
	a, p := newTestApp(t)
	drawCross(t, a, 100, 100, 20)
	a.StartSetOpSelection()
	click(a, 100, 100)
	click(a, 100, 100) // same object again

	assert.Len(t, a.Picks(), 1)
	assert.ErrorIs(t, a.SetOp(setop.Intersection), setop.ErrUnsupported)
	assert.Len(t, p.warnings, 2)
}

func TestDeleteAndClear(t *testing.T) {
	a, p := newTestApp(t)
	drawCross(t, a, 100, 100, 20)
	drawCross(t, a, 200, 100, 20)

	a.DeleteSelected()
	assert.Equal(t, 1, a.Scene.Len())
	assert.Nil(t, a.Selected())

	a.ClearAll()
	assert.Equal(t, 1, a.Scene.Len(), "declined confirmation keeps the scene")

	p.confirm = true
	a.ClearAll()
	assert.Equal(t, 0, a.Scene.Len())
	assert.Equal(t, raster.Background, a.Buffer().At(100, 100))
	assert.Len(t, p.asked, 2)
}

func TestChooseColors(t *testing.T) {
	a, p := newTestApp(t)
	obj := drawCross(t, a, 100, 100, 20)
	red := color.RGBA{R: 255, A: 255}

	a.ChooseFill()
	assert.Equal(t, blue, obj.Shape.Style().Fill, "cancelled picker changes nothing")

	p.color, p.colorOK = red, true
	a.ChooseFill()
	assert.Equal(t, red, obj.Shape.Style().Fill)
	assert.Equal(t, red, a.Buffer().At(100, 88))

	a.ChooseOutline()
	outline, fill := a.Colors()
	assert.Equal(t, red, outline)
	assert.Equal(t, red, fill)
}

func TestViewToCanvas(t *testing.T) {
	v := NewView(1400, 600)
	assert.Equal(t, geom.Pt(700, 300), v.ToCanvas(700, 300))

	v.SetViewport(700, 300)
	assert.Equal(t, geom.Pt(200, 100), v.ToCanvas(100, 50))

	// A window at its natural size maps one to one, whatever the
	// framebuffer density.
	v.SetViewport(1400, 600)
	assert.Equal(t, geom.Pt(100, 50), v.ToCanvas(100, 50))

	v.SetViewport(0, 0)
	assert.Equal(t, geom.Point{}, v.ToCanvas(10, 10))
}
