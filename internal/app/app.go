// Package app holds the editor state: the scene, the current mode, the
// selection and the display buffer. It turns input events (clicks, drags,
// menu actions) into shape construction, transforms and set operations, and
// knows nothing about windows; a Prompter supplies the modal dialogs.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"slices"

	"github.com/irfansharif/kurs/internal/geom"
	"github.com/irfansharif/kurs/internal/raster"
	"github.com/irfansharif/kurs/internal/setop"
	"github.com/irfansharif/kurs/internal/shape"
	"github.com/irfansharif/kurs/internal/transform"
)

var appLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("KURS_DEBUG_APP") == "1" {
		appLogger = log.New(os.Stdout, "[app] ", log.Ltime|log.Lmsgprefix)
	}
}

// ErrNoSelection is returned by actions that need a selected object.
var ErrNoSelection = errors.New("no object selected")

// Options configures a new App.
type Options struct {
	Width, Height  int
	Outline, Fill  color.RGBA
	StrokeWidth    int
	BezierSegments int
	HitTolerance   float64
}

// App encapsulates the editor state and logic.
type App struct {
	Scene *Scene

	prompt Prompter
	opts   Options
	buf    *raster.Buffer
	dirty  bool
	status string

	outline, fill color.RGBA

	mode     Mode
	selected *Object
	pending  []geom.Point // clicks collected for the shape being drawn
	cursor   *geom.Point  // last drag position while drawing a curve
	pivot    *geom.Point  // rotation pivot, shown while the angle prompt is up
	mirrorX  *int         // mirror line, shown while mirroring
	dragging bool
	dragFrom geom.Point
	picks    []*Object // set operation operands, in pick order
}

// NewApp creates an editor with an empty scene and a blank canvas.
func NewApp(opts Options, prompt Prompter) *App {
	if opts.StrokeWidth < 1 {
		opts.StrokeWidth = 1
	}
	if opts.BezierSegments < 1 {
		opts.BezierSegments = shape.DefaultSegments
	}
	if opts.HitTolerance <= 0 {
		opts.HitTolerance = shape.DefaultTolerance
	}
	a := &App{
		Scene:   NewScene(),
		prompt:  prompt,
		opts:    opts,
		buf:     raster.NewBuffer(opts.Width, opts.Height, raster.Background),
		outline: opts.Outline,
		fill:    opts.Fill,
	}
	a.Redraw()
	return a
}

// Buffer returns the display buffer.
func (a *App) Buffer() *raster.Buffer { return a.buf }

// Dirty reports whether the display buffer changed since the last
// MarkPresented call.
func (a *App) Dirty() bool { return a.dirty }

// MarkPresented records that the current buffer has been shown.
func (a *App) MarkPresented() { a.dirty = false }

func (a *App) Mode() Mode { return a.mode }

// Selected returns the selected object, or nil.
func (a *App) Selected() *Object { return a.selected }

// Picks returns the objects picked as set operation operands.
func (a *App) Picks() []*Object { return slices.Clone(a.picks) }

// Status returns the last message shown to the user.
func (a *App) Status() string { return a.status }

// Colors returns the current outline and fill colours for new objects.
func (a *App) Colors() (outline, fill color.RGBA) { return a.outline, a.fill }

func (a *App) style() shape.Style {
	return shape.Style{Outline: a.outline, Fill: a.fill, Width: a.opts.StrokeWidth}
}

func (a *App) warn(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	appLogger.Printf("warning: %s", a.status)
	a.prompt.Warn(a.status)
}

func (a *App) info(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	a.prompt.Info(a.status)
}

// resetTransient drops every in-progress interaction.
func (a *App) resetTransient() {
	a.pending = nil
	a.cursor = nil
	a.pivot = nil
	a.mirrorX = nil
	a.dragging = false
}

// StartDrawing switches to drawing a new object of the given mode.
func (a *App) StartDrawing(m Mode) {
	if !m.drawing() {
		return
	}
	a.resetTransient()
	a.mode = m
	a.selected = nil
	a.picks = nil
	if m == ModeDrawBezier {
		a.info("click up to %d control points, secondary click to finish", shape.MaxControlPoints)
	}
	a.Redraw()
}

// SelectMode returns to plain click-to-select.
func (a *App) SelectMode() {
	a.resetTransient()
	a.mode = ModeSelect
	a.picks = nil
	a.Redraw()
}

// StartTranslation arms dragging of the selected object.
func (a *App) StartTranslation() error { return a.arm(ModeTranslate) }

// StartRotation arms picking a rotation pivot for the selected object.
func (a *App) StartRotation() error { return a.arm(ModeRotate) }

// StartMirrorVertical arms picking a vertical mirror line.
func (a *App) StartMirrorVertical() error { return a.arm(ModeMirrorVertical) }

func (a *App) arm(m Mode) error {
	if a.selected == nil {
		a.warn("select an object first")
		return ErrNoSelection
	}
	a.resetTransient()
	a.mode = m
	a.picks = nil
	a.Redraw()
	return nil
}

// MirrorSelected reflects the selected object through its own centroid.
func (a *App) MirrorSelected() error {
	if a.selected == nil {
		a.warn("select an object first")
		return ErrNoSelection
	}
	transform.MirrorAroundCenter(a.selected.Shape)
	a.Redraw()
	return nil
}

// StartSetOpSelection starts picking the two operands of a set operation.
func (a *App) StartSetOpSelection() {
	a.resetTransient()
	a.mode = ModeSelectSetOp
	a.picks = nil
	a.selected = nil
	a.info("click two objects (cross or flag)")
	a.Redraw()
}

// SetOp combines the two picked objects and shows the result in place of
// the scene until the next redraw. For a difference the user is asked
// whether to compute A − B or B − A. On any rejection nothing changes
// besides the picks being dropped.
func (a *App) SetOp(op setop.Op) error {
	if len(a.picks) != 2 {
		a.warn("%s needs exactly two picked objects", op)
		return fmt.Errorf("%s: %d operands picked: %w", op, len(a.picks), setop.ErrUnsupported)
	}
	first, second := a.picks[0].Shape, a.picks[1].Shape
	if err := setop.Check(first, second); err != nil {
		a.warn("%s works on crosses and flags only", op)
		a.picks = nil
		a.Redraw()
		return err
	}
	if op == setop.Difference && !a.prompt.Confirm("compute A - B? (no computes B - A)") {
		first, second = second, first
	}

	result, err := setop.Combine(first, second, op, a.buf.Width(), a.buf.Height())
	if err != nil {
		a.warn("%v", err)
		return err
	}
	a.buf.CopyFrom(result)
	a.picks = nil
	a.selected = nil
	a.mode = ModeSelect
	a.info("%s shown; any edit restores the scene", op)
	a.drawStatus()
	a.dirty = true
	appLogger.Printf("%s of %s and %s: %d pixels", op, first.Name(), second.Name(), result.Count(raster.Background))
	return nil
}

// DeleteSelected removes the selected object from the scene.
func (a *App) DeleteSelected() {
	if a.selected == nil {
		return
	}
	a.Scene.Remove(a.selected.ID)
	a.selected = nil
	a.picks = nil
	a.resetTransient()
	a.Redraw()
}

// ClearAll removes every object after confirmation.
func (a *App) ClearAll() {
	if !a.prompt.Confirm("remove every object from the canvas?") {
		return
	}
	a.Scene.Clear()
	a.selected = nil
	a.picks = nil
	a.resetTransient()
	a.Redraw()
}

// ChooseOutline asks for a new outline colour, applying it to new objects
// and to the selection.
func (a *App) ChooseOutline() {
	c, ok := a.prompt.Color("outline colour")
	if !ok {
		return
	}
	a.outline = c
	if a.selected != nil {
		a.selected.Shape.SetOutline(c)
	}
	a.Redraw()
}

// ChooseFill asks for a new fill colour, applying it to new objects and to
// the selection.
func (a *App) ChooseFill() {
	c, ok := a.prompt.Color("fill colour")
	if !ok {
		return
	}
	a.fill = c
	if a.selected != nil {
		a.selected.Shape.SetFill(c)
	}
	a.Redraw()
}

// Press handles a primary button press at p.
func (a *App) Press(p geom.Point) {
	switch a.mode {
	case ModeDrawBezier:
		if len(a.pending) >= shape.MaxControlPoints {
			a.warn("a curve takes at most %d control points", shape.MaxControlPoints)
			a.finishBezier()
			return
		}
		a.pending = append(a.pending, p)
		a.Redraw()

	case ModeDrawLine, ModeDrawCross, ModeDrawFlag:
		a.pending = append(a.pending, p)
		if len(a.pending) == 2 {
			a.finishTwoClick()
		}

	case ModeRotate:
		a.pivot = &p
		a.Redraw()
		if deg, ok := a.prompt.Angle(); ok && a.selected != nil {
			transform.RotateAround(a.selected.Shape, deg, p)
		}
		a.pivot = nil
		a.mode = ModeSelect
		a.Redraw()

	case ModeMirrorVertical:
		if a.selected != nil {
			transform.MirrorAcrossVertical(a.selected.Shape, p.X)
		}
		a.mirrorX = nil
		a.mode = ModeSelect
		a.Redraw()

	case ModeTranslate:
		if a.selected != nil {
			a.dragging = true
			a.dragFrom = p
		}

	case ModeSelectSetOp:
		a.pick(p)

	default:
		a.selected = a.Scene.HitTest(p, a.opts.HitTolerance)
		a.Redraw()
	}
}

func (a *App) pick(p geom.Point) {
	obj := a.Scene.HitTest(p, a.opts.HitTolerance)
	switch {
	case obj == nil:
		a.warn("click an existing object")
	case slices.Contains(a.picks, obj):
		a.warn("this object is already picked, pick another")
	default:
		a.picks = append(a.picks, obj)
		a.selected = obj
		if len(a.picks) == 2 {
			a.info("two objects picked, choose intersection, union or difference")
			a.mode = ModeSelect
		} else {
			a.info("pick the second object")
		}
	}
	a.Redraw()
}

func (a *App) finishTwoClick() {
	var (
		s   shape.Shape
		err error
	)
	st := a.style()
	switch a.mode {
	case ModeDrawLine:
		s, err = shape.LineFromPoints(a.pending, st)
	case ModeDrawCross:
		s, err = shape.CrossFromDrag(a.pending[0], a.pending[1], st)
	case ModeDrawFlag:
		s, err = shape.FlagFromDrag(a.pending[0], a.pending[1], st)
	}
	kind := a.mode
	a.pending = nil
	a.mode = ModeSelect
	if err != nil {
		a.warn("cannot build %s: %v", kind, err)
		a.Redraw()
		return
	}
	a.selected = a.Scene.Add(s)
	a.Redraw()
}

func (a *App) finishBezier() {
	ctrl := a.pending
	a.pending = nil
	a.cursor = nil
	a.mode = ModeSelect
	b, err := shape.NewBezierSegments(ctrl, a.opts.BezierSegments, a.style())
	if err != nil {
		a.warn("not enough control points for a curve (need at least %d)", shape.MinControlPoints)
		a.Redraw()
		return
	}
	a.selected = a.Scene.Add(b)
	a.Redraw()
}

// SecondaryPress finishes a curve being drawn, or otherwise cancels
// whatever is in progress and clears the selection.
func (a *App) SecondaryPress(geom.Point) {
	if a.mode == ModeDrawBezier {
		a.finishBezier()
		return
	}
	a.resetTransient()
	a.mode = ModeSelect
	a.selected = nil
	a.picks = nil
	a.Redraw()
}

// Drag handles pointer motion with the primary button held.
func (a *App) Drag(p geom.Point) {
	switch {
	case a.dragging && a.mode == ModeTranslate && a.selected != nil:
		d := p.Sub(a.dragFrom)
		transform.Translate(a.selected.Shape, d.X, d.Y)
		a.dragFrom = p
		a.Redraw()
	default:
		a.Hover(p)
	}
}

// Hover handles pointer motion with no button held. It updates the live
// previews: the next control point of a curve and the mirror line.
func (a *App) Hover(p geom.Point) {
	switch {
	case a.mode == ModeDrawBezier && len(a.pending) > 0:
		a.cursor = &p
		a.Redraw()
	case a.mode == ModeMirrorVertical:
		x := p.X
		a.mirrorX = &x
		a.Redraw()
	}
}

// Release handles a primary button release.
func (a *App) Release(geom.Point) {
	a.dragging = false
	if a.mode == ModeTranslate {
		a.mode = ModeSelect
		a.Redraw()
	}
}
