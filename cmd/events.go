package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/kurs/internal/app"
	"github.com/irfansharif/kurs/internal/setop"
)

// EventHandlers manages all event handling for the application.
type EventHandlers struct {
	application *app.App
	view        *app.View
	prompt      *windowPrompter
	window      *glfw.Window

	// Primary button state, captured on press so cursor motion can be told
	// apart as drag or hover.
	isDragging bool
}

// NewEventHandlers creates a new event handlers manager.
func NewEventHandlers(window *glfw.Window, application *app.App, view *app.View, prompt *windowPrompter) *EventHandlers {
	eh := &EventHandlers{
		application: application,
		view:        view,
		prompt:      prompt,
		window:      window,
	}
	eh.SetupCallbacks(window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action, mods)
	})
	window.SetMouseButtonCallback(func(wnd *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleMouseButton(button, action)
	})
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos)
	})
	window.SetSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.handleWindowSize(newW, newH)
	})
}

// handleWindowSize handles window resize events. Cursor positions are in
// window coordinates, so the view tracks the window size rather than the
// framebuffer size.
func (eh *EventHandlers) handleWindowSize(newW, newH int) {
	eh.view.SetViewport(newW, newH)
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	shift := (mods & glfw.ModShift) != 0

	// Digits, '-' and '.' build the numeric input (the rotation angle).
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		eh.appendInput(string(rune('0' + int(key-glfw.Key0))))
		return
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		eh.appendInput(string(rune('0' + int(key-glfw.KeyKP0))))
		return
	case key == glfw.KeyMinus || key == glfw.KeyKPSubtract:
		eh.appendInput("-")
		return
	case key == glfw.KeyPeriod || key == glfw.KeyKPDecimal:
		eh.appendInput(".")
		return
	}

	a := eh.application
	switch key {
	case glfw.KeyEscape:
		eh.prompt.input = ""
		a.SelectMode()
	case glfw.KeyS:
		a.SelectMode()
	case glfw.KeyL:
		a.StartDrawing(app.ModeDrawLine)
	case glfw.KeyX:
		a.StartDrawing(app.ModeDrawCross)
	case glfw.KeyF:
		a.StartDrawing(app.ModeDrawFlag)
	case glfw.KeyB:
		a.StartDrawing(app.ModeDrawBezier)
	case glfw.KeyT:
		_ = a.StartTranslation()
	case glfw.KeyR:
		// The angle is typed before the pivot click; keep the input.
		if a.StartRotation() == nil {
			eh.prompt.Info("type an angle, then click the pivot")
		}
	case glfw.KeyM:
		_ = a.MirrorSelected()
	case glfw.KeyV:
		_ = a.StartMirrorVertical()
	case glfw.KeyO:
		a.StartSetOpSelection()
	case glfw.KeyI:
		_ = a.SetOp(setop.Intersection)
	case glfw.KeyU:
		_ = a.SetOp(setop.Union)
	case glfw.KeyD:
		// D is A - B, shift+D is B - A.
		eh.prompt.answer = !shift
		_ = a.SetOp(setop.Difference)
	case glfw.KeyDelete:
		a.DeleteSelected()
	case glfw.KeyBackspace:
		// Clearing everything needs shift as confirmation.
		eh.prompt.answer = shift
		a.ClearAll()
		if !shift {
			eh.prompt.Info("shift+backspace clears the canvas")
		}
	case glfw.KeyC:
		if shift {
			a.ChooseFill()
		} else {
			a.ChooseOutline()
		}
	case glfw.KeyP:
		eh.saveSnapshot()
	}
	if key != glfw.KeyR {
		eh.prompt.input = ""
	}
	eh.prompt.answer = false
}

func (eh *EventHandlers) appendInput(s string) {
	eh.prompt.input += s
	eh.prompt.setTitle("input")
}

// handleMouseButton forwards button events to the editor.
func (eh *EventHandlers) handleMouseButton(button glfw.MouseButton, action glfw.Action) {
	p := eh.view.ToCanvas(eh.window.GetCursorPos())
	switch button {
	case glfw.MouseButtonLeft:
		switch action {
		case glfw.Press:
			eh.isDragging = true
			eh.application.Press(p)
		case glfw.Release:
			eh.isDragging = false
			eh.application.Release(p)
		}
	case glfw.MouseButtonRight:
		if action == glfw.Press {
			eh.application.SecondaryPress(p)
		}
	}
}

// handleCursorPos forwards pointer motion as a drag or a hover.
func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	p := eh.view.ToCanvas(xpos, ypos)
	if eh.isDragging {
		eh.application.Drag(p)
		return
	}
	eh.application.Hover(p)
}

func (eh *EventHandlers) saveSnapshot() {
	w, h := eh.window.GetFramebufferSize()
	path, err := writeSnapshot(eh.application.Buffer(), w, h)
	if err != nil {
		eh.prompt.Warn(err.Error())
		return
	}
	eh.prompt.Info("saved " + path)
}
