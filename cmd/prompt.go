package main

import (
	"fmt"
	"image/color"
	"log"
	"strconv"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/kurs/internal/palette"
)

// windowPrompter answers the editor's questions without modal dialogs. The
// angle comes from digits typed before the pivot click, colours from a fixed
// cycle, and yes/no answers are decided by the key that triggered the
// action. Messages go to the window title.
type windowPrompter struct {
	window *glfw.Window
	colors *palette.Cycler

	// input accumulates digits, '-' and '.' typed since the last action.
	input string
	// answer is returned by the next Confirm call and then reset.
	answer bool
}

func newWindowPrompter(window *glfw.Window, colors *palette.Cycler) *windowPrompter {
	return &windowPrompter{window: window, colors: colors}
}

// Angle consumes the typed input as a number of degrees.
func (p *windowPrompter) Angle() (float64, bool) {
	input := p.input
	p.input = ""
	if input == "" {
		p.Info("no angle typed, rotation cancelled")
		return 0, false
	}
	deg, err := strconv.ParseFloat(input, 64)
	if err != nil {
		p.Warn(fmt.Sprintf("invalid angle %q", input))
		return 0, false
	}
	return deg, true
}

func (p *windowPrompter) Color(title string) (color.RGBA, bool) {
	c := p.colors.Next()
	p.Info(fmt.Sprintf("%s: %s", title, palette.Hex(c)))
	return c, true
}

func (p *windowPrompter) Confirm(question string) bool {
	answer := p.answer
	p.answer = false
	runtimeLogger.Printf("%s -> %t", question, answer)
	return answer
}

func (p *windowPrompter) Warn(msg string) {
	log.Printf("WARNING: %s", msg)
	p.setTitle(msg)
}

func (p *windowPrompter) Info(msg string) {
	runtimeLogger.Print(msg)
	p.setTitle(msg)
}

func (p *windowPrompter) setTitle(msg string) {
	if p.input != "" {
		msg = fmt.Sprintf("%s [%s]", msg, p.input)
	}
	p.window.SetTitle(makeTitle(msg))
}
