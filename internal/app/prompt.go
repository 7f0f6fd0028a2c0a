package app

import "image/color"

// Prompter is the modal side of the user interface. Each call blocks until
// the user answers; ok is false when the user cancels.
type Prompter interface {
	// Angle asks for a rotation angle in degrees.
	Angle() (degrees float64, ok bool)
	// Color asks the user to pick a colour.
	Color(title string) (c color.RGBA, ok bool)
	// Confirm asks a yes/no question.
	Confirm(question string) bool
	// Warn reports a rejected operation.
	Warn(msg string)
	// Info reports progress or a hint.
	Info(msg string)
}

// Mode is what the next primary click does.
type Mode int

const (
	ModeSelect Mode = iota
	ModeDrawLine
	ModeDrawCross
	ModeDrawFlag
	ModeDrawBezier
	ModeTranslate
	ModeRotate
	ModeMirrorVertical
	ModeSelectSetOp
)

func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeDrawLine:
		return "line"
	case ModeDrawCross:
		return "cross"
	case ModeDrawFlag:
		return "flag"
	case ModeDrawBezier:
		return "bezier"
	case ModeTranslate:
		return "move"
	case ModeRotate:
		return "rotate"
	case ModeMirrorVertical:
		return "mirror across line"
	case ModeSelectSetOp:
		return "pick set-op operands"
	default:
		return "unknown"
	}
}

func (m Mode) drawing() bool {
	return m >= ModeDrawLine && m <= ModeDrawBezier
}
