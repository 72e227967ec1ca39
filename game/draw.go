package game

import "image/color"

// Command is one primitive draw operation. The set is closed: only the types in this file implement it.
type Command interface {
	command()
}

// FilledCircle draws a solid disc
type FilledCircle struct {
	Center Vec2
	Radius float64
	Color  color.Color
}

// CircleOutline draws a ring
type CircleOutline struct {
	Center Vec2
	Radius float64
	Width  float64
	Color  color.Color
}

// Line draws a segment
type Line struct {
	From, To Vec2
	Width    float64
	Color    color.Color
}

// Polygon draws a filled convex polygon
type Polygon struct {
	Points []Vec2
	Color  color.Color
}

// Rect draws a filled rectangle
type Rect struct {
	Min           Vec2
	Width, Height float64
	Color         color.Color
}

// TextStyle selects how a Text command is decorated
type TextStyle int

const (
	TextPlain TextStyle = iota
	// TextOutlined draws the text four times offset diagonally in Accent, then once in Color
	TextOutlined
	// TextFramed draws a padded translucent box behind the text
	TextFramed
)

// Align selects what Text.Pos refers to
type Align int

const (
	AlignTopLeft Align = iota
	AlignCenter
)

// Text draws a string
type Text struct {
	Str    string
	Pos    Vec2
	Align  Align
	Size   float64 // multiple of the base font height
	Color  color.Color
	Accent color.Color
	Style  TextStyle
}

// Blit draws a named image asset with its top-left corner at Pos
type Blit struct {
	Asset string
	Pos   Vec2
	Scale float64
}

func (FilledCircle) command()  {}
func (CircleOutline) command() {}
func (Line) command()          {}
func (Polygon) command()       {}
func (Rect) command()          {}
func (Text) command()          {}
func (Blit) command()          {}

// Frame is everything the render boundary draws for one tick
type Frame struct {
	// Background fills the screen before any command
	Background color.Color

	// Shake offsets the whole frame
	Shake Vec2

	Commands []Command
}

// Add appends commands to the frame
func (f *Frame) Add(cmds ...Command) {
	f.Commands = append(f.Commands, cmds...)
}
