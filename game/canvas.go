package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const framePadding = 20

var frameColor = color.NRGBA{0, 0, 0, 180}

type canvasAsset struct {
	image  *ebiten.Image
	offset Vec2
}

// Canvas executes frames on an ebiten image
type Canvas struct {
	face      *text.GoXFace
	assets    map[string]canvasAsset
	offscreen *ebiten.Image
	white     *ebiten.Image
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewCanvas creates a canvas for a width x height screen
func NewCanvas(width, height int) *Canvas {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Canvas{
		face:      text.NewGoXFace(bitmapfont.Face),
		assets:    make(map[string]canvasAsset),
		offscreen: ebiten.NewImage(width, height),
		white:     white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// AddBackground registers a scaled background under name
func (c *Canvas) AddBackground(name string, bg *Background) {
	c.assets[name] = canvasAsset{image: ebiten.NewImageFromImage(bg.Image), offset: bg.Offset}
}

// Draw renders a frame. A shaken frame is drawn offscreen and copied with its offset
// over the background color, so the uncovered border shows the background.
func (c *Canvas) Draw(screen *ebiten.Image, f Frame) {
	if f.Background != nil {
		screen.Fill(f.Background)
	}
	if f.Shake == (Vec2{}) {
		c.drawCommands(screen, f.Commands)
		return
	}

	c.offscreen.Clear()
	if f.Background != nil {
		c.offscreen.Fill(f.Background)
	}
	c.drawCommands(c.offscreen, f.Commands)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(f.Shake.X, f.Shake.Y)
	screen.DrawImage(c.offscreen, op)
}

func (c *Canvas) drawCommands(dst *ebiten.Image, cmds []Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case FilledCircle:
			vector.DrawFilledCircle(dst, float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius), cmd.Color, true)
		case CircleOutline:
			vector.StrokeCircle(dst, float32(cmd.Center.X), float32(cmd.Center.Y), float32(cmd.Radius), float32(cmd.Width), cmd.Color, true)
		case Line:
			vector.StrokeLine(dst, float32(cmd.From.X), float32(cmd.From.Y), float32(cmd.To.X), float32(cmd.To.Y), float32(cmd.Width), cmd.Color, true)
		case Rect:
			vector.DrawFilledRect(dst, float32(cmd.Min.X), float32(cmd.Min.Y), float32(cmd.Width), float32(cmd.Height), cmd.Color, true)
		case Polygon:
			c.drawPolygon(dst, cmd)
		case Text:
			c.drawText(dst, cmd)
		case Blit:
			c.drawBlit(dst, cmd)
		}
	}
}

func (c *Canvas) drawPolygon(dst *ebiten.Image, p Polygon) {
	if len(p.Points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(p.Points[0].X), float32(p.Points[0].Y))
	for _, pt := range p.Points[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	r, g, b, a := p.Color.RGBA()
	for i := range c.vertices {
		c.vertices[i].SrcX = 1
		c.vertices[i].SrcY = 1
		c.vertices[i].ColorR = float32(r) / 0xffff
		c.vertices[i].ColorG = float32(g) / 0xffff
		c.vertices[i].ColorB = float32(b) / 0xffff
		c.vertices[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(c.vertices, c.indices, c.white, op)
}

func (c *Canvas) drawText(dst *ebiten.Image, t Text) {
	size := t.Size
	if size <= 0 {
		size = 1
	}
	w, h := text.Measure(t.Str, c.face, 0)
	w, h = w*size, h*size
	pos := t.Pos
	if t.Align == AlignCenter {
		pos = Vec2{pos.X - w/2, pos.Y - h/2}
	}

	switch t.Style {
	case TextOutlined:
		for _, d := range []Vec2{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}} {
			c.drawString(dst, t.Str, pos.Add(d), size, t.Accent)
		}
	case TextFramed:
		vector.DrawFilledRect(dst,
			float32(pos.X-framePadding), float32(pos.Y-framePadding),
			float32(w+2*framePadding), float32(h+2*framePadding),
			frameColor, true)
	}
	c.drawString(dst, t.Str, pos, size, t.Color)
}

func (c *Canvas) drawString(dst *ebiten.Image, s string, pos Vec2, size float64, clr color.Color) {
	if clr == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, c.face, op)
}

// drawBlit draws a registered asset; unknown names draw nothing so the background color shows
func (c *Canvas) drawBlit(dst *ebiten.Image, b Blit) {
	asset, ok := c.assets[b.Asset]
	if !ok {
		return
	}
	scale := b.Scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(asset.offset.X+b.Pos.X, asset.offset.Y+b.Pos.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(asset.image, op)
}
