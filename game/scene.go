package game

import (
	"fmt"
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

var (
	colorWhite      = colornames.White
	colorBlack      = colornames.Black
	colorRed        = colornames.Red
	colorYellow     = color.RGBA{255, 223, 0, 255}
	colorSky        = colornames.Skyblue
	colorCloud      = colornames.White
	colorShadow     = colornames.Gainsboro
	colorHurt       = color.NRGBA{255, 0, 0, 100}
	colorDebug      = colornames.Magenta
	beeStripeColors = []color.RGBA{colorYellow, colorBlack, colorYellow}
)

const (
	// Text sizes as multiples of the base font height
	textSizeBody   = 2.0
	textSizeHeader = 3.0

	// BackgroundAsset names the start and high score backdrop for Blit commands
	BackgroundAsset = "background"
)

// Frame builds the draw commands for the current screen
func (m *Machine) Frame() Frame {
	var f Frame
	switch m.state {
	case StateStart:
		m.drawBackdrop(&f)
		f.Add(Text{
			Str:   "Press any key to start",
			Pos:   Vec2{m.cfg.Width() / 2, m.cfg.Height()/2 + 50},
			Align: AlignCenter,
			Size:  textSizeBody,
			Color: colorBlack,
		})
	case StatePlaying:
		if m.Session != nil {
			f = m.playingFrame(m.Session)
		}
	case StateNameEntry:
		m.nameEntryFrame(&f)
	case StateHighScores:
		m.highScoreFrame(&f)
	case StateQuit:
		f.Background = colorSky
	}
	if m.Debug.ShowHitboxes && m.Session != nil && m.state == StatePlaying {
		m.debugOverlay(&f, m.Session)
	}
	return f
}

// drawBackdrop fills the sky and lays the background image over it when one is loaded
func (m *Machine) drawBackdrop(f *Frame) {
	f.Background = colorSky
	f.Add(Blit{Asset: BackgroundAsset})
}

func (m *Machine) playingFrame(s *Session) Frame {
	f := Frame{Background: colorSky}

	for _, c := range s.Clouds {
		for _, p := range c.Puffs {
			center := Vec2{c.Pos.X + p.DX, c.Pos.Y + p.DY}
			f.Add(FilledCircle{Center: Vec2{center.X, center.Y + 2}, Radius: p.Radius, Color: colorShadow})
			f.Add(FilledCircle{Center: center, Radius: p.Radius, Color: colorCloud})
		}
	}

	if s.Effects.Warning() {
		f.Add(Text{
			Str:   "Yay! More bubbles Incoming! ^_^",
			Pos:   Vec2{m.cfg.Width() / 2, 50},
			Align: AlignCenter,
			Size:  textSizeHeader,
			Color: colorWhite,
		})
	}

	for _, b := range s.Bubbles {
		f.Add(
			FilledCircle{Center: b.Pos, Radius: b.Radius, Color: bubbleColor(b.Color)},
			CircleOutline{Center: b.Pos, Radius: b.Radius, Width: 1, Color: colorWhite},
			FilledCircle{
				Center: Vec2{b.Pos.X + b.Shine, b.Pos.Y + b.Shine},
				Radius: max(3, math.Floor(b.Radius/4)),
				Color:  colorWhite,
			},
		)
	}

	for _, b := range s.Bullets {
		f.Add(stinger(b))
	}

	drawBee(&f, s.Player, m.cfg)
	drawCrosshair(&f, m.pointer)

	m.drawHUD(&f, s)

	if s.Effects.RingVisible(m.now) {
		f.Add(CircleOutline{Center: s.Player.Pos, Radius: 15, Width: 2, Color: colorWhite})
	}

	if s.Effects.Hurting() {
		if s.Effects.Flash {
			f.Add(Rect{Width: m.cfg.Width(), Height: m.cfg.Height(), Color: colorHurt})
		}
		f.Shake = s.Effects.ShakeOffset(m.fx)
	}
	return f
}

// stinger is the bullet triangle pointing along its firing angle
func stinger(b *Bullet) Polygon {
	const length, halfWidth = 8, 3
	dir := FromAngleDeg(b.Rotation)
	side := FromAngleDeg(b.Rotation + 90)
	return Polygon{
		Points: []Vec2{
			b.Pos.Add(dir.Scale(length)),
			b.Pos.Add(side.Scale(halfWidth)),
			b.Pos.Sub(side.Scale(halfWidth)),
		},
		Color: colorBlack,
	}
}

// drawBee draws the striped body over the hitbox segments, then the wings and antennae
func drawBee(f *Frame, p *Player, cfg Config) {
	for i, seg := range p.Hitbox(cfg.SegmentCount, cfg.SegmentSpacing) {
		f.Add(FilledCircle{Center: seg, Radius: cfg.SegmentRadius, Color: beeStripeColors[i%len(beeStripeColors)]})
	}

	rad := p.Angle * math.Pi / 180
	shoulder := p.Pos.Add(FromAngleDeg(p.Angle).Scale(5))
	for _, wing := range []float64{rad + math.Pi/2, rad - math.Pi/2} {
		// Wing offsets are measured with y pointing down, unlike the facing angle
		center := shoulder.Add(Vec2{math.Cos(wing), math.Sin(wing)}.Scale(12))
		f.Add(FilledCircle{Center: center, Radius: 8, Color: colorWhite})
	}

	base := p.Pos.Add(FromAngleDeg(p.Angle).Scale(10))
	for _, a := range []float64{p.Angle - 30, p.Angle + 30} {
		tip := base.Add(FromAngleDeg(a).Scale(8))
		f.Add(
			Line{From: base, To: tip, Width: 2, Color: colorBlack},
			FilledCircle{Center: tip, Radius: 2, Color: colorBlack},
		)
	}
}

func drawCrosshair(f *Frame, pointer Vec2) {
	const size = 10
	f.Add(
		Line{From: Vec2{pointer.X - size, pointer.Y}, To: Vec2{pointer.X + size, pointer.Y}, Width: 2, Color: colorRed},
		Line{From: Vec2{pointer.X, pointer.Y - size}, To: Vec2{pointer.X, pointer.Y + size}, Width: 2, Color: colorRed},
	)
}

func (m *Machine) drawHUD(f *Frame, s *Session) {
	f.Add(
		Text{
			Str:    fmt.Sprintf("Score: %d", s.Score),
			Pos:    Vec2{10, 10},
			Size:   textSizeBody,
			Color:  colorBlack,
			Accent: colorWhite,
			Style:  TextOutlined,
		},
		Text{
			Str:    fmt.Sprintf("Lives: %d", s.Player.Lives),
			Pos:    Vec2{m.cfg.Width() - 120, 10},
			Size:   textSizeBody,
			Color:  colorBlack,
			Accent: colorWhite,
			Style:  TextOutlined,
		},
	)
}

func (m *Machine) nameEntryFrame(f *Frame) {
	w, h := m.cfg.Width(), m.cfg.Height()
	f.Background = colorSky
	f.Add(
		Text{
			Str:   fmt.Sprintf("Game Over! Score: %d", m.FinalScore),
			Pos:   Vec2{w / 2, h/2 - 120},
			Align: AlignCenter,
			Size:  textSizeBody,
			Color: colorWhite,
		},
		Text{Str: "Enter your name:", Pos: Vec2{w/2 - 100, h/2 - 50}, Size: textSizeBody, Color: colorWhite},
		Text{Str: string(m.Name) + "_", Pos: Vec2{w/2 - 80, h / 2}, Size: textSizeBody, Color: colorWhite},
	)
}

func (m *Machine) highScoreFrame(f *Frame) {
	m.drawBackdrop(f)
	framed := func(s string, pos Vec2) Text {
		return Text{Str: s, Pos: pos, Size: textSizeBody, Color: colorWhite, Accent: colorBlack, Style: TextFramed}
	}
	f.Add(framed("High Scores", Vec2{50, 250}))
	for i, hs := range m.HighScores {
		f.Add(framed(fmt.Sprintf("%d. %s: %d", i+1, hs.Name, hs.Score), Vec2{50, 350 + 60*float64(i)}))
	}
	f.Add(framed("Press R to restart or Q to quit", Vec2{m.cfg.Width()/2 - 200, m.cfg.Height() - 100}))
}

// debugOverlay outlines every collision circle and prints the session counters
func (m *Machine) debugOverlay(f *Frame, s *Session) {
	for _, seg := range s.Player.Hitbox(m.cfg.SegmentCount, m.cfg.SegmentSpacing) {
		f.Add(CircleOutline{Center: seg, Radius: m.cfg.SegmentRadius, Width: 1, Color: colorDebug})
	}
	for _, b := range s.Bubbles {
		f.Add(CircleOutline{Center: b.Pos, Radius: b.Radius, Width: 1, Color: colorDebug})
	}
	c := s.Counters
	lines := []string{
		fmt.Sprintf("Level: %d  Delay: %v", s.Level(), s.Spawner.Delay),
		fmt.Sprintf("Bubbles: %d  Bullets: %d", len(s.Bubbles), len(s.Bullets)),
		fmt.Sprintf("Spawned: %d  Rejected: %d", c.Spawned, c.Rejected),
		fmt.Sprintf("Collisions: %d  Hits: %d  Taken: %d", c.Collisions, c.Hits, c.HitsTaken),
	}
	if m.TPS > 0 {
		lines = append(lines, fmt.Sprintf("TPS: %.1f", m.TPS))
	}
	for i, line := range lines {
		f.Add(Text{Str: line, Pos: Vec2{10, m.cfg.Height() - 20 - 16*float64(len(lines)-i)}, Size: 1, Color: colorBlack})
	}
}
