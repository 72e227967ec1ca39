package game

import (
	"strings"
	"testing"
)

func frameTexts(f Frame) []string {
	var out []string
	for _, cmd := range f.Commands {
		if t, ok := cmd.(Text); ok {
			out = append(out, t.Str)
		}
	}
	return out
}

func hasText(f Frame, s string) bool {
	for _, t := range frameTexts(f) {
		if t == s {
			return true
		}
	}
	return false
}

func TestFrameStartScreen(t *testing.T) {
	h := newHarness(t)
	f := h.m.Frame()

	if f.Background != colorSky {
		t.Fatalf("got background %v, want sky blue", f.Background)
	}
	if len(f.Commands) == 0 {
		t.Fatalf("empty start frame")
	}
	if b, ok := f.Commands[0].(Blit); !ok || b.Asset != BackgroundAsset {
		t.Fatalf("got first command %#v, want the background image", f.Commands[0])
	}
	if !hasText(f, "Press any key to start") {
		t.Fatalf("missing prompt in %v", frameTexts(f))
	}
}

func TestFramePlaying(t *testing.T) {
	h := newHarness(t)
	h.in.typeText(" ")
	h.step()
	s := h.m.Session
	s.Bubbles = []*Bubble{{Body: Body{Pos: Vec2{100, 100}, Radius: 30}}}
	s.Bullets = []*Bullet{{Pos: Vec2{200, 200}}}

	f := h.m.Frame()

	if !hasText(f, "Score: 0") || !hasText(f, "Lives: 3") {
		t.Fatalf("missing HUD in %v", frameTexts(f))
	}
	var polygons int
	for _, cmd := range f.Commands {
		if p, ok := cmd.(Polygon); ok {
			polygons++
			if len(p.Points) != 3 {
				t.Fatalf("got stinger with %d points", len(p.Points))
			}
		}
	}
	if polygons != 1 {
		t.Fatalf("got %d stingers, want 1", polygons)
	}
	if f.Shake != (Vec2{}) {
		t.Fatalf("unhurt frame shaken by %v", f.Shake)
	}
}

func TestFrameHurtFlash(t *testing.T) {
	h := newHarness(t)
	h.in.typeText(" ")
	h.step()
	h.m.Session.Effects.Hurt(h.now)

	f := h.m.Frame()

	var overlay bool
	for _, cmd := range f.Commands {
		if r, ok := cmd.(Rect); ok && r.Color == colorHurt {
			overlay = true
		}
	}
	if !overlay {
		t.Fatalf("no red overlay while flashing")
	}
}

func TestFrameLevelUpBanner(t *testing.T) {
	h := newHarness(t)
	h.in.typeText(" ")
	h.step()
	h.m.Session.Effects.Warn(h.now)

	if f := h.m.Frame(); !hasText(f, "Yay! More bubbles Incoming! ^_^") {
		t.Fatalf("missing banner in %v", frameTexts(f))
	}
}

func TestFrameNameEntryAndHighScores(t *testing.T) {
	h := newHarness(t)
	h.playTo(42)
	h.in.typeText("Ann")
	h.step()

	f := h.m.Frame()
	if !hasText(f, "Enter your name:") || !hasText(f, "Ann_") || !hasText(f, "Game Over! Score: 42") {
		t.Fatalf("got name entry texts %v", frameTexts(f))
	}

	h.in.key(KeyEnter)
	h.step()
	f = h.m.Frame()
	if !hasText(f, "High Scores") || !hasText(f, "1. Ann: 42") || !hasText(f, "Press R to restart or Q to quit") {
		t.Fatalf("got high score texts %v", frameTexts(f))
	}
	for _, cmd := range f.Commands {
		if tx, ok := cmd.(Text); ok && tx.Style != TextFramed {
			t.Fatalf("high score text %q is not framed", tx.Str)
		}
	}
}

func TestFrameDebugOverlay(t *testing.T) {
	h := newHarness(t)
	h.in.typeText(" ")
	h.step()
	h.in.key(KeyF1)
	h.step()

	f := h.m.Frame()
	var found bool
	for _, s := range frameTexts(f) {
		if strings.HasPrefix(s, "Level: 1") {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing debug counters in %v", frameTexts(f))
	}
}
