package game

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCollisions() *CollisionSystem {
	return NewCollisionSystem(DefaultConfig(), rand.New(rand.NewSource(1)))
}

func TestPushApartSeparatesHalfEach(t *testing.T) {
	b1 := &Body{Pos: Vec2{0, 0}, Radius: 10}
	b2 := &Body{Pos: Vec2{15, 0}, Radius: 10}

	PushApart(b1, b2)

	if !near(b1.Pos.X, -2.5) || !near(b2.Pos.X, 17.5) {
		t.Fatalf("got positions %v %v, want x -2.5 and 17.5", b1.Pos, b2.Pos)
	}
	if d := b1.DistanceTo(b2); d < b1.Radius+b2.Radius-eps {
		t.Fatalf("bodies still overlap: distance %v", d)
	}
}

func TestPushApartCoincidentCenters(t *testing.T) {
	b1 := &Body{Pos: Vec2{5, 5}, Radius: 10}
	b2 := &Body{Pos: Vec2{5, 5}, Radius: 10}

	PushApart(b1, b2)

	if b1.Pos != (Vec2{5, 5}) {
		t.Fatalf("first body moved to %v", b1.Pos)
	}
	if b2.Pos != (Vec2{6, 5}) {
		t.Fatalf("got second body at %v, want (6,5)", b2.Pos)
	}
}

func TestBounceConservesMomentumAndEnergy(t *testing.T) {
	b1 := &Body{Vel: Vec2{3, 1}, Radius: 10}
	b2 := &Body{Vel: Vec2{-1, 2}, Radius: 20}
	m1, m2 := 100.0, 400.0

	px := m1*b1.Vel.X + m2*b2.Vel.X
	py := m1*b1.Vel.Y + m2*b2.Vel.Y
	e := m1*b1.Vel.Len()*b1.Vel.Len() + m2*b2.Vel.Len()*b2.Vel.Len()

	Bounce(b1, b2)

	if got := m1*b1.Vel.X + m2*b2.Vel.X; math.Abs(got-px) > 1e-6 {
		t.Fatalf("x momentum: got %v, want %v", got, px)
	}
	if got := m1*b1.Vel.Y + m2*b2.Vel.Y; math.Abs(got-py) > 1e-6 {
		t.Fatalf("y momentum: got %v, want %v", got, py)
	}
	if got := m1*b1.Vel.Len()*b1.Vel.Len() + m2*b2.Vel.Len()*b2.Vel.Len(); math.Abs(got-e) > 1e-6 {
		t.Fatalf("kinetic energy: got %v, want %v", got, e)
	}
}

func TestEqualBubblesSwapVelocities(t *testing.T) {
	c := newTestCollisions()
	a := &Bubble{Body: Body{Pos: Vec2{100, 100}, Vel: Vec2{1, 0}, Radius: 20}}
	b := &Bubble{Body: Body{Pos: Vec2{130, 100}, Vel: Vec2{-1, 0}, Radius: 20}}

	if n := c.ResolveBubbles([]*Bubble{a, b}); n != 1 {
		t.Fatalf("got %d collisions, want 1", n)
	}
	if !near(a.Pos.X, 95) || !near(b.Pos.X, 135) {
		t.Fatalf("got positions %v %v, want x 95 and 135", a.Pos, b.Pos)
	}
	if !near(a.Vel.X, -1) || !near(b.Vel.X, 1) || !near(a.Vel.Y, 0) || !near(b.Vel.Y, 0) {
		t.Fatalf("got velocities %v %v, want (-1,0) and (1,0)", a.Vel, b.Vel)
	}
}

func TestResolveBubblesIgnoresSeparatedPairs(t *testing.T) {
	c := newTestCollisions()
	a := &Bubble{Body: Body{Pos: Vec2{100, 100}, Vel: Vec2{1, 0}, Radius: 20}}
	b := &Bubble{Body: Body{Pos: Vec2{140, 100}, Vel: Vec2{-1, 0}, Radius: 20}}

	if n := c.ResolveBubbles([]*Bubble{a, b}); n != 0 {
		t.Fatalf("touching bubbles collided: %d", n)
	}
	if a.Vel != (Vec2{1, 0}) || b.Vel != (Vec2{-1, 0}) {
		t.Fatalf("velocities changed: %v %v", a.Vel, b.Vel)
	}
}

// Separating one pair can push a bubble into a far neighbor; that contact is resolved in the same pass
func TestResolveBubblesChainedPush(t *testing.T) {
	c := newTestCollisions()
	e := &Bubble{Body: Body{Pos: Vec2{489, 300}, Radius: 250}}
	d := &Bubble{Body: Body{Pos: Vec2{490, 300}, Radius: 250}}
	far := &Bubble{Body: Body{Pos: Vec2{1000, 300}, Radius: 250}}

	if got := c.ResolveBubbles([]*Bubble{e, d, far}); got != 2 {
		t.Fatalf("got %d collisions, want 2", got)
	}
	if !near(d.Pos.X, 619.75) {
		t.Fatalf("got middle bubble at %v", d.Pos)
	}
	if dist := d.DistanceTo(&far.Body); dist < d.Radius+far.Radius-eps {
		t.Fatalf("pushed bubbles still overlap: distance %v", dist)
	}
}

func TestEnforceMinimumSpeed(t *testing.T) {
	c := newTestCollisions()

	if got := c.MinSpeed(10); !near(got, 1.2) {
		t.Fatalf("MinSpeed(10) = %v, want 1.2", got)
	}

	slow := &Bubble{Body: Body{Vel: Vec2{0.3, 0.4}, Radius: 10}}
	c.EnforceMinimumSpeed(slow)
	if !near(slow.Vel.X, 0.72) || !near(slow.Vel.Y, 0.96) {
		t.Fatalf("got velocity %v, want (0.72,0.96)", slow.Vel)
	}

	fast := &Bubble{Body: Body{Vel: Vec2{3, 4}, Radius: 10}}
	c.EnforceMinimumSpeed(fast)
	if fast.Vel != (Vec2{3, 4}) {
		t.Fatalf("fast bubble changed to %v", fast.Vel)
	}

	still := &Bubble{Body: Body{Radius: 10}}
	c.EnforceMinimumSpeed(still)
	if still.Vel != (Vec2{}) {
		t.Fatalf("resting bubble got velocity %v", still.Vel)
	}
}

func TestSplit(t *testing.T) {
	c := newTestCollisions()

	tests := []struct {
		radius   float64
		children int
	}{
		{radius: 30, children: 2},
		{radius: 21, children: 2},
		{radius: 20, children: 0},
		{radius: 15, children: 0},
		{radius: 10, children: 0},
		{radius: 8, children: 0},
	}
	for _, tt := range tests {
		parent := &Bubble{Body: Body{Pos: Vec2{50, 60}, Vel: Vec2{2, -1}, Radius: tt.radius}, Color: 3}
		got := c.Split(parent)
		if len(got) != tt.children {
			t.Fatalf("radius %v: got %d children, want %d", tt.radius, len(got), tt.children)
		}
		if tt.children == 0 {
			continue
		}
		if !near(got[0].Radius, tt.radius/2) || !near(got[1].Radius, tt.radius/2) {
			t.Fatalf("radius %v: got child radii %v %v", tt.radius, got[0].Radius, got[1].Radius)
		}
		if got[0].Vel != (Vec2{3, -1.5}) || got[1].Vel != (Vec2{-3, 1.5}) {
			t.Fatalf("radius %v: got child velocities %v %v", tt.radius, got[0].Vel, got[1].Vel)
		}
		for _, child := range got {
			if child.Pos != parent.Pos || child.Color != parent.Color {
				t.Fatalf("child %+v does not inherit position and color", child)
			}
		}
	}
}

func TestResolveBulletsSplitsFirstHit(t *testing.T) {
	c := newTestCollisions()
	target := &Bubble{Body: Body{Pos: Vec2{500, 300}, Radius: 30}}
	other := &Bubble{Body: Body{Pos: Vec2{505, 300}, Radius: 30}}
	hit := &Bullet{Pos: Vec2{500, 300}}
	miss := &Bullet{Pos: Vec2{10, 10}}

	bullets, bubbles, hits := c.ResolveBullets([]*Bullet{hit, miss}, []*Bubble{target, other})

	if hits != 1 {
		t.Fatalf("got %d hits, want 1", hits)
	}
	if len(bullets) != 1 || bullets[0] != miss {
		t.Fatalf("got bullets %v, want only the missing one", bullets)
	}
	if len(bubbles) != 3 || bubbles[0] != other {
		t.Fatalf("got %d bubbles, want the untouched one followed by two children", len(bubbles))
	}
	for _, child := range bubbles[1:] {
		if child.Radius != 15 {
			t.Fatalf("got child radius %v, want 15", child.Radius)
		}
	}
}

func TestResolveBulletsPopsSmallBubble(t *testing.T) {
	c := newTestCollisions()
	small := &Bubble{Body: Body{Pos: Vec2{100, 100}, Radius: 10}}

	bullets, bubbles, hits := c.ResolveBullets([]*Bullet{{Pos: Vec2{105, 100}}}, []*Bubble{small})

	if hits != 1 || len(bullets) != 0 || len(bubbles) != 0 {
		t.Fatalf("got hits %d, %d bullets, %d bubbles, want 1, 0, 0", hits, len(bullets), len(bubbles))
	}
}

func TestHitsPlayer(t *testing.T) {
	c := newTestCollisions()
	p := &Player{Pos: Vec2{500, 500}, Lives: 3}

	touching := &Bubble{Body: Body{Pos: Vec2{530, 500}, Radius: 15}}
	if got, ok := c.HitsPlayer(p, []*Bubble{touching}); !ok || got != touching {
		t.Fatalf("bubble near the front segment did not hit the player")
	}

	far := &Bubble{Body: Body{Pos: Vec2{540, 500}, Radius: 15}}
	if _, ok := c.HitsPlayer(p, []*Bubble{far}); ok {
		t.Fatalf("distant bubble hit the player")
	}
}
