package uicam

import (
	"testing"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}
	if !c.Contains(75, 50) {
		t.Error("circle should contain a point on its circumference")
	}
	if c.Contains(70, 70) {
		t.Error("circle should not contain (70,70)")
	}
}

func TestHitPolygonContains(t *testing.T) {
	tri := HitPolygon{Points: []Vec2{{0, 0}, {100, 0}, {50, 100}}}
	rev := HitPolygon{Points: []Vec2{{50, 100}, {100, 0}, {0, 0}}}

	tests := []struct {
		name string
		poly HitPolygon
		x, y float64
		want bool
	}{
		{"inside", tri, 50, 50, true},
		{"outside", tri, -10, 50, false},
		{"reversed winding", rev, 50, 50, true},
		{"degenerate", HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.poly.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- ShapeCaster ---

func TestShapeCasterFrontmost(t *testing.T) {
	vp := NewViewport("main", Rect{Width: 200, Height: 200})
	back := NewShapeNode("back", HitRect{Width: 100, Height: 100})
	back.Depth = 10
	front := NewShapeNode("front", HitRect{Width: 100, Height: 100})
	front.Depth = 5
	c := NewShapeCaster(front, back)

	hit, ok := c.CastRay(vp, Vec2{50, 50}, AllLayers, 100)
	if !ok || hit.Node != front {
		t.Fatalf("hit = %v, want front", hit.Node)
	}
	if hit.Distance != 5 || hit.World != (Vec2{50, 50}) {
		t.Errorf("hit = %+v", hit)
	}

	// Equal depth: the node added last wins.
	back.Depth = 5
	if hit, _ := c.CastRay(vp, Vec2{50, 50}, AllLayers, 100); hit.Node != back {
		t.Errorf("tie: hit = %v, want back", hit.Node)
	}
}

func TestShapeCasterFilters(t *testing.T) {
	vp := NewViewport("main", Rect{Width: 200, Height: 200})
	tests := []struct {
		name   string
		modify func(n *Node)
		mask   LayerMask
		maxD   float64
		want   bool
	}{
		{"hit", func(n *Node) {}, AllLayers, 100, true},
		{"invisible", func(n *Node) { n.Visible = false }, AllLayers, 100, false},
		{"not interactable", func(n *Node) { n.Interactable = false }, AllLayers, 100, false},
		{"no shape", func(n *Node) { n.HitShape = nil }, AllLayers, 100, false},
		{"disposed", func(n *Node) { n.Dispose() }, AllLayers, 100, false},
		{"layer masked out", func(n *Node) { n.Layer = 4 }, LayerBit(3), 100, false},
		{"layer masked in", func(n *Node) { n.Layer = 3 }, LayerBit(3), 100, true},
		{"beyond range", func(n *Node) { n.Depth = 50 }, AllLayers, 20, false},
		{"at range", func(n *Node) { n.Depth = 20 }, AllLayers, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewShapeNode("n", HitRect{Width: 100, Height: 100})
			tt.modify(n)
			c := NewShapeCaster(n)
			if _, ok := c.CastRay(vp, Vec2{50, 50}, tt.mask, tt.maxD); ok != tt.want {
				t.Errorf("hit = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestShapeCasterAddRemove(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewShapeCaster(a)
	c.Add(b)
	c.Remove(a)
	c.Remove(a)
	if nodes := c.Nodes(); len(nodes) != 1 || nodes[0] != b {
		t.Errorf("Nodes = %v, want [b]", nodes)
	}
}

func TestShapeCasterUsesView(t *testing.T) {
	vp := NewViewport("main", Rect{Width: 200, Height: 200})
	vp.Zoom = 2
	vp.MarkDirty()
	// View centered at (100,100) with zoom 2: screen (150,150) is world (125,125).
	n := NewShapeNode("n", HitRect{X: 120, Y: 120, Width: 10, Height: 10})
	c := NewShapeCaster(n)
	if _, ok := c.CastRay(vp, Vec2{150, 150}, AllLayers, 100); !ok {
		t.Error("zoomed view should map the screen point onto the node")
	}
}

// --- Registry ---

func TestRegistryOrdering(t *testing.T) {
	r := NewRouter(DefaultConfig())
	low := NewViewport("low", Rect{Width: 10, Height: 10})
	high := NewViewport("high", Rect{Width: 10, Height: 10})
	high.Depth = 5
	tie := NewViewport("tie", Rect{Width: 10, Height: 10})

	r.RegisterViewport(low)
	r.RegisterViewport(high)
	r.RegisterViewport(tie)
	r.RegisterViewport(low)

	want := []string{"high", "low", "tie"}
	got := r.Viewports()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("Viewports()[%d] = %s, want %s", i, got[i].Name, want[i])
		}
	}

	r.UnregisterViewport(high)
	r.UnregisterViewport(high)
	if r.ActiveViewport() != low {
		t.Errorf("ActiveViewport = %s, want low", viewportName(r.ActiveViewport()))
	}
}

func TestActiveViewportSkipsUnusable(t *testing.T) {
	r := NewRouter(DefaultConfig())
	a := NewViewport("a", Rect{Width: 10, Height: 10})
	a.Depth = 3
	b := NewViewport("b", Rect{Width: 10, Height: 10})
	b.Depth = 2
	c := NewViewport("c", Rect{Width: 10, Height: 10})
	c.Depth = 1
	r.RegisterViewport(a)
	r.RegisterViewport(b)
	r.RegisterViewport(c)

	a.Enabled = false
	b.Active = false
	if r.ActiveViewport() != c {
		t.Errorf("ActiveViewport = %s, want c", viewportName(r.ActiveViewport()))
	}
	c.Enabled = false
	if r.ActiveViewport() != nil {
		t.Error("no usable viewport should give nil")
	}
}

func TestViewportForLayer(t *testing.T) {
	r := NewRouter(DefaultConfig())
	ui := NewViewport("ui", Rect{Width: 10, Height: 10})
	ui.Depth = 1
	ui.CullingMask = LayerBit(5)
	world := NewViewport("world", Rect{Width: 10, Height: 10})
	world.CullingMask = LayerBit(0) | LayerBit(5)
	world.EventMask = LayerBit(0)
	r.RegisterViewport(world)
	r.RegisterViewport(ui)

	tests := []struct {
		layer uint8
		want  *Viewport
	}{
		{5, ui},
		{0, world},
		{9, nil},
	}
	for _, tt := range tests {
		if got := r.ViewportForLayer(tt.layer); got != tt.want {
			t.Errorf("ViewportForLayer(%d) = %s, want %s", tt.layer, viewportName(got), viewportName(tt.want))
		}
	}
}

// --- Router hit testing ---

func TestHitTestViewportBounds(t *testing.T) {
	r := NewRouter(DefaultConfig())
	vp := NewViewport("left", Rect{Width: 100, Height: 100})
	r.RegisterViewport(vp)
	n := NewShapeNode("n", HitRect{X: -1000, Y: -1000, Width: 3000, Height: 3000})
	r.SetRayCaster(NewShapeCaster(n))

	if _, ok := r.HitTestViewport(Vec2{50, 50}, vp); !ok {
		t.Error("point inside the viewport should hit")
	}
	if _, ok := r.HitTestViewport(Vec2{150, 50}, vp); ok {
		t.Error("point outside the viewport should miss")
	}
	vp.Enabled = false
	if _, ok := r.HitTestViewport(Vec2{50, 50}, vp); ok {
		t.Error("disabled viewport should miss")
	}
}

func TestHitTestPriorityAndFallThrough(t *testing.T) {
	r := NewRouter(DefaultConfig())
	world := NewViewport("world", Rect{Width: 200, Height: 200})
	ui := NewViewport("ui", Rect{Width: 200, Height: 200})
	ui.Depth = 1
	ui.CullingMask = LayerBit(1)
	r.RegisterViewport(world)
	r.RegisterViewport(ui)

	ground := NewShapeNode("ground", HitRect{Width: 200, Height: 200})
	button := NewShapeNode("button", HitRect{Width: 50, Height: 50})
	button.Layer = 1
	r.SetRayCaster(NewShapeCaster(ground, button))

	if got := r.HitTest(Vec2{10, 10}); got != button {
		t.Errorf("HitTest over button = %v, want button", got)
	}
	if r.CurrentViewport() != ui {
		t.Errorf("CurrentViewport = %s, want ui", viewportName(r.CurrentViewport()))
	}
	if got := r.HitTest(Vec2{100, 100}); got != ground {
		t.Errorf("HitTest over ground = %v, want ground", got)
	}
	if r.CurrentViewport() != world {
		t.Errorf("CurrentViewport = %s, want world", viewportName(r.CurrentViewport()))
	}
	if hit, ok := r.LastHit(); !ok || hit.Node != ground {
		t.Errorf("LastHit = %v %v", hit.Node, ok)
	}

	fall := NewNode("fall")
	r.SetFallThrough(fall)
	if got := r.HitTest(Vec2{500, 500}); got != fall {
		t.Errorf("HitTest off screen = %v, want fall-through", got)
	}
	if _, ok := r.LastHit(); ok {
		t.Error("LastHit should report no hit")
	}
}

func TestHitTestRouterEventMaskAndRange(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config, vp *Viewport)
		want   bool
	}{
		{"defaults", func(cfg *Config, vp *Viewport) {}, true},
		{"router event mask", func(cfg *Config, vp *Viewport) { cfg.EventMask = LayerBit(2) }, false},
		{"router range", func(cfg *Config, vp *Viewport) { cfg.RangeDistance = 10 }, false},
		{"viewport range wins", func(cfg *Config, vp *Viewport) {
			cfg.RangeDistance = 10
			vp.RangeDistance = 100
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			vp := NewViewport("v", Rect{Width: 100, Height: 100})
			tt.modify(&cfg, vp)
			r := NewRouter(cfg)
			r.RegisterViewport(vp)
			n := NewShapeNode("n", HitRect{Width: 100, Height: 100})
			n.Depth = 50
			r.SetRayCaster(NewShapeCaster(n))
			if _, ok := r.HitTestViewport(Vec2{10, 10}, vp); ok != tt.want {
				t.Errorf("hit = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestHitTestWithoutCaster(t *testing.T) {
	r := NewRouter(DefaultConfig())
	r.RegisterViewport(NewViewport("v", Rect{Width: 100, Height: 100}))
	if got := r.HitTest(Vec2{10, 10}); got != nil {
		t.Errorf("HitTest with no caster = %v, want nil", got)
	}
}

func TestRayCasterFunc(t *testing.T) {
	r := NewRouter(DefaultConfig())
	vp := NewViewport("v", Rect{Width: 100, Height: 100})
	vp.CullingMask = LayerBit(1) | LayerBit(2)
	vp.EventMask = LayerBit(2)
	vp.RangeDistance = 42
	r.RegisterViewport(vp)

	target := NewNode("target")
	var gotMask LayerMask
	var gotDist float64
	r.SetRayCaster(RayCasterFunc(func(v *Viewport, p Vec2, mask LayerMask, maxDistance float64) (Hit, bool) {
		gotMask, gotDist = mask, maxDistance
		return Hit{Node: target}, true
	}))

	if got := r.HitTest(Vec2{1, 1}); got != target {
		t.Fatalf("HitTest = %v, want target", got)
	}
	if gotMask != LayerBit(2) || gotDist != 42 {
		t.Errorf("caster got mask %b distance %v", gotMask, gotDist)
	}
}
