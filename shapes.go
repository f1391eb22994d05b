package uicam

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in world coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in world coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in world coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside a convex polygon using cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		x1 := p.Points[i].X
		y1 := p.Points[i].Y
		j := (i + 1) % n
		x2 := p.Points[j].X
		y2 := p.Points[j].Y

		cross := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- ShapeCaster ---

// ShapeCaster is a RayCaster over a flat list of nodes with hit shapes.
// It converts the screen point to world space through the viewport's view
// and returns the closest node (lowest Depth) whose shape contains it.
// Among nodes at equal depth the one added last wins, matching painter order.
type ShapeCaster struct {
	nodes []*Node
}

// NewShapeCaster creates a caster over the given nodes.
func NewShapeCaster(nodes ...*Node) *ShapeCaster {
	return &ShapeCaster{nodes: nodes}
}

// Add appends nodes to the caster.
func (c *ShapeCaster) Add(nodes ...*Node) {
	c.nodes = append(c.nodes, nodes...)
}

// Remove drops a node from the caster.
func (c *ShapeCaster) Remove(node *Node) {
	for i, n := range c.nodes {
		if n == node {
			copy(c.nodes[i:], c.nodes[i+1:])
			c.nodes[len(c.nodes)-1] = nil
			c.nodes = c.nodes[:len(c.nodes)-1]
			return
		}
	}
}

// Nodes returns the caster's nodes. The returned slice MUST NOT be mutated.
func (c *ShapeCaster) Nodes() []*Node {
	return c.nodes
}

// CastRay implements RayCaster.
func (c *ShapeCaster) CastRay(vp *Viewport, screen Vec2, mask LayerMask, maxDistance float64) (Hit, bool) {
	wx, wy := screen.X, screen.Y
	if vp != nil {
		wx, wy = vp.ScreenToWorld(screen.X, screen.Y)
	}

	var best *Node
	// Iterate backward (reverse painter order): later nodes win ties.
	for i := len(c.nodes) - 1; i >= 0; i-- {
		n := c.nodes[i]
		if !hitTestable(n, mask, maxDistance) {
			continue
		}
		if !n.HitShape.Contains(wx, wy) {
			continue
		}
		if best == nil || n.Depth < best.Depth {
			best = n
		}
	}
	if best == nil {
		return Hit{}, false
	}
	return Hit{Node: best, Distance: best.Depth, World: Vec2{wx, wy}}, true
}

// hitTestable reports whether n can be hit by a ray with the given mask and
// range. Nodes without a HitShape are never hit.
func hitTestable(n *Node, mask LayerMask, maxDistance float64) bool {
	if !n.alive() || !n.Visible || !n.Interactable || n.HitShape == nil {
		return false
	}
	if !mask.Has(n.Layer) {
		return false
	}
	return n.Depth >= 0 && n.Depth <= maxDistance
}
