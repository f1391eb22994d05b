package uicam

// Hit is the result of a successful ray cast.
type Hit struct {
	Node *Node
	// Distance from the viewport along the ray.
	Distance float64
	// World is the hit point in world coordinates, if the caster knows it.
	World Vec2
}

// RayCaster maps a screen point seen through a viewport to the frontmost
// interactable node. It is the router's only view of scene geometry.
type RayCaster interface {
	CastRay(vp *Viewport, screen Vec2, mask LayerMask, maxDistance float64) (Hit, bool)
}

// RayCasterFunc adapts a function to the RayCaster interface.
type RayCasterFunc func(vp *Viewport, screen Vec2, mask LayerMask, maxDistance float64) (Hit, bool)

// CastRay calls f.
func (f RayCasterFunc) CastRay(vp *Viewport, screen Vec2, mask LayerMask, maxDistance float64) (Hit, bool) {
	return f(vp, screen, mask, maxDistance)
}

// SetRayCaster sets the hit-test provider. A nil caster disables hit testing:
// every point resolves to the fall-through node.
func (r *Router) SetRayCaster(c RayCaster) {
	r.caster = c
	r.forceRaycast = true
}

// SetFallThrough sets the node that receives events when nothing is hit.
func (r *Router) SetFallThrough(n *Node) {
	r.fallThrough = n
}

// FallThrough returns the fall-through node, or nil.
func (r *Router) FallThrough() *Node {
	return r.fallThrough
}

// LastHit returns the most recent successful hit and whether there was one
// during the last hit test.
func (r *Router) LastHit() (Hit, bool) {
	return r.lastHit, r.lastHitOK
}

// HitTestViewport casts into a single viewport. It reports no hit when the
// viewport is disabled or inactive, when p lies outside the viewport's
// normalized bounds, or when the caster finds nothing.
func (r *Router) HitTestViewport(p Vec2, vp *Viewport) (Hit, bool) {
	if !vp.usable() || r.caster == nil {
		return Hit{}, false
	}
	if !vp.ContainsScreen(p.X, p.Y) {
		return Hit{}, false
	}
	r.stats.hitTests++
	hit, ok := r.caster.CastRay(vp, p, vp.RayMask()&r.cfg.EventMask, r.rayLength(vp))
	if ok && !hit.Node.alive() {
		return Hit{}, false
	}
	return hit, ok
}

// rayLength returns the ray length for vp. A viewport's own RangeDistance
// wins over the router's.
func (r *Router) rayLength(vp *Viewport) float64 {
	if vp.RangeDistance <= 0 && r.cfg.RangeDistance > 0 {
		return r.cfg.RangeDistance
	}
	return vp.MaxDistance()
}

// HitTest returns the frontmost node under screen point p across all
// registered viewports in priority order, or the fall-through node when
// nothing is hit. The viewport that produced the hit becomes the current
// viewport.
func (r *Router) HitTest(p Vec2) *Node {
	r.lastHitOK = false
	for _, vp := range r.viewports.list {
		if !vp.usable() {
			continue
		}
		r.currentViewport = vp
		hit, ok := r.HitTestViewport(p, vp)
		if ok {
			r.lastHit = hit
			r.lastHitOK = true
			return hit.Node
		}
	}
	return r.fallThrough
}
