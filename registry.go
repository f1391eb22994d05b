package uicam

import "slices"

// viewportRegistry is the ordered set of input-capable viewports, sorted by
// depth with the highest first. Registration order breaks ties.
type viewportRegistry struct {
	list []*Viewport
}

func (reg *viewportRegistry) add(vp *Viewport) bool {
	if vp == nil || slices.Contains(reg.list, vp) {
		return false
	}
	reg.list = append(reg.list, vp)
	reg.sort()
	return true
}

func (reg *viewportRegistry) remove(vp *Viewport) bool {
	i := slices.Index(reg.list, vp)
	if i < 0 {
		return false
	}
	reg.list = slices.Delete(reg.list, i, i+1)
	reg.sort()
	return true
}

func (reg *viewportRegistry) sort() {
	slices.SortStableFunc(reg.list, func(a, b *Viewport) int {
		switch {
		case a.Depth > b.Depth:
			return -1
		case a.Depth < b.Depth:
			return 1
		}
		return 0
	})
}

// active returns the first enabled and active viewport in priority order.
func (reg *viewportRegistry) active() *Viewport {
	for _, vp := range reg.list {
		if vp.usable() {
			return vp
		}
	}
	return nil
}

// forLayer returns the first viewport whose ray mask includes layer.
func (reg *viewportRegistry) forLayer(layer uint8) *Viewport {
	for _, vp := range reg.list {
		if vp.RayMask().Has(layer) {
			return vp
		}
	}
	return nil
}

// --- Router-level registry API ---

// RegisterViewport adds a viewport to the router. Viewports are kept sorted by
// Depth, highest first. Registering the same viewport twice is a no-op.
func (r *Router) RegisterViewport(vp *Viewport) {
	if !r.viewports.add(vp) {
		logger.Warnf("register viewport %q: already registered", viewportName(vp))
		return
	}
	r.forceRaycast = true
}

// UnregisterViewport removes a viewport from the router.
func (r *Router) UnregisterViewport(vp *Viewport) {
	if !r.viewports.remove(vp) {
		logger.Warnf("unregister viewport %q: not registered", viewportName(vp))
		return
	}
	if r.currentViewport == vp {
		r.currentViewport = nil
	}
	r.forceRaycast = true
}

// Viewports returns the registered viewports in priority order. The returned
// slice MUST NOT be mutated.
func (r *Router) Viewports() []*Viewport {
	return r.viewports.list
}

// ActiveViewport returns the viewport that currently owns input processing:
// the first enabled and active viewport in priority order, or nil.
func (r *Router) ActiveViewport() *Viewport {
	return r.viewports.active()
}

// ViewportForLayer returns the first registered viewport whose interactable
// layers (culling mask filtered by event mask) include layer, or nil.
func (r *Router) ViewportForLayer(layer uint8) *Viewport {
	return r.viewports.forLayer(layer)
}

func viewportName(vp *Viewport) string {
	if vp == nil {
		return "<nil>"
	}
	return vp.Name
}
