package uicam

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/time/rate"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Router, every dispatched event whose node carries a non-zero
// EntityID is forwarded to the store.
type EntityStore interface {
	EmitEvent(event Event)
}

// Router is the top-level object that owns the viewport registry, pointer
// state, highlight table, tooltip timer, and selection. Call Tick (or Update
// from an ebiten game) once per frame. A Router is not safe for concurrent use.
type Router struct {
	cfg    Config
	source InputSource
	caster RayCaster
	store  EntityStore
	debug  bool

	// Viewports
	viewports       viewportRegistry
	currentViewport *Viewport

	// Hit testing
	fallThrough  *Node
	lastHit      Hit
	lastHitOK    bool
	forceRaycast bool

	// Pointer and dispatch state
	pointers         pointerTable
	highlights       highlightTable
	handlers         handlerRegistry
	hovered          *Node
	selected         *Node
	selectionLit     bool // selected holds a highlight reference
	tooltip          tooltipTimer
	currentPointerID int
	eventPos         Vec2
	mouseSeen        bool

	// Clock
	now        float64
	clock      float64
	timeScale  float64
	fixedAccum float64

	axisLimiter *rate.Limiter

	// Synthetic input
	injectQueue []syntheticPointerEvent
	injectHeld  [mouseButtonCount]bool
	textQueue   []string
	testRunner  *TestRunner

	touchBuf []Touch
	orderBuf []int
	charBuf  []rune

	stats     tickStats
	lastStats tickStats
}

// NewRouter creates a router with the given config, reading input from
// Ebitengine. An invalid config is logged and used as is.
func NewRouter(cfg Config) *Router {
	if err := cfg.Validate(); err != nil {
		logger.Warnf("new router: %v", err)
	}
	return &Router{
		cfg:              cfg,
		source:           NewEbitenSource(),
		pointers:         newPointerTable(),
		timeScale:        1,
		currentPointerID: PointerMouseLeft,
		axisLimiter:      newAxisLimiter(cfg.AxisCooldown),
	}
}

func newAxisLimiter(cooldown float64) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Duration(cooldown*float64(time.Second))), 1)
}

// Config returns the router's config.
func (r *Router) Config() Config {
	return r.cfg
}

// SetConfig replaces the config. Pointer, highlight, and selection state is
// kept.
func (r *Router) SetConfig(cfg Config) {
	if err := cfg.Validate(); err != nil {
		logger.Warnf("set config: %v", err)
	}
	if cfg.AxisCooldown != r.cfg.AxisCooldown {
		r.axisLimiter = newAxisLimiter(cfg.AxisCooldown)
	}
	r.cfg = cfg
	r.forceRaycast = true
}

// SetEntityStore sets the optional ECS bridge.
func (r *Router) SetEntityStore(store EntityStore) {
	r.store = store
}

// SetTimeScale sets the time scale Update passes to Tick. Scaled time drives
// viewport animations and the periodic mouse hit-test refresh.
func (r *Router) SetTimeScale(s float64) {
	r.timeScale = s
}

// TimeScale returns the time scale used by Update.
func (r *Router) TimeScale() float64 {
	return r.timeScale
}

// Now returns the unscaled time of the current tick, in seconds.
func (r *Router) Now() float64 {
	return r.now
}

// CurrentViewport returns the viewport of the most recent hit test, valid
// inside event callbacks.
func (r *Router) CurrentViewport() *Viewport {
	return r.currentViewport
}

// Update runs one tick from an ebiten game's Update method. The frame length
// is 1/TPS and the clock accumulates from the router's first update.
func (r *Router) Update() {
	dt := updateDelta(ebiten.TPS(), ebiten.ActualTPS())
	r.clock += dt
	r.Tick(FrameTime{Now: r.clock, Delta: dt, TimeScale: r.timeScale})
}

// updateDelta returns the length of one update in seconds. With
// ebiten.SyncWithFPS the nominal TPS is negative, so the measured rate is
// used, falling back to 60 until ebiten has measured one.
func updateDelta(tps int, actual float64) float64 {
	switch {
	case tps > 0:
		return 1.0 / float64(tps)
	case actual > 0:
		return 1.0 / actual
	}
	return 1.0 / 60
}

// Tick processes one frame of input. It never blocks. When no viewport is
// enabled and active, the frame is skipped.
func (r *Router) Tick(ft FrameTime) {
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}
	r.stats = tickStats{}
	r.now = ft.Now
	r.timeScale = ft.TimeScale

	scaled := ft.Delta * ft.TimeScale
	for _, vp := range r.viewports.list {
		vp.update(float32(scaled))
	}

	if r.testRunner != nil {
		r.testRunner.step(r)
	}

	if r.ActiveViewport() == nil {
		return
	}

	fixedTick := false
	if r.cfg.FixedStep > 0 {
		r.fixedAccum += scaled
		for r.fixedAccum >= r.cfg.FixedStep {
			r.fixedAccum -= r.cfg.FixedStep
			fixedTick = true
		}
	}

	r.process(fixedTick)

	if r.debug {
		r.stats.tickTime = time.Since(t0)
		r.debugLog(r.stats)
	}
	r.lastStats = r.stats
}
