// Package uicam routes pointer, keyboard, and controller input to scene nodes
// for [Ebitengine] games.
//
// A [Router] samples the mouse (three buttons), every active touch, the
// keyboard, and standard gamepads once per frame. It hit tests each pointer
// through the registered [Viewport]s, separates clicks from drags, counts
// hover highlights across pointers, runs a mouse tooltip timer, and keeps a
// single global selection that keyboard and controller input act on.
//
// # Quick start
//
//	router := uicam.NewRouter(uicam.DefaultConfig())
//	vp := uicam.NewViewport("ui", uicam.Rect{Width: 640, Height: 480})
//	router.RegisterViewport(vp)
//
//	button := uicam.NewShapeNode("ok", uicam.HitRect{X: 10, Y: 10, Width: 80, Height: 30})
//	button.OnClick = func(e uicam.Event) { fmt.Println("clicked", e.Node.Name) }
//	router.SetRayCaster(uicam.NewShapeCaster(button))
//
// Then call [Router.Update] from your game's Update method.
//
// # Hit testing
//
// The router never inspects scene geometry itself. A [RayCaster] maps a screen
// point seen through a viewport to the frontmost node. [ShapeCaster] is a
// ready-made caster over nodes with [HitRect], [HitCircle], or [HitPolygon]
// shapes; 3D engines plug in their own.
//
// Viewports are tried from the highest [Viewport.Depth] down. Each one filters
// nodes by layer ([Viewport.CullingMask], [Viewport.EventMask]) and by ray
// length. When nothing is hit, events go to the fall-through node set with
// [Router.SetFallThrough].
//
// # Events
//
// Nodes receive events through typed callbacks ([Node.OnClick],
// [Node.OnDrag], ...). Router-level handlers registered with [Router.OnClick]
// and friends run first and return a [CallbackHandle]. Events whose node
// carries an EntityID are also sent to the optional [EntityStore]; the
// uicam/ecs package adapts it to a [Donburi] world.
//
// # Testing
//
// [Router.SetInputSource] replaces Ebitengine with any [InputSource].
// [Router.InjectClick], [Router.InjectDrag], and [Router.InjectText] queue
// synthetic input, and [LoadTestScript] drives them from JSON.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package uicam
