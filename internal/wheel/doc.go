// Package wheel implements the spin state machine behind the prize wheel.
//
// A Machine owns the rotation angle, the angular velocity and the current
// Phase. It never draws anything itself: rendering, the control button and
// the result line are collaborators reached through the Renderer,
// ControlSurface and ResultDisplay interfaces, and all timing goes through a
// Scheduler supplied by the host.
//
// # Phases
//
//	Idle          wheel at rest, waiting for Start
//	Spinning      constant velocity; a stop may be pending
//	Decelerating  velocity decays by Params.Decay every frame
//	Settled       result published, highlight running, waiting for Reset
//
// Press is the single handler bound to the control surface. It dispatches on
// the current phase, so the host never needs to rebind its button.
//
// # Scheduling
//
// The frame loop is a callback that re-submits itself through
// Scheduler.RequestFrame while the phase is Spinning or Decelerating. The
// stop grace period and the highlight blink are Scheduler timers; both are
// cancelled when a new round starts, so a previous round can never touch the
// current one. Every callback is expected to run on the host's single event
// loop: the Bubble Tea program in the TUI, or VirtualClock for headless runs
// and tests.
//
// # Geometry
//
// Sector i covers [i·2π/n, (i+1)·2π/n) in the unrotated wheel. The wheel is
// drawn rotated by the current angle (clockwise on screen, y pointing down)
// and the pointer sits at PointerAngle (straight up). ResultAt maps an angle
// to the sector under the pointer.
package wheel
