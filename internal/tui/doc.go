// Package tui hosts the wheel in a full-screen Bubble Tea program.
//
// # Architecture
//
// The wheel.Machine is driven by messages. The model implements
// wheel.Scheduler with tea.Tick commands: RequestFrame queues one tick at
// the configured frame interval and AfterFunc queues a tick carrying a
// timer id. Stopping a timer forgets its id, so a late message is dropped.
// Because every callback runs inside Update, the machine never sees two
// goroutines.
//
// The renderer, control surface and result display are one shared screen
// value. The machine writes into it and View reads it back, which keeps the
// Bubble Tea model copyable.
//
// # Input
//
//	space / enter  - Press the control (Start, Stop, Next player)
//	mouse          - Click the button; hovering swaps in the hover colour
//	?              - Toggle the key help
//	q / ctrl+c     - Quit
//
// # Layout
//
// From the top: a header with the round counter and recent results, the
// wheel raster, the result line, the button, a status line, and while the
// wheel moves a velocity sparkline with the stop grace countdown beside it.
package tui
