// Package ui provides the terminal drawing pieces shared by the interactive
// wheel and the headless simulate command.
//
// # Components Overview
//
//	RenderWheel      - Rasterises the wheel into coloured terminal cells
//	SpinnerComponent - Bubble Tea status indicator for the spin phases
//	PhaseDisplay     - Line output for headless rounds
//	RenderSparkline  - Velocity trace
//	RenderBar        - Stop grace countdown and tallies
//
// # Wheel Raster
//
// Cells are twice as tall as they are wide, so the raster uses two columns
// per unit of x. A cell belongs to the sector whose arc contains the cell's
// angle from the hub, measured in the wheel's local frame:
//
//	local := wheel.NormalizeAngle(atan2(dy, dx) - rotation)
//	index := wheel.SectorAt(local, n)
//
// The pointer sits one cell outside the rim and the sector numbers are
// printed at 70% of the radius.
//
// # Color Scheme
//
// Sector fills come from the configured hex palette. Status colours are
// ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Settled rounds
//	ColorError     (red)    - Failures, nearly stopped
//	ColorWarning   (yellow) - Grace countdown
//	ColorMuted     (gray)   - Secondary text, timing info
//	ColorSecondary (blue)   - Spinning indicator
//
// Use DisableColors() or ApplyColorMode(ColorNever) for monochrome output;
// RenderWheel then needs WheelOptions.Plain so sectors stay distinguishable.
package ui
