// Package viz renders the technology cloud in a terminal.
//
// The package draws on a Braille [Canvas] (2x4 dots per cell) through an
// orbit [Camera], and runs an interactive viewer on Bubble Tea:
//
//   - [Canvas]: Braille pixel canvas
//   - [Camera]: perspective camera orbiting the origin
//   - [RenderCloud]: projects and draws icons plus the central hub
//   - [Model]: live viewer with drag controls and a polar history strip
//
// # Key Bindings
//
//	Arrows/hjkl - Drag the camera (released after a short pause)
//	Space       - Pause/Resume
//	R           - Reset camera
//	T           - Cycle color themes
//	N           - Toggle icon labels
//	Q           - Quit
package viz
