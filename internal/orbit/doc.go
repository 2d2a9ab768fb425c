// Package orbit keeps an orbiting camera near an equator view.
//
// [Step] is the per-frame constraint: while the user is not dragging, the
// polar angle closes a fixed fraction of its distance to the rest angle;
// the angle is then clamped to the elastic range whether or not a drag is
// in progress. [Controls] wraps the constraint in drag event handlers and
// adds azimuth inertia for interactive hosts.
//
// # Example
//
//	c := orbit.NewControls(60, orbit.DefaultRange)
//	c.BeginDrag()
//	c.Drag(0.8, 0.3)
//	c.EndDrag()
//	for range frames {
//	    c.Tick()
//	}
//
// # Thread Safety
//
// Controls is owned by a single render loop and is NOT thread-safe.
package orbit
