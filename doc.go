// Package glpoints draws large numbers of short-living points in a single
// device call per frame.
//
// Application code queues points during the update cycle with AddPoint and
// AddPointWithSize; Render uploads the accumulated batch, issues one draw
// call of point primitives and drains the batch so the next frame starts
// empty. Channel storage is reused frame to frame, so steady-state rendering
// performs no allocations.
//
// All device access goes through the Context interface. GLContext is the
// production implementation on the OpenGL core profile; tests substitute a
// mock. The renderer is single-threaded: every call must happen on the
// thread owning the device context.
package glpoints
