// Package ebitentouch feeds ebiten input into a handtrace session.
//
// ebiten exposes input as per-frame state (which touch IDs exist and
// where they are), while handtrace consumes pointer events. Poller
// bridges the two: call Update once per game tick and it compares the
// frame against the previous one, emitting PointerDown, PointerMove,
// and PointerUp transitions to any Receiver, typically a
// *handtrace.Session.
//
// The left mouse button is treated as pointer 0 so a session can be
// driven on desktop without a touch screen; touch contacts map to
// pointers 1 and up, so the two never collide.
//
// # Usage
//
//	type Game struct {
//	    session *handtrace.Session
//	    poller  *ebitentouch.Poller
//	}
//
//	func (g *Game) Update() error {
//	    g.poller.Update(g.session)
//	    return nil
//	}
//
// # Thread Safety
//
// Poller is NOT safe for concurrent use; drive it from the game's
// Update method only.
package ebitentouch
