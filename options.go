package handtrace

// Option configures a Session during creation.
// Use functional options to customize Session behavior.
//
// Example:
//
//	// Defaults: right hand, 20-unit hit radius.
//	s := handtrace.NewSession()
//
//	// Left-handed session with a larger touch target:
//	s := handtrace.NewSession(
//	    handtrace.WithHand(handtrace.HandLeft),
//	    handtrace.WithHitRadius(32),
//	)
type Option func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	hand      Hand
	hitRadius float64
	notify    func(Notice)
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		hand:      HandRight,
		hitRadius: DefaultHitRadius,
	}
}

// WithHand sets the initially active hand. The default is HandRight.
func WithHand(h Hand) Option {
	return func(o *sessionOptions) {
		o.hand = h
	}
}

// WithHitRadius overrides the radius used when picking pose points for
// dragging. Values at or below zero keep the default.
func WithHitRadius(r float64) Option {
	return func(o *sessionOptions) {
		if r > 0 {
			o.hitRadius = r
		}
	}
}

// WithNoticeFunc registers a callback that receives the transient
// user-facing notices emitted by session commands, such as a record
// confirmation. The callback runs synchronously on the goroutine driving
// the session.
func WithNoticeFunc(fn func(Notice)) Option {
	return func(o *sessionOptions) {
		o.notify = fn
	}
}
