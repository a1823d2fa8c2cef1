package handtrace

// NoticeKind classifies a user-facing notice.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Notice is a transient user-facing message emitted by session commands,
// such as "recorded start pose for right hand (5 fingers)". UIs typically
// show it in a status bar or snackbar for a few seconds.
type Notice struct {
	Kind    NoticeKind
	Message string

	// Hand is the hand the notice concerns.
	Hand Hand

	// Count is the number of touch points involved when that is
	// meaningful for the message, zero otherwise.
	Count int
}
