package core

// Notifier is any sink that can surface a short human-readable message
// to the center's audience. Services emit through it on notice,
// assignment and video creation and on successful submissions; how the
// message is displayed (console, email, toast) is up to the backend.
type Notifier interface {
	Notify(message string)
}
