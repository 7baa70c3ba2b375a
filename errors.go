package dnd

import "errors"

// Protocol violations. A session method called in the wrong state returns
// one of these (wrapped) and leaves the session untouched.
var (
	ErrSessionActive = errors.New("dnd: drag session already in progress")
	ErrSessionIdle   = errors.New("dnd: no drag session in progress")
)
