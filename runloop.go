package dnd

// RunLoop is a queue of deferred tasks executed on the goroutine that drives
// the Scene. Tasks deferred during frame N run at the start of frame N+1,
// before that frame's input, in the order they were deferred. Tasks deferred
// while flushing wait for the following flush.
type RunLoop struct {
	queue   []func()
	running []func()
}

// Defer schedules fn for the next flush.
func (l *RunLoop) Defer(fn func()) {
	if fn == nil {
		return
	}
	l.queue = append(l.queue, fn)
}

// Pending returns the number of tasks waiting for the next flush.
func (l *RunLoop) Pending() int {
	return len(l.queue)
}

// Flush runs the tasks queued before the call.
func (l *RunLoop) Flush() {
	if len(l.queue) == 0 {
		return
	}
	l.running, l.queue = l.queue, l.running[:0]
	for i, fn := range l.running {
		l.running[i] = nil
		fn()
	}
	l.running = l.running[:0]
}
