package loop

// Commands buffers work that must happen after every system of a tick has
// run, such as handing a snapshot to a renderer or stopping the loop.
type Commands struct {
	defers []func()
	stop   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the tick is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the scheduler to stop once the tick is flushed.
func (c *Commands) Stop() {
	c.stop = true
}

// Flush runs the deferred functions in order and reports whether a stop was
// requested, resetting the buffer state.
func (c *Commands) Flush() bool {
	for _, fn := range c.defers {
		fn()
	}
	stop := c.stop

	c.defers = c.defers[:0]
	c.stop = false
	return stop
}
