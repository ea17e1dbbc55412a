package loop

// System is one stage of a game tick. Systems run in registration order and
// can keep their own state between ticks.
type System interface {
	Execute(frame *UpdateFrame)
}
