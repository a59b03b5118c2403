package loop

// System is one step of a frame. Systems run in registration order on the
// scheduler goroutine and may keep their own state between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) { f(frame) }
