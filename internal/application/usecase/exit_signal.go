package usecase

// ExitSignal is a single-slot wake-up shared by tray actions, monitors and the
// minimize orchestrator. Firing it several times before it is observed has the
// same effect as firing it once.
type ExitSignal struct {
	ch chan struct{}
}

func NewExitSignal() *ExitSignal {
	return &ExitSignal{ch: make(chan struct{}, 1)}
}

// Fire wakes the waiter. It never blocks.
func (s *ExitSignal) Fire() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// Done returns the channel the orchestrator waits on.
func (s *ExitSignal) Done() <-chan struct{} {
	return s.ch
}
