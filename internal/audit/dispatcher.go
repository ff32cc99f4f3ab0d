package audit

import "log"

// Event is one destructive action taken during a cleanup run.
type Event struct {
	UID      string
	Action   string
	Entity   string
	EntityID string
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.logger.Log(ev)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue: the trail must never stall a cleanup run
		log.Println("audit queue full, dropping event")
	}
}
