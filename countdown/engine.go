package countdown

// Status is the single tagged state of the countdown. Running and
// Completed can never both hold.
type Status int

const (
	Idle Status = iota
	Running
	Completed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Completed:
		return "TIME'S UP"
	default:
		return "READY"
	}
}

// Notifier is the completion capability. Fire is invoked exactly once
// per countdown reaching zero.
type Notifier interface {
	Fire()
}

// Engine is the countdown state machine. All transitions are plain
// synchronous calls; the caller decides when a second has passed and
// calls Tick, so no real timers are needed to exercise it.
type Engine struct {
	remaining Duration
	status    Status
	notifier  Notifier
}

func New(d Duration, n Notifier) *Engine {
	return &Engine{remaining: d, notifier: n}
}

func (e *Engine) Remaining() Duration { return e.remaining }
func (e *Engine) Status() Status      { return e.status }

// Start arms the countdown and reports whether it took effect. Starting
// from a zero duration, or while already running, changes nothing.
func (e *Engine) Start() bool {
	if e.status == Running || e.remaining.IsZero() {
		return false
	}
	e.status = Running
	return true
}

// Pause halts a running countdown without touching the remaining time.
// Anywhere else it is a no-op.
func (e *Engine) Pause() {
	if e.status == Running {
		e.status = Idle
	}
}

// Reset returns to Idle from any state, clearing Completed, with the
// given duration as the new remaining time.
func (e *Engine) Reset(d Duration) {
	e.status = Idle
	e.remaining = d
}

// Set replaces the duration wholesale. Honored only while Idle so a
// running or completed countdown can't be edited out from under itself;
// it reports whether the value was taken.
func (e *Engine) Set(d Duration) bool {
	if e.status != Idle {
		return false
	}
	e.remaining = d
	return true
}

// Tick advances the countdown by one second. When the remaining time is
// already zero the engine transitions to Completed instead and fires
// the notifier; the duration stays at zero. Ticks arriving outside
// Running are ignored.
func (e *Engine) Tick() {
	if e.status != Running {
		return
	}
	if e.remaining.IsZero() {
		e.status = Completed
		if e.notifier != nil {
			e.notifier.Fire()
		}
		return
	}
	e.remaining = e.remaining.decrement()
}
