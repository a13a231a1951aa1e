package core

// ShutdownMessage requests an actor to turn off: cancel every actlet, then
// stop the service.
type ShutdownMessage struct {
	Base
}

// ActletDoneMessage is the framework-level message an Actlet (or Timer)
// posts back to its owning actor when it terminates, by any means
// (success, failure, or cancellation — see SPEC_FULL.md's resolution of
// Design Notes open question #1).
type ActletDoneMessage struct {
	Base
	Name   string `json:"name"`
	Result any    `json:"result"`
}

// ActletError is the Result carried by an ActletDoneMessage when the
// actlet did not complete successfully. It is intentionally not a Message
// itself, so Actor.handleActletDone's `result.(Message)` check never
// mistakes a failure for a payload to re-post to the owner.
type ActletError struct {
	Err       string `json:"err"`
	Cancelled bool   `json:"cancelled"`
}

func (e *ActletError) Error() string {
	if e.Cancelled {
		return "actlet cancelled"
	}
	return e.Err
}

// TimerDoneMessage is sent once a Timer completes its configured
// repetitions (or fails — see the timer protocol in timer.go).
type TimerDoneMessage struct {
	Base
}

// TimerConfig configures the generic timer actlet (see §4.7). It is itself
// a Message (actlet configuration is deep-copied at creation time like any
// other), so it embeds Base; its nested Message field is deep-copied
// generically by deepCopy's reflect.Interface case, no custom Clone needed.
type TimerConfig struct {
	Base
	Message     Message
	Interval    float64 // seconds
	Delay       float64 // seconds
	Now         bool
	Repetitions int // 0 means unbounded
}
