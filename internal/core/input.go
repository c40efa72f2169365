package core

// Action represents a semantic input, abstracted from physical key presses.
// The key map produces actions; the game model consumes them.
type Action int

const (
	ActionNone         Action = iota
	ActionUp                  // W, Up arrow
	ActionDown                // S, Down arrow
	ActionLeft                // A, Left arrow
	ActionRight               // D, Right arrow
	ActionConfirm             // Enter, Space
	ActionPause               // P
	ActionRestart             // Y, R on the end screen
	ActionInstructions        // I
	ActionDecline             // N on the end screen
	ActionQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionInstructions:
		return "Instructions"
	case ActionDecline:
		return "Decline"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four steering actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputBuffer queues steering actions that arrive between simulation ticks.
// Key repeat can deliver several presses per tick; applying one per tick keeps
// a fast "up, left" from turning into a reversal before the snake has moved.
type InputBuffer struct {
	queue []Action
	limit int
}

// NewInputBuffer creates a buffer that holds at most limit actions.
// Pushes beyond the limit are dropped.
func NewInputBuffer(limit int) *InputBuffer {
	if limit < 1 {
		limit = 1
	}
	return &InputBuffer{limit: limit}
}

// Push appends an action. Repeating the most recent action is a no-op.
func (b *InputBuffer) Push(a Action) {
	if a == ActionNone || len(b.queue) >= b.limit {
		return
	}
	if n := len(b.queue); n > 0 && b.queue[n-1] == a {
		return
	}
	b.queue = append(b.queue, a)
}

// Pop removes and returns the oldest action, or ActionNone when empty.
func (b *InputBuffer) Pop() Action {
	if len(b.queue) == 0 {
		return ActionNone
	}
	a := b.queue[0]
	b.queue = b.queue[1:]
	return a
}

// Len returns the number of queued actions.
func (b *InputBuffer) Len() int {
	return len(b.queue)
}

// Clear drops all queued actions.
func (b *InputBuffer) Clear() {
	b.queue = b.queue[:0]
}
