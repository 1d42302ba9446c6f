package segment

import "time"

// SelectionDuration is how long an animated selection change should take.
const SelectionDuration = 250 * time.Millisecond

// Transition carries the endpoints of an animated selection change. By the
// time an Animator sees it, the model already holds the To values.
type Transition struct {
	Duration time.Duration

	// Index is the newly selected item.
	Index    int
	From, To ItemState

	ShowMark         bool
	MarkFrom, MarkTo Rect
}

// Animator presents committed changes. The engine never owns timing: it writes
// final values, then either hands the Animator a Transition to interpolate or
// tells it to Settle because an immediate change superseded whatever was in
// flight.
type Animator interface {
	Animate(t Transition)
	Settle()
}

// ImmediateAnimator shows every change at once.
type ImmediateAnimator struct{}

func (ImmediateAnimator) Animate(Transition) {}
func (ImmediateAnimator) Settle()            {}
