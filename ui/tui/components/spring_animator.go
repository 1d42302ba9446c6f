package components

import (
	"math"
	"time"

	"scrollseg/internal/segment"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.01

// value is one spring-driven scalar.
type value struct {
	pos, vel, target float64
}

func (v *value) step(s harmonica.Spring) {
	v.pos, v.vel = s.Update(v.pos, v.vel, v.target)
}

func (v *value) settled() bool {
	return math.Abs(v.pos-v.target) < settleEpsilon && math.Abs(v.vel) < settleEpsilon
}

// SpringAnimator presents segment transitions with critically damped springs.
// It only holds display values; the segment model is already at the target.
// Step must be called once per frame at the configured FPS.
type SpringAnimator struct {
	fps    int
	spring harmonica.Spring

	itemActive bool
	index      int
	progress   value
	scale      value

	markActive  bool
	markX       value
	markW       value
	frames      int
	frameBudget int
}

func NewSpringAnimator(fps int) *SpringAnimator {
	if fps <= 0 {
		fps = 60
	}
	return &SpringAnimator{fps: fps}
}

// angularFrequency picks a spring that settles in roughly d.
func angularFrequency(d time.Duration) float64 {
	if d <= 0 {
		return 60
	}
	return 4.5 / d.Seconds()
}

func (a *SpringAnimator) Animate(t segment.Transition) {
	a.spring = harmonica.NewSpring(harmonica.FPS(a.fps), angularFrequency(t.Duration), 1.0)
	a.frames = 0
	// let the spring run past its nominal duration before forcing it home
	a.frameBudget = int(3 * t.Duration.Seconds() * float64(a.fps))

	a.itemActive = true
	a.index = t.Index
	a.progress = value{pos: t.From.Progress, target: t.To.Progress}
	a.scale = value{pos: t.From.Scale, target: t.To.Scale}

	if !t.ShowMark {
		a.markActive = false
		return
	}
	from := t.MarkFrom
	if a.markActive {
		// retarget from where the mark is drawn right now
		from.X, from.Width = a.markX.pos, a.markW.pos
	}
	a.markX = value{pos: from.X, target: t.MarkTo.X}
	a.markW = value{pos: from.Width, target: t.MarkTo.Width}
	a.markActive = true
}

func (a *SpringAnimator) Settle() {
	a.itemActive = false
	a.markActive = false
}

func (a *SpringAnimator) Animating() bool {
	return a.itemActive || a.markActive
}

// Step advances one frame and reports whether anything is still moving.
func (a *SpringAnimator) Step() bool {
	if !a.Animating() {
		return false
	}
	a.frames++

	if a.itemActive {
		a.progress.step(a.spring)
		a.scale.step(a.spring)
		if a.progress.settled() && a.scale.settled() {
			a.itemActive = false
		}
	}
	if a.markActive {
		a.markX.step(a.spring)
		a.markW.step(a.spring)
		if a.markX.settled() && a.markW.settled() {
			a.markActive = false
		}
	}

	if a.frames >= a.frameBudget {
		a.Settle()
	}
	return a.Animating()
}

// ItemState returns what should be drawn for the item at index given its
// model state.
func (a *SpringAnimator) ItemState(index int, model segment.ItemState) segment.ItemState {
	if !a.itemActive || index != a.index {
		return model
	}
	return segment.ItemState{Progress: a.progress.pos, Scale: a.scale.pos}
}

// MarkFrame returns what should be drawn for the mark given its model frame.
func (a *SpringAnimator) MarkFrame(model segment.Rect) segment.Rect {
	if !a.markActive {
		return model
	}
	model.X = a.markX.pos
	model.Width = a.markW.pos
	return model
}
