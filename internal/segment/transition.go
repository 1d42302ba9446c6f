package segment

import "math"

// SelectMode selects index with animation and notifies the change handler
// when the selection actually moves.
func (s *Segment) SelectMode(index int) {
	s.change(index, true, true)
}

// SetCurrent selects index immediately. Programmatic assignment never
// notifies.
func (s *Segment) SetCurrent(index int) {
	s.change(index, false, false)
}

// Tap selects the first item under p, given in viewport coordinates. It
// reports whether an item was hit.
func (s *Segment) Tap(p Point) bool {
	content := Point{X: p.X + s.scrollX, Y: p.Y}
	for _, item := range s.items {
		if item.Contains(content.Offset(item.Frame().Origin())) {
			s.change(item.Index(), true, true)
			return true
		}
	}
	return false
}

// Scrub interpolates between the current item and toward without committing.
// factor runs from -1 to 1; its magnitude is how far the transition has gone
// and its sign is the direction of travel.
func (s *Segment) Scrub(factor float64, toward int) {
	current := s.itemAt(s.cfg.Current)
	other := s.itemAt(toward)
	if current == nil || other == nil {
		return
	}

	currentFactor := 1 - math.Abs(factor)
	otherFactor := math.Abs(factor)
	current.Progress(currentFactor)
	other.Progress(otherFactor)

	minF, maxF := s.cfg.scaleBounds()
	span := maxF - minF
	current.ScaleProgress(maxF - (1-currentFactor)*span)
	other.ScaleProgress(maxF - (1-otherFactor)*span)

	s.animator.Settle()

	mark := s.markView()
	if mark == nil {
		return
	}

	end, _ := s.SelectedRect(toward)
	cur, _ := s.SelectedRect(current.Index())

	sign := 1.0
	if factor > 0 {
		sign = -1
	}

	mark.SetFrame(Rect{
		X:      cur.X - sign*(end.X-cur.X)*factor,
		Y:      end.Y,
		Width:  cur.Width - sign*(end.Width-cur.Width)*factor,
		Height: end.Height,
	})
}

// change is the single path for discrete selection. Model values are written
// first; the animator then either interpolates to them or settles.
func (s *Segment) change(target int, animated, notify bool) {
	selected := s.itemAt(target)
	if selected == nil {
		s.logger.Printf("segment: select %d ignored, %d items", target, len(s.items))
		return
	}

	half := ItemState{Progress: 0.5, Scale: 1 / s.cfg.ItemScaleFactor}
	full := ItemState{Progress: 1, Scale: 1}

	for _, item := range s.items {
		item.SetSelected(item.Index() == target)
		item.Progress(half.Progress)
		item.ScaleProgress(half.Scale)
	}
	selected.Progress(full.Progress)
	selected.ScaleProgress(full.Scale)

	t := Transition{
		Duration: SelectionDuration,
		Index:    target,
		From:     half,
		To:       full,
	}
	if mark := s.markView(); mark != nil {
		t.ShowMark = true
		t.MarkFrom = mark.Frame()
		t.MarkTo, _ = s.SelectedRect(target)
		mark.SetFrame(t.MarkTo)
	}

	if animated {
		s.animator.Animate(t)
	} else {
		s.animator.Settle()
	}

	old := s.cfg.Current
	s.cfg.Current = target
	if notify && old != target {
		s.logger.Printf("segment: selection %d -> %d", old, target)
		s.onChange(s, old, target)
	}
}
