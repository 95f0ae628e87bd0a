package hikvision

import (
	"time"
)

// gracePeriod is added to the elapsed time before comparing against the
// movement speed.
const gracePeriod = 50 * time.Millisecond

const (
	minUnit = -100
	maxUnit = 100
)

type Axis int

const (
	AxisRotation Axis = iota
	AxisTilt
	AxisZoom
)

func (a Axis) String() string {
	switch a {
	case AxisRotation:
		return "rotation"
	case AxisTilt:
		return "tilt"
	case AxisZoom:
		return "zoom"
	}
	return "unknown"
}

// Latch records whether an axis has seen its first admitted event.
// It only ever moves from LatchUninitialized to LatchArmed.
type Latch int

const (
	LatchUninitialized Latch = iota
	LatchArmed
)

type AxisState struct {
	Data        int
	Latch       Latch
	LastTrigger time.Time
}

// admit reports whether an event at now may pass the rate gate. The first
// event on an axis always passes.
func (s *AxisState) admit(axis Axis, now time.Time, speed time.Duration) error {
	if s.Latch == LatchUninitialized {
		return nil
	}

	elapsed := now.Sub(s.LastTrigger).Truncate(time.Millisecond)
	if elapsed+gracePeriod < speed {
		return &QuickRequestError{
			Axis:     axis,
			Required: speed + gracePeriod,
		}
	}
	return nil
}

// trigger applies an admitted event. Must run in the same critical section
// as admit.
func (s *AxisState) trigger(now time.Time, unit int) {
	s.Data += unit
	s.LastTrigger = now
	s.Latch = LatchArmed
}

func ValidateUnit(axis Axis, unit int) error {
	if unit < minUnit || unit > maxUnit {
		return &OutOfRangeUnitError{
			Axis:  axis,
			Value: unit,
		}
	}
	return nil
}
