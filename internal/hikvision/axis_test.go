package hikvision

import (
	"errors"
	"testing"
	"time"

	custerror "github.com/CE-Thesis-2023/ptzctl/internal/error"
)

func TestValidateUnit(t *testing.T) {
	tests := []struct {
		unit    int
		wantErr bool
	}{
		{unit: -150, wantErr: true},
		{unit: -101, wantErr: true},
		{unit: -100},
		{unit: 0},
		{unit: 42},
		{unit: 100},
		{unit: 101, wantErr: true},
		{unit: 150, wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateUnit(AxisTilt, tt.unit)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateUnit(%d) err = %v, wantErr %v", tt.unit, err, tt.wantErr)
			continue
		}
		if err == nil {
			continue
		}

		var rangeErr *OutOfRangeUnitError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("expected *OutOfRangeUnitError, got %T", err)
		}
		if rangeErr.Axis != AxisTilt || rangeErr.Value != tt.unit {
			t.Errorf("unexpected error fields %+v", rangeErr)
		}
		if !errors.Is(err, custerror.ErrorInvalidArgument) {
			t.Errorf("expected %v to match ErrorInvalidArgument", err)
		}
	}
}

func TestAxisState_Admit(t *testing.T) {
	speed := 500 * time.Millisecond
	start := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		latch   Latch
		elapsed time.Duration
		wantErr bool
	}{
		{name: "first event", latch: LatchUninitialized, elapsed: 0},
		{name: "immediately after", latch: LatchArmed, elapsed: 0, wantErr: true},
		{name: "100ms after", latch: LatchArmed, elapsed: 100 * time.Millisecond, wantErr: true},
		{name: "just inside grace", latch: LatchArmed, elapsed: 449 * time.Millisecond, wantErr: true},
		{name: "sub-millisecond short of grace", latch: LatchArmed, elapsed: 449*time.Millisecond + 900*time.Microsecond, wantErr: true},
		{name: "at grace", latch: LatchArmed, elapsed: 450 * time.Millisecond},
		{name: "after speed", latch: LatchArmed, elapsed: 600 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := AxisState{Latch: tt.latch, LastTrigger: start}
			err := state.admit(AxisZoom, start.Add(tt.elapsed), speed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("admit err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var quickErr *QuickRequestError
			if !errors.As(err, &quickErr) {
				t.Fatalf("expected *QuickRequestError, got %T", err)
			}
			if quickErr.Required != 550*time.Millisecond {
				t.Errorf("required = %s, want 550ms", quickErr.Required)
			}
			if quickErr.Axis != AxisZoom {
				t.Errorf("axis = %s", quickErr.Axis)
			}
			if !errors.Is(err, custerror.ErrorTooManyRequests) {
				t.Errorf("expected %v to match ErrorTooManyRequests", err)
			}
		})
	}
}

func TestAxisState_TriggerArmsLatch(t *testing.T) {
	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	state := AxisState{}

	state.trigger(now, 10)
	state.trigger(now, -3)

	if state.Data != 7 {
		t.Errorf("data = %d, want 7", state.Data)
	}
	if state.Latch != LatchArmed {
		t.Error("expected latch to be armed")
	}
	if !state.LastTrigger.Equal(now) {
		t.Errorf("last trigger = %s", state.LastTrigger)
	}
}

func TestAxis_String(t *testing.T) {
	names := map[Axis]string{
		AxisRotation: "rotation",
		AxisTilt:     "tilt",
		AxisZoom:     "zoom",
		Axis(9):      "unknown",
	}
	for axis, want := range names {
		if got := axis.String(); got != want {
			t.Errorf("Axis(%d).String() = %q, want %q", int(axis), got, want)
		}
	}
}
