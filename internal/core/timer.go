package core

import "time"

// FixedStep paces frames at a steady frames-per-second rate. The clock is
// injectable so callers can drive it without wall time.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
// The first call to ShouldStep always reports true.
func NewFixedStep(fps int) *FixedStep {
	return NewFixedStepWithClock(fps, time.Now)
}

// NewFixedStepWithClock is NewFixedStep with a custom time source.
func NewFixedStepWithClock(fps int, now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetRate(fps)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the frame rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(fps int) {
	if fps <= 0 {
		fps = 10
	}
	f.step = time.Second / time.Duration(fps)
}

// Interval returns the duration between two frames.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the next frame is due. At most one frame is
// released per call; a long stall does not cause a burst of catch-up frames.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
