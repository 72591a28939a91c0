package gridview

import (
	"math"
	"time"
)

// Flinger animates a scroll position after the pointer is released. The grid
// starts a fling and then polls it once per frame.
type Flinger interface {
	// Fling starts an animation from (startX, startY) with the given velocity
	// in cells per second, bounded to [minX, maxX] x [minY, maxY].
	Fling(startX, startY, velocityX, velocityY, minX, maxX, minY, maxY int)
	// ComputeScrollOffset advances the animation. It returns false once the
	// animation has finished.
	ComputeScrollOffset() bool
	CurrX() int
	CurrY() int
	IsFinished() bool
	ForceFinished(finished bool)
}

const (
	// defaultFlingFriction is the exponential decay rate per second.
	defaultFlingFriction = 4.0
	// flingStopVelocity is the speed, in cells per second, under which a
	// fling comes to rest.
	flingStopVelocity = 2.0
)

// Scroller is the default Flinger. Velocity decays exponentially, so a fling
// travels at most velocity/friction cells.
type Scroller struct {
	friction float64
	now      func() time.Time

	startX, startY       int
	velocityX, velocityY float64
	minX, maxX           int
	minY, maxY           int
	currX, currY         int
	start                time.Time
	finished             bool
}

// NewScroller returns a finished scroller that uses the wall clock.
func NewScroller() *Scroller {
	return &Scroller{
		friction: defaultFlingFriction,
		now:      time.Now,
		finished: true,
	}
}

// SetFriction sets the decay rate per second. Higher values stop sooner.
func (s *Scroller) SetFriction(friction float64) *Scroller {
	if friction > 0 {
		s.friction = friction
	}
	return s
}

// SetClock replaces the time source.
func (s *Scroller) SetClock(now func() time.Time) *Scroller {
	s.now = now
	return s
}

// Fling implements Flinger.
func (s *Scroller) Fling(startX, startY, velocityX, velocityY, minX, maxX, minY, maxY int) {
	s.startX, s.startY = startX, startY
	s.currX, s.currY = startX, startY
	s.velocityX, s.velocityY = float64(velocityX), float64(velocityY)
	s.minX, s.maxX = minX, maxX
	s.minY, s.maxY = minY, maxY
	s.start = s.now()
	s.finished = velocityX == 0 && velocityY == 0
}

// ComputeScrollOffset implements Flinger.
func (s *Scroller) ComputeScrollOffset() bool {
	if s.finished {
		return false
	}

	t := s.now().Sub(s.start).Seconds()
	decay := math.Exp(-s.friction * t)
	travel := (1 - decay) / s.friction

	s.currX = clampInt(s.startX+int(math.Round(s.velocityX*travel)), s.minX, s.maxX)
	s.currY = clampInt(s.startY+int(math.Round(s.velocityY*travel)), s.minY, s.maxY)

	speed := math.Hypot(s.velocityX, s.velocityY) * decay
	atBound := (s.velocityX == 0 || s.currX == s.minX || s.currX == s.maxX) &&
		(s.velocityY == 0 || s.currY == s.minY || s.currY == s.maxY)
	if speed < flingStopVelocity || atBound {
		s.finished = true
	}
	// Report the final position once.
	return true
}

// CurrX implements Flinger.
func (s *Scroller) CurrX() int {
	return s.currX
}

// CurrY implements Flinger.
func (s *Scroller) CurrY() int {
	return s.currY
}

// IsFinished implements Flinger.
func (s *Scroller) IsFinished() bool {
	return s.finished
}

// ForceFinished implements Flinger.
func (s *Scroller) ForceFinished(finished bool) {
	s.finished = finished
}

var _ Flinger = &Scroller{}

// velocityHorizon is how far back the velocity tracker looks.
const velocityHorizon = 100 * time.Millisecond

type velocitySample struct {
	x, y int
	at   time.Time
}

// velocityTracker estimates pointer velocity from recent drag positions.
type velocityTracker struct {
	samples []velocitySample
}

func (v *velocityTracker) add(x, y int, at time.Time) {
	v.samples = append(v.samples, velocitySample{x: x, y: y, at: at})
	cutoff := at.Add(-velocityHorizon)
	i := 0
	for i < len(v.samples)-1 && v.samples[i].at.Before(cutoff) {
		i++
	}
	v.samples = v.samples[i:]
}

// velocity returns the pointer velocity in cells per second, with each axis
// clamped to maxVelocity.
func (v *velocityTracker) velocity(maxVelocity int) (int, int) {
	if len(v.samples) < 2 {
		return 0, 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	vx := int(float64(last.x-first.x) / dt)
	vy := int(float64(last.y-first.y) / dt)
	return clampInt(vx, -maxVelocity, maxVelocity), clampInt(vy, -maxVelocity, maxVelocity)
}

func (v *velocityTracker) clear() {
	v.samples = v.samples[:0]
}

// dominantFling keeps only the faster axis of a fling and drops velocities
// that do not exceed minVelocity.
func dominantFling(vx, vy, minVelocity int) (int, int) {
	if abs(vx) >= abs(vy) {
		vy = 0
	} else {
		vx = 0
	}
	if abs(vx) <= minVelocity {
		vx = 0
	}
	if abs(vy) <= minVelocity {
		vy = 0
	}
	return vx, vy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
