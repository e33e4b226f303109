package hero

import "time"

// fallingThreshold is the vertical velocity below which the hero counts as falling
const fallingThreshold = -0.1

// State is a per-frame view of the hero the host feeds to the scheduler
type State struct {
	Paused              bool
	HardLanded          bool
	NoInput             bool
	Dashing             bool
	ToolThrowing        bool
	Attacking           bool
	AttackTime          time.Duration
	AttackRecoveryTime  time.Duration
	ControlRelinquished bool
	OnGround            bool
	AtBench             bool
	HazardDeath         bool
	HazardRespawning    bool
	RecoilFrozen        bool
	Recoiling           bool
	Transitioning       bool
	VelocityY           float64
}

// IsIdle reports whether the hero is standing still and free to act,
// the same window in which the host allows a calm ability to be played.
func (s *State) IsIdle() bool {
	if s == nil {
		return false
	}

	return !s.HardLanded &&
		!s.Paused &&
		!s.NoInput &&
		!s.Dashing &&
		!s.ToolThrowing &&
		(!s.Attacking || s.AttackTime >= s.AttackRecoveryTime) &&
		((!s.ControlRelinquished && s.OnGround) || s.AtBench) &&
		!s.HazardDeath &&
		s.VelocityY > fallingThreshold &&
		!s.HazardRespawning &&
		!s.RecoilFrozen &&
		!s.Recoiling &&
		!s.Transitioning
}
