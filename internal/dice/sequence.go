package dice

// Sequence is a scripted Roller that replays fixed results in order.
// It is used to reproduce exact battles and events.
//
// Each queue is consumed independently. Between results are clamped into the
// requested range and Pick results are reduced modulo n, so a script can never
// break the Roller contract. Exhausted queues fall back to the lowest value:
// min for Between, 0 for Pick, false for Chance.
type Sequence struct {
	Rolls   []int
	Picks   []int
	Chances []bool
}

// Between returns the next scripted roll clamped to [min, max].
func (s *Sequence) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	if len(s.Rolls) == 0 {
		return min
	}
	v := s.Rolls[0]
	s.Rolls = s.Rolls[1:]
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Pick returns the next scripted index modulo n.
func (s *Sequence) Pick(n int) int {
	if n <= 0 || len(s.Picks) == 0 {
		return 0
	}
	v := s.Picks[0]
	s.Picks = s.Picks[1:]
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Chance returns the next scripted outcome.
func (s *Sequence) Chance(p float64) bool {
	if len(s.Chances) == 0 {
		return false
	}
	v := s.Chances[0]
	s.Chances = s.Chances[1:]
	return v
}

var _ Roller = (*Sequence)(nil)
