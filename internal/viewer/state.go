package viewer

// State is the whole of the navigator's mutable state: which card is showing
// and whether its answer is revealed.
type State struct {
	Index      int
	ShowAnswer bool
}

// Apply advances the state by one command over a deck of n cards and reports
// whether the viewer should quit. Navigation wraps at both ends and always
// re-hides the answer; jump targets outside 1..n leave the state untouched.
func (s State) Apply(cmd Command, n int, randIndex func(int) int) (State, bool) {
	switch cmd.Action {
	case ActionFlip:
		s.ShowAnswer = !s.ShowAnswer

	case ActionNext:
		s.Index = (s.Index + 1) % n
		s.ShowAnswer = false

	case ActionPrev:
		s.Index = (s.Index - 1 + n) % n
		s.ShowAnswer = false

	case ActionRandom:
		s.Index = randIndex(n)
		s.ShowAnswer = false

	case ActionJump:
		if cmd.Target >= 1 && cmd.Target <= n {
			s.Index = cmd.Target - 1
			s.ShowAnswer = false
		}

	case ActionQuit:
		return s, true
	}

	return s, false
}
