package component

// Score counts goals per side
type Score struct {
	Player int
	AI     int
}

// Credit adds exactly one point to the scoring side
func (s *Score) Credit(scorer Side) {
	if scorer == SideAI {
		s.AI++
		return
	}
	s.Player++
}
