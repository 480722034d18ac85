package game

// ScoreState is the process-lifetime score record for one session. It is
// updated only when a gesture completes with at least one sample.
type ScoreState struct {
	LastScore  int
	BestScore  int
	HasAttempt bool
}

// Record stores a completed gesture's score. Best never decreases.
func (s *ScoreState) Record(score int) {
	s.LastScore = score
	if score > s.BestScore {
		s.BestScore = score
	}
	s.HasAttempt = true
}
