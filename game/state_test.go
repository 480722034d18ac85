package game

import "testing"

func TestScoreStateBestIsRunningMax(t *testing.T) {
	var s ScoreState
	if s.HasAttempt {
		t.Fatalf("fresh state must have no attempt")
	}

	scores := []int{40, 72, 15, 72, 100, 3}
	best := 0
	for _, sc := range scores {
		s.Record(sc)
		if sc > best {
			best = sc
		}
		if s.LastScore != sc {
			t.Fatalf("last = %d, want %d", s.LastScore, sc)
		}
		if s.BestScore != best {
			t.Fatalf("best = %d, want %d", s.BestScore, best)
		}
		if !s.HasAttempt {
			t.Fatalf("hasAttempt false after record")
		}
	}
}
