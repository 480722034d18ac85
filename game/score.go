package game

import "math"

// Score rates how closely a completed stroke traces the reference circle,
// returning an integer in [0,100]. Two terms contribute: radial deviation
// from the guide and arc-length coverage of the circumference, so a short
// scribble sitting on the circle cannot score like a full trace.
func Score(stroke Stroke, ref ReferenceCircle) int {
	if len(stroke) < MinSamples {
		return 0
	}

	var totalDeviation float64
	for _, p := range stroke {
		totalDeviation += math.Abs(p.DistanceTo(ref.Center) - ref.Radius)
	}
	avgDeviation := totalDeviation / float64(len(stroke))
	deviationScore := math.Max(0, 1-avgDeviation/(ref.Radius*DeviationCutoff))

	circumference := 2 * math.Pi * ref.Radius
	coverageRatio := math.Min(stroke.PathLength()/(circumference*CoverageTarget), 1)
	coverageScore := math.Pow(coverageRatio, CoverageExponent)

	score := int(math.Round((deviationScore*DeviationWeight + coverageScore*CoverageWeight) * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
