package game

const (
	CanvasSize     = 320.0 // logical square edge, CSS pixels
	RadiusFraction = 0.38  // guide radius = this × canvas size

	MinSamples       = 6    // gestures shorter than this score 0 (tap guard)
	DeviationCutoff  = 0.6  // deviation score reaches 0 at this fraction of the radius
	CoverageTarget   = 0.9  // full coverage credit at this fraction of the circumference
	CoverageExponent = 0.75 // concave, so partial coverage is not punished linearly
	DeviationWeight  = 0.65 // roundness is the primary challenge
	CoverageWeight   = 0.35 // penalizes short on-circle scribbles
)
