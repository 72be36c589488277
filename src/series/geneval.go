package series

// GenEval GRPO checkpoints, every 50 steps from 0 to 400.
var genEvalSteps = [...]float64{0, 50, 100, 150, 200, 250, 300, 350, 400}

// Scores in percent, one per entry of genEvalSteps.
var genEvalScores = [...]float64{82.1, 83.6, 85.4, 87.6, 87.9, 89.4, 89.1, 90.2, 90.2}

// Fails to compile unless both arrays have the same length.
var _ = [1]struct{}{}[len(genEvalSteps)-len(genEvalScores)]

// GenEvalSteps returns a copy of the embedded training steps.
func GenEvalSteps() []float64 {
	out := make([]float64, len(genEvalSteps))
	copy(out, genEvalSteps[:])
	return out
}

// GenEvalScores returns a copy of the embedded GenEval percentages.
func GenEvalScores() []float64 {
	out := make([]float64, len(genEvalScores))
	copy(out, genEvalScores[:])
	return out
}

// GenEval returns the embedded performance curve as a Series.
func GenEval() Series {
	s, _ := Pair("GenEval", GenEvalSteps(), GenEvalScores())
	return s
}
