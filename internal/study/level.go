package study

// EvaluateLevel maps a graded score to a proficiency level.
// total <= 0 defaults to beginner. The boundaries are inclusive lower
// bounds: ratio 0.40 is intermediate, ratio 0.75 is advanced.
func (s *Scorer) EvaluateLevel(correct, total int) Level {
	if total <= 0 {
		return LevelBeginner
	}
	ratio := float64(correct) / float64(total)
	switch {
	case ratio < s.cfg.IntermediateRatio:
		return LevelBeginner
	case ratio < s.cfg.AdvancedRatio:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}
