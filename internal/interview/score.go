package interview

// minCodeAnswerLen is the answer length a CODE question must exceed to
// earn its points. Crude, but real grading is out of scope: showing up
// with an attempt is what gets rewarded.
const minCodeAnswerLen = 10

// Score computes the session score: PointsPerQuestion for each MCQ
// answered with the exact correct option and each CODE answer longer
// than minCodeAnswerLen bytes. Unanswered questions score zero. The
// result is clamped to 0..100.
func Score(questions []Question, answers map[int]string) int {
	score := 0
	for _, q := range questions {
		ans, ok := answers[q.ID]
		if !ok {
			continue
		}
		switch q.Kind {
		case KindMCQ:
			if ans == q.CorrectAnswer {
				score += PointsPerQuestion
			}
		case KindCode:
			if len(ans) > minCodeAnswerLen {
				score += PointsPerQuestion
			}
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
