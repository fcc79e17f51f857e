package service

import "math"

// Grade is the verdict band shown next to a percentage.
type Grade struct {
	Label string `json:"label"`
	Tier  string `json:"tier"`
}

var (
	GradeOutstanding  = Grade{Label: "Outstanding!", Tier: "outstanding"}
	GradeGreat        = Grade{Label: "Great Job!", Tier: "great"}
	GradeGood         = Grade{Label: "Good Effort!", Tier: "good"}
	GradeKeepPractice = Grade{Label: "Keep Practicing!", Tier: "practice"}
	GradeNeedPractice = Grade{Label: "Need More Practice!", Tier: "weak"}
)

type ScoreConverterService interface {
	// Percentage is correct/total*100 rounded to two decimals, 0 when total is 0.
	Percentage(correct, total int) float64
	Grade(percentage float64) Grade
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

func (s *scoreConverterServiceImpl) Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return roundTo(float64(correct)/float64(total)*100, 2)
}

func (s *scoreConverterServiceImpl) Grade(percentage float64) Grade {
	switch {
	case percentage >= 90:
		return GradeOutstanding
	case percentage >= 75:
		return GradeGreat
	case percentage >= 60:
		return GradeGood
	case percentage >= 40:
		return GradeKeepPractice
	default:
		return GradeNeedPractice
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
