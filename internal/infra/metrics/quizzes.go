package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		attemptsTotal,
		attemptScorePercent,
		answersSubmittedTotal,
	)
}

var (
	attemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_attempts_total",
			Help: "Quiz attempts by lifecycle event (started/completed/abandoned).",
		},
		[]string{"event"},
	)

	attemptScorePercent = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quiz_attempt_score_percent",
			Help:    "Distribution of final attempt scores as a percentage of max points.",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)

	answersSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_answers_submitted_total",
			Help: "Submitted answers by correctness.",
		},
		[]string{"correct"}, // 'true' | 'false'
	)
)

func IncAttempt(event string) {
	attemptsTotal.WithLabelValues(norm(event)).Inc()
}

func ObserveAttemptScore(percent float64) {
	attemptScorePercent.Observe(percent)
}

func IncAnswerSubmitted(correct bool) {
	lbl := "false"
	if correct {
		lbl = "true"
	}
	answersSubmittedTotal.WithLabelValues(lbl).Inc()
}
