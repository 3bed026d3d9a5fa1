package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "faqbot"

// Replies counts answered queries by outcome and tracks their scores.
type Replies struct {
	total  *prometheus.CounterVec
	scores prometheus.Histogram
}

// NewReplies registers the reply collectors on reg.
func NewReplies(reg prometheus.Registerer) (*Replies, error) {
	r := &Replies{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "replies_total",
			Help:      "Replies produced, by outcome",
		}, []string{"outcome"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reply_score",
			Help:      "Match score of replies that carried an answer",
			Buckets:   []float64{0.3, 0.5, 0.8, 1, 2, 3, 4},
		}),
	}
	for _, c := range []prometheus.Collector{r.total, r.scores} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveReply records one reply.
func (r *Replies) ObserveReply(outcome string, score float64) {
	r.total.WithLabelValues(outcome).Inc()
	if score > 0 {
		r.scores.Observe(score)
	}
}
