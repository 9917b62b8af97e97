// Package metrics exposes prometheus counters describing election resolution.
//
// A nil *Collector is valid: every method is a no-op, so callers never need to
// branch on whether metrics are enabled.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the resolutions counter.
const (
	OutcomeWinner = "winner"
	OutcomeError  = "error"
)

// Collector groups the counters of one process.
type Collector struct {
	ballotsRecorded prometheus.Counter
	ballotsRejected prometheus.Counter
	pairsLocked     prometheus.Counter
	pairsSkipped    prometheus.Counter
	resolutions     *prometheus.CounterVec
}

// NewCollector creates the counters and registers them with reg.
// Registering twice on the same registry fails with the registry's error.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		ballotsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tideman",
			Name:      "ballots_recorded_total",
			Help:      "Ballots accepted into a preference tally.",
		}),
		ballotsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tideman",
			Name:      "ballots_rejected_total",
			Help:      "Ballots rejected as malformed.",
		}),
		pairsLocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tideman",
			Name:      "pairs_locked_total",
			Help:      "Pairs locked into a preference graph.",
		}),
		pairsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tideman",
			Name:      "pairs_skipped_total",
			Help:      "Pairs skipped because they would have closed a cycle.",
		}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tideman",
			Name:      "resolutions_total",
			Help:      "Election resolutions by outcome.",
		}, []string{"outcome"}),
	}

	for _, col := range []prometheus.Collector{
		c.ballotsRecorded, c.ballotsRejected, c.pairsLocked, c.pairsSkipped, c.resolutions,
	} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// BallotRecorded counts one accepted ballot.
func (c *Collector) BallotRecorded() {
	if c == nil {
		return
	}
	c.ballotsRecorded.Inc()
}

// BallotRejected counts one malformed ballot.
func (c *Collector) BallotRejected() {
	if c == nil {
		return
	}
	c.ballotsRejected.Inc()
}

// PairLocked counts one locked pair.
func (c *Collector) PairLocked() {
	if c == nil {
		return
	}
	c.pairsLocked.Inc()
}

// PairSkipped counts one skipped pair.
func (c *Collector) PairSkipped() {
	if c == nil {
		return
	}
	c.pairsSkipped.Inc()
}

// Resolved counts one resolution with the given outcome label.
func (c *Collector) Resolved(outcome string) {
	if c == nil {
		return
	}
	c.resolutions.WithLabelValues(outcome).Inc()
}
