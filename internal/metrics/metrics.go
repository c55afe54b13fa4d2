package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "mht"

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Service owns the prometheus registry served on /metrics and the app specific collectors.
type Service struct {
	Registry *prometheus.Registry

	transfers        *prometheus.CounterVec
	transferDuration prometheus.Histogram
	balanceReads     *prometheus.CounterVec
}

func New() (*Service, error) {
	s := &Service{
		Registry: prometheus.NewRegistry(),
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Number of submitted token transfers by result.",
		}, []string{"result"}),
		transferDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transfer_duration_seconds",
			Help:      "Time from submit until the transfer was rejected or its balance refetched.",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		balanceReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "balance_reads_total",
			Help:      "Number of balanceOf reads by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.transfers,
		s.transferDuration,
		s.balanceReads,
	} {
		if err := s.Registry.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}

	// pre-initialize label combinations so they are exported as 0
	for _, result := range []string{resultSuccess, resultFailure} {
		s.transfers.WithLabelValues(result)
		s.balanceReads.WithLabelValues(result)
	}

	return s, nil
}

func (s *Service) ObserveTransfer(success bool, duration time.Duration) {
	s.transfers.WithLabelValues(result(success)).Inc()
	s.transferDuration.Observe(duration.Seconds())
}

func (s *Service) ObserveBalanceRead(err error) {
	s.balanceReads.WithLabelValues(result(err == nil)).Inc()
}

func result(success bool) string {
	if success {
		return resultSuccess
	}
	return resultFailure
}
