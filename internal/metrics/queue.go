package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/aegis/internal/entities"
)

var log = logrus.WithField("layer", "metrics").WithField("package", "metrics")

// TicketCounter returns count of tickets per kind and status.
type TicketCounter func(ctx context.Context) ([]entities.TicketCount, error)

// QueueCollector exposes moderation queue depth. Counts are read from storage on every scrape.
type QueueCollector struct {
	count   TicketCounter
	timeout time.Duration
	desc    *prometheus.Desc
}

// NewQueueCollector returns new instance of QueueCollector.
func NewQueueCollector(count TicketCounter, timeout time.Duration) *QueueCollector {
	return &QueueCollector{
		count:   count,
		timeout: timeout,
		desc: prometheus.NewDesc(
			"aegis_moderation_tickets",
			"The current count of moderation tickets by kind and status.",
			[]string{"kind", "status"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *QueueCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *QueueCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	counts, err := c.count(ctx)
	if err != nil {
		log.WithError(err).Error("failed to count tickets")
		return
	}

	for _, v := range counts {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(v.Count), string(v.Kind), string(v.Status))
	}
}
