package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ganot/tasktrack/internal/logging"
	"github.com/ganot/tasktrack/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

const scrapeTimeout = 2 * time.Second

// SequenceCollector exports the last issued value of each named sequence.
// Values are read from the store on every scrape.
type SequenceCollector struct {
	sequences repository.SequenceAllocator
	names     []string
	logger    *slog.Logger
	desc      *prometheus.Desc
}

var _ prometheus.Collector = (*SequenceCollector)(nil)

// NewSequenceCollector registers a collector for names with reg.
func NewSequenceCollector(sequences repository.SequenceAllocator, names []string, reg prometheus.Registerer, logger *slog.Logger) (*SequenceCollector, error) {
	c := &SequenceCollector{
		sequences: sequences,
		names:     names,
		logger:    logging.OrDiscard(logger),
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "sequence", "last_value"),
			"Last value issued by a named sequence.",
			[]string{"sequence"}, nil,
		),
	}
	if err := reg.Register(c); err != nil {
		return nil, fmt.Errorf("register sequence metrics: %w", err)
	}
	return c, nil
}

// Describe implements prometheus.Collector.
func (c *SequenceCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector. A sequence that cannot be read is
// reported as an invalid metric for that label only.
func (c *SequenceCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), scrapeTimeout)
	defer cancel()

	for _, name := range c.names {
		value, err := c.sequences.Current(ctx, name)
		if err != nil {
			c.logger.Error("failed to read sequence", "sequence", name, "error", err)
			ch <- prometheus.NewInvalidMetric(c.desc, err)
			continue
		}
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(value), name)
	}
}
