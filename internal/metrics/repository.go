// Package metrics records Prometheus counters and latency histograms for item
// repository calls.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/ganot/tasktrack/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tasktrack"

// Operation result labels
const (
	resultOK       = "ok"
	resultNotFound = "not_found"
	resultError    = "error"
)

var _ item.Repository = (*InstrumentedRepository)(nil)

// InstrumentedRepository decorates an item.Repository with operation metrics.
type InstrumentedRepository struct {
	next     item.Repository
	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewInstrumentedRepository wraps next and registers its collectors with reg.
func NewInstrumentedRepository(next item.Repository, reg prometheus.Registerer) (*InstrumentedRepository, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Item repository calls by operation and result.",
	}, []string{"operation", "result"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Item repository call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	for _, c := range []prometheus.Collector{ops, duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register repository metrics: %w", err)
		}
	}

	return &InstrumentedRepository{next: next, ops: ops, duration: duration}, nil
}

func (r *InstrumentedRepository) observe(op string, start time.Time, result string) {
	r.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	r.ops.WithLabelValues(op, result).Inc()
}

func errorResult(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, repository.ErrNotFound):
		return resultNotFound
	default:
		return resultError
	}
}

func foundResult(found bool, err error) string {
	if err == nil && !found {
		return resultNotFound
	}
	return errorResult(err)
}

func (r *InstrumentedRepository) Insert(ctx context.Context, it item.Item) (int64, error) {
	start := time.Now()
	id, err := r.next.Insert(ctx, it)
	r.observe("insert", start, errorResult(err))
	return id, err
}

func (r *InstrumentedRepository) List(ctx context.Context) ([]item.Item, error) {
	start := time.Now()
	items, err := r.next.List(ctx)
	r.observe("list", start, errorResult(err))
	return items, err
}

func (r *InstrumentedRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	start := time.Now()
	it, err := r.next.FindByID(ctx, id)
	r.observe("find_by_id", start, errorResult(err))
	return it, err
}

func (r *InstrumentedRepository) Update(ctx context.Context, it item.Item) (bool, error) {
	start := time.Now()
	updated, err := r.next.Update(ctx, it)
	r.observe("update", start, foundResult(updated, err))
	return updated, err
}

func (r *InstrumentedRepository) RemoveByID(ctx context.Context, id int64) (bool, error) {
	start := time.Now()
	removed, err := r.next.RemoveByID(ctx, id)
	r.observe("remove_by_id", start, foundResult(removed, err))
	return removed, err
}
