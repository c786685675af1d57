package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type SnapshotMetrics struct {
	RefreshTotal    *prometheus.CounterVec
	RefreshDuration prometheus.Histogram
	Borrowers       prometheus.Gauge
	Customers       prometheus.Gauge
}

type MutationMetrics struct {
	Total *prometheus.CounterVec
}

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

var (
	Snapshot = SnapshotMetrics{
		RefreshTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lending_admin_snapshot_refresh_total",
				Help: "Total number of borrower snapshot reloads.",
			},
			[]string{"status"},
		),
		RefreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lending_admin_snapshot_refresh_duration_seconds",
				Help:    "Histogram of full snapshot reload latencies.",
				Buckets: prometheus.DefBuckets,
			},
		),
		Borrowers: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lending_admin_snapshot_borrowers",
				Help: "Number of borrowers in the current snapshot.",
			},
		),
		Customers: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "lending_admin_snapshot_customers",
				Help: "Number of customers in the current snapshot.",
			},
		),
	}

	Mutation = MutationMetrics{
		Total: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lending_admin_borrower_mutations_total",
				Help: "Total number of borrower create/update/delete calls.",
			},
			[]string{"operation", "status"},
		),
	}

	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lending_admin_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func RecordSnapshotRefresh(err error, borrowers, customers int, duration time.Duration) {
	Snapshot.RefreshTotal.WithLabelValues(status(err)).Inc()
	Snapshot.RefreshDuration.Observe(duration.Seconds())
	Snapshot.Borrowers.Set(float64(borrowers))
	Snapshot.Customers.Set(float64(customers))
}

func RecordMutation(operation string, err error) {
	Mutation.Total.WithLabelValues(operation, status(err)).Inc()
}

func RecordDBQuery(queryName string, err error, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status(err)).Observe(duration.Seconds())
}
