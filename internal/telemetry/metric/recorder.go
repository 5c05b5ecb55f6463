package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/DistributedDoge/oss-directory/internal/registry"
)

const namespace = "ossd"

// Recorder holds the metrics of a single run on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	corpusFiles       prometheus.Counter
	corpusParseErrors prometheus.Counter
	snapshotEntries   *prometheus.GaugeVec
	namespaces        *prometheus.GaugeVec
	lastRun           prometheus.Gauge
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		corpusFiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corpus_files_total",
			Help:      "Project YAML files read from the data root.",
		}),
		corpusParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "corpus_parse_errors_total",
			Help:      "Project YAML files that failed to parse and were treated as empty.",
		}),
		snapshotEntries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_entries",
			Help:      "Entries in the most recently written snapshot.",
		}, []string{"snapshot"}),
		namespaces: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "namespaces",
			Help:      "Namespaces of the last reconcile run by outcome.",
		}, []string{"state"}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run completed.",
		}),
	}

	r.registry.MustRegister(
		r.corpusFiles,
		r.corpusParseErrors,
		r.snapshotEntries,
		r.namespaces,
		r.lastRun,
	)
	return r
}

// ObserveCorpus records one corpus load.
func (r *Recorder) ObserveCorpus(stats registry.Stats) {
	r.corpusFiles.Add(float64(stats.Files))
	r.corpusParseErrors.Add(float64(stats.ParseErrors))
}

// ObserveSnapshot records the size of a written snapshot.
func (r *Recorder) ObserveSnapshot(name string, entries int) {
	r.snapshotEntries.WithLabelValues(name).Set(float64(entries))
}

// ObserveResolution records the outcome of a reconcile run.
func (r *Recorder) ObserveResolution(resolved, unresolved int) {
	r.namespaces.WithLabelValues("resolved").Set(float64(resolved))
	r.namespaces.WithLabelValues("unresolved").Set(float64(unresolved))
}

// MarkCompleted stamps the run completion time.
func (r *Recorder) MarkCompleted(t time.Time) {
	r.lastRun.Set(float64(t.Unix()))
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
