package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LogsIngested  Counter
	LogsIndexed   Counter
	LogsArchived  Counter
	LogsDeleted   Counter
	AlertsEmitted Counter

	SearchRequests Counter
	HTTPRequests   Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func counterSpecs() []struct {
	name   string
	help   string
	labels []string
} {
	return []struct {
		name   string
		help   string
		labels []string
	}{
		{"logs_ingested_total", "Log entries accepted by ingestion", []string{"tenant", "level"}},
		{"logs_indexed_total", "Log entries written to the search index", []string{"tenant"}},
		{"logs_archived_total", "Log entries moved to cold storage", []string{"tenant"}},
		{"logs_deleted_total", "Archived log entries hard-deleted", []string{"tenant"}},
		{"alerts_emitted_total", "Alert notifications emitted", []string{"tenant", "severity"}},
		{"search_requests_total", "Search requests executed", []string{"tenant", "status"}},
		{"http_requests_total", "HTTP requests handled", []string{"method", "handler"}},
	}
}

func New() *Counters {
	specs := counterSpecs()
	counters := make([]Counter, len(specs))
	for i, spec := range specs {
		counters[i] = NewPrometheusCounter(spec.name, spec.help, spec.labels)
	}

	return assemble(counters)
}

// NewTestCounters registers against a private registry so parallel tests
// never collide on the default one.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	specs := counterSpecs()
	counters := make([]Counter, len(specs))
	for i, spec := range specs {
		c := &PrometheusCounter{
			counter: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: spec.name,
				Help: spec.help,
			}, spec.labels),
		}
		reg.MustRegister(c.counter)
		counters[i] = c
	}

	return assemble(counters)
}

func assemble(counters []Counter) *Counters {
	return &Counters{
		LogsIngested:   counters[0],
		LogsIndexed:    counters[1],
		LogsArchived:   counters[2],
		LogsDeleted:    counters[3],
		AlertsEmitted:  counters[4],
		SearchRequests: counters[5],
		HTTPRequests:   counters[6],
	}
}
