// Package metrics counts command and URL usage.
// Counts are exposed to Prometheus and, if configured, submitted to InfluxDB every minute.
package metrics

import (
	"net/http"
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is passed to everything that counts usage. A nil *Metrics counts nothing.
type Metrics struct {
	registry *prometheus.Registry

	commands *prometheus.CounterVec
	urls     *prometheus.CounterVec
	queries  prometheus.Counter

	mu sync.Mutex
	// totals since startup
	commandTotals map[string]uint64
	urlTotals     map[string]uint64
	// counts since the last influx submission
	pending counts
}

type counts struct {
	commands map[string]uint32
	urls     map[string]uint32
	queries  uint32
}

func newCounts() counts {
	return counts{commands: map[string]uint32{}, urls: map[string]uint32{}}
}

// New returns a Metrics with its own Prometheus registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ebina",
			Name:      "commands_total",
			Help:      "Commands run, by command name.",
		}, []string{"command"}),
		urls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ebina",
			Name:      "urls_total",
			Help:      "URLs seen in messages, by host.",
		}, []string{"host"}),
		queries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ebina",
			Name:      "database_queries_total",
			Help:      "Database queries run.",
		}),

		commandTotals: map[string]uint64{},
		urlTotals:     map[string]uint64{},
		pending:       newCounts(),
	}

	m.registry.MustRegister(
		m.commands, m.urls, m.queries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// IncCommand counts a command invocation.
func (m *Metrics) IncCommand(name string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(name).Inc()

	m.mu.Lock()
	m.commandTotals[name]++
	m.pending.commands[name]++
	m.mu.Unlock()
}

// IncURL counts a URL seen in chat.
func (m *Metrics) IncURL(host string) {
	if m == nil {
		return
	}
	m.urls.WithLabelValues(host).Inc()

	m.mu.Lock()
	m.urlTotals[host]++
	m.pending.urls[host]++
	m.mu.Unlock()
}

// IncQuery counts a database query.
func (m *Metrics) IncQuery() {
	if m == nil {
		return
	}
	m.queries.Inc()

	m.mu.Lock()
	m.pending.queries++
	m.mu.Unlock()
}

// Count is a named total.
type Count struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

// Commands returns command totals since startup, most used first.
func (m *Metrics) Commands() []Count {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return sorted(m.commandTotals)
}

// URLs returns URL totals since startup, most seen first.
func (m *Metrics) URLs() []Count {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return sorted(m.urlTotals)
}

func sorted(totals map[string]uint64) []Count {
	out := make([]Count, 0, len(totals))
	for k, v := range totals {
		out = append(out, Count{k, v})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// take returns and resets the counts since the last call.
func (m *Metrics) take() counts {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := m.pending
	m.pending = newCounts()
	return c
}

// Handler serves the Prometheus metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
