package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters for the chat intake flow.
type ChatMetrics struct {
	turnsTotal        *prometheus.CounterVec
	extractionsTotal  *prometheus.CounterVec
	readFailuresTotal prometheus.Counter
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicbot",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Chat turns handled, by detected intent",
		}, []string{"intent"}),
		extractionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinicbot",
			Subsystem: "chat",
			Name:      "extractions_total",
			Help:      "Booking field extraction outcomes",
		}, []string{"field", "outcome"}),
		readFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinicbot",
			Subsystem: "appointments",
			Name:      "read_failures_total",
			Help:      "Appointment reads masked as an empty result",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.extractionsTotal, m.readFailuresTotal)
	return m
}

func (m *ChatMetrics) ObserveTurn(intent string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(intent).Inc()
}

func (m *ChatMetrics) ObserveExtraction(field string, found bool) {
	if m == nil {
		return
	}
	outcome := "missing"
	if found {
		outcome = "found"
	}
	m.extractionsTotal.WithLabelValues(field, outcome).Inc()
}

func (m *ChatMetrics) ObserveReadFailure() {
	if m == nil {
		return
	}
	m.readFailuresTotal.Inc()
}
