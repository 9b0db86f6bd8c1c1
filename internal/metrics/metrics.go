// Package metrics expõe as métricas das execuções do pipeline no formato Prometheus
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const namespace = "sales_insights"

// Status de uma execução
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusFailure = "failure"
)

// PipelineMetrics agrupa os coletores do pipeline. Um valor nil ignora todas as chamadas.
type PipelineMetrics struct {
	registry  *prometheus.Registry
	runs      *prometheus.CounterVec
	discarded *prometheus.CounterVec
	kept      prometheus.Counter
	duration  prometheus.Histogram
}

func New() *PipelineMetrics {
	m := &PipelineMetrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Execuções do pipeline por status.",
		}, []string{"status"}),
		discarded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_discarded_rows_total",
			Help:      "Linhas descartadas pela limpeza por motivo.",
		}, []string{"reason"}),
		kept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_kept_rows_total",
			Help:      "Linhas que sobreviveram à limpeza.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_run_duration_seconds",
			Help:      "Duração das execuções do pipeline.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}

	m.registry.MustRegister(
		m.runs,
		m.discarded,
		m.kept,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveRun registra o resultado de uma execução
func (m *PipelineMetrics) ObserveRun(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(status).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// ObserveReport registra os contadores do relatório de descarte
func (m *PipelineMetrics) ObserveReport(report *domain.DiscardReport) {
	if m == nil || report == nil {
		return
	}
	m.kept.Add(float64(report.Kept))
	for reason, count := range report.ByReason {
		m.discarded.WithLabelValues(string(reason)).Add(float64(count))
	}
}

// Handler serve o registro em /metrics
func (m *PipelineMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
