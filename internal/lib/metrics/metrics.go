// Package metrics объявляет Prometheus-метрики сервиса. Все метрики регистрируются
// в реестре по умолчанию и отдаются обработчиком promhttp на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gym_dashboard"

var (
	// HTTPRequests число обработанных запросов по методу, шаблону маршрута и коду ответа.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// HTTPDuration длительность обработки запросов.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// ReportCache попадания и промахи кеша месячных отчётов.
	ReportCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Monthly revenue report cache lookups by result.",
	}, []string{"result"})

	// Notifications опубликованные уведомления по ключу маршрутизации.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "Membership notifications published to the broker.",
	}, []string{"kind"})
)
