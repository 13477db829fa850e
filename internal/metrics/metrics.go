package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.NewCounterVec(prometheus.CounterOpts{Name: name, Help: help}, labels)
}

func gauge(name, help string) prometheus.Gauge {
	return promauto.NewGauge(prometheus.GaugeOpts{Name: name, Help: help})
}

func histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.NewHistogramVec(prometheus.HistogramOpts{Name: name, Help: help, Buckets: buckets}, labels)
}

// HTTP metrics
var (
	HTTPRequestsTotal    = counterVec(MetricNameHTTPRequestsTotal, HelpTextHTTPRequestsTotal, LabelMethod, LabelPath, LabelStatus)
	HTTPRequestDuration  = histogramVec(MetricNameHTTPRequestDuration, HelpTextHTTPRequestDuration, HTTPLatencyBuckets, LabelMethod, LabelPath)
	HTTPRequestsInFlight = gauge(MetricNameHTTPRequestsInFlight, HelpTextHTTPRequestsInFlight)
)

// Event bus metrics
var (
	EventsPublished    = counterVec(MetricNameEventsPublished, HelpTextEventsPublished, LabelType)
	EventHandlerErrors = counterVec(MetricNameEventHandlerErrors, HelpTextEventHandlerErrors, LabelType)
)

// Checker metrics
var (
	SelectionActions    = counterVec(MetricNameSelectionActions, HelpTextSelectionActions, LabelAction)
	SelectionRejections = counterVec(MetricNameSelectionRejections, HelpTextSelectionRejections, LabelReason)
	Celebrations        = counterVec(MetricNameCelebrations, HelpTextCelebrations, LabelTier)
	GamesLoaded         = gauge(MetricNameGamesLoaded, HelpTextGamesLoaded)
	SSEClientsConnected = gauge(MetricNameSSEClientsConnected, HelpTextSSEClientsConnected)
	EngineEvaluations   = counterVec(MetricNameEngineEvaluations, HelpTextEngineEvaluations, LabelCache)
)
