// Package metrics declares the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

var (
	// TransitionsTotal counts lifecycle events by outcome.
	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buyit_lifecycle_transitions_total",
		Help: "Lifecycle events applied to procurement requests by event and result",
	}, []string{"event", "result"})

	// InvoiceVerdictsTotal counts recorded invoices by match status.
	InvoiceVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "buyit_invoice_verdicts_total",
		Help: "Invoices recorded by match verdict",
	}, []string{"status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "buyit_http_request_duration_seconds",
		Help:    "HTTP request latency by method, route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
