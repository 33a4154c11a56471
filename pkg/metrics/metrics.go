/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metrics provides Prometheus instrumentation for split, combine and share set operations.
package metrics

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all metrics.
	Namespace = "sss"

	// Label names.
	LabelOperation  = "operation"
	LabelStatus     = "status"
	LabelMethod     = "method"
	LabelStatusCode = "status_code"

	// Status values.
	StatusSuccess  = "success"
	StatusNotFound = "not_found"
	StatusError    = "error"

	// Operation names.
	OpSplit       = "split"
	OpCombine     = "combine"
	OpSave        = "save_share_set"
	OpLoad        = "load_share_set"
	OpDeleteShare = "delete_share"
	OpRecover     = "recover"
)

// nolint:gochecknoglobals // collectors are registered once with the default registry
var (
	enabled atomic.Bool

	// OperationsTotal counts operations by name and status.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of secret sharing operations by type and status",
		},
		[]string{LabelOperation, LabelStatus},
	)

	// OperationDuration tracks operation latency in seconds.
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of secret sharing operations in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{LabelOperation},
	)

	// SharesProduced counts shares handed out by split operations.
	SharesProduced = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "shares_produced_total",
			Help:      "Total number of shares produced",
		},
	)

	// HTTPRequestsTotal counts HTTP requests by method and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method and status code",
		},
		[]string{LabelMethod, LabelStatusCode},
	)

	// HTTPRequestDuration tracks HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{LabelMethod},
	)
)

func init() { // nolint:gochecknoinits // metrics are on unless disabled
	enabled.Store(true)
}

// Enable turns recording on.
func Enable() {
	enabled.Store(true)
}

// Disable turns recording off. Collectors stay registered.
func Disable() {
	enabled.Store(false)
}

// IsEnabled reports whether recording is on.
func IsEnabled() bool {
	return enabled.Load()
}

// RecordOperation records one finished operation.
func RecordOperation(operation, status string, seconds float64) {
	if !IsEnabled() {
		return
	}

	OperationsTotal.WithLabelValues(operation, status).Inc()
	OperationDuration.WithLabelValues(operation).Observe(seconds)
}

// ObserveOperation records operation as started at start, with a status derived from err.
// Use it with defer:
//
//	defer metrics.ObserveOperation(metrics.OpSplit, time.Now(), &err)
func ObserveOperation(operation string, start time.Time, err *error) {
	status := StatusSuccess
	if err != nil && *err != nil {
		status = StatusError
	}

	RecordOperation(operation, status, time.Since(start).Seconds())
}

// RecordSharesProduced adds n to the produced shares counter.
func RecordSharesProduced(n int) {
	if !IsEnabled() {
		return
	}

	SharesProduced.Add(float64(n))
}

// HTTPMiddleware returns an HTTP middleware that records request metrics.
//
//	router := chi.NewRouter()
//	router.Use(metrics.HTTPMiddleware)
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsEnabled() {
			next.ServeHTTP(w, r)

			return
		}

		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(wrapper.statusCode)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// responseWriter captures the status code written by a handler.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
	}

	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}

	return rw.ResponseWriter.Write(b)
}
