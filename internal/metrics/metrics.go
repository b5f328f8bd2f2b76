// Package metrics registers the Prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "crm"

// Provisioning results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Provisioning metrics
	ProvisionedAppsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_provisioned_apps_total",
			Help: "Total number of CRM app provisioning attempts",
		},
		[]string{"business_type", "result"},
	)

	ProvisionedModulesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_provisioned_modules_total",
			Help: "Total number of modules created by provisioning",
		},
	)

	// Record metrics
	RecordOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_record_operations_total",
			Help: "Total number of record operations",
		},
		[]string{"operation"},
	)

	// Database operation metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operation string) func(startTime time.Time) {
	return func(startTime time.Time) {
		DBOperationDuration.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())
	}
}

// RecordProvisioning counts one provisioning attempt and the modules it created
func RecordProvisioning(businessType, result string, modules int) {
	ProvisionedAppsTotal.WithLabelValues(businessType, result).Inc()
	if modules > 0 {
		ProvisionedModulesTotal.Add(float64(modules))
	}
}

// RecordRecordOperation increments the counter for record operations
func RecordRecordOperation(operation string) {
	RecordOperationsTotal.WithLabelValues(operation).Inc()
}
