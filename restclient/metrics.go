// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"github.com/prometheus/client_golang/prometheus"
)

var requestCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "diffeo",
		Subsystem: "geoserver",
		Name:      "requests_total",
		Help:      "GeoServer REST requests by method and response code",
	},
	[]string{
		"method",
		"code",
	},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "diffeo",
		Subsystem: "geoserver",
		Name:      "request_duration_seconds",
		Help:      "Latency of GeoServer REST requests",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{
		"method",
	},
)

// RegisterMetrics registers the client's request metrics with reg.
// Metrics are collected whether or not they are registered.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{requestCounter, requestDuration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
