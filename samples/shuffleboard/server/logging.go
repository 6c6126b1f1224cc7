package main

import (
	"net/http"

	"github.com/felixge/httpsnoop"
	log "github.com/sirupsen/logrus"
)

// withLogging records one line per request. httpsnoop keeps the optional
// ResponseWriter interfaces intact so event streams can still flush.
func withLogging(h http.Handler) http.Handler {
	logFn := func(rw http.ResponseWriter, r *http.Request) {
		metrics := httpsnoop.CaptureMetrics(h, rw, r)

		log.WithFields(log.Fields{
			"uri":      r.RequestURI,
			"method":   r.Method,
			"status":   metrics.Code,
			"written":  metrics.Written,
			"duration": metrics.Duration,
		}).Info("request")
	}
	return http.HandlerFunc(logFn)
}
