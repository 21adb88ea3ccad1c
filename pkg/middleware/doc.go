// Package middleware provides HTTP middleware for the demo server.
//
// Prometheus collects request counters and duration histograms;
// OpenTelemetry creates a span per request. Both are plain
// func(http.Handler) http.Handler middlewares and compose with chi's
// Router.Use.
package middleware
