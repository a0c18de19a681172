// Package logger provides structured logging built on Zap.
//
// It produces a configured logger for either development (console encoding,
// colored levels) or production (JSON encoding) use, driven by the Log section
// of the application configuration.
//
// # Request Correlation
//
// Every HTTP request carries a RayID assigned by the rayid middleware. The
// WithRayID helper pulls it out of a Fiber context and attaches it to the
// logger, so every log line emitted while serving a request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
