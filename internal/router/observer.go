package router

import (
	"time"

	"github.com/sirupsen/logrus"

	"hello-lambda-api/pkg/lambda"
)

// NotFoundRoute is the route name reported for unmatched requests
const NotFoundRoute = "not_found"

// Dispatch describes one completed dispatch
type Dispatch struct {
	Route    string
	Request  *lambda.Request
	Response *lambda.Response
	Latency  time.Duration
}

// Observer receives a notification after every dispatch.
// Observers must not modify the request or response.
type Observer interface {
	Observe(d Dispatch)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(d Dispatch)

// Observe calls f(d)
func (f ObserverFunc) Observe(d Dispatch) {
	f(d)
}

// NopObserver discards every notification
type NopObserver struct{}

// Observe does nothing
func (NopObserver) Observe(Dispatch) {}

// LogObserver logs each dispatch through logrus
type LogObserver struct {
	logger logrus.FieldLogger
}

// NewLogObserver creates an observer writing to logger, or the standard logger when nil
func NewLogObserver(logger logrus.FieldLogger) *LogObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogObserver{logger: logger}
}

// Observe logs the dispatch at a level chosen by status code
func (o *LogObserver) Observe(d Dispatch) {
	fields := logrus.Fields{
		"route":      d.Route,
		"method":     d.Request.Method,
		"path":       d.Request.Path,
		"latency_ms": float64(d.Latency.Nanoseconds()) / 1000000,
	}
	if d.Response != nil {
		fields["status_code"] = d.Response.StatusCode
	}

	entry := o.logger.WithFields(fields)
	switch {
	case d.Response == nil || d.Response.StatusCode >= 500:
		entry.Error("Dispatch failed")
	case d.Response.StatusCode >= 400:
		entry.Warn("Client error")
	default:
		entry.Info("Request completed")
	}
}
