// Package handlers builds the canned JSON responses served by the router.
// Every handler is total: any input produces a well-formed response.
package handlers

import (
	"net/http"
	"time"

	"hello-lambda-api/pkg/lambda"
)

// Fixed response headers carried by every response
const (
	HeaderContentType = "Content-Type"
	HeaderAllowOrigin = "Access-Control-Allow-Origin"

	ContentTypeJSON = "application/json"
	AllowAnyOrigin  = "*"
)

// TimestampLayout renders UTC instants with microseconds and a Z suffix
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Clock returns the current instant
type Clock func() time.Time

// Handler holds the route handlers and the clock they read timestamps from
type Handler struct {
	clock Clock
}

// NewHandler creates a new handler set. A nil clock uses time.Now.
func NewHandler(clock Clock) *Handler {
	if clock == nil {
		clock = time.Now
	}
	return &Handler{
		clock: clock,
	}
}

// timestamp returns the current instant formatted for response bodies
func (h *Handler) timestamp() string {
	return FormatTimestamp(h.clock())
}

// FormatTimestamp renders t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Headers returns a fresh copy of the fixed response headers
func Headers() map[string]string {
	return map[string]string{
		HeaderContentType: ContentTypeJSON,
		HeaderAllowOrigin: AllowAnyOrigin,
	}
}

// JSON builds a response with the fixed headers and payload encoded as the body.
// Bodies use ", " and ": " separators.
func JSON(statusCode int, payload interface{}) *lambda.Response {
	body, err := encode(payload)
	if err != nil {
		statusCode = http.StatusInternalServerError
		body = `{"error": "Internal Server Error"}`
	}

	return &lambda.Response{
		StatusCode: statusCode,
		Headers:    Headers(),
		Body:       body,
	}
}
