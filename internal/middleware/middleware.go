package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"hello-lambda-api/internal/handlers"
	"hello-lambda-api/pkg/lambda"
)

// MaxBodyBytes caps the request body read by Dispatch
const MaxBodyBytes = 10 * 1024 * 1024

// Dispatch converts the HTTP request into a lambda request and writes the
// dispatcher's response verbatim. It is meant to be the engine's NoRoute handler
// so that every path reaches the dispatcher.
func Dispatch(dispatcher lambda.Dispatcher) gin.HandlerFunc {
	return DispatchWithLimit(dispatcher, MaxBodyBytes)
}

// DispatchWithLimit is Dispatch with a custom body size limit. Bodies over
// the limit get 413 and unreadable bodies get 400; neither reaches the dispatcher.
func DispatchWithLimit(dispatcher lambda.Dispatcher, maxBodyBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, err := NewRequest(c, maxBodyBytes)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": c.GetString(RequestIDKey),
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
			}).WithError(err).Warn("Failed to read request body")

			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeResponse(c, handlers.JSON(http.StatusRequestEntityTooLarge, handlers.ErrorResponse{
					Error:   "Request Entity Too Large",
					Message: fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit),
				}))
				return
			}
			writeResponse(c, handlers.JSON(http.StatusBadRequest, handlers.ErrorResponse{
				Error:   "Bad Request",
				Message: "Failed to read request body",
			}))
			return
		}

		writeResponse(c, dispatcher.Dispatch(req))
	}
}

// NewRequest builds a lambda request from the gin context. Only the first
// value of a repeated query key is kept; an empty body is treated as absent.
func NewRequest(c *gin.Context, maxBodyBytes int64) (*lambda.Request, error) {
	req := &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		QueryParams: make(map[string]string),
	}

	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			req.QueryParams[key] = values[0]
		}
	}

	if c.Request.Body != nil {
		data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		if len(data) > 0 {
			body := string(data)
			req.Body = &body
		}
	}

	return req, nil
}

func writeResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, handlers.ContentTypeJSON, []byte(resp.Body))
}
