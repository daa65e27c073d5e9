package lambda

import (
	"github.com/aws/aws-lambda-go/events"
)

// Default values applied when an event omits a field
const (
	DefaultMethod = "GET"
	DefaultPath   = "/"
)

// Request represents a normalized HTTP request for the dispatcher.
// Body is nil when the event carried no body.
type Request struct {
	Method      string
	Path        string
	QueryParams map[string]string
	Body        *string
}

// Query returns the query parameter for key and whether it was present
func (r *Request) Query(key string) (string, bool) {
	if r == nil || r.QueryParams == nil {
		return "", false
	}
	value, ok := r.QueryParams[key]
	return value, ok
}

// Response represents a normalized HTTP response produced by the dispatcher
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// ProxyResponse converts the response to the API Gateway proxy shape
func (r *Response) ProxyResponse() events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		headers[k] = v
	}
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    headers,
		Body:       r.Body,
	}
}

// HandlerFunc produces a response for a request. It never fails.
type HandlerFunc func(req *Request) *Response

// Dispatcher routes a request to its response
type Dispatcher interface {
	Dispatch(req *Request) *Response
}
