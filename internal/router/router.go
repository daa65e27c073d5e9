// Package router maps normalized requests onto the fixed route table.
package router

import (
	"net/http"
	"time"

	"hello-lambda-api/internal/handlers"
	"hello-lambda-api/pkg/lambda"
)

// Route binds an exact (method, path) pair to a handler
type Route struct {
	Method  string
	Path    string
	Name    string
	Handler lambda.HandlerFunc
}

// Matches reports whether the route serves req. Matching is exact and case-sensitive.
func (r Route) Matches(req *lambda.Request) bool {
	return req.Method == r.Method && req.Path == r.Path
}

// Router dispatches requests to the first matching route, falling back to NotFound.
// It holds no per-request state and is safe for concurrent use.
type Router struct {
	routes   []Route
	notFound lambda.HandlerFunc
	observer Observer
}

// Option configures a Router
type Option func(*Router)

// WithObserver sets the observer notified after every dispatch
func WithObserver(observer Observer) Option {
	return func(r *Router) {
		if observer != nil {
			r.observer = observer
		}
	}
}

// New creates a router over the fixed route table
func New(h *handlers.Handler, opts ...Option) *Router {
	r := &Router{
		routes: []Route{
			{Method: http.MethodGet, Path: "/", Name: "health_check", Handler: h.HealthCheck},
			{Method: http.MethodGet, Path: "/hello", Name: "get_greeting", Handler: h.GetGreeting},
			{Method: http.MethodPost, Path: "/hello", Name: "create_greeting", Handler: h.CreateGreeting},
		},
		notFound: h.NotFound,
		observer: NopObserver{},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Dispatch routes req to its response. It never fails.
func (r *Router) Dispatch(req *lambda.Request) *lambda.Response {
	if req == nil {
		req = &lambda.Request{Method: lambda.DefaultMethod, Path: lambda.DefaultPath}
	}

	start := time.Now()
	name, handler := r.match(req)
	resp := handler(req)

	r.observer.Observe(Dispatch{
		Route:    name,
		Request:  req,
		Response: resp,
		Latency:  time.Since(start),
	})

	return resp
}

func (r *Router) match(req *lambda.Request) (string, lambda.HandlerFunc) {
	for _, route := range r.routes {
		if route.Matches(req) {
			return route.Name, route.Handler
		}
	}
	return NotFoundRoute, r.notFound
}
