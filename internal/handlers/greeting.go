package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"hello-lambda-api/pkg/lambda"
)

// Defaults substituted when no name is supplied
const (
	DefaultGreetingName = "World"
	DefaultCreatedName  = "Anonymous"

	emptyBody = "{}"
)

// GreetingResponse is the body returned by GET /hello
type GreetingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// CreatedGreetingResponse is the body returned by POST /hello
type CreatedGreetingResponse struct {
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

// GreetingBody is the decoded POST /hello payload. Data holds the whole
// value as sent; Name is nil unless the value is an object with a string name.
type GreetingBody struct {
	Data json.RawMessage
	Name *string
}

// GetGreeting handles GET /hello
func (h *Handler) GetGreeting(req *lambda.Request) *lambda.Response {
	name, ok := req.Query("name")
	if !ok {
		name = DefaultGreetingName
	}

	return JSON(http.StatusOK, GreetingResponse{
		Message:   "Hello, " + name + "!",
		Timestamp: h.timestamp(),
	})
}

// CreateGreeting handles POST /hello
func (h *Handler) CreateGreeting(req *lambda.Request) *lambda.Response {
	body := emptyBody
	if req.Body != nil {
		body = *req.Body
	}

	parsed, err := DecodeGreetingBody(body)
	if err != nil {
		return JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid JSON in request body",
		})
	}

	name := DefaultCreatedName
	if parsed.Name != nil {
		name = *parsed.Name
	}

	return JSON(http.StatusCreated, CreatedGreetingResponse{
		Message:   "Hello created for " + name + "!",
		Data:      parsed.Data,
		Timestamp: h.timestamp(),
	})
}

// DecodeGreetingBody parses a POST /hello body. Any well-formed JSON value in
// valid UTF-8 is accepted; anything else fails with an error wrapping
// ErrMalformedBody. Duplicate object keys keep their last value.
func DecodeGreetingBody(body string) (*GreetingBody, error) {
	if !utf8.ValidString(body) {
		return nil, fmt.Errorf("decode greeting body: invalid UTF-8: %w", ErrMalformedBody)
	}
	if !json.Valid([]byte(body)) {
		return nil, fmt.Errorf("decode greeting body: invalid JSON: %w", ErrMalformedBody)
	}

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	data, err := canonicalize(dec)
	if err != nil {
		return nil, fmt.Errorf("decode greeting body: %v: %w", err, ErrMalformedBody)
	}

	parsed := &GreetingBody{Data: json.RawMessage(data)}

	// Non-object values and non-string names fall back to the default name.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(parsed.Data, &fields); err != nil {
		return parsed, nil
	}
	if raw, ok := fields["name"]; ok {
		var name *string
		if err := json.Unmarshal(raw, &name); err == nil {
			parsed.Name = name
		}
	}

	return parsed, nil
}
