package lambda

import (
	"encoding/base64"
	"encoding/json"
)

// Event is the subset of an API Gateway REST proxy event read by the router.
// Pointer fields are nil when the event omitted them, set them to null, or
// gave them the wrong JSON type.
type Event struct {
	HTTPMethod            *string
	Path                  *string
	QueryStringParameters map[string]string
	Body                  *string
	IsBase64Encoded       bool
	RequestID             string
}

// ParseEvent decodes a raw invocation payload. It never fails: any field
// that cannot be decoded is treated as absent.
func ParseEvent(raw []byte) Event {
	var event Event

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return event
	}

	event.HTTPMethod = decodeString(fields["httpMethod"])
	event.Path = decodeString(fields["path"])
	event.Body = decodeString(fields["body"])
	event.QueryStringParameters = decodeStringMap(fields["queryStringParameters"])

	if rawFlag, ok := fields["isBase64Encoded"]; ok {
		var flag bool
		if err := json.Unmarshal(rawFlag, &flag); err == nil {
			event.IsBase64Encoded = flag
		}
	}

	if rawCtx, ok := fields["requestContext"]; ok {
		var reqCtx struct {
			RequestID string `json:"requestId"`
		}
		if err := json.Unmarshal(rawCtx, &reqCtx); err == nil {
			event.RequestID = reqCtx.RequestID
		}
	}

	return event
}

// Request normalizes the event: method defaults to GET, path to "/", and
// query parameters to an empty map. An absent body stays nil.
func (e Event) Request() *Request {
	req := &Request{
		Method:      DefaultMethod,
		Path:        DefaultPath,
		QueryParams: make(map[string]string, len(e.QueryStringParameters)),
	}

	if e.HTTPMethod != nil {
		req.Method = *e.HTTPMethod
	}
	if e.Path != nil {
		req.Path = *e.Path
	}
	for k, v := range e.QueryStringParameters {
		req.QueryParams[k] = v
	}

	if e.Body != nil {
		body := *e.Body
		if e.IsBase64Encoded {
			// Undecodable payloads are routed as-is and rejected by the JSON parse.
			if decoded, err := base64.StdEncoding.DecodeString(body); err == nil {
				body = string(decoded)
			}
		}
		req.Body = &body
	}

	return req
}

func decodeString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	return value
}

func decodeStringMap(raw json.RawMessage) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	var values map[string]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	result := make(map[string]string, len(values))
	for k, v := range values {
		if s := decodeString(v); s != nil {
			result[k] = *s
		}
	}
	return result
}
