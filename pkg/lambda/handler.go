package lambda

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// InvocationHandler is the function signature handed to lambda.Start
type InvocationHandler func(ctx context.Context, payload json.RawMessage) (events.APIGatewayProxyResponse, error)

// NewHandler adapts a dispatcher to the Lambda runtime. The returned handler
// always yields a proxy response and a nil error.
func NewHandler(dispatcher Dispatcher, logger logrus.FieldLogger) InvocationHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return func(ctx context.Context, payload json.RawMessage) (events.APIGatewayProxyResponse, error) {
		event := ParseEvent(payload)

		fields := logrus.Fields{
			"event": string(payload),
		}
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			fields["aws_request_id"] = lc.AwsRequestID
		}
		if event.RequestID != "" {
			fields["api_request_id"] = event.RequestID
		}
		logger.WithFields(fields).Info("Received event")

		resp := dispatcher.Dispatch(event.Request())
		return resp.ProxyResponse(), nil
	}
}
