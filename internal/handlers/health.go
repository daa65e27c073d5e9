package handlers

import (
	"net/http"

	"hello-lambda-api/pkg/lambda"
)

// HealthResponse is the body returned by the health check
type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthCheck handles GET /
func (h *Handler) HealthCheck(_ *lambda.Request) *lambda.Response {
	return JSON(http.StatusOK, HealthResponse{
		Message: "Lambda function is healthy",
		Status:  "OK",
	})
}

// NotFound handles every request that matches no route
func (h *Handler) NotFound(_ *lambda.Request) *lambda.Response {
	return JSON(http.StatusNotFound, ErrorResponse{
		Error:   "Not Found",
		Message: "The requested resource was not found",
	})
}
