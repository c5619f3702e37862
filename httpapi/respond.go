package httpapi

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// corsHeaders is attached to every response, preflight included.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type,Authorization",
	"Access-Control-Allow-Methods": "GET,POST,PUT,DELETE,OPTIONS",
	"Content-Type":                 "application/json",
}

// respond builds a JSON response with CORS headers.
func respond(statusCode int, body any) events.APIGatewayProxyResponse {
	payload, err := json.Marshal(body)
	if err != nil {
		payload = []byte(`{"error":"Internal server error"}`)
		statusCode = 500
	}

	headers := make(map[string]string, len(corsHeaders))
	for k, v := range corsHeaders {
		headers[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(payload),
	}
}

// respondError builds an error response.
func respondError(statusCode int, message string) events.APIGatewayProxyResponse {
	return respond(statusCode, map[string]string{"error": message})
}
