// Command devserver serves the API locally for development, adapting
// plain HTTP requests onto the same handler the Lambda runs.
//
// Identity normally arrives pre-verified from the API gateway. Locally
// there is no gateway, so the X-Dev-User / X-Dev-Email / X-Dev-Groups
// headers inject a debug identity instead. Do not deploy this binary.
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sirsluginston/sitekit/admin"
	"github.com/sirsluginston/sitekit/config"
	"github.com/sirsluginston/sitekit/httpapi"
	"github.com/sirsluginston/sitekit/store"
	"github.com/sirsluginston/sitekit/users"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	settings, err := config.Load()
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(1)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("failed to load AWS config", "error", err)
		os.Exit(1)
	}

	st := store.New(dynamodb.NewFromConfig(awsCfg), settings.StoreConfig())
	handler := httpapi.NewHandler(
		st,
		admin.NewService(st, logger, nil),
		users.NewService(st, logger),
		logger,
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	proxy := proxyHandler(handler)
	r.HandleFunc("/api/*", proxy)

	logger.Info("devserver listening",
		"addr", settings.DevServerAddr,
		"configTable", settings.ConfigTable,
		"usersTable", settings.UsersTable,
		"apiBaseURL", settings.APIBaseURL,
		"userPoolID", settings.UserPoolID,
	)
	if err := http.ListenAndServe(settings.DevServerAddr, r); err != nil {
		logger.Error("devserver failed", "error", err)
		os.Exit(1)
	}
}

// proxyHandler translates an HTTP request into the API Gateway proxy
// event the Lambda handler consumes, and writes its response back.
func proxyHandler(h *httpapi.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}

		event := events.APIGatewayProxyRequest{
			HTTPMethod:     r.Method,
			Path:           r.URL.Path,
			Body:           string(body),
			Headers:        singleHeaders(r.Header),
			RequestContext: devRequestContext(r),
		}

		resp, err := h.Handle(r.Context(), event)
		if err != nil {
			http.Error(w, "handler error", http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		io.WriteString(w, resp.Body)
	}
}

// devRequestContext builds the authorizer claims bag from debug
// headers, mirroring what the gateway forwards in production.
func devRequestContext(r *http.Request) events.APIGatewayProxyRequestContext {
	userID := r.Header.Get("X-Dev-User")
	if userID == "" {
		return events.APIGatewayProxyRequestContext{}
	}

	claims := map[string]any{
		"sub":   userID,
		"email": r.Header.Get("X-Dev-Email"),
	}
	if groups := r.Header.Get("X-Dev-Groups"); groups != "" {
		claims["cognito:groups"] = groups
	}

	return events.APIGatewayProxyRequestContext{
		Authorizer: map[string]any{"claims": claims},
	}
}

func singleHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, values := range h {
		if len(values) > 0 {
			out[k] = strings.Join(values, ",")
		}
	}
	return out
}
