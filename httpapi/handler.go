// Package httpapi is the stateless request handler: it maps
// (method, path) tuples onto store operations, gated by the caller's
// tier. Each invocation is independent; no state survives between
// requests.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/sirsluginston/sitekit/admin"
	"github.com/sirsluginston/sitekit/siteconfig"
	"github.com/sirsluginston/sitekit/store"
	"github.com/sirsluginston/sitekit/users"
)

// Handler routes API Gateway proxy events.
type Handler struct {
	store  *store.Store
	admin  *admin.Service
	users  *users.Service
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(st *store.Store, ad *admin.Service, us *users.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: st, admin: ad, users: us, logger: logger}
}

// Handle dispatches one request. It always returns a well-formed JSON
// response with CORS headers; failures become status codes, never
// Lambda errors.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod == "OPTIONS" {
		return respond(200, map[string]any{}), nil
	}

	method := req.HTTPMethod
	path := req.Path
	h.logger.Info("handling request", "method", method, "path", path)

	switch {
	case method == "GET" && path == "/api/config/brand":
		return h.getBrand(ctx), nil
	case method == "GET" && path == "/api/config/projects":
		return h.listProjects(ctx), nil
	case method == "GET" && strings.HasPrefix(path, "/api/config/project/"):
		return h.getProject(ctx, pathParam(path, "/api/config/project/")), nil
	case method == "GET" && strings.HasPrefix(path, "/api/config/pages/"):
		return h.listPages(ctx, pathParam(path, "/api/config/pages/")), nil

	case method == "POST" && path == "/api/admin/projects":
		return h.saveProject(ctx, req), nil
	case method == "POST" && path == "/api/admin/pages":
		return h.savePage(ctx, req), nil
	case method == "DELETE" && strings.HasPrefix(path, "/api/admin/projects/"):
		return h.deleteProject(ctx, req, pathParam(path, "/api/admin/projects/")), nil
	case method == "DELETE" && strings.HasPrefix(path, "/api/admin/pages/"):
		return h.deletePage(ctx, req, strings.TrimPrefix(path, "/api/admin/pages/")), nil

	case method == "GET" && path == "/api/user/settings":
		return h.getUserSettings(ctx, req), nil
	case method == "PUT" && path == "/api/user/settings":
		return h.updateUserSettings(ctx, req), nil
	case method == "POST" && path == "/api/user/create":
		return h.createUser(ctx, req), nil
	}

	return respondError(404, "Not found"), nil
}

// --- public config routes ---

func (h *Handler) getBrand(ctx context.Context) events.APIGatewayProxyResponse {
	brand, err := h.store.GetBrand(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return respondError(404, "Brand config not found")
	}
	if err != nil {
		// Availability over correctness on the public read path.
		h.logger.Warn("brand config unavailable, serving fallback", "error", err)
		return respond(200, siteconfig.FallbackBrand())
	}
	return respond(200, brand)
}

func (h *Handler) listProjects(ctx context.Context) events.APIGatewayProxyResponse {
	projects, err := h.store.ListProjects(ctx)
	if err != nil {
		h.logger.Warn("project listing unavailable, serving empty list", "error", err)
		return respond(200, []store.Project{})
	}
	return respond(200, projects)
}

func (h *Handler) getProject(ctx context.Context, projectKey string) events.APIGatewayProxyResponse {
	if projectKey == "" {
		return respondError(400, "Project key is required")
	}
	project, err := h.store.GetProject(ctx, projectKey)
	if errors.Is(err, store.ErrNotFound) {
		return respondError(404, "Project not found")
	}
	if err != nil {
		h.logger.Error("failed to get project config", "projectKey", projectKey, "error", err)
		return respondError(500, "Failed to get project config")
	}
	return respond(200, project)
}

func (h *Handler) listPages(ctx context.Context, projectKey string) events.APIGatewayProxyResponse {
	if projectKey == "" {
		return respondError(400, "Project key is required")
	}
	pages, err := h.store.ListPages(ctx, projectKey)
	if err != nil {
		h.logger.Warn("page listing unavailable, serving empty list", "projectKey", projectKey, "error", err)
		return respond(200, []store.Page{})
	}
	return respond(200, pages)
}

// --- admin routes ---

// requireAdmin gates a route on the admin tier. It returns a non-nil
// response when the caller is not admitted.
func (h *Handler) requireAdmin(req events.APIGatewayProxyRequest) *events.APIGatewayProxyResponse {
	id := IdentityFromRequest(req)
	if id == nil {
		r := respondError(401, "Unauthorized: Authentication required")
		return &r
	}
	if !id.IsAdmin() {
		r := respondError(403, "Unauthorized: Admin access required")
		return &r
	}
	return nil
}

func (h *Handler) saveProject(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if deny := h.requireAdmin(req); deny != nil {
		return *deny
	}

	var project store.Project
	if err := json.Unmarshal([]byte(req.Body), &project); err != nil {
		return respondError(400, "Invalid request body")
	}

	err := h.admin.SaveProject(ctx, &project)
	if errors.Is(err, admin.ErrValidation) {
		return respondError(400, err.Error())
	}
	if err != nil {
		h.logger.Error("failed to save project config", "error", err)
		return respondError(500, "Failed to save project config")
	}
	return respond(200, map[string]any{"success": true})
}

func (h *Handler) savePage(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if deny := h.requireAdmin(req); deny != nil {
		return *deny
	}

	var page store.Page
	if err := json.Unmarshal([]byte(req.Body), &page); err != nil {
		return respondError(400, "Invalid request body")
	}

	err := h.admin.SavePage(ctx, &page)
	if errors.Is(err, admin.ErrValidation) {
		return respondError(400, err.Error())
	}
	if err != nil {
		h.logger.Error("failed to save page config", "error", err)
		return respondError(500, "Failed to save page config")
	}
	return respond(200, map[string]any{"success": true})
}

func (h *Handler) deleteProject(ctx context.Context, req events.APIGatewayProxyRequest, projectKey string) events.APIGatewayProxyResponse {
	if deny := h.requireAdmin(req); deny != nil {
		return *deny
	}
	if projectKey == "" {
		return respondError(400, "Project key is required")
	}

	err := h.admin.DeleteProject(ctx, projectKey)
	if errors.Is(err, admin.ErrValidation) {
		return respondError(400, err.Error())
	}
	if err != nil {
		h.logger.Error("failed to delete project", "projectKey", projectKey, "error", err)
		return respondError(500, "Failed to delete project")
	}
	return respond(200, map[string]any{"success": true})
}

func (h *Handler) deletePage(ctx context.Context, req events.APIGatewayProxyRequest, rest string) events.APIGatewayProxyResponse {
	if deny := h.requireAdmin(req); deny != nil {
		return *deny
	}

	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return respondError(400, "Project key and page key are required")
	}

	err := h.admin.DeletePage(ctx, parts[0], parts[1])
	if errors.Is(err, admin.ErrValidation) {
		return respondError(400, err.Error())
	}
	if err != nil {
		h.logger.Error("failed to delete page", "projectKey", parts[0], "pageKey", parts[1], "error", err)
		return respondError(500, "Failed to delete page")
	}
	return respond(200, map[string]any{"success": true})
}

// --- user routes ---

func (h *Handler) getUserSettings(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id := IdentityFromRequest(req)
	if id == nil {
		return respondError(401, "Unauthorized: Authentication required")
	}

	settings, err := h.users.Get(ctx, id.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return respondError(404, "User settings not found")
	}
	if err != nil {
		h.logger.Error("failed to get user settings", "userID", id.UserID, "error", err)
		return respondError(500, "Failed to get user settings")
	}
	return respond(200, settings)
}

// userUpdateRequest is the PUT /api/user/settings body. Immutable
// fields are absent: UserID, Email, and RealName are re-asserted
// server-side from the stored record.
type userUpdateRequest struct {
	DisplayName         *string `json:"DisplayName"`
	AvatarURL           *string `json:"AvatarURL"`
	Timezone            *string `json:"Timezone"`
	EmailNotifications  *bool   `json:"EmailNotifications"`
	MarketingEmails     *bool   `json:"MarketingEmails"`
	ProjectUpdates      *bool   `json:"ProjectUpdates"`
	SystemNotifications *bool   `json:"SystemNotifications"`
	ThemePreference     *string `json:"ThemePreference"`
	DateFormat          *string `json:"DateFormat"`
	ShowEmailPublicly   *bool   `json:"ShowEmailPublicly"`
	AnalyticsOptOut     *bool   `json:"AnalyticsOptOut"`
}

func (h *Handler) updateUserSettings(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id := IdentityFromRequest(req)
	if id == nil {
		return respondError(401, "Unauthorized: Authentication required")
	}

	var body userUpdateRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return respondError(400, "Invalid request body")
	}

	settings, err := h.users.Update(ctx, id.UserID, users.UpdateInput{
		DisplayName:         body.DisplayName,
		AvatarURL:           body.AvatarURL,
		Timezone:            body.Timezone,
		EmailNotifications:  body.EmailNotifications,
		MarketingEmails:     body.MarketingEmails,
		ProjectUpdates:      body.ProjectUpdates,
		SystemNotifications: body.SystemNotifications,
		ThemePreference:     body.ThemePreference,
		DateFormat:          body.DateFormat,
		ShowEmailPublicly:   body.ShowEmailPublicly,
		AnalyticsOptOut:     body.AnalyticsOptOut,
	})
	if errors.Is(err, store.ErrNotFound) {
		return respondError(404, "User settings not found")
	}
	if errors.Is(err, users.ErrDisplayNameTaken) {
		return respondError(400, "Display name already taken")
	}
	if err != nil {
		h.logger.Error("failed to update user settings", "userID", id.UserID, "error", err)
		return respondError(500, "Failed to update user settings")
	}
	return respond(200, settings)
}

// userCreateRequest is the POST /api/user/create body.
type userCreateRequest struct {
	Email               string  `json:"Email"`
	RealName            string  `json:"RealName"`
	DisplayName         string  `json:"DisplayName"`
	AvatarURL           string  `json:"AvatarURL"`
	Timezone            string  `json:"Timezone"`
	EmailNotifications  *bool   `json:"EmailNotifications"`
	MarketingEmails     *bool   `json:"MarketingEmails"`
	ProjectUpdates      *bool   `json:"ProjectUpdates"`
	SystemNotifications *bool   `json:"SystemNotifications"`
	ThemePreference     string  `json:"ThemePreference"`
	DateFormat          string  `json:"DateFormat"`
	ShowEmailPublicly   *bool   `json:"ShowEmailPublicly"`
	AnalyticsOptOut     *bool   `json:"AnalyticsOptOut"`
}

func (h *Handler) createUser(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	id := IdentityFromRequest(req)
	if id == nil {
		return respondError(401, "Unauthorized: Authentication required")
	}

	var body userCreateRequest
	if req.Body != "" {
		if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
			return respondError(400, "Invalid request body")
		}
	}

	settings, created, err := h.users.Create(ctx, id.UserID, id.Email, users.CreateInput{
		Email:               body.Email,
		RealName:            body.RealName,
		DisplayName:         body.DisplayName,
		AvatarURL:           body.AvatarURL,
		Timezone:            body.Timezone,
		EmailNotifications:  body.EmailNotifications,
		MarketingEmails:     body.MarketingEmails,
		ProjectUpdates:      body.ProjectUpdates,
		SystemNotifications: body.SystemNotifications,
		ThemePreference:     body.ThemePreference,
		DateFormat:          body.DateFormat,
		ShowEmailPublicly:   body.ShowEmailPublicly,
		AnalyticsOptOut:     body.AnalyticsOptOut,
	})
	if errors.Is(err, users.ErrDisplayNameTaken) {
		return respondError(400, "Display name already taken")
	}
	if err != nil {
		h.logger.Error("failed to create user", "userID", id.UserID, "error", err)
		return respondError(500, "Failed to create user")
	}
	if created {
		return respond(201, settings)
	}
	return respond(200, settings)
}

// --- helpers ---

// pathParam extracts the single trailing path parameter after prefix.
func pathParam(path, prefix string) string {
	param := strings.TrimPrefix(path, prefix)
	return strings.Trim(param, "/")
}
