package httpapi

import (
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// adminGroup is the group claim that grants the admin tier.
const adminGroup = "Admin"

// Identity is the caller's verified identity, extracted once per
// request at the boundary and passed explicitly to whatever needs it.
// Token verification happens upstream; the handler only reads the
// claims the gateway forwards.
type Identity struct {
	// UserID is the identity provider's subject identifier.
	UserID string

	// Email is the verified email claim.
	Email string

	// Groups are the caller's group memberships.
	Groups []string
}

// IsAdmin reports whether the identity holds the admin group.
func (id *Identity) IsAdmin() bool {
	if id == nil {
		return false
	}
	for _, g := range id.Groups {
		if g == adminGroup {
			return true
		}
	}
	return false
}

// IdentityFromRequest reads the authorizer claims bag. A request with
// no claims at all is fully unauthenticated and yields nil.
func IdentityFromRequest(req events.APIGatewayProxyRequest) *Identity {
	claims, ok := req.RequestContext.Authorizer["claims"].(map[string]any)
	if !ok || len(claims) == 0 {
		return nil
	}

	id := &Identity{}
	if sub, ok := claims["sub"].(string); ok {
		id.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	id.Groups = groupsClaim(claims["cognito:groups"])

	if id.UserID == "" {
		return nil
	}
	return id
}

// groupsClaim normalizes the group claim. The gateway forwards it
// either as a list or as a single string like "Admin" or
// "[Admin Editors]".
func groupsClaim(v any) []string {
	switch val := v.(type) {
	case []any:
		var groups []string
		for _, g := range val {
			if s, ok := g.(string); ok && s != "" {
				groups = append(groups, s)
			}
		}
		return groups
	case []string:
		return val
	case string:
		s := strings.Trim(val, "[]")
		if s == "" {
			return nil
		}
		var groups []string
		for _, g := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
			if g != "" {
				groups = append(groups, g)
			}
		}
		return groups
	default:
		return nil
	}
}
